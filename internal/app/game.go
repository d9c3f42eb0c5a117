// internal/app/game.go
package app

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Game — ядро симуляции одной сессии. Владеет реестром сущностей, системами
// и состоянием сессии; наружу отдаёт неизменяемые снимки и принимает
// команды.
//
// Симуляция однопоточна и кооперативна: внешний драйвер вызывает Tick(dt),
// все мутации происходят синхронно внутри вызова. Команды применяются строго
// между тиками — одновременных вызовов Tick и команд контракт драйвера не
// допускает, поэтому в один момент времени «в полёте» ровно один тик.
type Game struct {
	SessionID uuid.UUID

	Registry       *entity.Registry
	MovementSystem *system.MovementSystem
	CombatSystem   *system.CombatSystem
	WaveSystem     *system.WaveSystem
	EconomySystem  *system.EconomySystem
	Dispatcher     *event.Dispatcher

	path  *geom.Path
	zone  geom.Zone
	level defs.LevelDefinition
	log   *zap.Logger

	session     *component.Session
	currentWave *component.Wave
	gameTime    float64
	tickCount   uint64
	pendingDT   float64
	defeated    bool
}

// NewGame собирает сессию: путь, зона строительства, определение уровня.
// Уровень проверяется на согласованность с библиотекой врагов.
func NewGame(path *geom.Path, zone geom.Zone, level defs.LevelDefinition, log *zap.Logger) (*Game, error) {
	if err := defs.ValidateLevel(level); err != nil {
		return nil, err
	}

	registry := entity.NewRegistry()
	dispatcher := event.NewDispatcher()
	session := &component.Session{
		Focus:      config.StartingFocus,
		Motivation: config.StartingMotivation,
		Status:     component.StatusStart,
	}

	g := &Game{
		SessionID:      uuid.New(),
		Registry:       registry,
		MovementSystem: system.NewMovementSystem(registry, path),
		CombatSystem:   system.NewCombatSystem(registry, log),
		WaveSystem:     system.NewWaveSystem(registry, path, dispatcher, log),
		EconomySystem:  system.NewEconomySystem(session, dispatcher, log),
		Dispatcher:     dispatcher,
		path:           path,
		zone:           zone,
		level:          level,
		log:            log,
		session:        session,
	}

	dispatcher.Subscribe(event.Defeat, g)

	log.Info("session created",
		zap.String("session", g.SessionID.String()),
		zap.String("level", level.Name),
		zap.Int("waves", len(level.Waves)),
	)
	return g, nil
}

// OnEvent реализует интерфейс event.Listener. Сигнал поражения от трекера
// ресурсов запоминается и применяется на этапе проверки терминальных
// состояний текущего тика.
func (g *Game) OnEvent(e event.Event) {
	if e.Type == event.Defeat {
		g.defeated = true
	}
}

// Tick продвигает симуляцию на dt секунд игрового времени. Вызовы с
// накопленным dt меньше минимального шага объединяются в один; накопленное
// время больше максимального шага дробится на подшаги, поэтому переданное dt
// всегда потребляется целиком. При одинаковой последовательности dt
// траектория симуляции воспроизводится бит в бит.
func (g *Game) Tick(dt float64) {
	if dt <= 0 || g.session.Status.Terminal() {
		return
	}

	g.pendingDT += dt
	for g.pendingDT >= config.MinTickInterval && !g.session.Status.Terminal() {
		step := g.pendingDT
		if step > config.MaxDeltaTime {
			// Скачок времени после паузы драйвера: дробим, а не отбрасываем.
			step = config.MaxDeltaTime
		}
		g.pendingDT -= step
		g.advance(step)
	}
}

// advance выполняет один шаг симуляции длиной step.
func (g *Game) advance(step float64) {
	g.gameTime += step
	g.tickCount++

	if g.session.Status == component.StatusPlaying {
		g.WaveSystem.Update(g.currentWave, g.gameTime)
		g.CombatSystem.Update(g.gameTime)
		g.MovementSystem.Update(step)
		g.cleanupHostiles()
	}
	g.Registry.Prune(g.gameTime)

	g.checkTerminal()
}

// cleanupHostiles снимает с поля врагов, погибших или прорвавшихся в этом
// тике, и рассылает соответствующие события. Прорыв наказывается штрафом к
// здоровью без награды; гибель приносит награду из определения врага.
func (g *Game) cleanupHostiles() {
	g.Registry.ForEachHostile(func(id types.EntityID, hostile *component.Hostile) bool {
		health := g.Registry.Healths[id]

		switch {
		case hostile.ReachedEnd:
			g.Registry.RemoveHostile(id)
			g.Dispatcher.Dispatch(event.Event{
				Type: event.HostileEscaped,
				Data: event.HostilePayload{ID: id, DefID: hostile.DefID},
			})
		case health != nil && health.Value <= 0:
			g.Registry.RemoveHostile(id)
			g.Dispatcher.Dispatch(event.Event{
				Type: event.HostileDestroyed,
				Data: event.HostilePayload{ID: id, DefID: hostile.DefID},
			})
		}
		return true
	})
}

// checkTerminal применяет терминальные переходы тика. Поражение имеет
// приоритет над зачисткой волны, если оба случились в одном тике.
func (g *Game) checkTerminal() {
	if g.session.Status != component.StatusPlaying {
		return
	}

	if g.defeated {
		g.session.Status = component.StatusGameOver
		g.log.Info("session lost",
			zap.String("session", g.SessionID.String()),
			zap.Int("wave", g.session.WaveIndex),
		)
		return
	}

	if g.WaveSystem.Cleared(g.currentWave) {
		cleared := g.currentWave.Number
		g.currentWave = nil
		g.Dispatcher.Dispatch(event.Event{
			Type: event.WaveCleared,
			Data: event.WaveClearedPayload{Number: cleared},
		})

		if g.session.WaveIndex >= len(g.level.Waves) {
			g.session.Status = component.StatusVictory
			g.log.Info("session won", zap.String("session", g.SessionID.String()))
			return
		}
		g.session.Status = component.StatusWaveTransition
		g.log.Info("wave cleared",
			zap.Int("wave", cleared),
			zap.Int("focus", g.session.Focus),
			zap.Int("motivation", g.session.Motivation),
		)
	}
}

// GameTime возвращает текущее игровое время в секундах.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// Status возвращает текущее состояние сессии.
func (g *Game) Status() component.Status {
	return g.session.Status
}
