// internal/app/commands.go
package app

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Командная поверхность ядра. Команды вызываются драйвером строго между
// тиками; неудавшаяся команда не изменяет состояние и возвращает конкретную
// причину отказа.

// Start запускает сессию: переход START → PLAYING и старт первой волны.
func (g *Game) Start() error {
	if g.session.Status != component.StatusStart {
		return ErrInvalidState
	}
	g.session.Status = component.StatusPlaying
	g.session.WaveIndex = 1
	g.currentWave = g.WaveSystem.StartWave(1, g.level.Waves[0], g.gameTime)
	return nil
}

// StartWave запускает следующую волну. Допустима только в WAVE_TRANSITION:
// волны между собой не стартуют автоматически.
func (g *Game) StartWave() error {
	if g.session.Status != component.StatusWaveTransition {
		return ErrInvalidState
	}
	g.session.WaveIndex++
	g.session.Status = component.StatusPlaying
	g.currentWave = g.WaveSystem.StartWave(
		g.session.WaveIndex,
		g.level.Waves[g.session.WaveIndex-1],
		g.gameTime,
	)
	return nil
}

// PlaceTower проверяет принадлежность зоне строительства, минимальное
// расстояние до существующих башен и стоимость; при успехе создаёт башню и
// списывает мотивацию. Неудавшаяся проверка не изменяет состояние.
func (g *Game) PlaceTower(towerType defs.TowerType, pos geom.Point) (types.EntityID, error) {
	if g.session.Status.Terminal() {
		return types.NoEntity, ErrInvalidState
	}

	def, ok := defs.TowerLibrary[towerType]
	if !ok {
		return types.NoEntity, ErrUnknownTowerType
	}
	if !g.zone.Contains(pos) {
		return types.NoEntity, ErrOutOfZone
	}

	tooClose := false
	g.Registry.ForEachTower(func(id types.EntityID, tower *component.Tower) bool {
		other := g.Registry.Positions[id]
		if other != nil && pos.Dist(other.Point) < config.TowerClearance {
			tooClose = true
			return false
		}
		return true
	})
	if tooClose {
		return types.NoEntity, ErrTooClose
	}

	// Списание и есть единственная проверка средств; до этой точки мутаций нет.
	if !g.EconomySystem.TrySpend(def.Cost) {
		return types.NoEntity, ErrInsufficientFunds
	}
	id := g.Registry.AddTower(&component.Tower{
		DefID: towerType,
		// Отрицательное время последнего выстрела: башня стреляет сразу,
		// как только в радиусе появляется цель.
		LastAttackTime: -def.AttackInterval,
	}, component.Position{Point: pos})

	g.Dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	g.log.Debug("tower placed",
		zap.String("type", string(towerType)),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Int("motivation", g.session.Motivation),
	)
	return id, nil
}

// Reset полностью сбрасывает сессию в START: все сущности, таймеры и
// отложенные появления уничтожаются атомарно относительно границ тика.
// Допустим в любом состоянии.
func (g *Game) Reset() {
	g.Registry.Reset()
	g.currentWave = nil
	g.gameTime = 0
	g.tickCount = 0
	g.pendingDT = 0
	g.defeated = false
	g.session.Focus = config.StartingFocus
	g.session.Motivation = config.StartingMotivation
	g.session.WaveIndex = 0
	g.session.Status = component.StatusStart
	g.SessionID = uuid.New()
	g.log.Info("session reset", zap.String("session", g.SessionID.String()))
}
