// internal/system/wave.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/pkg/geom"

	"go.uber.org/zap"
)

// WaveSystem выпускает врагов по расписанию активной волны и сигнализирует
// о её зачистке.
type WaveSystem struct {
	registry   *entity.Registry
	path       *geom.Path
	dispatcher *event.Dispatcher
	log        *zap.Logger
}

// NewWaveSystem создаёт планировщик волн.
func NewWaveSystem(registry *entity.Registry, path *geom.Path,
	dispatcher *event.Dispatcher, log *zap.Logger) *WaveSystem {
	return &WaveSystem{
		registry:   registry,
		path:       path,
		dispatcher: dispatcher,
		log:        log,
	}
}

// StartWave создаёт состояние волны с заданным номером и расписанием.
// Отсчёт задержек появления идёт от now.
func (s *WaveSystem) StartWave(number int, def defs.WaveDefinition, now float64) *component.Wave {
	s.log.Info("wave started",
		zap.Int("wave", number),
		zap.Int("spawns", len(def.Entries)),
	)
	return &component.Wave{
		Number:    number,
		Entries:   def.Entries,
		StartTime: now,
	}
}

// Update выпускает всех врагов, чья задержка истекла к моменту now. За один
// тик может появиться несколько врагов, если их задержки попали в один шаг.
func (s *WaveSystem) Update(wave *component.Wave, now float64) {
	if wave == nil {
		return
	}
	elapsed := now - wave.StartTime
	for !wave.SpawnsDone() && elapsed >= wave.Entries[wave.NextSpawnIndex].Delay {
		s.spawnHostile(wave.Entries[wave.NextSpawnIndex].HostileID)
		wave.NextSpawnIndex++
	}
}

// Cleared сообщает, зачищена ли волна: все появления выпущены и живых
// врагов на поле не осталось.
func (s *WaveSystem) Cleared(wave *component.Wave) bool {
	return wave != nil && wave.SpawnsDone() && s.registry.HostileCount() == 0
}

// spawnHostile создаёт врага в первой путевой точке.
func (s *WaveSystem) spawnHostile(defID defs.HostileType) {
	def, ok := defs.HostileLibrary[defID]
	if !ok {
		s.log.Error("wave: unknown hostile definition", zap.String("def", string(defID)))
		return
	}

	s.registry.AddHostile(
		&component.Hostile{DefID: defID},
		component.Position{Point: s.path.Start()},
		component.Velocity{Speed: def.Speed},
		component.Health{Value: def.MaxHealth, Max: def.MaxHealth},
	)
}
