// internal/system/wave_test.go
package system

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/geom"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWaveFixture(t *testing.T) (*entity.Registry, *WaveSystem) {
	t.Helper()
	registry := entity.NewRegistry()
	path := newStraightPath(t, 800)
	ws := NewWaveSystem(registry, path, event.NewDispatcher(), zap.NewNop())
	return registry, ws
}

func TestWaveSpawnsOnSchedule(t *testing.T) {
	registry, ws := newWaveFixture(t)

	wave := ws.StartWave(1, defs.WaveDefinition{Entries: []defs.SpawnEntry{
		{HostileID: defs.HostileRunner, Delay: 0},
		{HostileID: defs.HostileSwarm, Delay: 1.0},
		{HostileID: defs.HostileBrute, Delay: 2.5},
	}}, 0)

	ws.Update(wave, 0.1)
	require.Equal(t, 1, registry.HostileCount())

	ws.Update(wave, 0.9)
	require.Equal(t, 1, registry.HostileCount())

	ws.Update(wave, 1.0)
	require.Equal(t, 2, registry.HostileCount())

	ws.Update(wave, 2.5)
	require.Equal(t, 3, registry.HostileCount())
	require.True(t, wave.SpawnsDone())
}

// Несколько появлений с задержками внутри одного шага выпускаются за один
// вызов Update.
func TestWaveCoalescedSpawns(t *testing.T) {
	registry, ws := newWaveFixture(t)

	wave := ws.StartWave(1, defs.WaveDefinition{Entries: []defs.SpawnEntry{
		{HostileID: defs.HostileSwarm, Delay: 0},
		{HostileID: defs.HostileSwarm, Delay: 0.1},
		{HostileID: defs.HostileSwarm, Delay: 0.2},
	}}, 0)

	ws.Update(wave, 0.5)
	require.Equal(t, 3, registry.HostileCount())
}

func TestWaveSpawnAtPathStart(t *testing.T) {
	registry, ws := newWaveFixture(t)

	wave := ws.StartWave(1, defs.WaveDefinition{Entries: []defs.SpawnEntry{
		{HostileID: defs.HostileRunner, Delay: 0},
	}}, 0)
	ws.Update(wave, 0.1)

	var got geom.Point
	var speed float64
	for id := range registry.Hostiles {
		got = registry.Positions[id].Point
		speed = registry.Velocities[id].Speed
	}
	require.Equal(t, geom.Point{X: 0, Y: 0}, got)
	require.InDelta(t, defs.HostileLibrary[defs.HostileRunner].Speed, speed, 1e-9)
}

func TestWaveCleared(t *testing.T) {
	registry, ws := newWaveFixture(t)

	wave := ws.StartWave(1, defs.WaveDefinition{Entries: []defs.SpawnEntry{
		{HostileID: defs.HostileRunner, Delay: 0},
	}}, 0)

	require.False(t, ws.Cleared(wave), "волна с невыпущенными врагами не зачищена")

	ws.Update(wave, 0.1)
	require.False(t, ws.Cleared(wave), "живой враг на поле")

	registry.ForEachHostile(func(id types.EntityID, _ *component.Hostile) bool {
		registry.RemoveHostile(id)
		return true
	})
	require.True(t, ws.Cleared(wave))
	require.False(t, ws.Cleared(nil))
}

// Отсчёт задержек идёт от времени старта волны, а не от нуля сессии.
func TestWaveDelaysRelativeToStart(t *testing.T) {
	registry, ws := newWaveFixture(t)

	wave := ws.StartWave(2, defs.WaveDefinition{Entries: []defs.SpawnEntry{
		{HostileID: defs.HostileRunner, Delay: 1.0},
	}}, 10.0)

	ws.Update(wave, 10.5)
	require.Equal(t, 0, registry.HostileCount())

	ws.Update(wave, 11.0)
	require.Equal(t, 1, registry.HostileCount())
}
