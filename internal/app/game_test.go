// internal/app/game_test.go
package app

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/pkg/geom"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Стандартная арена тестов: прямой путь 800 единиц и полоса строительства
// над ним.
func testPath(t *testing.T) *geom.Path {
	t.Helper()
	path, err := geom.NewPath([]geom.Point{{X: 0, Y: 0}, {X: 800, Y: 0}})
	require.NoError(t, err)
	return path
}

func testZone() geom.Zone {
	return geom.NewZone(geom.Rect{
		Min: geom.Point{X: 0, Y: 10},
		Max: geom.Point{X: 800, Y: 100},
	})
}

func singleWave(entries ...defs.SpawnEntry) defs.LevelDefinition {
	return defs.LevelDefinition{
		Name:  "test",
		Waves: []defs.WaveDefinition{{Entries: entries}},
	}
}

func newTestGame(t *testing.T, level defs.LevelDefinition) *Game {
	t.Helper()
	game, err := NewGame(testPath(t), testZone(), level, zap.NewNop())
	require.NoError(t, err)
	return game
}

func runnerEntry(delay float64) defs.SpawnEntry {
	return defs.SpawnEntry{HostileID: defs.HostileRunner, Delay: delay}
}

func swarmEntry(delay float64) defs.SpawnEntry {
	return defs.SpawnEntry{HostileID: defs.HostileSwarm, Delay: delay}
}

func TestPlaceTowerValidation(t *testing.T) {
	game := newTestGame(t, singleWave(runnerEntry(0)))
	start := config.StartingMotivation

	// Неизвестный тип.
	_, err := game.PlaceTower("TOWER_NOBODY", geom.Point{X: 100, Y: 50})
	require.ErrorIs(t, err, ErrUnknownTowerType)

	// Не хватает средств: Sentry стоит больше стартовой мотивации.
	require.Greater(t, defs.TowerLibrary[defs.TowerSentry].Cost, start)
	_, err = game.PlaceTower(defs.TowerSentry, geom.Point{X: 100, Y: 50})
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// Вне зоны строительства.
	_, err = game.PlaceTower(defs.TowerArrow, geom.Point{X: 100, Y: 500})
	require.ErrorIs(t, err, ErrOutOfZone)

	// Проверка зоны идёт раньше проверки средств.
	_, err = game.PlaceTower(defs.TowerSentry, geom.Point{X: 100, Y: 500})
	require.ErrorIs(t, err, ErrOutOfZone)

	// Ни одна из неудач не изменила состояние.
	require.Equal(t, start, game.Snapshot().Session.Motivation)
	require.Empty(t, game.Snapshot().Towers)

	// Успех списывает ровно стоимость.
	id, err := game.PlaceTower(defs.TowerArrow, geom.Point{X: 100, Y: 50})
	require.NoError(t, err)
	require.NotZero(t, id)
	cost := defs.TowerLibrary[defs.TowerArrow].Cost
	require.Equal(t, start-cost, game.Snapshot().Session.Motivation)

	// Слишком близко к существующей башне.
	_, err = game.PlaceTower(defs.TowerArrow, geom.Point{X: 110, Y: 50})
	require.ErrorIs(t, err, ErrTooClose)
	require.Equal(t, start-cost, game.Snapshot().Session.Motivation)

	// На достаточном расстоянии — снова успех.
	_, err = game.PlaceTower(defs.TowerArrow, geom.Point{X: 200, Y: 50})
	require.NoError(t, err)
	require.Len(t, game.Snapshot().Towers, 2)
}

func TestStartWaveRejectedWhilePlaying(t *testing.T) {
	game := newTestGame(t, singleWave(runnerEntry(0)))
	require.NoError(t, game.Start())
	require.Equal(t, component.StatusPlaying, game.Status())

	before := game.Snapshot()
	require.ErrorIs(t, game.StartWave(), ErrInvalidState)
	after := game.Snapshot()

	require.Equal(t, before.Session, after.Session)
	require.Equal(t, before.Hash(), after.Hash())
}

func TestStartRejectedTwice(t *testing.T) {
	game := newTestGame(t, singleWave(runnerEntry(0)))
	require.NoError(t, game.Start())
	require.ErrorIs(t, game.Start(), ErrInvalidState)
}

// Сценарий из свойств: путь 800 единиц, скорость 40, башен нет. Враг
// достигает конца пути на t = 20.0: в этом тике здоровье игрока падает
// ровно на единицу, награда не начисляется.
func TestEscapePenaltyScenario(t *testing.T) {
	game := newTestGame(t, singleWave(runnerEntry(0)))
	require.NoError(t, game.Start())

	for i := 0; i < 39; i++ {
		game.Tick(0.5)
		require.Equal(t, config.StartingFocus, game.Snapshot().Session.Focus)
	}

	game.Tick(0.5) // t = 20.0
	snap := game.Snapshot()
	require.InDelta(t, 20.0, snap.Time, 1e-9)
	require.Equal(t, config.StartingFocus-1, snap.Session.Focus)
	require.Empty(t, snap.Hostiles)
	// Прорыв не приносит награды, но волна зачищена — начислен только бонус.
	require.Equal(t, config.StartingMotivation+config.WaveClearBonus, snap.Session.Motivation)
}

// Поражение имеет приоритет над зачисткой волны в том же тике: все враги
// прорываются одновременно, здоровье доходит до нуля, и сессия завершается
// поражением, а не победой.
func TestDefeatTakesPriorityOverWaveCleared(t *testing.T) {
	entries := make([]defs.SpawnEntry, config.StartingFocus)
	for i := range entries {
		entries[i] = runnerEntry(0)
	}
	game := newTestGame(t, singleWave(entries...))
	require.NoError(t, game.Start())

	for i := 0; i < 41; i++ {
		game.Tick(0.5)
		snap := game.Snapshot()
		require.GreaterOrEqual(t, snap.Session.Focus, 0)
		require.GreaterOrEqual(t, snap.Session.Motivation, 0)
	}

	require.Equal(t, component.StatusGameOver, game.Status())
	require.Equal(t, 0, game.Snapshot().Session.Focus)

	// Терминальное состояние: тики и команды больше ничего не меняют.
	before := game.Snapshot().Hash()
	game.Tick(0.5)
	require.Equal(t, before, game.Snapshot().Hash())
	_, err := game.PlaceTower(defs.TowerArrow, geom.Point{X: 100, Y: 50})
	require.ErrorIs(t, err, ErrInvalidState)
	require.ErrorIs(t, game.StartWave(), ErrInvalidState)
}

// Полный проход: башня у начала пути убивает одиночного врага, последняя
// волна зачищена при живом игроке — сессия завершается победой ровно один
// раз и остаётся в ней.
func TestVictoryOnFinalWaveCleared(t *testing.T) {
	game := newTestGame(t, singleWave(swarmEntry(0)))

	_, err := game.PlaceTower(defs.TowerArrow, geom.Point{X: 100, Y: 30})
	require.NoError(t, err)
	require.NoError(t, game.Start())

	for i := 0; i < 400 && !game.Status().Terminal(); i++ {
		game.Tick(0.05)
	}

	snap := game.Snapshot()
	require.Equal(t, component.StatusVictory, snap.Session.Status)
	require.Equal(t, config.StartingFocus, snap.Session.Focus, "враг не должен был прорваться")

	reward := defs.HostileLibrary[defs.HostileSwarm].Reward
	cost := defs.TowerLibrary[defs.TowerArrow].Cost
	require.Equal(t, config.StartingMotivation-cost+reward+config.WaveClearBonus,
		snap.Session.Motivation)

	// Победа терминальна.
	game.Tick(0.5)
	require.Equal(t, component.StatusVictory, game.Status())
}

// Между волнами сессия ждёт явной команды: переход WAVE_TRANSITION → PLAYING
// не происходит сам по себе.
func TestWaveTransitionRequiresExplicitCommand(t *testing.T) {
	level := defs.LevelDefinition{
		Name: "two-waves",
		Waves: []defs.WaveDefinition{
			{Entries: []defs.SpawnEntry{swarmEntry(0)}},
			{Entries: []defs.SpawnEntry{swarmEntry(0)}},
		},
	}
	game := newTestGame(t, level)
	_, err := game.PlaceTower(defs.TowerSentry, geom.Point{X: 100, Y: 30})
	require.ErrorIs(t, err, ErrInsufficientFunds)
	_, err = game.PlaceTower(defs.TowerArrow, geom.Point{X: 100, Y: 30})
	require.NoError(t, err)
	require.NoError(t, game.Start())

	for i := 0; i < 400 && game.Status() == component.StatusPlaying; i++ {
		game.Tick(0.05)
	}
	require.Equal(t, component.StatusWaveTransition, game.Status())
	require.Equal(t, 1, game.Snapshot().Session.WaveIndex)

	// В паузе между волнами время идёт, но враги не появляются.
	for i := 0; i < 20; i++ {
		game.Tick(0.05)
	}
	require.Equal(t, component.StatusWaveTransition, game.Status())
	require.Empty(t, game.Snapshot().Hostiles)

	require.NoError(t, game.StartWave())
	require.Equal(t, component.StatusPlaying, game.Status())
	require.Equal(t, 2, game.Snapshot().Session.WaveIndex)

	for i := 0; i < 400 && !game.Status().Terminal(); i++ {
		game.Tick(0.05)
	}
	require.Equal(t, component.StatusVictory, game.Status())
}

func TestResetReturnsToStart(t *testing.T) {
	game := newTestGame(t, singleWave(runnerEntry(0)))
	oldID := game.SessionID

	_, err := game.PlaceTower(defs.TowerArrow, geom.Point{X: 100, Y: 50})
	require.NoError(t, err)
	require.NoError(t, game.Start())
	for i := 0; i < 10; i++ {
		game.Tick(0.5)
	}

	game.Reset()
	snap := game.Snapshot()
	require.Equal(t, component.StatusStart, snap.Session.Status)
	require.Equal(t, config.StartingFocus, snap.Session.Focus)
	require.Equal(t, config.StartingMotivation, snap.Session.Motivation)
	require.Equal(t, 0, snap.Session.WaveIndex)
	require.Empty(t, snap.Towers)
	require.Empty(t, snap.Hostiles)
	require.Empty(t, snap.Projectiles)
	require.Zero(t, snap.Time)
	require.NotEqual(t, oldID, game.SessionID)

	// Сессия снова полностью играбельна.
	require.NoError(t, game.Start())
	require.Equal(t, component.StatusPlaying, game.Status())
}

// Reset допустим и из терминального состояния.
func TestResetFromTerminalState(t *testing.T) {
	game := newTestGame(t, singleWave(runnerEntry(0)))
	require.NoError(t, game.Start())
	for i := 0; i < 500 && !game.Status().Terminal(); i++ {
		game.Tick(0.5)
	}
	require.True(t, game.Status().Terminal())

	game.Reset()
	require.Equal(t, component.StatusStart, game.Status())
}

// Вызовы Tick мельче минимального шага накапливаются и применяются одним
// шагом.
func TestTickCoalescing(t *testing.T) {
	game := newTestGame(t, singleWave(runnerEntry(0)))
	require.NoError(t, game.Start())

	game.Tick(0.004)
	game.Tick(0.003)
	require.Zero(t, game.Snapshot().Tick)
	require.Zero(t, game.GameTime())

	game.Tick(0.002) // накоплено 0.009 >= минимального шага
	require.Equal(t, uint64(1), game.Snapshot().Tick)
	require.InDelta(t, 0.009, game.GameTime(), 1e-9)

	// Нулевой и отрицательный dt игнорируются.
	game.Tick(0)
	game.Tick(-1)
	require.Equal(t, uint64(1), game.Snapshot().Tick)
}

// dt больше максимального шага потребляется целиком: накопленное время
// дробится на подшаги, а не отбрасывается.
func TestTickLargeDeltaConsumedFully(t *testing.T) {
	game := newTestGame(t, singleWave(runnerEntry(0)))
	require.NoError(t, game.Start())

	game.Tick(0.5) // два подшага по 0.25
	require.InDelta(t, 0.5, game.GameTime(), 1e-9)
	require.Equal(t, uint64(2), game.Snapshot().Tick)

	game.Tick(1.0) // четыре подшага
	require.InDelta(t, 1.5, game.GameTime(), 1e-9)
	require.Equal(t, uint64(6), game.Snapshot().Tick)

	// Враг прошёл speed*t единиц: на подшагах время не потерялось.
	snap := game.Snapshot()
	require.Len(t, snap.Hostiles, 1)
	require.InDelta(t, defs.HostileLibrary[defs.HostileRunner].Speed*1.5,
		snap.Hostiles[0].Position.X, 1e-9)
}

// Два прогона с одинаковыми расстановкой, уровнем и последовательностью dt
// дают одинаковые дайджесты снимков на каждом тике.
func TestDeterministicReplay(t *testing.T) {
	dts := []float64{0.016, 0.033, 0.05, 0.016, 0.25, 0.1, 0.016, 0.016}

	run := func() []uint64 {
		game := newTestGame(t, singleWave(runnerEntry(0), swarmEntry(1.0), runnerEntry(2.5)))
		_, err := game.PlaceTower(defs.TowerArrow, geom.Point{X: 100, Y: 30})
		require.NoError(t, err)
		_, err = game.PlaceTower(defs.TowerFrost, geom.Point{X: 300, Y: 30})
		require.NoError(t, err)
		require.NoError(t, game.Start())

		var hashes []uint64
		for i := 0; i < 240; i++ {
			game.Tick(dts[i%len(dts)])
			hashes = append(hashes, game.Snapshot().Hash())
		}
		return hashes
	}

	require.Equal(t, run(), run())
}

// Записи о выстрелах живут фиксированное время и удаляются на prune.
func TestProjectilesExpire(t *testing.T) {
	game := newTestGame(t, singleWave(swarmEntry(0)))
	_, err := game.PlaceTower(defs.TowerArrow, geom.Point{X: 30, Y: 30})
	require.NoError(t, err)
	require.NoError(t, game.Start())

	game.Tick(0.05) // появление врага и первый выстрел
	snap := game.Snapshot()
	require.Len(t, snap.Projectiles, 1)
	require.Greater(t, snap.Projectiles[0].Remaining, 0.0)
	require.Equal(t, defs.TowerLibrary[defs.TowerArrow].ProjectileTag, snap.Projectiles[0].Tag)

	// Спустя время жизни запись исчезает (новые выстрелы продолжаются,
	// поэтому проверяем именно первую).
	firstID := snap.Projectiles[0].ID
	for i := 0; i < 10; i++ {
		game.Tick(0.05)
	}
	for _, p := range game.Snapshot().Projectiles {
		require.NotEqual(t, firstID, p.ID)
	}
}

func TestSnapshotHealthFraction(t *testing.T) {
	game := newTestGame(t, singleWave(runnerEntry(0)))
	_, err := game.PlaceTower(defs.TowerArrow, geom.Point{X: 30, Y: 30})
	require.NoError(t, err)
	require.NoError(t, game.Start())

	game.Tick(0.05)
	snap := game.Snapshot()
	require.Len(t, snap.Hostiles, 1)

	max := defs.HostileLibrary[defs.HostileRunner].MaxHealth
	dmg := defs.TowerLibrary[defs.TowerArrow].Damage
	require.InDelta(t, float64(max-dmg)/float64(max), snap.Hostiles[0].HealthFraction, 1e-9)
}
