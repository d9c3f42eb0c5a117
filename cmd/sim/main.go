// cmd/sim/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/pkg/geom"

	"go.uber.org/zap"
)

// Безголовый драйвер ядра: строит сессию, размещает башни автопилотом и
// гоняет тики с фиксированным шагом. Слой отрисовки подключается отдельно и
// читает те же снимки, что печатает этот драйвер.

var (
	catalogPath = flag.String("catalog", "", "YAML-файл с определениями башен и врагов (перекрывает встроенные)")
	levelPath   = flag.String("level", "", "YAML-файл уровня (по умолчанию встроенный)")
	tickRate    = flag.Int("tick-rate", 60, "частота тиков симуляции, Гц")
	realtime    = flag.Bool("realtime", false, "идти в темпе настенных часов, а не максимально быстро")
	maxSimTime  = flag.Float64("max-sim-time", 600, "предел игрового времени, секунд")
	verbose     = flag.Bool("v", false, "подробные логи")
)

func main() {
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	if *catalogPath != "" {
		if err := defs.LoadCatalog(*catalogPath); err != nil {
			logger.Fatal("catalog load failed", zap.Error(err))
		}
	}

	level := defs.DefaultLevel
	if *levelPath != "" {
		loaded, err := defs.LoadLevel(*levelPath)
		if err != nil {
			logger.Fatal("level load failed", zap.Error(err))
		}
		level = loaded
	}

	// Г-образный маршрут и полоса строительства вдоль него.
	path, err := geom.NewPath([]geom.Point{
		{X: 0, Y: 200},
		{X: 400, Y: 200},
		{X: 400, Y: 500},
		{X: 800, Y: 500},
	})
	if err != nil {
		logger.Fatal("path construction failed", zap.Error(err))
	}
	zone := geom.NewZone(
		geom.Rect{Min: geom.Point{X: 0, Y: 100}, Max: geom.Point{X: 800, Y: 180}},
		geom.Rect{Min: geom.Point{X: 420, Y: 220}, Max: geom.Point{X: 800, Y: 480}},
	)

	game, err := app.NewGame(path, zone, level, logger)
	if err != nil {
		logger.Fatal("session construction failed", zap.Error(err))
	}

	autoplace(game, logger)
	if err := game.Start(); err != nil {
		logger.Fatal("start failed", zap.Error(err))
	}

	dt := 1.0 / float64(*tickRate)
	interval := time.Duration(float64(time.Second) * dt)

	for game.GameTime() < *maxSimTime {
		game.Tick(dt)

		snap := game.Snapshot()
		if snap.Session.Status.Terminal() {
			report(snap)
			return
		}
		if snap.Session.Status == component.StatusWaveTransition {
			autoplace(game, logger)
			if err := game.StartWave(); err != nil {
				logger.Fatal("start wave failed", zap.Error(err))
			}
		}

		if *realtime {
			time.Sleep(interval)
		}
	}

	logger.Warn("simulated time limit reached", zap.Float64("limit", *maxSimTime))
	report(game.Snapshot())
}

// autoplace расставляет башни вдоль зоны строительства, пока хватает
// мотивации. Примитивный автопилот, достаточный для прогона уровня.
func autoplace(game *app.Game, logger *zap.Logger) {
	slots := []geom.Point{
		{X: 60, Y: 160}, {X: 160, Y: 160}, {X: 260, Y: 160}, {X: 360, Y: 160},
		{X: 460, Y: 260}, {X: 460, Y: 360}, {X: 460, Y: 460},
		{X: 560, Y: 460}, {X: 660, Y: 460}, {X: 760, Y: 460},
	}
	order := []defs.TowerType{defs.TowerArrow, defs.TowerFrost, defs.TowerCannon, defs.TowerSentry}

	placed := 0
	for i, slot := range slots {
		_, err := game.PlaceTower(order[i%len(order)], slot)
		switch {
		case err == nil:
			placed++
		case errors.Is(err, app.ErrInsufficientFunds):
			logger.Debug("autoplace stopped, out of motivation", zap.Int("placed", placed))
			return
		case errors.Is(err, app.ErrTooClose):
			continue // слот уже занят с прошлой расстановки
		default:
			logger.Warn("autoplace slot rejected", zap.Error(err))
		}
	}
}

func report(snap app.Snapshot) {
	fmt.Printf("status=%s wave=%d focus=%d motivation=%d time=%.2fs ticks=%d hash=%016x\n",
		snap.Session.Status, snap.Session.WaveIndex, snap.Session.Focus,
		snap.Session.Motivation, snap.Time, snap.Tick, snap.Hash())
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	return logger
}
