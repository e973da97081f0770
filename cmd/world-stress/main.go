package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/plus3/gameworld/internal/config"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	duration := flag.Duration("duration", 0, "Override the total duration the test should run for.")
	entityCount := flag.Int("entities", -1, "Override the initial number of entities to create.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *duration > 0 {
		cfg.Stress.Duration = *duration
	}
	if *entityCount >= 0 {
		cfg.Stress.Entities = *entityCount
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting stress test")

	sim, err := newSimulation(cfg, log)
	if err != nil {
		log.Fatal("create simulation", zap.Error(err))
	}

	log.Info("populating world", zap.Int("entities", cfg.Stress.Entities))
	if err := sim.populate(cfg.Stress.Entities); err != nil {
		log.Fatal("populate world", zap.Error(err))
	}
	log.Info("population complete", zap.Int("active", sim.world.EntityCount()))

	report := &Report{
		Duration:       cfg.Stress.Duration,
		Entities:       cfg.Stress.Entities,
		PoolSize:       cfg.Stress.PoolSize,
		QueryEvery:     cfg.Stress.QueryEvery,
		Seed:           sim.seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	log.Info("running simulation", zap.Duration("duration", cfg.Stress.Duration))
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Stress.Duration)
	defer cancel()
	sim.run(ctx, report)
	log.Info("simulation finished", zap.Int64("updates", report.TotalUpdates))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}
