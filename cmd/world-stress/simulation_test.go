package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/gameworld/ecs"
	"github.com/plus3/gameworld/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.World.Seed = 7
	cfg.Stress.Entities = 300
	cfg.Stress.PoolSize = 64
	cfg.Stress.QueryEvery = 2
	return cfg
}

func TestSimulation(t *testing.T) {
	sim, err := newSimulation(testConfig(), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, sim.populate(300))

	// the tally entity plus the population
	assert.Equal(t, 301, sim.world.EntityCount())
	assert.Len(t, sim.world.EntitiesByType("turret"), 3)
	assert.Len(t, sim.world.EntitiesByType("orbiter"), 99)
	for _, e := range sim.world.EntitiesByType("orbiter") {
		assert.True(t, ecs.Has[*ecs.TimeComponent](e))
		assert.True(t, ecs.Has[*Bounce](e))
	}

	sim.runFrames(300, 1.0/60)

	tally := sim.tally.Get()
	require.NotNil(t, tally)
	assert.Positive(t, tally.Fired)
	assert.Positive(t, tally.Recycled)
	assert.Positive(t, tally.Churned)
	assert.Positive(t, tally.Collision)
	assert.LessOrEqual(t, sim.pool.Size("bullet"), 64)

	// bullets live for 1.5s, so the ones in flight were fired recently
	for b := range sim.bullets.All() {
		life, ok := ecs.Lookup[*Lifetime](b)
		require.True(t, ok)
		assert.LessOrEqual(t, life.Remaining, bulletLife)
		assert.True(t, b.IsActive())
	}

	// turrets are irremovable
	turret, err := sim.world.SingletonByType("turret")
	require.NoError(t, err)
	require.NoError(t, sim.world.RemoveEntity(turret))
	assert.True(t, turret.IsActive())
}

func TestSimulationDeterministic(t *testing.T) {
	counts := func() (int64, int64) {
		sim, err := newSimulation(testConfig(), zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, sim.populate(300))
		sim.runFrames(120, 1.0/60)
		tally := sim.tally.Get()
		return tally.Fired, tally.Churned
	}

	fired1, churned1 := counts()
	fired2, churned2 := counts()
	assert.Equal(t, fired1, fired2)
	assert.Equal(t, churned1, churned2)
}

func TestBounce(t *testing.T) {
	sim, err := newSimulation(testConfig(), zap.NewNop())
	require.NoError(t, err)

	e, err := sim.world.SpawnAt("bouncer", arenaWidth+5, 10)
	require.NoError(t, err)
	motion, ok := ecs.Lookup[*Motion](e)
	require.True(t, ok)
	motion.DX, motion.DY = 100, 0

	sim.world.OnUpdate(0.1)
	assert.Negative(t, motion.DX)
	assert.InDelta(t, arenaWidth+15, e.X(), 1e-9)

	sim.world.OnUpdate(0.1)
	assert.InDelta(t, arenaWidth+5, e.X(), 1e-9)
}

func TestReport(t *testing.T) {
	sim, err := newSimulation(testConfig(), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, sim.populate(50))

	report := &Report{Entities: 50, Seed: sim.seed, GCPauseMetrics: true}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	sim.run(ctx, report)

	assert.Positive(t, report.TotalUpdates)
	assert.Len(t, report.UpdateTime.Samples, int(report.TotalUpdates))
	assert.LessOrEqual(t, report.UpdateTime.Min, report.UpdateTime.Avg)
	assert.LessOrEqual(t, report.UpdateTime.Avg, report.UpdateTime.Max)
	require.NotNil(t, report.Scheduler)
	assert.Equal(t, 3, report.Scheduler.SystemCount)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Game World Stress Test Report")
	assert.Contains(t, out, "- **GunSystem:**")
	assert.Contains(t, out, "- **ChurnSystem:**")
	assert.Contains(t, out, "## GC Pause Durations")
}
