package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
	World           DurationStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name string
	DurationStats
}

type systemStatsInternal struct {
	name string
	durationStatsInternal
}

type queryExecutor interface {
	Execute()
}

// Scheduler drives a GameWorld. Each frame it refreshes the queries of the
// registered systems, runs the systems in registration order, steps the
// world and flushes the commands the systems queued.
type Scheduler struct {
	world       *GameWorld
	systems     []System
	systemStats []*systemStatsInternal
	queries     []queryExecutor
	commands    *Commands
}

// NewScheduler creates a new scheduler for the given world.
func NewScheduler(world *GameWorld) *Scheduler {
	return &Scheduler{
		world:    world,
		systems:  make([]System, 0),
		commands: newCommands(),
	}
}

// World returns the world the scheduler drives.
func (s *Scheduler) World() *GameWorld { return s.world }

// Register adds a system to the scheduler and initializes its Query and
// Singleton fields.
func (s *Scheduler) Register(system System) {
	s.initializeQueries(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:                  systemType.Name(),
		durationStatsInternal: newDurationStats(),
	})
}

func (s *Scheduler) initializeQueries(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()
		if !strings.HasPrefix(typeName, "Query[") && !strings.HasPrefix(typeName, "Singleton[") {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on field: " + fieldType.Name)
		}
		initMethod.Call([]reflect.Value{reflect.ValueOf(s.world)})

		if q, ok := field.Addr().Interface().(queryExecutor); ok {
			s.queries = append(s.queries, q)
		}
	}
}

// Once runs a single frame with the given delta time.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.world, s.commands)

	for _, q := range s.queries {
		q.Execute()
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.systemStats[i].record(time.Since(start))
	}

	s.world.OnUpdate(dt)

	if err := s.commands.Flush(s.world); err != nil {
		s.world.log.Warn("deferred commands failed", zap.Error(err))
	}
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
		World:       s.world.updateStats.snapshot(),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		stats.Systems[i] = SystemStats{
			Name:          internal.name,
			DurationStats: internal.snapshot(),
		}
		totalExecs += internal.count
	}

	stats.TotalExecutions = totalExecs
	return stats
}
