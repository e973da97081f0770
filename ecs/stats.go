package ecs

import "time"

// WorldStats is a snapshot of a GameWorld's bookkeeping.
type WorldStats struct {
	EntityCount         int
	UpdateListCount     int
	PendingAddCount     int
	PendingCleanupCount int
	GroupCount          int
	FactoryCount        int
	SpawnNameCount      int
	ListenerCount       int
	Update              DurationStats
}

// DurationStats summarizes repeated timed executions.
type DurationStats struct {
	Count         int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type durationStatsInternal struct {
	count         int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func newDurationStats() durationStatsInternal {
	return durationStatsInternal{minDuration: time.Duration(1<<63 - 1)}
}

func (s *durationStatsInternal) record(d time.Duration) {
	s.count++
	s.lastDuration = d
	s.totalDuration += d

	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

func (s *durationStatsInternal) snapshot() DurationStats {
	out := DurationStats{
		Count:         s.count,
		MaxDuration:   s.maxDuration,
		LastDuration:  s.lastDuration,
		TotalDuration: s.totalDuration,
	}
	if s.count > 0 {
		out.MinDuration = s.minDuration
		out.AvgDuration = s.totalDuration / time.Duration(s.count)
	}
	return out
}

// Stats returns a snapshot of the world's current state.
func (w *GameWorld) Stats() WorldStats {
	return WorldStats{
		EntityCount:         len(w.entities),
		UpdateListCount:     len(w.updateList),
		PendingAddCount:     len(w.waiting),
		PendingCleanupCount: len(w.cleanup),
		GroupCount:          len(w.groups),
		FactoryCount:        len(w.factories),
		SpawnNameCount:      len(w.spawners),
		ListenerCount:       len(w.listeners),
		Update:              w.updateStats.snapshot(),
	}
}
