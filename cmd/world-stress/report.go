package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/gameworld/ecs"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Entities   int
	PoolSize   int
	QueryEvery int
	Seed       uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	World     ecs.WorldStats
	Scheduler *ecs.SchedulerStats

	Fired           int64
	Recycled        int64
	Hits            int64
	Churned         int64
	CollisionChecks int64
	BulletsInFlight int
	BulletsPooled   int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Game World Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}
- **Bullet Pool Size:** {{.PoolSize}}
- **Collision Pass Every:** {{.QueryEvery}} frames
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **World Update:**
  - **Avg:** {{.World.Update.AvgDuration}}
  - **Max:** {{.World.Update.MaxDuration}}
{{if .Scheduler}}
## Systems
{{range .Scheduler.Systems}}- **{{.Name}}:** avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.Count}} runs
{{end}}{{end}}
## World State (end)
- Entities:        {{.World.EntityCount}} ({{.World.UpdateListCount}} updating, {{.World.PendingCleanupCount}} awaiting cleanup)
- Groups:          {{.World.GroupCount}}
- Spawn Names:     {{.World.SpawnNameCount}} from {{.World.FactoryCount}} factories

## Activity
- Bullets Fired:     {{.Fired}}
- Bullets Recycled:  {{.Recycled}} ({{percent .Recycled .Fired}})
- Bullets In Flight: {{.BulletsInFlight}}
- Bullets Pooled:    {{.BulletsPooled}}
- Hits:              {{.Hits}} from {{.CollisionChecks}} checks
- Drifters Churned:  {{.Churned}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc | mb}} MB
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc | mb}} MB
- Sys Memory:     {{mb .MemStatsStart.Sys}} MB (start) -> {{mb .MemStatsEnd.Sys}} MB (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys | mb}} MB
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"percent": func(part, whole int64) string {
			if whole == 0 {
				return "n/a"
			}
			return fmt.Sprintf("%.1f%%", float64(part)*100/float64(whole))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
