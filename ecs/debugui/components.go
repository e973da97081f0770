package debugui

import (
	"github.com/plus3/gameworld/ecs"
)

type EntityBrowserComponent struct {
	ecs.ComponentBase
	cache              *EntityBrowserCache
	selectedEntityId   ecs.EntityId
	filterText         string
	filterType         *string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	ecs.ComponentBase
	selectedEntityId ecs.EntityId
}

type TypeViewerComponent struct {
	ecs.ComponentBase
	cache         *TypeViewerCache
	selectedType  *string
	sortColumn    int
	sortAscending bool
}

type PerformanceStatsComponent struct {
	ecs.ComponentBase
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

type GroupViewerComponent struct {
	ecs.ComponentBase
	selectedTypes map[string]bool
	cache         *GroupViewerCache
}
