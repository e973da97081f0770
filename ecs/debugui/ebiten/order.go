package ebiten

import (
	"cmp"
	"slices"

	"github.com/plus3/gameworld/ecs"
)

func sortByLayer(entities []*ecs.Entity) {
	slices.SortStableFunc(entities, func(a, b *ecs.Entity) int {
		if c := cmp.Compare(a.View().Layer().Index, b.View().Layer().Index); c != 0 {
			return c
		}
		return cmp.Compare(a.View().ZIndex(), b.View().ZIndex())
	})
}
