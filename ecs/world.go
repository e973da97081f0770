package ecs

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Option configures a GameWorld.
type Option func(*GameWorld)

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(w *GameWorld) {
		w.log = log
	}
}

// WithRandom sets the source used by Random.
func WithRandom(rng *rand.Rand) Option {
	return func(w *GameWorld) {
		w.rng = rng
	}
}

// GameWorld owns the set of active entities and steps them once per frame.
//
// Adding an entity makes it active and visible to queries immediately; it
// joins the update list at the start of the next OnUpdate. Removing an entity
// takes it out of queries immediately and fires the removal hooks, but its
// components stay attached until the end of the next OnUpdate.
//
// A GameWorld is not safe for concurrent use.
type GameWorld struct {
	log *zap.Logger
	rng *rand.Rand

	entities   []*Entity
	index      *intmap.Map[EntityId, *Entity]
	updateList []*Entity
	waiting    []*Entity
	cleanup    []*Entity
	ids        *idIndex

	listeners []EntityWorldListener
	groups    []*EntityGroup
	factories []factoryEntry
	spawners  map[string]SpawnFunc
	level     *Level

	updating    bool
	updateStats durationStatsInternal
}

// NewGameWorld returns an empty world configured by opts.
func NewGameWorld(opts ...Option) *GameWorld {
	w := &GameWorld{
		log:         zap.NewNop(),
		index:       intmap.New[EntityId, *Entity](256),
		ids:         newIDIndex(),
		spawners:    make(map[string]SpawnFunc),
		updateStats: newDurationStats(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return w
}

// AddEntity makes e active in the world. It fails with ErrAlreadyAttached if
// e belongs to any world or is still waiting for cleanup.
func (w *GameWorld) AddEntity(e *Entity) error {
	if e.World() != nil || e.state == Active || e.state == PendingRemoval {
		return eris.Wrapf(ErrAlreadyAttached, "add entity %d", e.ID())
	}

	e.init()
	e.ensureCore()

	w.entities = append(w.entities, e)
	w.index.Put(e.id, e)
	if e.IsEverUpdated() {
		w.waiting = append(w.waiting, e)
	}

	e.activate(w)
	if c, ok := Lookup[*IDComponent](e); ok {
		w.ids.add(e, c)
	}

	for _, l := range w.listeners {
		l.OnEntityAdded(e)
	}
	return nil
}

// AddEntities adds each entity in order and stops at the first failure.
func (w *GameWorld) AddEntities(entities ...*Entity) error {
	for _, e := range entities {
		if err := w.AddEntity(e); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEntity takes e out of the world. Removing an entity twice is a no-op,
// and entities with an IrremovableComponent are skipped. Entities that belong
// to another world, or were never added, yield ErrNotInWorld.
func (w *GameWorld) RemoveEntity(e *Entity) error {
	if owner := e.World(); owner != nil && owner != w {
		return eris.Wrapf(ErrNotInWorld, "remove entity %d", e.ID())
	}

	switch e.state {
	case PendingRemoval, Cleaned:
		return nil
	case Detached:
		return eris.Wrapf(ErrNotInWorld, "remove entity %d", e.ID())
	}

	if Has[*IrremovableComponent](e) {
		w.log.Warn("ignoring removal of irremovable entity", zap.Uint64("entity", uint64(e.id)))
		return nil
	}

	w.remove(e)
	return nil
}

// RemoveEntities removes each entity in order and stops at the first failure.
func (w *GameWorld) RemoveEntities(entities ...*Entity) error {
	for _, e := range entities {
		if err := w.RemoveEntity(e); err != nil {
			return err
		}
	}
	return nil
}

func (w *GameWorld) remove(e *Entity) {
	if i := slices.Index(w.entities, e); i >= 0 {
		w.entities = slices.Delete(w.entities, i, i+1)
	}
	if i := slices.Index(w.waiting, e); i >= 0 {
		w.waiting = slices.Delete(w.waiting, i, i+1)
	}
	w.index.Del(e.id)
	if c, ok := Lookup[*IDComponent](e); ok {
		w.ids.remove(e, c)
	}

	e.markForRemoval()
	for _, l := range w.listeners {
		l.OnEntityRemoved(e)
	}
	w.cleanup = append(w.cleanup, e)
}

// OnUpdate steps the world by tpf seconds: entities added since the last
// frame join the update list, every active entity in the list is updated,
// and entities removed so far are cleaned.
func (w *GameWorld) OnUpdate(tpf float64) {
	start := time.Now()

	w.updateList = append(w.updateList, w.waiting...)
	clear(w.waiting)
	w.waiting = w.waiting[:0]

	w.updating = true
	for _, e := range w.updateList {
		if e.state != Active {
			continue
		}
		e.Update(w.scaledTpf(e, tpf))
	}
	w.updating = false

	w.flushCleanup()
	w.updateStats.record(time.Since(start))
}

func (w *GameWorld) scaledTpf(e *Entity, tpf float64) float64 {
	if tc, ok := Lookup[*TimeComponent](e); ok {
		return tpf * tc.Value
	}
	return tpf
}

func (w *GameWorld) flushCleanup() {
	if len(w.cleanup) == 0 {
		return
	}

	for len(w.cleanup) > 0 {
		pending := w.cleanup
		w.cleanup = nil
		for _, e := range pending {
			e.clean()
		}
	}

	inactive := func(e *Entity) bool { return e.state != Active }
	w.updateList = slices.DeleteFunc(w.updateList, inactive)
	w.waiting = slices.DeleteFunc(w.waiting, inactive)
}

// Clear removes every entity, including irremovable ones, and cleans them
// immediately. Factory registrations are dropped; listeners and groups stay.
// Called from a component update, the cleanup waits for the end of OnUpdate.
func (w *GameWorld) Clear() {
	w.log.Debug("clearing world", zap.Int("entities", len(w.entities)))

	w.waiting = w.waiting[:0]
	for _, e := range slices.Clone(w.entities) {
		w.remove(e)
	}
	if !w.updating {
		w.flushCleanup()
		w.updateList = w.updateList[:0]
	}

	w.index.Clear()
	w.ids.clear()
	w.factories = nil
	w.spawners = make(map[string]SpawnFunc)
	w.level = nil
}

// SetLevel removes every entity that is not irremovable, cleans them
// immediately, then adds the level's entities. As with Clear, the cleanup
// waits for the end of OnUpdate when called from a component update.
func (w *GameWorld) SetLevel(level *Level) error {
	w.log.Debug("setting level",
		zap.String("level", level.Name),
		zap.Int("entities", len(level.Entities)),
	)

	for _, e := range slices.Clone(w.entities) {
		if !Has[*IrremovableComponent](e) {
			w.remove(e)
		}
	}
	if !w.updating {
		w.flushCleanup()
	}

	w.level = level
	if err := w.AddEntities(level.Entities...); err != nil {
		return eris.Wrapf(err, "set level %q", level.Name)
	}
	return nil
}

// Level returns the level last passed to SetLevel.
func (w *GameWorld) Level() *Level { return w.level }

// AddWorldListener subscribes l to entity add and remove events.
func (w *GameWorld) AddWorldListener(l EntityWorldListener) {
	w.listeners = append(slices.Clip(w.listeners), l)
}

func (w *GameWorld) RemoveWorldListener(l EntityWorldListener) {
	w.listeners = slices.DeleteFunc(slices.Clone(w.listeners), func(other EntityWorldListener) bool {
		return other == l
	})
}

// Group returns a live view of the active entities whose type is one of types.
func (w *GameWorld) Group(types ...any) *EntityGroup {
	g := newEntityGroup(w, types)
	w.groups = append(w.groups, g)
	w.AddWorldListener(g)
	return g
}

// Groups returns the groups that have not been disposed.
func (w *GameWorld) Groups() []*EntityGroup {
	return slices.Clone(w.groups)
}

func (w *GameWorld) releaseGroup(g *EntityGroup) {
	w.RemoveWorldListener(g)
	w.groups = slices.DeleteFunc(w.groups, func(other *EntityGroup) bool { return other == g })
}
