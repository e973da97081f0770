package ecs

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync/atomic"
	"weak"

	"github.com/plus3/gameworld/geom"
	"github.com/rotisserie/eris"
)

// EntityId identifies an entity for the lifetime of the process.
type EntityId uint64

var lastEntityId atomic.Uint64

func nextEntityId() EntityId {
	return EntityId(lastEntityId.Add(1))
}

// LifecycleState tracks an entity through its world membership.
type LifecycleState uint8

const (
	// Detached entities have never been added to a world.
	Detached LifecycleState = iota
	Active
	// PendingRemoval entities are out of the world but keep their components
	// until the next world update cleans them.
	PendingRemoval
	Cleaned
)

func (s LifecycleState) String() string {
	switch s {
	case Detached:
		return "Detached"
	case Active:
		return "Active"
	case PendingRemoval:
		return "PendingRemoval"
	case Cleaned:
		return "Cleaned"
	}
	return fmt.Sprintf("LifecycleState(%d)", int(s))
}

// Entity is an ordered bag of uniquely typed components. Every entity carries
// the four core components (type, transform, bounding box and view) which
// cannot be removed. The zero value is usable; NewEntity is equivalent.
type Entity struct {
	id         EntityId
	components map[reflect.Type]Component
	order      []Component
	listeners  []ComponentListener
	properties PropertyMap

	world weak.Pointer[GameWorld]
	state LifecycleState

	updateEnabled bool
	neverUpdated  bool
	reusable      bool
	updating      bool

	onActive        []func()
	onNotActive     []func()
	activeObservers []func(active bool)

	typ       *TypeComponent
	transform *TransformComponent
	bbox      *BoundingBoxComponent
	view      *ViewComponent
}

// NewEntity creates a detached entity with the core components attached.
func NewEntity() *Entity {
	e := &Entity{}
	e.init()
	return e
}

func (e *Entity) init() {
	if e.components != nil {
		return
	}
	e.id = nextEntityId()
	e.components = make(map[reflect.Type]Component)
	e.updateEnabled = true
	e.typ = NewTypeComponent(nil)
	e.transform = NewTransformComponent()
	e.bbox = NewBoundingBoxComponent()
	e.view = NewViewComponent()
	e.ensureCore()
}

// ensureCore attaches any core component that is missing, which after a
// cleanup is all of them.
func (e *Entity) ensureCore() {
	for _, c := range []Component{e.typ, e.transform, e.bbox, e.view} {
		t := reflect.TypeOf(c)
		if _, ok := e.components[t]; ok {
			continue
		}
		assign, err := e.resolveDependencies(c)
		if err != nil {
			panic(err)
		}
		e.attach(t, c, assign)
	}
}

// ID is unique for the life of the process and never reused.
func (e *Entity) ID() EntityId {
	e.init()
	return e.id
}

// World returns the owning world, or nil while the entity is not in one.
func (e *Entity) World() *GameWorld {
	return e.world.Value()
}

// State reports where the entity is in its world lifecycle.
func (e *Entity) State() LifecycleState { return e.state }

// IsActive is true while the entity is attached to a world.
func (e *Entity) IsActive() bool { return e.state == Active }

// TypeComponent, Transform, BoundingBox and View return the core components.
func (e *Entity) TypeComponent() *TypeComponent {
	e.init()
	return e.typ
}

func (e *Entity) Transform() *TransformComponent {
	e.init()
	return e.transform
}

func (e *Entity) BoundingBox() *BoundingBoxComponent {
	e.init()
	return e.bbox
}

func (e *Entity) View() *ViewComponent {
	e.init()
	return e.view
}

// Type is shorthand for the TypeComponent value.
func (e *Entity) Type() any { return e.TypeComponent().Value() }

func (e *Entity) SetType(value any) { e.TypeComponent().SetValue(value) }

func (e *Entity) IsType(value any) bool { return e.TypeComponent().Is(value) }

func (e *Entity) X() float64 { return e.Transform().X() }
func (e *Entity) Y() float64 { return e.Transform().Y() }

func (e *Entity) Position() geom.Point2D { return e.Transform().Position() }

func (e *Entity) SetPosition(x, y float64) { e.Transform().SetPosition(x, y) }

// Distance is the straight-line distance between the two entity positions.
func (e *Entity) Distance(other *Entity) float64 {
	return e.Transform().Distance(other.Transform())
}

// DistanceBBox is the distance between the centres of the two bounding boxes.
func (e *Entity) DistanceBBox(other *Entity) float64 {
	return e.BoundingBox().CenterWorld().Distance(other.BoundingBox().CenterWorld())
}

// IsColliding tests the two bounding boxes in world coordinates.
func (e *Entity) IsColliding(other *Entity) bool {
	return e.BoundingBox().IsCollidingWith(other.BoundingBox())
}

// Properties returns the live property map of the entity.
func (e *Entity) Properties() *PropertyMap {
	return &e.properties
}

func (e *Entity) SetProperty(key string, value any) {
	e.properties.Set(key, value)
}

// SetUpdateEnabled turns component updates on or off without touching the
// pause state of individual components.
func (e *Entity) SetUpdateEnabled(enabled bool) {
	e.init()
	e.updateEnabled = enabled
}

func (e *Entity) IsUpdateEnabled() bool {
	e.init()
	return e.updateEnabled
}

// SetEverUpdated(false) keeps the entity out of the world update list
// entirely. It must be set before the entity is added.
func (e *Entity) SetEverUpdated(ever bool) { e.neverUpdated = !ever }

func (e *Entity) IsEverUpdated() bool { return !e.neverUpdated }

// SetReusable makes cleanup keep the components so the entity can be added
// to a world again, typically from an EntityPool.
func (e *Entity) SetReusable(reusable bool) { e.reusable = reusable }

func (e *Entity) IsReusable() bool { return e.reusable }

// OnActive registers fn to run once, when the entity next becomes active.
func (e *Entity) OnActive(fn func()) {
	e.onActive = append(e.onActive, fn)
}

// OnNotActive registers fn to run once, when the entity next leaves its world.
func (e *Entity) OnNotActive(fn func()) {
	e.onNotActive = append(e.onNotActive, fn)
}

// OnActiveChanged registers fn for every active state transition.
func (e *Entity) OnActiveChanged(fn func(active bool)) {
	e.activeObservers = append(e.activeObservers, fn)
}

// AddComponentListener subscribes l to component attach and detach events.
func (e *Entity) AddComponentListener(l ComponentListener) {
	e.listeners = append(e.listeners, l)
}

func (e *Entity) RemoveComponentListener(l ComponentListener) {
	e.listeners = slices.DeleteFunc(slices.Clone(e.listeners), func(other ComponentListener) bool {
		return other == l
	})
}

// AddComponent attaches c. It fails if a component of the same type is
// present, if the type is unnamed, if a required type is missing, if a
// required dependency slot cannot be resolved, or if the entity is in the
// middle of its own update. On failure nothing is attached.
func (e *Entity) AddComponent(c Component) error {
	e.init()

	t, err := componentType(c)
	if err != nil {
		return eris.Wrapf(err, "add component to entity %d", e.id)
	}
	if e.updating {
		return eris.Wrapf(ErrUpdating, "add %s to entity %d", typeName(t), e.id)
	}
	if _, ok := e.components[t]; ok {
		return eris.Wrapf(ErrComponentExists, "add %s to entity %d", typeName(t), e.id)
	}
	if r, ok := c.(Requirer); ok {
		for _, req := range r.RequiredComponents() {
			if !e.hasType(req) {
				return eris.Wrapf(ErrMissingRequired, "%s requires %s on entity %d", typeName(t), typeName(req), e.id)
			}
		}
	}

	assign, err := e.resolveDependencies(c)
	if err != nil {
		return eris.Wrapf(err, "add %s to entity %d", typeName(t), e.id)
	}

	e.attach(t, c, assign)
	return nil
}

// AddComponents adds each component in order and stops at the first failure.
func (e *Entity) AddComponents(components ...Component) error {
	for _, c := range components {
		if err := e.AddComponent(c); err != nil {
			return err
		}
	}
	return nil
}

func (e *Entity) resolveDependencies(c Component) ([]func(), error) {
	holder, ok := c.(DependencyHolder)
	if !ok {
		return nil, nil
	}

	var assign []func()
	for _, dep := range holder.Dependencies() {
		match, found := e.components[dep.typ]
		if !found {
			for _, candidate := range e.order {
				if dep.accepts(candidate) {
					match, found = candidate, true
					break
				}
			}
		}

		if !found {
			if dep.required {
				return nil, eris.Wrapf(ErrDependencyUnresolved, "%s", dep.typ.String())
			}
			continue
		}

		assign = append(assign, func() { dep.assign(match) })
	}
	return assign, nil
}

func (e *Entity) attach(t reflect.Type, c Component, assign []func()) {
	e.components[t] = c
	e.order = append(e.order, c)
	c.base().entity = weak.Make(e)

	for _, fn := range assign {
		fn()
	}

	c.OnAdded()
	for _, l := range e.listeners {
		l.OnAdded(c)
	}
}

// hasType reports whether a component of type t is present. Interface types
// match any component implementing them.
func (e *Entity) hasType(t reflect.Type) bool {
	if _, ok := e.components[t]; ok {
		return true
	}
	if t.Kind() != reflect.Interface {
		return false
	}
	for _, c := range e.order {
		if reflect.TypeOf(c).Implements(t) {
			return true
		}
	}
	return false
}

// RemoveComponent detaches the component of type t. It returns false when
// no such component is present. Core components, components another present
// component requires, and removal during the entity's own update fail.
func (e *Entity) RemoveComponent(t reflect.Type) (bool, error) {
	e.init()

	c, ok := e.components[t]
	if !ok {
		return false, nil
	}
	if isCore(c) {
		return false, eris.Wrapf(ErrCoreComponent, "remove %s from entity %d", typeName(t), e.id)
	}
	if e.updating {
		return false, eris.Wrapf(ErrUpdating, "remove %s from entity %d", typeName(t), e.id)
	}
	if dependant := e.requiredBy(t, c); dependant != nil {
		return false, eris.Wrapf(ErrRequiredByOther, "%s requires %s on entity %d",
			typeName(reflect.TypeOf(dependant)), typeName(t), e.id)
	}

	e.detach(t, c)
	return true, nil
}

func (e *Entity) requiredBy(t reflect.Type, removed Component) Component {
	for _, other := range e.order {
		if other == removed {
			continue
		}
		r, ok := other.(Requirer)
		if !ok {
			continue
		}
		for _, req := range r.RequiredComponents() {
			if req == t {
				return other
			}
			if req.Kind() == reflect.Interface && t.Implements(req) && !e.hasOtherImplementing(req, removed) {
				return other
			}
		}
	}
	return nil
}

func (e *Entity) hasOtherImplementing(iface reflect.Type, except Component) bool {
	for _, c := range e.order {
		if c != except && reflect.TypeOf(c).Implements(iface) {
			return true
		}
	}
	return false
}

func (e *Entity) detach(t reflect.Type, c Component) {
	delete(e.components, t)
	e.order = slices.DeleteFunc(e.order, func(other Component) bool { return other == c })

	c.OnRemoved()
	for _, l := range e.listeners {
		l.OnRemoved(c)
	}
	c.base().entity = weak.Pointer[Entity]{}
}

// Component returns the component stored under t.
func (e *Entity) Component(t reflect.Type) (Component, error) {
	c, ok := e.ComponentOptional(t)
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotFound, "%s on entity %d", t.String(), e.id)
	}
	return c, nil
}

// ComponentOptional returns the component of type t, if attached.
func (e *Entity) ComponentOptional(t reflect.Type) (Component, bool) {
	e.init()
	c, ok := e.components[t]
	return c, ok
}

func (e *Entity) HasComponent(t reflect.Type) bool {
	_, ok := e.ComponentOptional(t)
	return ok
}

// Components returns the attached components in insertion order.
func (e *Entity) Components() []Component {
	e.init()
	return slices.Clone(e.order)
}

// ComponentTypes lists the attached component types in insertion order.
func (e *Entity) ComponentTypes() []reflect.Type {
	e.init()
	types := make([]reflect.Type, len(e.order))
	for i, c := range e.order {
		types[i] = reflect.TypeOf(c)
	}
	return types
}

// Get returns the component of type T.
func Get[T Component](e *Entity) (T, error) {
	c, err := e.Component(TypeOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return c.(T), nil
}

// Lookup returns the component of type T if present.
func Lookup[T Component](e *Entity) (T, bool) {
	c, ok := e.ComponentOptional(TypeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return c.(T), true
}

// Has reports whether a component of type T is attached.
func Has[T Component](e *Entity) bool {
	return e.HasComponent(TypeOf[T]())
}

// Remove detaches the component of type T.
func Remove[T Component](e *Entity) (bool, error) {
	return e.RemoveComponent(TypeOf[T]())
}

// Update runs OnUpdate on every unpaused component in insertion order.
// Adding or removing components from inside the loop fails with ErrUpdating.
func (e *Entity) Update(tpf float64) {
	e.init()
	if !e.updateEnabled {
		return
	}

	e.updating = true
	defer func() { e.updating = false }()

	for _, c := range e.order {
		if !c.IsPaused() {
			c.OnUpdate(tpf)
		}
	}
}

func (e *Entity) activate(w *GameWorld) {
	e.world = weak.Make(w)
	e.state = Active

	callbacks := e.onActive
	e.onActive = nil
	for _, fn := range callbacks {
		fn()
	}
	for _, fn := range e.activeObservers {
		fn(true)
	}
}

func (e *Entity) markForRemoval() {
	e.state = PendingRemoval

	callbacks := e.onNotActive
	e.onNotActive = nil
	for _, fn := range callbacks {
		fn()
	}
	for _, fn := range e.activeObservers {
		fn(false)
	}
}

// clean detaches every component, newest first, unless the entity is reusable.
func (e *Entity) clean() {
	if !e.reusable {
		for i := len(e.order) - 1; i >= 0; i-- {
			c := e.order[i]
			e.detach(reflect.TypeOf(c), c)
		}
		e.listeners = nil
		e.properties.Clear()
		e.activeObservers = nil
	}

	e.onActive = nil
	e.onNotActive = nil
	e.world = weak.Pointer[GameWorld]{}
	e.state = Cleaned
}

// Copy returns a new detached entity with the same core state and a clone of
// every Copyable component. Other components are not transferred.
func (e *Entity) Copy() (*Entity, error) {
	e.init()

	cp := NewEntity()
	cp.typ.value = e.typ.value
	cp.transform.copyFrom(e.transform)
	cp.bbox.copyFrom(e.bbox)
	cp.view.copyFrom(e.view)
	cp.properties.Merge(&e.properties)
	cp.updateEnabled = e.updateEnabled
	cp.neverUpdated = e.neverUpdated
	cp.reusable = e.reusable

	for _, c := range e.order {
		if isCore(c) {
			continue
		}
		copyable, ok := c.(Copyable)
		if !ok {
			continue
		}
		if err := cp.AddComponent(copyable.Copy()); err != nil {
			return nil, eris.Wrapf(err, "copy entity %d", e.id)
		}
	}
	return cp, nil
}

// Save writes every Serializable component into its own nested bundle, keyed
// by the component's package path and type name.
func (e *Entity) Save(b *Bundle) {
	e.init()
	for _, c := range e.order {
		s, ok := c.(Serializable)
		if !ok {
			continue
		}
		sub := NewBundle(bundleKey(reflect.TypeOf(c)))
		s.Write(sub)
		b.PutBundle(sub)
	}
}

// Load reads every Serializable component from b. Components without a
// matching key are left untouched.
func (e *Entity) Load(b *Bundle) {
	e.init()
	for _, c := range e.order {
		s, ok := c.(Serializable)
		if !ok {
			continue
		}
		if sub, ok := b.Bundle(bundleKey(reflect.TypeOf(c))); ok {
			s.Read(sub)
		}
	}
}

func (e *Entity) String() string {
	e.init()
	names := make([]string, len(e.order))
	for i, c := range e.order {
		names[i] = typeName(reflect.TypeOf(c))
	}
	return fmt.Sprintf("Entity(%d, type=%v, %s, [%s])", e.id, e.typ.Value(), e.transform.Position(), strings.Join(names, ", "))
}
