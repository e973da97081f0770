package ecs

import "fmt"

// IDComponent gives an entity a (name, id) identity that the world indexes
// for EntityByID lookups.
type IDComponent struct {
	ComponentBase
	name string
	id   int
}

// NewIDComponent makes the entity reachable through GameWorld.EntityByID.
func NewIDComponent(name string, id int) *IDComponent {
	return &IDComponent{name: name, id: id}
}

func (c *IDComponent) Name() string { return c.name }
func (c *IDComponent) ID() int      { return c.id }

func (c *IDComponent) OnAdded() {
	if e := c.Entity(); e != nil && e.IsActive() {
		if w := e.World(); w != nil {
			w.ids.add(e, c)
		}
	}
}

func (c *IDComponent) OnRemoved() {
	if e := c.Entity(); e != nil {
		if w := e.World(); w != nil {
			w.ids.remove(e, c)
		}
	}
}

func (c *IDComponent) String() string {
	return fmt.Sprintf("%s(%d)", c.name, c.id)
}

func (c *IDComponent) Write(b *Bundle) {
	b.Set("name", c.name)
	b.Set("id", c.id)
}

func (c *IDComponent) Read(b *Bundle) {
	// the world index is keyed by name and id
	c.OnRemoved()
	if v, ok := b.Str("name"); ok {
		c.name = v
	}
	if v, ok := b.Int("id"); ok {
		c.id = v
	}
	c.OnAdded()
}

// IrremovableComponent keeps an entity alive through RemoveEntity and
// SetLevel. Only Clear removes it.
type IrremovableComponent struct {
	ComponentBase
}

func (c *IrremovableComponent) Copy() Component {
	return &IrremovableComponent{}
}

// TimeComponent scales the frame time an entity receives. 0.5 runs the
// entity at half speed.
type TimeComponent struct {
	ComponentBase
	Value float64
}

func NewTimeComponent(value float64) *TimeComponent {
	return &TimeComponent{Value: value}
}

func (c *TimeComponent) Copy() Component {
	return &TimeComponent{Value: c.Value}
}

func (c *TimeComponent) Write(b *Bundle) {
	b.Set("value", c.Value)
}

func (c *TimeComponent) Read(b *Bundle) {
	if v, ok := b.Float64("value"); ok {
		c.Value = v
	}
}
