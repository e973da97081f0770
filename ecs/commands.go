package ecs

import (
	"errors"
	"reflect"
)

// Commands buffers world mutations requested by systems. The Scheduler
// flushes the buffer after the world has updated its entities.
type Commands struct {
	spawns  []spawnCommand
	adds    []*Entity
	deletes []*Entity
	attach  []addComponentCommand
	detach  []removeComponentCommand
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	name string
	data *SpawnData
}

type addComponentCommand struct {
	entity    *Entity
	component Component
}

type removeComponentCommand struct {
	entity   *Entity
	compType reflect.Type
}

// Defer queues fn to run after every other command.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues GameWorld.Spawn.
func (c *Commands) Spawn(name string, data *SpawnData) {
	c.spawns = append(c.spawns, spawnCommand{name: name, data: data})
}

// Add queues GameWorld.AddEntity.
func (c *Commands) Add(e *Entity) {
	c.adds = append(c.adds, e)
}

// Delete queues GameWorld.RemoveEntity.
func (c *Commands) Delete(e *Entity) {
	c.deletes = append(c.deletes, e)
}

func (c *Commands) AddComponent(e *Entity, component Component) {
	c.attach = append(c.attach, addComponentCommand{entity: e, component: component})
}

func (c *Commands) RemoveComponent(e *Entity, compType reflect.Type) {
	c.detach = append(c.detach, removeComponentCommand{entity: e, compType: compType})
}

// Len is the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.adds) + len(c.deletes) + len(c.attach) + len(c.detach) + len(c.defers)
}

// Flush applies the queued commands to world and resets the buffer.
// Component changes on entities deleted in the same flush are skipped.
// Every failure is collected into the returned error.
func (c *Commands) Flush(world *GameWorld) error {
	var errs []error
	deleted := make(map[*Entity]bool, len(c.deletes))

	for _, e := range c.deletes {
		if err := world.RemoveEntity(e); err != nil {
			errs = append(errs, err)
		}
		deleted[e] = true
	}

	for _, cmd := range c.detach {
		if deleted[cmd.entity] {
			continue
		}
		if _, err := cmd.entity.RemoveComponent(cmd.compType); err != nil {
			errs = append(errs, err)
		}
	}

	for _, cmd := range c.attach {
		if deleted[cmd.entity] {
			continue
		}
		if err := cmd.entity.AddComponent(cmd.component); err != nil {
			errs = append(errs, err)
		}
	}

	for _, e := range c.adds {
		if err := world.AddEntity(e); err != nil {
			errs = append(errs, err)
		}
	}

	for _, cmd := range c.spawns {
		if _, err := world.Spawn(cmd.name, cmd.data); err != nil {
			errs = append(errs, err)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.spawns)
	clear(c.adds)
	clear(c.deletes)
	clear(c.attach)
	clear(c.detach)
	clear(c.defers)
	c.spawns = c.spawns[:0]
	c.adds = c.adds[:0]
	c.deletes = c.deletes[:0]
	c.attach = c.attach[:0]
	c.detach = c.detach[:0]
	c.defers = c.defers[:0]

	return errors.Join(errs...)
}
