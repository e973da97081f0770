package ecs

// EntityPool keeps entities for reuse, first in first out per tag. It never
// evicts; callers decide what to put and when to take.
type EntityPool struct {
	queues map[string][]*Entity
}

// NewEntityPool returns an empty pool.
func NewEntityPool() *EntityPool {
	return &EntityPool{queues: make(map[string][]*Entity)}
}

// Put stores e under tag for a later Take.
func (p *EntityPool) Put(tag string, e *Entity) {
	p.queues[tag] = append(p.queues[tag], e)
}

// Take returns the oldest entity queued under tag.
func (p *EntityPool) Take(tag string) (*Entity, bool) {
	q := p.queues[tag]
	if len(q) == 0 {
		return nil, false
	}
	e := q[0]
	q[0] = nil
	if len(q) == 1 {
		delete(p.queues, tag)
	} else {
		p.queues[tag] = q[1:]
	}
	return e, true
}

// Size is the number of entities stored under tag.
func (p *EntityPool) Size(tag string) int {
	return len(p.queues[tag])
}

// Clear drops every pooled entity.
func (p *EntityPool) Clear() {
	clear(p.queues)
}
