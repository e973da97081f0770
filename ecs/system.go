package ecs

// System is a world-level behaviour the Scheduler runs once per frame,
// before the world updates its entities. Systems may hold Query and
// Singleton fields; the Scheduler initializes them on registration and
// refreshes queries at the start of every frame.
type System interface {
	Execute(frame *UpdateFrame)
}
