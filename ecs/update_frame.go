package ecs

// UpdateFrame is handed to every System during Scheduler.Once.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *GameWorld
}

func newUpdateFrame(dt float64, world *GameWorld, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		World:     world,
	}
}
