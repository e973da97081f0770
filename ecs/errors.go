package ecs

import "github.com/rotisserie/eris"

// Structural errors. They are returned wrapped with the entity and component
// involved; match them with errors.Is.
var (
	ErrNilComponent         = eris.New("component is nil")
	ErrAnonymousComponent   = eris.New("component type must be a named type")
	ErrComponentExists      = eris.New("component of this type already present")
	ErrComponentNotFound    = eris.New("component not found")
	ErrMissingRequired      = eris.New("required component missing")
	ErrRequiredByOther      = eris.New("component is required by another component")
	ErrCoreComponent        = eris.New("core components cannot be removed")
	ErrUpdating             = eris.New("cannot modify components while the entity is updating")
	ErrDependencyUnresolved = eris.New("required dependency could not be resolved")

	ErrAlreadyAttached = eris.New("entity already attached to a world")
	ErrNotInWorld      = eris.New("entity is not attached to this world")
	ErrDuplicateSpawn  = eris.New("spawn name already registered")
	ErrNoFactory       = eris.New("no entity factory registered")
	ErrUnknownSpawn    = eris.New("no factory can spawn this name")
	ErrNoSuchEntity    = eris.New("no entity matches")
)
