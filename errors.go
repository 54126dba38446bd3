package uzu

import "errors"

var (
	// ErrPoolExhausted is returned by Spawn when no entity is available and
	// the pool is not allowed to grow.
	ErrPoolExhausted = errors.New("uzu: pool capacity reached")

	// ErrForeignEntity is returned when an entity is handed to a pool it does
	// not belong to.
	ErrForeignEntity = errors.New("uzu: entity does not belong to this pool")

	// ErrOwnerAlreadySet is returned when assigning an owner pool to an entity
	// that already has one. The first assignment stays in effect.
	ErrOwnerAlreadySet = errors.New("uzu: entity already belongs to a pool")

	// ErrInvalidOwner is returned when assigning a nil owner pool.
	ErrInvalidOwner = errors.New("uzu: invalid owner pool")

	// ErrNoOwner is returned by Entity.Unspawn for entities with no pool.
	ErrNoOwner = errors.New("uzu: entity has no owner pool")

	// ErrMissingInstance is returned when a prefab fails to produce a value.
	ErrMissingInstance = errors.New("uzu: prefab produced no instance")

	// ErrSingletonSet is returned when setting a singleton that already holds
	// an instance.
	ErrSingletonSet = errors.New("uzu: singleton instance already set")

	// ErrNoReceiver is returned by Messenger.Send when a message that requires
	// a receiver had no subscribers.
	ErrNoReceiver = errors.New("uzu: message requires a receiver")
)
