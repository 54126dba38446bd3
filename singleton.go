package uzu

import (
	"reflect"

	"go.uber.org/zap"
)

// Singleton holds at most one instance of T. Setting a new instance while one
// is held is reported and rejected; clear it with Set(nil) first.
type Singleton[T any] struct {
	instance *T
}

// Get returns the held instance, or nil.
func (s *Singleton[T]) Get() *T { return s.instance }

// Set stores v. It fails with ErrSingletonSet when both the held instance and
// v are non-nil.
func (s *Singleton[T]) Set(v *T) error {
	if s.instance != nil && v != nil {
		logger.Error("singleton instance is already set",
			zap.Stringer("type", reflect.TypeFor[T]()))
		return ErrSingletonSet
	}
	s.instance = v
	return nil
}
