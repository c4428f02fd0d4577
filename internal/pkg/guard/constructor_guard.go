// Package guard implements the constructor-guard pattern used by commands and
// domain objects to detect zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures value objects
// and entities are only created through their designated constructor functions.
// A zero-value struct embedding a guard fails Validate; a struct built through
// its constructor (which calls NewConstructorGuard) passes.
//
// Example usage:
//
//	var ErrActorNotConstructed = errors.New("Actor must be created via NewActor")
//
//	type Actor struct {
//	    kind  ActorKind
//	    id    int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewActor(kind ActorKind, id int64) (Actor, error) {
//	    if err := kind.Validate(); err != nil {
//	        return Actor{}, err
//	    }
//	    return Actor{kind: kind, id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (a Actor) Validate() error {
//	    return a.guard.Validate(ErrActorNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for constructed objects, validationError for
// zero values, and ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
