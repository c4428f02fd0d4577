package commands

import (
	"errors"
	"fmt"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// ActorKind tags the resolved caller identity with its role.
type ActorKind int

const (
	// ActorKindUnknown represents an invalid or undefined actor kind.
	ActorKindUnknown ActorKind = iota

	// ActorKindRequester is a person requesting transport.
	ActorKindRequester

	// ActorKindDriver is a driver servicing requests.
	ActorKindDriver
)

func getActorKindStrings() map[ActorKind]string {
	return map[ActorKind]string{
		ActorKindRequester: "requester",
		ActorKindDriver:    "driver",
	}
}

// ActorKindFromString parses a role tag supplied by the identity layer.
func ActorKindFromString(s string) (ActorKind, error) {
	for kind, str := range getActorKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return ActorKindUnknown, errs.NewValueIsInvalidErrorWithCause("actorKind",
		fmt.Errorf("%q is not a valid actor kind", s))
}

// Validate checks if the ActorKind is one of the defined roles.
func (k ActorKind) Validate() error {
	if _, ok := getActorKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actorKind",
			fmt.Errorf("%d is not a valid actor kind", k))
	}
	return nil
}

// String returns the lower-case role tag.
func (k ActorKind) String() string {
	if str, ok := getActorKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Actor is the resolved, already-authenticated caller identity: a role tag
// plus a numeric id. The core never authenticates; it only performs role and
// ownership checks against this value. Each operation's preconditions check
// the tag explicitly rather than dispatching on a subtype.
type Actor struct {
	kind ActorKind
	id   int64

	guard guard.ConstructorGuard
}

// NewActor creates an Actor from an identity resolved upstream.
func NewActor(kind ActorKind, id int64) (Actor, error) {
	if err := kind.Validate(); err != nil {
		return Actor{}, err
	}
	if id <= 0 {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause("actorID",
			fmt.Errorf("%d is not a valid actor id", id))
	}

	return Actor{
		kind:  kind,
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// Kind returns the actor's role tag.
func (a Actor) Kind() ActorKind {
	return a.kind
}

// ID returns the actor's numeric identity.
func (a Actor) ID() int64 {
	return a.id
}

// IsDriver reports whether the actor carries the driver role.
func (a Actor) IsDriver() bool {
	return a.kind == ActorKindDriver
}

// IsRequester reports whether the actor carries the requester role.
func (a Actor) IsRequester() bool {
	return a.kind == ActorKindRequester
}
