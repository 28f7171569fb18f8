package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ActorClass distinguishes who triggered a state change. The class is recorded
// in every history row so the audit trail shows whether a mutation was
// customer self-service, staff-assisted, or performed by a background process.
type ActorClass int

const (
	// ActorClassUnknown represents an invalid or undefined actor class.
	ActorClassUnknown ActorClass = iota

	// ActorClassCustomer marks a mutation performed by the customer themselves.
	ActorClassCustomer

	// ActorClassStaff marks a mutation performed by a staff member on the
	// customer's behalf.
	ActorClassStaff

	// ActorClassSystem marks a mutation performed by a background job.
	ActorClassSystem
)

// ErrActorIsNotConstructed is returned when using an Actor that was not
// created through NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor constructor")

func getActorClassStrings() map[ActorClass]string {
	return map[ActorClass]string{
		ActorClassUnknown:  "Unknown",
		ActorClassCustomer: "Customer",
		ActorClassStaff:    "Staff",
		ActorClassSystem:   "System",
	}
}

// String returns the human-readable name of the actor class.
func (c ActorClass) String() string {
	if s, ok := getActorClassStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

// ActorClassFromString parses the wire name of an actor class. Unknown is
// not accepted.
func ActorClassFromString(s string) (ActorClass, error) {
	for class, name := range getActorClassStrings() {
		if class != ActorClassUnknown && name == s {
			return class, nil
		}
	}
	return ActorClassUnknown, errs.NewValueIsInvalidErrorWithCause("actor class",
		fmt.Errorf("%q is not a valid actor class", s))
}

// Validate checks that the class is one of the defined values.
func (c ActorClass) Validate() error {
	switch c {
	case ActorClassCustomer, ActorClassStaff, ActorClassSystem:
		return nil
	case ActorClassUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("actor class",
		fmt.Errorf("%d is not a valid actor class", c))
}

// Actor identifies who performed a mutation. It is an immutable value object
// carrying the actor's identity and class; both are written to every
// inventory state history and order status history row.
type Actor struct { //nolint:recvcheck //using for validation
	id    UUID
	class ActorClass

	guard guard.ConstructorGuard
}

// NewActor creates an Actor with a validated identity and class.
func NewActor(id UUID, class ActorClass) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := class.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		class: class,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Class returns the actor's class.
func (a Actor) Class() ActorClass {
	return a.class
}

// IsStaff reports whether the actor is a staff member.
func (a Actor) IsStaff() bool {
	return a.class == ActorClassStaff
}

// String formats the actor for history notes and logs.
func (a Actor) String() string {
	return fmt.Sprintf("%s(%s)", a.class, a.id)
}
