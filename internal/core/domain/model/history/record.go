package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// Action labels written for each lifecycle transition. One record per
// state-changing operation, in the same unit of work as the mutation.
const (
	ActionRequestCreated   = "Request Created"
	ActionDriverAssigned   = "Driver Assigned"
	ActionDriverAccepted   = "Driver Accepted"
	ActionDriverRejected   = "Driver Rejected"
	ActionDriverArrived    = "Driver Arrived"
	ActionRequestCompleted = "Request Completed"
	ActionRequestCancelled = "Request Cancelled"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through
// NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// ActorKind tags who performed the recorded action.
type ActorKind int

const (
	// ActorUnknown represents an invalid or undefined actor kind.
	ActorUnknown ActorKind = iota

	// ActorRequester is the person the transport is for.
	ActorRequester

	// ActorDriver is a driver acting on a request bound to them.
	ActorDriver

	// ActorSystem is the assignment engine acting on its own.
	ActorSystem
)

func getActorKindStrings() map[ActorKind]string {
	return map[ActorKind]string{
		ActorRequester: "requester",
		ActorDriver:    "driver",
		ActorSystem:    "system",
	}
}

// ActorKindFromString parses the persisted string form of an actor kind.
func ActorKindFromString(s string) (ActorKind, error) {
	for kind, str := range getActorKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause("actorKind",
		fmt.Errorf("%q is not a valid actor kind", s))
}

// Validate checks if the ActorKind is one of the defined kinds.
func (k ActorKind) Validate() error {
	if _, ok := getActorKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actorKind",
			fmt.Errorf("%d is not a valid actor kind", k))
	}
	return nil
}

// String returns the lower-case name of the actor kind as persisted in storage.
func (k ActorKind) String() string {
	if str, ok := getActorKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Record is one immutable audit entry describing a state change on a request.
// Records are append-only: written atomically with the mutation they describe
// and never updated or deleted afterwards.
type Record struct {
	id            int64
	requestID     int64
	action        string
	actorKind     ActorKind
	actorID       *int64
	createdAt     time.Time
	isConstructed bool
}

// NewRecord creates an audit record for a state change on the given request.
// actorID is nil for system actions.
func NewRecord(requestID int64, action string, actorKind ActorKind, actorID *int64) (*Record, error) {
	r := &Record{
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setRequestID(requestID),
		r.setAction(action),
		r.setActorKind(actorKind),
	); err != nil {
		return nil, err
	}

	r.actorID = actorID
	return r, nil
}

// RestoreRecord reconstructs a Record from persisted state.
func RestoreRecord(
	id int64,
	requestID int64,
	action string,
	actorKind ActorKind,
	actorID *int64,
	createdAt time.Time,
) (*Record, error) {
	r := &Record{
		id:            id,
		actorID:       actorID,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setRequestID(requestID),
		r.setAction(action),
		r.setActorKind(actorKind),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned identity; zero for an unpersisted record.
func (r *Record) ID() int64 {
	return r.id
}

// SetID records the storage-assigned identity after the insert.
func (r *Record) SetID(id int64) error {
	if r.id != 0 {
		return errors.New("record id is already assigned")
	}
	r.id = id
	return nil
}

// RequestID returns the request the record describes.
func (r *Record) RequestID() int64 {
	return r.requestID
}

// Action returns the free-text action label.
func (r *Record) Action() string {
	return r.action
}

// Actor returns who performed the action.
func (r *Record) Actor() ActorKind {
	return r.actorKind
}

// ActorID returns the acting party's id, nil for system actions.
func (r *Record) ActorID() *int64 {
	return r.actorID
}

// CreatedAt returns when the record was written.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record) setRequestID(requestID int64) error {
	if requestID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requestID",
			fmt.Errorf("%d is not a valid request id", requestID))
	}
	r.requestID = requestID
	return nil
}

func (r *Record) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	r.action = action
	return nil
}

func (r *Record) setActorKind(actorKind ActorKind) error {
	if err := actorKind.Validate(); err != nil {
		return err
	}
	r.actorKind = actorKind
	return nil
}
