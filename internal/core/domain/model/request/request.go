package request

import (
	"errors"
	"fmt"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest. This ensures all requests
	// are properly validated.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

	// ErrIDAlreadyAssigned is returned when SetID is called on a request that
	// already carries a storage identity.
	ErrIDAlreadyAssigned = errors.New("request id is already assigned")
)

// Request represents a single transport task from creation to terminal state.
// It is the aggregate root that owns the lifecycle status, the driver binding
// and the vehicle binding.
//
// Request maintains these invariants:
//   - status transitions follow the state machine defined on Status
//   - a driver may be bound while pending (tentative binding), accepted or
//     arrived; terminal states never carry a binding
//   - a scheduled request carries a scheduled time strictly in the future at
//     creation
//   - instances are only created through NewRequest or RestoreRequest
//
// Transitions never consult state read outside the aggregate: the caller is
// expected to have loaded the request under an exclusive row lock inside an
// open unit of work before invoking any mutating method.
type Request struct {
	// id is the storage-assigned identity; zero until first persisted
	id int64

	// requesterID identifies the requester who created the request
	requesterID int64

	// driverID is the bound driver (nil if unbound)
	driverID *int64

	// vehicleID is the vehicle servicing the request, copied from the driver
	// at acceptance (nil before acceptance)
	vehicleID *int64

	// kind distinguishes emergency from scheduled transport
	kind Kind

	// status is the current lifecycle state
	status Status

	// pickup is the validated pickup location
	pickup kernel.Location

	// scheduledTime is the booked time for scheduled requests (nil for emergency)
	scheduledTime *time.Time

	// isConstructed ensures the request was created via a constructor
	isConstructed bool
}

// NewRequest creates a pending Request with no driver bound.
//
// Validation rules:
//   - requesterID must be positive
//   - kind must be a valid Kind
//   - pickup must be a constructed Location
//   - kind == KindScheduled requires a scheduledTime strictly in the future;
//     these checks run upstream at the boundary as well, but are re-applied
//     here so the aggregate can never be built in an invalid shape
//
// Example:
//
//	pickup, _ := kernel.NewLocation(10.0, 20.0)
//	req, err := request.NewRequest(1, request.KindEmergency, pickup, nil)
//	if err != nil {
//	    // handle validation error
//	}
func NewRequest(requesterID int64, kind Kind, pickup kernel.Location, scheduledTime *time.Time) (*Request, error) {
	r := &Request{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setRequesterID(requesterID),
		r.setKind(kind),
		r.setPickup(pickup),
	); err != nil {
		return nil, err
	}

	if err := r.setScheduledTime(scheduledTime); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a Request from persisted state.
// It re-validates structural consistency (valid status/kind, binding allowed
// for the status) but does not re-check the scheduled time against the clock:
// a scheduled request legitimately outlives its booked time.
func RestoreRequest(
	id int64,
	requesterID int64,
	driverID *int64,
	vehicleID *int64,
	kind Kind,
	status Status,
	pickup kernel.Location,
	scheduledTime *time.Time,
) (*Request, error) {
	r := &Request{
		id:            id,
		driverID:      driverID,
		vehicleID:     vehicleID,
		scheduledTime: scheduledTime,
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setRequesterID(requesterID),
		r.setKind(kind),
		r.setPickup(pickup),
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by their storage identity.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id != 0 && r.id == other.id
}

// ID returns the storage-assigned identity; zero for an unpersisted request.
func (r *Request) ID() int64 {
	return r.id
}

// SetID records the storage-assigned identity after the first insert.
// It can only be called once, on a request that has never been persisted.
func (r *Request) SetID(id int64) error {
	if r.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid request id", id))
	}
	r.id = id
	return nil
}

// RequesterID returns the identity of the requester who created the request.
func (r *Request) RequesterID() int64 {
	return r.requesterID
}

// Driver returns the bound driver's id, or nil if no driver is bound.
func (r *Request) Driver() *int64 {
	return r.driverID
}

// Vehicle returns the bound vehicle's id, or nil before acceptance.
func (r *Request) Vehicle() *int64 {
	return r.vehicleID
}

// Kind returns the request kind.
func (r *Request) Kind() Kind {
	return r.kind
}

// Status returns the current lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// Pickup returns the pickup location.
func (r *Request) Pickup() kernel.Location {
	return r.pickup
}

// ScheduledTime returns the booked time for scheduled requests, nil otherwise.
func (r *Request) ScheduledTime() *time.Time {
	return r.scheduledTime
}

// IsBoundTo reports whether the given driver is the one bound to the request.
func (r *Request) IsBoundTo(driverID int64) bool {
	return r.driverID != nil && *r.driverID == driverID
}

// IsTentativelyAssigned reports whether the request holds a driver binding
// that has not been accepted yet: driver set while status is still pending.
func (r *Request) IsTentativelyAssigned() bool {
	return r.status == StatusPending && r.driverID != nil
}

// AssignDriver tentatively binds a driver to a pending request.
// The status stays pending and the driver's availability is untouched;
// the binding only becomes firm when the driver accepts.
//
// Returns a ConflictError if the request is not pending or already holds a
// binding.
func (r *Request) AssignDriver(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driverID",
			fmt.Errorf("%d is not a valid driver id", driverID))
	}
	if r.status != StatusPending {
		return errs.NewConflictError("assign", r.status.String())
	}
	if r.driverID != nil {
		return errs.NewConflictErrorWithCause("assign", r.status.String(),
			fmt.Errorf("driver %d is already bound", *r.driverID))
	}

	r.driverID = &driverID
	return nil
}

// Accept transitions the request to accepted and records the vehicle the
// driver brings along. The request must be pending with a driver bound.
func (r *Request) Accept(vehicleID *int64) error {
	if r.driverID == nil {
		return errs.NewConflictErrorWithCause("accept", r.status.String(),
			errors.New("no driver is bound"))
	}

	newStatus, err := r.status.Accept()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.vehicleID = vehicleID
	return nil
}

// Reject clears the tentative driver binding. The request stays pending so
// the assignment engine can offer it to another driver.
func (r *Request) Reject() error {
	if r.driverID == nil {
		return errs.NewConflictErrorWithCause("reject", r.status.String(),
			errors.New("no driver is bound"))
	}
	if r.status != StatusPending {
		return errs.NewConflictError("reject", r.status.String())
	}

	r.driverID = nil
	return nil
}

// MarkArrived transitions the request to arrived. The request must be accepted.
func (r *Request) MarkArrived() error {
	newStatus, err := r.status.Arrive()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Complete transitions the request to completed and clears the driver binding.
// The vehicle binding is kept as a record of which vehicle served the request.
func (r *Request) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.driverID = nil
	return nil
}

// Cancel transitions a pending request to cancelled, dropping any tentative
// driver binding.
func (r *Request) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.driverID = nil
	return nil
}

func (r *Request) setRequesterID(requesterID int64) error {
	if requesterID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requesterID",
			fmt.Errorf("%d is not a valid requester id", requesterID))
	}
	r.requesterID = requesterID
	return nil
}

func (r *Request) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *Request) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	r.pickup = pickup
	return nil
}

func (r *Request) setScheduledTime(scheduledTime *time.Time) error {
	if r.kind == KindScheduled {
		if scheduledTime == nil {
			return errs.NewValueIsRequiredError("scheduledTime")
		}
		if !scheduledTime.After(time.Now()) {
			return errs.NewValueIsInvalidErrorWithCause("scheduledTime",
				errors.New("scheduled time must be in the future"))
		}
	}
	r.scheduledTime = scheduledTime
	return nil
}
