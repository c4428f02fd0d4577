package request

import (
	"fmt"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// Status represents the lifecycle state of a transport request.
// It implements a state machine with defined transitions so requests follow
// the dispatch workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Arrived ──> Completed
//	   │            │
//	   │            └──(reject clears the bound driver; status stays Pending)
//	   └──> Cancelled
//
// Pending is the initial state; Completed and Cancelled are terminal.
// A Pending request may already hold a tentatively bound driver who has not
// accepted yet; that sub-state is visible through Request.IsTentativelyAssigned.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a newly created request.
	// A pending request may carry a tentatively bound driver awaiting acceptance.
	StatusPending

	// StatusAccepted indicates the bound driver has committed to the request.
	StatusAccepted

	// StatusArrived indicates the driver has reached the pickup location.
	StatusArrived

	// StatusCompleted indicates the transport finished. Terminal.
	StatusCompleted

	// StatusCancelled indicates the requester withdrew the request before
	// acceptance. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusArrived:   "arrived",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusArrived:   "arrived",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for anything outside the known lifecycle values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid request status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case name of the status as persisted in storage.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ValidateCanHaveDriver validates the consistency between request status and
// driver binding. A driver may be bound while Pending (tentative binding),
// Accepted, or Arrived; terminal states must have the binding cleared.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()))
	}
	return nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Any other current status yields a ConflictError carrying that status.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewConflictError("accept", s.String())
	}
	return StatusAccepted, nil
}

// Arrive transitions the status to Arrived.
//
// Valid transitions:
//   - Accepted -> Arrived
//
// Any other current status yields a ConflictError carrying that status.
func (s Status) Arrive() (Status, error) {
	if s != StatusAccepted {
		return 0, errs.NewConflictError("arrive", s.String())
	}
	return StatusArrived, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Arrived -> Completed
//
// Skipping Arrived is a conflict: a driver cannot complete a request they
// have not arrived at.
func (s Status) Complete() (Status, error) {
	if s != StatusArrived {
		return 0, errs.NewConflictError("complete", s.String())
	}
	return StatusCompleted, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Once a driver has accepted, the request can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewConflictError("cancel", s.String())
	}
	return StatusCancelled, nil
}
