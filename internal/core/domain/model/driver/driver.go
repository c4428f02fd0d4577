package driver

import (
	"errors"
	"fmt"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

	// ErrIDAlreadyAssigned is returned when SetID is called on a driver that
	// already carries a storage identity.
	ErrIDAlreadyAssigned = errors.New("driver id is already assigned")
)

// Driver represents an individual capable of servicing one request at a time.
// The aggregate owns the availability status, the optional vehicle the driver
// operates, and the last reported position.
//
// Invariant maintained together with the Request aggregate: a driver is busy
// iff they are bound to a request in the accepted or arrived stage. The
// Transition Engine mutates both sides inside one unit of work, always
// locking the request row before the driver row.
type Driver struct {
	// id is the storage-assigned identity; zero until first persisted
	id int64

	// status is the current availability state
	status Status

	// vehicleID is the vehicle the driver operates (nil if none assigned)
	vehicleID *int64

	// lastLocation is the last reported position (nil until first report)
	lastLocation *kernel.Location

	// lastLocationAt is when the last position was reported
	lastLocationAt *time.Time

	// isConstructed ensures the driver was created via a constructor
	isConstructed bool
}

// NewDriver creates a Driver that starts offline, matching the onboarding
// flow where a driver must explicitly go available before receiving work.
func NewDriver(vehicleID *int64) (*Driver, error) {
	d := &Driver{
		status:        StatusOffline,
		isConstructed: true,
	}

	if err := d.setVehicleID(vehicleID); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persisted state.
func RestoreDriver(
	id int64,
	status Status,
	vehicleID *int64,
	lastLocation *kernel.Location,
	lastLocationAt *time.Time,
) (*Driver, error) {
	d := &Driver{
		id:             id,
		lastLocation:   lastLocation,
		lastLocationAt: lastLocationAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		status.Validate(),
		d.setVehicleID(vehicleID),
	); err != nil {
		return nil, err
	}
	if lastLocation != nil {
		if err := lastLocation.Validate(); err != nil {
			return nil, err
		}
	}

	d.status = status
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their storage identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id != 0 && d.id == other.id
}

// ID returns the storage-assigned identity; zero for an unpersisted driver.
func (d *Driver) ID() int64 {
	return d.id
}

// SetID records the storage-assigned identity after the first insert.
func (d *Driver) SetID(id int64) error {
	if d.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid driver id", id))
	}
	d.id = id
	return nil
}

// Status returns the current availability status.
func (d *Driver) Status() Status {
	return d.status
}

// Vehicle returns the id of the vehicle the driver operates, or nil.
func (d *Driver) Vehicle() *int64 {
	return d.vehicleID
}

// LastLocation returns the last reported position, or nil if never reported.
func (d *Driver) LastLocation() *kernel.Location {
	return d.lastLocation
}

// LastLocationAt returns when the last position was reported, or nil.
func (d *Driver) LastLocationAt() *time.Time {
	return d.lastLocationAt
}

// MarkBusy commits the driver to a request. Only an available driver can
// become busy; anything else is a conflict surfaced to the caller.
func (d *Driver) MarkBusy() error {
	if d.status != StatusAvailable {
		return errs.NewConflictError("mark busy", d.status.String())
	}
	d.status = StatusBusy
	return nil
}

// MarkAvailable returns the driver to the assignable pool. The transition is
// idempotent: releasing an already-available driver (a tentative binding
// never flipped the status) is a no-op rather than an error.
func (d *Driver) MarkAvailable() {
	d.status = StatusAvailable
}

// MarkOffline takes the driver off shift. A busy driver must finish or hand
// back their request first.
func (d *Driver) MarkOffline() error {
	if d.status == StatusBusy {
		return errs.NewConflictError("mark offline", d.status.String())
	}
	d.status = StatusOffline
	return nil
}

// ReportLocation records the driver's position at the given time.
func (d *Driver) ReportLocation(location kernel.Location, at time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}

	d.lastLocation = &location
	d.lastLocationAt = &at
	return nil
}

func (d *Driver) setVehicleID(vehicleID *int64) error {
	if vehicleID != nil && *vehicleID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("vehicleID",
			fmt.Errorf("%d is not a valid vehicle id", *vehicleID))
	}
	d.vehicleID = vehicleID
	return nil
}
