package driver

import (
	"fmt"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// Status represents a driver's operational availability.
//
// available — on shift with no committed request; eligible for selection by
// the assignment engine (a tentative binding does not change the status).
// busy — committed to a request in the accepted or arrived stage.
// offline — off shift; never selected.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable marks a driver as eligible for assignment.
	StatusAvailable

	// StatusBusy marks a driver as committed to an active request.
	StatusBusy

	// StatusOffline marks a driver as off shift.
	StatusOffline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusAvailable: "available",
		StatusBusy:      "busy",
		StatusOffline:   "offline",
	}
}

// StatusFromString parses the persisted string form of a driver status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks if the Status value is one of the defined availability states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case name of the status as persisted in storage.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
