package request

import (
	"fmt"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// Kind classifies a transport request as immediate or scheduled.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindEmergency is an immediate transport request dispatched as soon as
	// a driver is available.
	KindEmergency

	// KindScheduled is a transport request booked for a future point in time.
	// Scheduled requests must carry a scheduled time strictly in the future.
	KindScheduled
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindEmergency: "emergency",
		KindScheduled: "scheduled",
	}
}

// KindFromString parses the persisted string form of a request kind.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a valid request kind", s))
}

// Validate checks if the Kind value is one of the defined kinds.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the lower-case name of the kind as persisted in storage.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
