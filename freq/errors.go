package freq

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is returned for unrecognized algorithm or policy
	// selectors. It is always raised before any work starts.
	ErrConfiguration = errors.New("configuration error")

	// ErrCapacity is returned when the input holds more numbers than the
	// configured maximum.
	ErrCapacity = errors.New("capacity exceeded")
)

// UnknownPolicyError reports an unrecognized ordering policy selector.
//
// errors.Is(err, ErrConfiguration) holds for it.
type UnknownPolicyError struct {
	Name string
}

func (e *UnknownPolicyError) Error() string {
	return fmt.Sprintf("unknown sort key %q (want one of %s)", e.Name, strings.Join(Policies(), ", "))
}

func (e *UnknownPolicyError) Unwrap() error { return ErrConfiguration }

// CapacityError reports an input that exceeds the configured maximum count.
//
// errors.Is(err, ErrCapacity) holds for it.
type CapacityError struct {
	Count int
	Max   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("too many numbers: got %d, maximum is %d", e.Count, e.Max)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// CheckCapacity returns a *CapacityError if count exceeds max.
// A max <= 0 means unbounded.
func CheckCapacity(count, max int) error {
	if max > 0 && count > max {
		return &CapacityError{Count: count, Max: max}
	}
	return nil
}
