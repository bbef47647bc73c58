/*
errors.go - Centralized error types for the leave engine

PURPOSE:
  All engine error types in one place. Callers integrating the engine
  should branch with errors.Is / errors.As, never on message text.

ERROR CATEGORIES:
  1. Entitlement errors - the request cannot yield a working-day count.
     These indicate an integration bug: a caller that ran validation
     first never sees them.
  2. Validation messages - human-readable strings collected by
     ValidateRequest; they are data, not error values.

USAGE:
    if errors.Is(err, leave.ErrMissingParameter) {
        // request lacked grade tier / explicit days
    }
*/
package leave

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRequest is returned for an unknown leave kind.
	ErrInvalidRequest = errors.New("invalid leave request")

	// ErrMissingParameter is returned when a kind-specific parameter
	// (grade tier, explicit day count) is absent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrNonPositiveEntitlement is returned when the resolved
	// entitlement is below one working day. Validation rejects such
	// requests upstream; this guards the simulator's loop invariant.
	ErrNonPositiveEntitlement = errors.New("entitlement must be at least one working day")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// MissingParameterError identifies which parameter a request lacked.
type MissingParameterError struct {
	Kind      Kind
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s leave requires %s", e.Kind, e.Parameter)
}

func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }

// UnknownKindError identifies an unrecognized leave kind.
type UnknownKindError struct {
	Kind Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown leave kind %q", string(e.Kind))
}

func (e *UnknownKindError) Unwrap() error { return ErrInvalidRequest }

// IsClientError reports whether the error is due to invalid caller
// input rather than an engine fault.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrMissingParameter) ||
		errors.Is(err, ErrNonPositiveEntitlement)
}
