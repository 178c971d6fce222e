package gatekit

import (
	"errors"
	"fmt"
)

// Sentinel errors for GateKit verdicts.
var (
	// ErrUnauthorized is returned when no valid identity is present
	// (the anonymous sentinel tried to perform a restricted action).
	ErrUnauthorized = errors.New("gatekit: unauthorized")

	// ErrForbidden is returned when an identified principal lacks the
	// rights or the quota headroom for an action.
	ErrForbidden = errors.New("gatekit: forbidden")

	// ErrNotFound is returned when a record needed to evaluate a verdict
	// (organization config, resource row) does not exist.
	ErrNotFound = errors.New("gatekit: not found")

	// ErrConflict is returned when an element identifier cannot be
	// classified, or when a uniqueness constraint is violated.
	ErrConflict = errors.New("gatekit: conflict")

	// ErrInternal is returned on deployment errors (missing counter
	// store) and on unexpected store failures. Operator-facing.
	ErrInternal = errors.New("gatekit: internal error")

	// ErrDatabaseError is returned when a database operation fails.
	ErrDatabaseError = errors.New("gatekit: database error")
)

// Error wraps a sentinel error with additional context about the
// decision that produced it.
type Error struct {
	Err     error   // Underlying sentinel error
	Message string  // Human-readable detail
	Element string  // Element UID involved (if applicable)
	Feature Feature // Feature involved (if applicable)
	UserID  int64   // Principal involved (if applicable)
	OrgID   int64   // Organization scope involved (if applicable)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a target error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// Detail returns the human-readable detail string without the sentinel
// prefix. This is the value surfaced to API callers.
func (e *Error) Detail() string {
	return e.Message
}

// NewError creates a new Error with context.
func NewError(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// WithElement adds the element UID to the error.
func (e *Error) WithElement(elementUID string) *Error {
	e.Element = elementUID
	return e
}

// WithFeature adds the feature to the error.
func (e *Error) WithFeature(feature Feature) *Error {
	e.Feature = feature
	return e
}

// WithUser adds the principal's user ID to the error.
func (e *Error) WithUser(userID int64) *Error {
	e.UserID = userID
	return e
}

// WithOrg adds the organization scope to the error.
func (e *Error) WithOrg(orgID int64) *Error {
	e.OrgID = orgID
	return e
}

// IsUnauthorized checks if an error is an identity error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsForbidden checks if an error is a rights or quota denial.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsNotFound checks if an error is a missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a classification or uniqueness error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsInternal checks if an error is operator-facing.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}
