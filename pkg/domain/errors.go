package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownScreen is returned when a referenced name is registered nowhere.
	ErrUnknownScreen = errors.New("unknown screen")

	// ErrNoSuccessor is returned when an edge is required but was never configured.
	ErrNoSuccessor = errors.New("no successor configured")

	// ErrUnknownStartingScreen is returned when the controller is asked to start at an unregistered name.
	ErrUnknownStartingScreen = errors.New("unknown starting screen")

	// ErrMissingStartingScreen is returned by Build when no starting screen was set.
	ErrMissingStartingScreen = errors.New("missing starting screen")

	// ErrWrongScreenKind is returned by typed getters asked for the wrong kind or type.
	ErrWrongScreenKind = errors.New("wrong screen kind")

	// ErrInvalidState is returned when the controller cannot resolve a name it committed to,
	// or when it is used after Dispose.
	ErrInvalidState = errors.New("invalid controller state")

	// ErrDuplicateScreen is returned when a name is registered twice and the caller asked
	// for duplicates to be rejected, or when a name is reused across kinds.
	ErrDuplicateScreen = errors.New("duplicate screen")

	// ErrInvalidName is returned when a screen is registered, or an edge recorded, with an empty name.
	ErrInvalidName = errors.New("invalid screen name")

	// ErrInvalidChoice is returned when a negative choice index is wired.
	ErrInvalidChoice = errors.New("invalid choice index")

	// ErrNilScreen is returned when a nil screen or factory is registered, or a factory yields nil.
	ErrNilScreen = errors.New("nil screen")
)

// ScreenError carries the operation and screen involved in a failure.
// Err is one of the sentinel errors above; Cause optionally holds the lower-level failure.
type ScreenError struct {
	Op     string // Operation that failed (e.g., "get", "successor", "advance")
	Name   string // Screen name involved
	Choice int    // Choice index, NoChoice when not applicable
	Err    error
	Cause  error
}

// NewScreenError builds a ScreenError without a choice index.
func NewScreenError(op, name string, err error) *ScreenError {
	return &ScreenError{Op: op, Name: name, Choice: NoChoice, Err: err}
}

func (e *ScreenError) Error() string {
	msg := fmt.Sprintf("screenflow: %s %q: %v", e.Op, e.Name, e.Err)
	if e.Choice != NoChoice {
		msg = fmt.Sprintf("screenflow: %s %q (choice %d): %v", e.Op, e.Name, e.Choice, e.Err)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *ScreenError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
