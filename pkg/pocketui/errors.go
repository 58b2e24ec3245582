package pocketui

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user dismissed a widget without selecting
	// anything (back button, backdrop tap, etc.). This is a normal flow
	// control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrUnknownDestination indicates a destination id that is not present in
	// the screen registry. Selection with an unknown id is rejected as a
	// no-op; navigation order and the active destination are left untouched.
	ErrUnknownDestination = errors.New("destination not in registry")

	// ErrNotInitialized indicates a widget was invoked before Init set up the
	// SDL window. Widgets wrap it in an InfrastructureError naming the widget.
	ErrNotInitialized = errors.New("Init has not been called")
)

// OrderCorruptionError reports that a reorder would have produced a
// navigation order that is not a permutation of the registry's destination
// set. The mutation is rolled back before this error is returned, so state
// is always valid afterwards. Reaching this is a programming error: in
// development mode the state layer panics instead of returning it.
type OrderCorruptionError struct {
	Op    string   // Operation that was rolled back (e.g. "select")
	Order []string // The rejected order
}

func (e *OrderCorruptionError) Error() string {
	return fmt.Sprintf("pocketui: %s produced a non-permutation order %v", e.Op, e.Order)
}

// InfrastructureError represents a framework-level error that indicates
// something is wrong with pocketui itself (rendering failed, SDL crashed,
// font missing, etc.). These errors are typically fatal or require
// framework-level recovery.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pocketui: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pocketui: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsUnknownDestination checks if an error indicates a rejected destination id.
func IsUnknownDestination(err error) bool {
	return errors.Is(err, ErrUnknownDestination)
}
