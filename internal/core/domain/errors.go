package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSlotConflict means the requested slot was occupied at commit time. The
// caller should re-fetch availability and pick another slot; the engine never
// retries the same slot on its own.
var ErrSlotConflict = errors.New("time slot is already booked")

// ValidationError carries the list of required booking fields that are
// missing or unparsable. It is an expected outcome, not a fault.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// ProviderError wraps a calendar provider I/O failure (including timeouts).
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("calendar provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
