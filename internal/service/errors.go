package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors surfaced by the ledger and query services. Handlers map
// them to HTTP statuses; nothing is swallowed inside the core.
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError reports the required fields missing from a request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// PersistenceError wraps a storage failure that is not a business-rule
// violation. The offending multi-row write has already been rolled back by
// the time it surfaces.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
