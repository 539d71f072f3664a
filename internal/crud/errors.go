package crud

import (
	"errors"
	"fmt"
)

var (
	ErrBusy         = errors.New("operation already in progress")
	ErrNotFound     = errors.New("record not in the current list")
	ErrNoEditTarget = errors.New("no record is being edited")
	ErrCancelled    = errors.New("deletion not confirmed")
)

// OperationError records which page operation failed. Err is a validation
// error, a collaborator error, or one of the sentinels above.
type OperationError struct {
	Op     Op
	Entity string
	Err    error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
