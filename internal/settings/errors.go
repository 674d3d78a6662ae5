package settings

import (
	"errors"
	"fmt"
)

// ErrCorruptConfig marks a persisted value the schema does not recognise.
// It is never replaced by a default: the caller is expected to stop.
var ErrCorruptConfig = errors.New("corrupt settings")

// CorruptError reports which key held the unrecognised value.
type CorruptError struct {
	Key   string
	Value string
	Err   error
}

func (e *CorruptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s=%q: %v", ErrCorruptConfig, e.Key, e.Value, e.Err)
	}
	return fmt.Sprintf("%v: %s=%q", ErrCorruptConfig, e.Key, e.Value)
}

func (e *CorruptError) Is(target error) bool {
	return target == ErrCorruptConfig
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies the failure for the shell's top-level handler.
func (e *CorruptError) ErrorKind() string {
	return "configuration"
}

// StoreError wraps a failure of the backing store.
type StoreError struct {
	Operation string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("settings %s failed: %v", e.Operation, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
