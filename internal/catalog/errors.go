package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("project not found")
	// ErrIDsExhausted means every id up to math.MaxInt has been handed out.
	ErrIDsExhausted = errors.New("no project ids left")
)

// ValidationError rejects a create before any state changes.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CorruptStoreError reports stored bytes that exist but cannot be decoded.
type CorruptStoreError struct {
	Key string
	Err error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("stored %q data is corrupt: %v", e.Key, e.Err)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

// PersistenceWriteError means the in-memory mutation happened but the
// store did not accept the new sequence.
type PersistenceWriteError struct {
	Op  string
	Err error
}

func (e *PersistenceWriteError) Error() string {
	return fmt.Sprintf("%s applied but not saved: %v", e.Op, e.Err)
}

func (e *PersistenceWriteError) Unwrap() error {
	return e.Err
}

func IsNotDurable(err error) bool {
	var pwe *PersistenceWriteError
	return errors.As(err, &pwe)
}
