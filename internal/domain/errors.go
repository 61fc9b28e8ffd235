package domain

import "fmt"

// ValidationError rejects a submission before anything is persisted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// StorageError means the booking log could not be written. The submission
// as a whole fails; the notifier must never run after one of these.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("booking log %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
