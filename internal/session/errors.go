package session

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned for identifiers that do not exist or were deleted.
var ErrNotFound = errors.New("session not found")

// StorageError reports a failure of the persistence medium.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("session store %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err carries a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
