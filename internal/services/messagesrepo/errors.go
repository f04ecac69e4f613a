package messagesrepo

import (
	"errors"
)

const (
	// ValidationError is returned when a caller passes arguments the store
	// cannot act on, before any statement runs.
	ValidationError = constError("invalid request")
	// StorageError marks driver and connectivity failures. Handlers log it
	// and skip the reply step; it never propagates to the platform.
	StorageError = constError("storage error")
)

func IsValidationError(err error) bool {
	return errors.Is(err, ValidationError)
}

// IsStorageError reports whether the error came from the datastore rather
// than from the caller.
func IsStorageError(err error) bool {
	return errors.Is(err, StorageError)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
