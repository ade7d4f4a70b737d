package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrTaskNotFound, ErrUserNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrForbidden is returned when the caller is authenticated but is not
	// the party a task operation is reserved for: only the author may update
	// or delete a task, and only the performer may complete it.
	ErrForbidden = errors.New("operation not permitted for this user")

	// ErrInvalidCredentials is returned when a login/password pair does not
	// resolve to a roster identity. The same error is returned whether the
	// login is unknown or the password is wrong, so callers cannot tell
	// which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPerformerNotFound is returned when a task is created with a
	// performer ID that does not exist in the user directory. Unlike the
	// not-found family, this is a bad reference supplied by the client, not
	// a missing target resource.
	ErrPerformerNotFound = errors.New("performer does not exist")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrTaskNotFound indicates that the requested task does not exist in the store.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist in the directory.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
