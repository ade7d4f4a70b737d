package store

import (
	"context"

	"github.com/phrazzld/taskdel-api/internal/domain"
)

// ProfileUpdate carries a partial change to a user's mutable profile fields.
// A nil field means "leave the stored value untouched"; a non-nil pointer to
// the empty string explicitly clears the field. This tri-state distinction is
// load-bearing: omitting a field in a request must never reset it.
type ProfileUpdate struct {
	Name *string
	Ava  *string
}

// UserDirectory defines the interface for the fixed user roster.
// The roster is provisioned once at process start; identities are never
// added or removed afterwards, and logins/credentials never change.
type UserDirectory interface {
	// Authenticate resolves a credential pair to a user ID.
	// Returns ErrInvalidCredentials when no roster entry matches, without
	// revealing whether the login or the password was at fault. The password
	// comparison is constant-time.
	Authenticate(ctx context.Context, login, password string) (int64, error)

	// GetByID retrieves a user by their roster ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// List returns all roster entries in provisioning order.
	List(ctx context.Context) ([]domain.User, error)

	// UpdateProfile applies a partial update to the user's profile fields
	// and returns the updated user. Only fields present in the update are
	// touched. Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*domain.User, error)
}
