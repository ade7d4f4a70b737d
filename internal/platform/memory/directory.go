// Package memory provides in-memory implementations of the store
// interfaces. The task set and user roster are resident process state:
// there is no persistence layer and no crash recovery, by design.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/taskdel-api/internal/domain"
	"github.com/phrazzld/taskdel-api/internal/service/auth"
	"github.com/phrazzld/taskdel-api/internal/store"
)

// Directory is the in-memory user roster. It is provisioned once at
// construction and fixed for the life of the process; only the profile
// fields (name, avatar) of each entry may change afterwards.
//
// A single RWMutex guards the mutable profile fields so that concurrent
// profile updates and roster reads never observe a half-applied change.
type Directory struct {
	mu       sync.RWMutex
	users    map[int64]*domain.User
	order    []int64
	verifier auth.PasswordVerifier
}

// NewDirectory builds a Directory from the provisioned roster entries.
// Every entry must carry an already-hashed password and pass domain
// validation; duplicate IDs or logins are a provisioning error.
func NewDirectory(users []domain.User, verifier auth.PasswordVerifier) (*Directory, error) {
	d := &Directory{
		users:    make(map[int64]*domain.User, len(users)),
		order:    make([]int64, 0, len(users)),
		verifier: verifier,
	}

	logins := make(map[string]struct{}, len(users))
	for i := range users {
		user := users[i]
		if err := user.Validate(); err != nil {
			return nil, fmt.Errorf("roster entry %q: %w", user.Login, err)
		}
		if _, exists := d.users[user.ID]; exists {
			return nil, fmt.Errorf("roster entry %q: duplicate user ID %d", user.Login, user.ID)
		}
		if _, exists := logins[user.Login]; exists {
			return nil, fmt.Errorf("duplicate login %q in roster", user.Login)
		}
		logins[user.Login] = struct{}{}

		d.users[user.ID] = &user
		d.order = append(d.order, user.ID)
	}

	return d, nil
}

// Authenticate resolves a credential pair to a user ID by scanning the
// roster. Logins are unique by provisioning, so the first match is the only
// match. The password check goes through the constant-time verifier, and
// the same ErrInvalidCredentials comes back whether the login was unknown
// or the password wrong.
func (d *Directory) Authenticate(ctx context.Context, login, password string) (int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, id := range d.order {
		user := d.users[id]
		if user.Login != login {
			continue
		}
		if err := d.verifier.Compare(user.HashedPassword, password); err != nil {
			return 0, store.ErrInvalidCredentials
		}
		return id, nil
	}

	return 0, store.ErrInvalidCredentials
}

// GetByID retrieves a roster entry by ID.
func (d *Directory) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	clone := *user
	return &clone, nil
}

// List returns all roster entries in provisioning order.
func (d *Directory) List(ctx context.Context) ([]domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]domain.User, 0, len(d.order))
	for _, id := range d.order {
		users = append(users, *d.users[id])
	}
	return users, nil
}

// UpdateProfile applies a partial update to the user's profile fields.
// Fields absent from the update are left untouched; present fields are
// written as given, the empty string included.
func (d *Directory) UpdateProfile(ctx context.Context, id int64, update store.ProfileUpdate) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Ava != nil {
		user.Ava = *update.Ava
	}

	clone := *user
	return &clone, nil
}

// Interface guard.
var _ store.UserDirectory = (*Directory)(nil)
