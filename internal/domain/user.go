package domain

import "errors"

// User validation errors.
var (
	ErrInvalidUserID       = errors.New("user ID must be positive")
	ErrEmptyUserLogin      = errors.New("user login cannot be empty")
	ErrEmptyHashedPassword = errors.New("user hashed password cannot be empty")
)

// User represents a member of the fixed, pre-provisioned roster.
// Logins and credentials are immutable for the life of the process;
// only the profile fields (Name, Ava) may change, and only through the
// identity itself.
type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Login          string `json:"login"`
	HashedPassword string `json:"-"` // Never expose the password hash in JSON
	Ava            string `json:"ava"`
}

// Validate checks if the User has valid data. Name and Ava carry no content
// restrictions; empty strings are accepted.
func (u *User) Validate() error {
	if u.ID <= 0 {
		return ErrInvalidUserID
	}

	if u.Login == "" {
		return ErrEmptyUserLogin
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}
