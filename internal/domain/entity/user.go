// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Accounts are created inactive and must be
// activated with an OTP before they can sign in.
type User struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Email        string       // The user's email address, used as the login identifier. Unique.
	PasswordHash string       // Bcrypt hash of the user's password (salt embedded).
	Activated    bool         // Whether the account has completed OTP activation.
	Role         Role         // The single role this account operates under.
	Profile      *UserProfile // Optional display profile. Nil until the user creates one.
	CreatedAt    time.Time    // Timestamp of when this account was created.
	UpdatedAt    time.Time    // Timestamp of the last modification to this account.
}

// UserProfile holds the user's display information.
type UserProfile struct {
	UserID    uuid.UUID // Foreign Key that links this profile to a core User entity.
	FirstName string
	LastName  string
	UpdatedAt time.Time
}

// FirstNameOrEmail returns the profile first name when present, falling back
// to the email address. Notification templates address the user with it.
func (u *User) FirstNameOrEmail() string {
	if u.Profile != nil && u.Profile.FirstName != "" {
		return u.Profile.FirstName
	}

	return u.Email
}

// Principal identifies the authenticated caller of an operation.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}
