// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address owned by a user. A user has at most one
// default address; order placement snapshots the default at that instant.
type Address struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID    uuid.UUID // The owning user.
	Address   string    // The full, human-readable street address.
	IsDefault bool      // Indicates if this is the user's default delivery address.
	CreatedAt time.Time // Timestamp of when this address was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
