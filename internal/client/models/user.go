// Package models defines client-side data models used by the Bookshelf CLI.
package models

import "time"

// Role classifies a user's privilege level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the locally constructed view of the signed-in account.
// It is built from whatever the identity provider returns after a
// successful session check and is owned by the session manager;
// other components read it and never mutate it.
type User struct {
	// ID is the identity provider's stable identifier (the "sub" claim).
	ID string

	// Email is the address the account was registered with.
	Email string

	// Name is the display name recorded at sign-up.
	Name string

	// Role is the privilege level. The provider does not expose one,
	// so it is always RoleUser for now.
	Role Role

	// CreatedAt is when this User value was constructed, not the
	// account's real creation time.
	CreatedAt time.Time
}
