package domain

import (
	"context"
)

// UserRepository defines the persistence interface for users.
// This is a port - defined in domain, implemented in infrastructure.
// Every method is a single atomic storage operation; the application
// layer never spans a transaction across calls.
type UserRepository interface {
	// FindByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user doesn't exist.
	FindByID(ctx context.Context, id UserID) (*User, error)

	// Insert stores a new user, assigning a fresh identifier when the
	// user has none, and returns the stored user.
	Insert(ctx context.Context, user *User) (*User, error)

	// UpdateOrInsert stores the user under its identifier, inserting
	// when absent and overwriting the profile fields when present.
	// The second result reports whether an insert occurred.
	UpdateOrInsert(ctx context.Context, user *User) (*User, bool, error)

	// Delete removes the user.
	// Returns ErrUserNotFound if the user doesn't exist.
	Delete(ctx context.Context, id UserID) error

	// GetPage retrieves one page of users ordered by creation time,
	// plus the total count at query time. pageNumber is 1-based.
	GetPage(ctx context.Context, pageNumber, pageSize int) ([]*User, int, error)
}
