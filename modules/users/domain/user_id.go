package domain

import (
	"github.com/google/uuid"
)

// UserID represents a unique identifier for a user.
// Using a distinct type prevents mixing up different ID types.
type UserID struct {
	value string
}

func NewUserID() UserID {
	return UserID{value: uuid.New().String()}
}

// ParseUserID parses an identifier supplied by a caller. The nil UUID
// counts as invalid: it can never address a resource.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return UserID{}, ErrInvalidUserID
	}
	return UserID{value: id.String()}, nil
}

// ReconstituteUserID rebuilds a UserID from persistence without
// re-validating. Stored identifiers were validated on write.
func ReconstituteUserID(s string) UserID {
	return UserID{value: s}
}

func (id UserID) String() string { return id.value }
func (id UserID) IsZero() bool   { return id.value == "" }

// ActivityID references the activity a user is currently taking part
// in. It is an opaque token; the zero value means no current activity.
type ActivityID struct {
	value string
}

func NewActivityID(s string) ActivityID {
	return ActivityID{value: s}
}

func (id ActivityID) String() string { return id.value }
func (id ActivityID) IsZero() bool   { return id.value == "" }
