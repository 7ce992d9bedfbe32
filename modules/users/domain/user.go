// Package domain contains the business entities and rules for users.
// This is the innermost layer - it has no dependencies on outer layers.
package domain

import (
	"time"
)

// User is the aggregate root for the user bounded context.
type User struct {
	id              UserID
	login           Login
	firstName       string
	lastName        string
	gamesPlayed     int
	currentActivity ActivityID
	createdAt       time.Time
	updatedAt       time.Time
}

// NewUser creates a user from a validated login. The identifier is
// assigned here; names default to empty and are only required once the
// resource is replaced. The games counter starts at zero and there is
// no current activity.
func NewUser(login Login) *User {
	now := time.Now().UTC()
	return &User{
		id:        NewUserID(),
		login:     login,
		createdAt: now,
		updatedAt: now,
	}
}

// NewUserWithID creates a user under a caller-supplied identifier.
// This is the replace-with-absent-identifier path: the login stays
// empty because logins are only assigned at create time.
func NewUserWithID(id UserID, firstName, lastName string) *User {
	now := time.Now().UTC()
	return &User{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		createdAt: now,
		updatedAt: now,
	}
}

// Reconstitute recreates a User from persistence.
// Used by repositories to rebuild aggregates from stored data.
func Reconstitute(
	id UserID,
	login Login,
	firstName, lastName string,
	gamesPlayed int,
	currentActivity ActivityID,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:              id,
		login:           login,
		firstName:       firstName,
		lastName:        lastName,
		gamesPlayed:     gamesPlayed,
		currentActivity: currentActivity,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Getters - expose state without allowing direct mutation

func (u *User) ID() UserID                   { return u.id }
func (u *User) Login() Login                 { return u.login }
func (u *User) FirstName() string            { return u.firstName }
func (u *User) LastName() string             { return u.lastName }
func (u *User) GamesPlayed() int             { return u.gamesPlayed }
func (u *User) CurrentActivity() ActivityID  { return u.currentActivity }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

// AssignID gives the user a fresh identifier when it has none.
// Repositories call this on insert.
func (u *User) AssignID() {
	if u.id.IsZero() {
		u.id = NewUserID()
	}
}

// Business methods

// Rename overwrites the mutable profile fields. The identifier, login
// and server-managed counters are untouched.
func (u *User) Rename(firstName, lastName string) {
	u.firstName = firstName
	u.lastName = lastName
	u.updatedAt = time.Now().UTC()
}

// RecordGamePlayed increments the server-managed games counter.
func (u *User) RecordGamePlayed() {
	u.gamesPlayed++
	u.updatedAt = time.Now().UTC()
}

// StartActivity points the user at a current activity.
func (u *User) StartActivity(activity ActivityID) {
	u.currentActivity = activity
	u.updatedAt = time.Now().UTC()
}

// FinishActivity clears the current activity reference.
func (u *User) FinishActivity() {
	u.currentActivity = ActivityID{}
	u.updatedAt = time.Now().UTC()
}
