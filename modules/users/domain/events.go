package domain

import (
	"github.com/mzukov/web-api/modules/shared/events"
	"github.com/mzukov/web-api/modules/shared/events/contracts"
)

// Domain events for the users bounded context.
// Events represent facts about what happened in the domain.

// UserCreatedEvent is published when a new user is registered.
type UserCreatedEvent struct {
	events.BaseEvent
	UserID string `json:"user_id"`
	Login  string `json:"login"`
}

func NewUserCreatedEvent(user *User) UserCreatedEvent {
	return UserCreatedEvent{
		BaseEvent: events.NewBaseEvent(contracts.UserCreatedEventType, user.ID().String()),
		UserID:    user.ID().String(),
		Login:     user.Login().String(),
	}
}

// UserReplacedEvent is published when a user's profile is written
// through the upsert path, by either a replace or a patch.
type UserReplacedEvent struct {
	events.BaseEvent
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Inserted  bool   `json:"inserted"`
}

func NewUserReplacedEvent(user *User, inserted bool) UserReplacedEvent {
	return UserReplacedEvent{
		BaseEvent: events.NewBaseEvent(contracts.UserReplacedEventType, user.ID().String()),
		UserID:    user.ID().String(),
		FirstName: user.FirstName(),
		LastName:  user.LastName(),
		Inserted:  inserted,
	}
}

// NewUserDeletedEvent builds the public deletion contract event.
func NewUserDeletedEvent(userID UserID) contracts.UserDeletedEvent {
	return contracts.UserDeletedEvent{
		BaseEvent: events.NewBaseEvent(contracts.UserDeletedEventType, userID.String()),
		UserID:    userID.String(),
	}
}
