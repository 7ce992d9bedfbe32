// Package queries contains read use cases for the users module.
// Queries return data and don't change state (CQRS pattern).
package queries

import (
	"context"
	"fmt"

	"github.com/mzukov/web-api/modules/users/domain"
)

// UserDTO is the wire projection of a user resource.
type UserDTO struct {
	ID                string  `json:"id"`
	Login             string  `json:"login"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	GamesPlayed       int     `json:"gamesPlayed"`
	CurrentActivityID *string `json:"currentActivityId"`
}

// GetUserQuery represents a request to get a user by ID.
type GetUserQuery struct {
	UserID string
}

// GetUserHandler handles GetUserQuery.
type GetUserHandler struct {
	repo domain.UserRepository
}

func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query. A malformed identifier cannot
// address any resource, so it reads as not found.
func (h *GetUserHandler) Handle(ctx context.Context, query GetUserQuery) (*UserDTO, error) {
	userID, err := domain.ParseUserID(query.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	user, err := h.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}

	return toUserDTO(user), nil
}

func toUserDTO(user *domain.User) *UserDTO {
	dto := &UserDTO{
		ID:          user.ID().String(),
		Login:       user.Login().String(),
		FirstName:   user.FirstName(),
		LastName:    user.LastName(),
		GamesPlayed: user.GamesPlayed(),
	}
	if activity := user.CurrentActivity(); !activity.IsZero() {
		value := activity.String()
		dto.CurrentActivityID = &value
	}
	return dto
}
