package queries

import (
	"context"
	"fmt"

	"github.com/mzukov/web-api/modules/users/domain"
)

// UserExistsQuery probes for resource existence without projecting it.
type UserExistsQuery struct {
	UserID string
}

// UserExistsHandler handles UserExistsQuery.
type UserExistsHandler struct {
	repo domain.UserRepository
}

func NewUserExistsHandler(repo domain.UserRepository) *UserExistsHandler {
	return &UserExistsHandler{repo: repo}
}

// Handle returns nil when the user exists and ErrUserNotFound when it
// doesn't.
func (h *UserExistsHandler) Handle(ctx context.Context, query UserExistsQuery) error {
	userID, err := domain.ParseUserID(query.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if _, err := h.repo.FindByID(ctx, userID); err != nil {
		return fmt.Errorf("finding user: %w", err)
	}

	return nil
}
