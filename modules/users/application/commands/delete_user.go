package commands

import (
	"context"
	"fmt"

	"github.com/mzukov/web-api/modules/shared/events"
	"github.com/mzukov/web-api/modules/users/domain"
)

// DeleteUserCommand represents the intent to remove a user.
type DeleteUserCommand struct {
	UserID string
}

// DeleteUserHandler handles the DeleteUserCommand.
type DeleteUserHandler struct {
	repo      domain.UserRepository
	publisher events.Publisher
}

func NewDeleteUserHandler(repo domain.UserRepository, publisher events.Publisher) *DeleteUserHandler {
	return &DeleteUserHandler{
		repo:      repo,
		publisher: publisher,
	}
}

// Handle executes the delete use case. The resource is removed for
// good; there is no soft delete.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if err := h.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	if h.publisher != nil {
		event := domain.NewUserDeletedEvent(userID)
		if err := h.publisher.Publish(ctx, event); err != nil {
			_ = err
		}
	}

	return nil
}
