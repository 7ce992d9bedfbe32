// Package commands contains write use cases for the users module.
// Commands change state and typically don't return data (except IDs).
package commands

import (
	"context"
	"fmt"

	"github.com/mzukov/web-api/modules/shared/events"
	"github.com/mzukov/web-api/modules/shared/types"
	"github.com/mzukov/web-api/modules/users/application/validation"
	"github.com/mzukov/web-api/modules/users/domain"
)

// CreateUserCommand represents the intent to register a new user.
// Only the login is caller-supplied; everything else gets server
// defaults.
type CreateUserCommand struct {
	Login string
}

// CreateUserHandler handles the CreateUserCommand.
type CreateUserHandler struct {
	repo      domain.UserRepository
	publisher events.Publisher
}

func NewCreateUserHandler(repo domain.UserRepository, publisher events.Publisher) *CreateUserHandler {
	return &CreateUserHandler{
		repo:      repo,
		publisher: publisher,
	}
}

// Handle executes the create user use case and returns the assigned
// identifier.
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (string, error) {
	login, err := domain.NewLogin(cmd.Login)
	if err != nil {
		errs := types.NewFieldErrors()
		validation.CheckLogin(cmd.Login, errs)
		return "", types.NewValidationError(errs)
	}

	user := domain.NewUser(login)

	stored, err := h.repo.Insert(ctx, user)
	if err != nil {
		return "", fmt.Errorf("inserting user: %w", err)
	}

	if h.publisher != nil {
		event := domain.NewUserCreatedEvent(stored)
		if err := h.publisher.Publish(ctx, event); err != nil {
			// Log but don't fail - event publishing is eventually consistent
			_ = err
		}
	}

	return stored.ID().String(), nil
}
