package commands

import (
	"context"
	"fmt"

	"github.com/mzukov/web-api/modules/shared/events"
	"github.com/mzukov/web-api/modules/shared/types"
	"github.com/mzukov/web-api/modules/users/application/patch"
	"github.com/mzukov/web-api/modules/users/application/validation"
	"github.com/mzukov/web-api/modules/users/domain"
)

// PatchUserCommand carries an ordered patch document for a user.
type PatchUserCommand struct {
	UserID string
	Ops    []patch.Operation
}

// PatchUserHandler handles the PatchUserCommand.
type PatchUserHandler struct {
	repo      domain.UserRepository
	publisher events.Publisher
}

func NewPatchUserHandler(repo domain.UserRepository, publisher events.Publisher) *PatchUserHandler {
	return &PatchUserHandler{
		repo:      repo,
		publisher: publisher,
	}
}

// Handle loads the target, applies the patch to a replace-shaped
// working copy, validates the final shape and funnels the result
// through the same upsert path as replace. Because of that reuse a
// successful patch always re-inserts: an identifier deleted between
// the load and the write is resurrected rather than rejected.
// Patch-application failures and validation failures are reported
// through the same field-error channel.
func (h *PatchUserHandler) Handle(ctx context.Context, cmd PatchUserCommand) error {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	user, err := h.repo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("finding user: %w", err)
	}

	doc := patch.NewDocument(user.FirstName(), user.LastName())
	errs := types.NewFieldErrors()

	patch.Apply(cmd.Ops, doc, errs)
	if !errs.Empty() {
		return types.NewValidationError(errs)
	}

	// A removed field surfaces as empty and fails the replace rules.
	firstName, _ := doc.FirstName()
	lastName, _ := doc.LastName()
	validation.ValidateReplaceRequest(firstName, lastName, errs)
	if !errs.Empty() {
		return types.NewValidationError(errs)
	}

	patched, inserted, err := upsertUser(ctx, h.repo, userID, firstName, lastName)
	if err != nil {
		return err
	}

	if h.publisher != nil {
		event := domain.NewUserReplacedEvent(patched, inserted)
		if err := h.publisher.Publish(ctx, event); err != nil {
			_ = err
		}
	}

	return nil
}
