package commands

import (
	"context"

	"github.com/mzukov/web-api/modules/shared/events"
	"github.com/mzukov/web-api/modules/shared/types"
	"github.com/mzukov/web-api/modules/users/application/validation"
	"github.com/mzukov/web-api/modules/users/domain"
)

// ReplaceUserCommand represents the intent to set a user's profile
// under a caller-chosen identifier.
type ReplaceUserCommand struct {
	UserID    string
	FirstName string
	LastName  string
}

// ReplaceUserResult reports how the write was applied.
type ReplaceUserResult struct {
	UserID   string
	Inserted bool
}

// ReplaceUserHandler handles the ReplaceUserCommand.
type ReplaceUserHandler struct {
	repo      domain.UserRepository
	publisher events.Publisher
}

func NewReplaceUserHandler(repo domain.UserRepository, publisher events.Publisher) *ReplaceUserHandler {
	return &ReplaceUserHandler{
		repo:      repo,
		publisher: publisher,
	}
}

// Handle executes the replace use case. A missing identifier is
// inserted under that exact id; an existing one has its profile
// overwritten in place. The result reports which happened.
func (h *ReplaceUserHandler) Handle(ctx context.Context, cmd ReplaceUserCommand) (ReplaceUserResult, error) {
	userID, err := domain.ParseUserID(cmd.UserID)
	if err != nil {
		return ReplaceUserResult{}, domain.ErrNilUserID
	}

	errs := types.NewFieldErrors()
	validation.ValidateReplaceRequest(cmd.FirstName, cmd.LastName, errs)
	if !errs.Empty() {
		return ReplaceUserResult{}, types.NewValidationError(errs)
	}

	user, inserted, err := upsertUser(ctx, h.repo, userID, cmd.FirstName, cmd.LastName)
	if err != nil {
		return ReplaceUserResult{}, err
	}

	if h.publisher != nil {
		event := domain.NewUserReplacedEvent(user, inserted)
		if err := h.publisher.Publish(ctx, event); err != nil {
			_ = err
		}
	}

	return ReplaceUserResult{UserID: user.ID().String(), Inserted: inserted}, nil
}
