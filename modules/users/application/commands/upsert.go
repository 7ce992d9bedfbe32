package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzukov/web-api/modules/users/domain"
)

// upsertUser is the single write path shared by the replace and patch
// commands. It decides create-vs-replace for the target identifier: an
// absent id is inserted with the desired names (empty login, zeroed
// counters), a present id has only its profile fields overwritten -
// identifier, login, games counter and current activity are preserved.
// The repository reports which branch actually committed.
func upsertUser(ctx context.Context, repo domain.UserRepository, id domain.UserID, firstName, lastName string) (*domain.User, bool, error) {
	if id.IsZero() {
		return nil, false, domain.ErrNilUserID
	}

	existing, err := repo.FindByID(ctx, id)
	switch {
	case err == nil:
		existing.Rename(firstName, lastName)
		user, inserted, err := repo.UpdateOrInsert(ctx, existing)
		if err != nil {
			return nil, false, fmt.Errorf("upserting user: %w", err)
		}
		return user, inserted, nil

	case errors.Is(err, domain.ErrUserNotFound):
		user, inserted, err := repo.UpdateOrInsert(ctx, domain.NewUserWithID(id, firstName, lastName))
		if err != nil {
			return nil, false, fmt.Errorf("upserting user: %w", err)
		}
		return user, inserted, nil

	default:
		return nil, false, fmt.Errorf("finding user: %w", err)
	}
}
