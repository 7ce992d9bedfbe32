package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/mzukov/web-api/modules/users/domain"
)

// userColumns is the full column set of the Users table.
var userColumns = []string{
	"UserID", "Login", "FirstName", "LastName",
	"GamesPlayed", "CurrentActivityID", "CreatedAt", "UpdatedAt",
}

// SpannerRepository implements UserRepository using Cloud Spanner.
type SpannerRepository struct {
	client *spanner.Client
}

// NewSpannerRepository creates a new Spanner-backed user repository.
func NewSpannerRepository(client *spanner.Client) *SpannerRepository {
	return &SpannerRepository{client: client}
}

// Compile-time interface check.
var _ domain.UserRepository = (*SpannerRepository)(nil)

func (r *SpannerRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	row, err := r.client.Single().ReadRow(ctx, "Users",
		spanner.Key{id.String()},
		userColumns,
	)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	return scanUser(row)
}

func (r *SpannerRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.AssignID()

	_, err := r.client.Apply(ctx, []*spanner.Mutation{insertMutation(user)})
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (r *SpannerRepository) UpdateOrInsert(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	var inserted bool

	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		// Reset on every attempt; the closure may run more than once.
		inserted = false

		_, err := txn.ReadRow(ctx, "Users", spanner.Key{user.ID().String()}, []string{"UserID"})
		if err != nil {
			if spanner.ErrCode(err) != codes.NotFound {
				return err
			}
			inserted = true
			return txn.BufferWrite([]*spanner.Mutation{insertMutation(user)})
		}

		// Only the profile fields move on update; login and the
		// server-managed counters stay as stored.
		return txn.BufferWrite([]*spanner.Mutation{
			spanner.Update("Users",
				[]string{"UserID", "FirstName", "LastName", "UpdatedAt"},
				[]interface{}{
					user.ID().String(),
					user.FirstName(),
					user.LastName(),
					user.UpdatedAt(),
				},
			),
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, inserted, nil
}

func (r *SpannerRepository) Delete(ctx context.Context, id domain.UserID) error {
	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		_, err := txn.ReadRow(ctx, "Users", spanner.Key{id.String()}, []string{"UserID"})
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return domain.ErrUserNotFound
			}
			return err
		}
		return txn.BufferWrite([]*spanner.Mutation{
			spanner.Delete("Users", spanner.Key{id.String()}),
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *SpannerRepository) GetPage(ctx context.Context, pageNumber, pageSize int) ([]*domain.User, int, error) {
	rtx := r.client.ReadOnlyTransaction()
	defer rtx.Close()

	countStmt := spanner.Statement{
		SQL: `SELECT COUNT(*) FROM Users`,
	}
	countIter := rtx.Query(ctx, countStmt)
	defer countIter.Stop()

	var total int64
	countRow, err := countIter.Next()
	if err != nil && err != iterator.Done {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	if countRow != nil {
		if err := countRow.Columns(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan count: %w", err)
		}
	}

	stmt := spanner.Statement{
		SQL: `SELECT UserID, Login, FirstName, LastName, GamesPlayed, CurrentActivityID, CreatedAt, UpdatedAt
		      FROM Users
		      ORDER BY CreatedAt, UserID
		      LIMIT @limit OFFSET @offset`,
		Params: map[string]interface{}{
			"limit":  int64(pageSize),
			"offset": int64((pageNumber - 1) * pageSize),
		},
	}

	iter := rtx.Query(ctx, stmt)
	defer iter.Stop()

	var users []*domain.User
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to query users: %w", err)
		}

		user, err := scanUser(row)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}

	return users, int(total), nil
}

func insertMutation(user *domain.User) *spanner.Mutation {
	var activity spanner.NullString
	if !user.CurrentActivity().IsZero() {
		activity = spanner.NullString{StringVal: user.CurrentActivity().String(), Valid: true}
	}

	return spanner.Insert("Users", userColumns,
		[]interface{}{
			user.ID().String(),
			user.Login().String(),
			user.FirstName(),
			user.LastName(),
			int64(user.GamesPlayed()),
			activity,
			user.CreatedAt(),
			user.UpdatedAt(),
		},
	)
}

func scanUser(row *spanner.Row) (*domain.User, error) {
	var userID, login, firstName, lastName string
	var gamesPlayed int64
	var activity spanner.NullString
	var createdAt, updatedAt time.Time

	if err := row.Columns(&userID, &login, &firstName, &lastName, &gamesPlayed, &activity, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	var currentActivity domain.ActivityID
	if activity.Valid {
		currentActivity = domain.NewActivityID(activity.StringVal)
	}

	return domain.Reconstitute(
		domain.ReconstituteUserID(userID),
		domain.ReconstituteLogin(login),
		firstName, lastName,
		int(gamesPlayed),
		currentActivity,
		createdAt, updatedAt,
	), nil
}
