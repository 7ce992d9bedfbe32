package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mzukov/web-api/modules/users/domain"
)

// DBTX is the subset of *sql.DB / *sql.Tx the repository needs.
// Accepting the interface keeps the repository testable with sqlmock.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresRepository implements UserRepository on PostgreSQL.
type PostgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Compile-time interface check.
var _ domain.UserRepository = (*PostgresRepository)(nil)

func (r *PostgresRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	query :=
		`SELECT id, login, first_name, last_name, games_played, current_activity_id, created_at, updated_at
		 FROM users
		 WHERE id = $1
		 `

	user, err := scanUserRow(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.AssignID()

	query :=
		`INSERT INTO users (id, login, first_name, last_name, games_played, current_activity_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID().String(),
		user.Login().String(),
		user.FirstName(),
		user.LastName(),
		user.GamesPlayed(),
		activityValue(user),
		user.CreatedAt(),
		user.UpdatedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) UpdateOrInsert(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	// xmax = 0 holds only for freshly inserted rows, which is exactly
	// the inserted-vs-updated signal the caller needs.
	query :=
		`INSERT INTO users (id, login, first_name, last_name, games_played, current_activity_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE
		 SET first_name = EXCLUDED.first_name,
		     last_name = EXCLUDED.last_name,
		     updated_at = EXCLUDED.updated_at
		 RETURNING (xmax = 0)
		 `

	var inserted bool
	err := r.db.QueryRowContext(ctx, query,
		user.ID().String(),
		user.Login().String(),
		user.FirstName(),
		user.LastName(),
		user.GamesPlayed(),
		activityValue(user),
		user.CreatedAt(),
		user.UpdatedAt(),
	).Scan(&inserted)
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	return user, inserted, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id domain.UserID) error {
	query :=
		`DELETE FROM users
		 WHERE id = $1
		 `

	result, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *PostgresRepository) GetPage(ctx context.Context, pageNumber, pageSize int) ([]*domain.User, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	query :=
		`SELECT id, login, first_name, last_name, games_played, current_activity_id, created_at, updated_at
		 FROM users
		 ORDER BY created_at, id
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return users, total, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserRow(row rowScanner) (*domain.User, error) {
	var (
		id, login, firstName, lastName string
		gamesPlayed                    int
		activity                       sql.NullString
		createdAt, updatedAt           sql.NullTime
	)

	if err := row.Scan(&id, &login, &firstName, &lastName, &gamesPlayed, &activity, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var currentActivity domain.ActivityID
	if activity.Valid {
		currentActivity = domain.NewActivityID(activity.String)
	}

	return domain.Reconstitute(
		domain.ReconstituteUserID(id),
		domain.ReconstituteLogin(login),
		firstName, lastName,
		gamesPlayed,
		currentActivity,
		createdAt.Time, updatedAt.Time,
	), nil
}

func activityValue(user *domain.User) sql.NullString {
	if user.CurrentActivity().IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: user.CurrentActivity().String(), Valid: true}
}
