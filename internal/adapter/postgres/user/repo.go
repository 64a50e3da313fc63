// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/quizly-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizly-backend/internal/domain"
)

const (
	userColumns = `id, username, email, password_hash, created_at, updated_at`

	createUserSQL = `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	getUserByIDSQL       = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getUserByEmailSQL    = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	getUserByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	countUsersSQL        = `SELECT count(*) FROM users`
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var r userRow
	if err := row.Scan(&r.ID, &r.Username, &r.Email, &r.PasswordHash, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return r.toDomain(), nil
}

// Create inserts a new user. Duplicate username or email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanUser(q.QueryRow(ctx, createUserSQL,
		u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, postgres.MapNotFound(err, "user", id, domain.ErrUserNotFound)
	}
	return u, nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapNotFound(err, "user", uuid.Nil, domain.ErrUserNotFound)
	}
	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, getUserByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapNotFound(err, "user", uuid.Nil, domain.ErrUserNotFound)
	}
	return u, nil
}

// List returns one page of users ordered by username, plus the total count.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Select(userColumns).
		From("users").
		OrderBy("username ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countUsersSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *row.toDomain())
	}
	return users, total, nil
}
