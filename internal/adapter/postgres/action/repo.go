// Package action implements the membership Action repository using PostgreSQL.
//
// There is at most one action row per (user, company) pair. The row is
// reused across invite/request cycles; only status and type change.
package action

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/quizly-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizly-backend/internal/domain"
)

const uniqueUserCompany = "actions_user_company_key"

const (
	actionColumns = `id, user_id, company_id, status, type, created_at, updated_at`

	createActionSQL = `
		INSERT INTO actions (id, user_id, company_id, status, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + actionColumns

	getActionSQL          = `SELECT ` + actionColumns + ` FROM actions WHERE id = $1`
	getActionForUpdateSQL = getActionSQL + ` FOR UPDATE`
	findByPairSQL         = `SELECT ` + actionColumns + ` FROM actions WHERE user_id = $1 AND company_id = $2 FOR UPDATE`

	updateStatusSQL = `
		UPDATE actions SET status = $2, type = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + actionColumns

	deleteActionSQL           = `DELETE FROM actions WHERE id = $1`
	deleteActionsByCompanySQL = `DELETE FROM actions WHERE company_id = $1`
)

const viewColumns = `a.id AS action_id, a.user_id, u.username, a.company_id, c.name AS company_name,
	a.status, a.type, a.created_at`

// Repo provides action persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new action repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func scanAction(row pgx.Row) (*domain.Action, error) {
	var (
		a           domain.Action
		status, typ string
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.CompanyID, &status, &typ, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Status = domain.ActionStatus(status)
	a.Type = domain.ActionType(typ)
	return &a, nil
}

// Create inserts an action. A second row for the same pair yields
// domain.ErrActionAlreadyAvailable.
func (r *Repo) Create(ctx context.Context, a *domain.Action) (*domain.Action, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanAction(q.QueryRow(ctx, createActionSQL,
		a.ID, a.UserID, a.CompanyID, string(a.Status), string(a.Type), a.CreatedAt, a.UpdatedAt,
	))
	if err != nil {
		if postgres.IsUniqueViolation(err, uniqueUserCompany) {
			return nil, fmt.Errorf("action %s: %w", a.ID, domain.ErrActionAlreadyAvailable)
		}
		return nil, postgres.MapError(err, "action", a.ID)
	}
	return created, nil
}

// GetByID returns an action by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Action, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	a, err := scanAction(q.QueryRow(ctx, getActionSQL, id))
	if err != nil {
		return nil, postgres.MapNotFound(err, "action", id, domain.ErrActionNotFound)
	}
	return a, nil
}

// GetForUpdate returns an action and locks the row for the rest of the transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Action, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	a, err := scanAction(q.QueryRow(ctx, getActionForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapNotFound(err, "action", id, domain.ErrActionNotFound)
	}
	return a, nil
}

// FindByPairForUpdate returns the action of a (user, company) pair and locks it.
// A pair without a row yields domain.ErrActionNotFound.
func (r *Repo) FindByPairForUpdate(ctx context.Context, userID, companyID uuid.UUID) (*domain.Action, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	a, err := scanAction(q.QueryRow(ctx, findByPairSQL, userID, companyID))
	if err != nil {
		return nil, postgres.MapNotFound(err, "action", uuid.Nil, domain.ErrActionNotFound)
	}
	return a, nil
}

// UpdateStatus moves an action to a new status and type.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ActionStatus, typ domain.ActionType) (*domain.Action, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	a, err := scanAction(q.QueryRow(ctx, updateStatusSQL, id, string(status), string(typ)))
	if err != nil {
		return nil, postgres.MapNotFound(err, "action", id, domain.ErrActionNotFound)
	}
	return a, nil
}

// Delete hard-deletes an action.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteActionSQL, id)
	if err != nil {
		return postgres.MapError(err, "action", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("action %s: %w", id, domain.ErrActionNotFound)
	}
	return nil
}

// DeleteByCompany removes every action of a company.
func (r *Repo) DeleteByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteActionsByCompanySQL, companyID)
	if err != nil {
		return 0, fmt.Errorf("delete actions of %s: %w", companyID, err)
	}
	return int(tag.RowsAffected()), nil
}

func viewSelect() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(viewColumns).
		From("actions a").
		Join("users u ON u.id = a.user_id").
		Join("companies c ON c.id = a.company_id")
}

// ListByCompany returns the actions of a company in the given status.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID, status domain.ActionStatus) ([]domain.ActionView, error) {
	b := viewSelect().
		Where(squirrel.Eq{"a.company_id": companyID, "a.status": string(status)}).
		OrderBy("a.updated_at DESC", "a.id")
	return r.selectViews(ctx, b)
}

// ListByUser returns the actions of a user in the given status within scope.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, status domain.ActionStatus, scope domain.Scope) ([]domain.ActionView, error) {
	b := viewSelect().Where(squirrel.Eq{"a.user_id": userID, "a.status": string(status)})
	if companyID, ok := scope.CompanyID(); ok {
		b = b.Where(squirrel.Eq{"a.company_id": companyID})
	}
	return r.selectViews(ctx, b.OrderBy("a.updated_at DESC", "a.id"))
}

func (r *Repo) selectViews(ctx context.Context, b squirrel.SelectBuilder) ([]domain.ActionView, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build action view query: %w", err)
	}

	views := []domain.ActionView{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &views, query, args...); err != nil {
		return nil, fmt.Errorf("list action views: %w", err)
	}
	return views, nil
}
