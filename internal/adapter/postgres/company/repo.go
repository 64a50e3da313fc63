// Package company implements the Company repository using PostgreSQL.
package company

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/quizly-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizly-backend/internal/domain"
)

const (
	companyColumns = `id, name, description, visible, owner_id, created_at, updated_at`

	createCompanySQL = `
		INSERT INTO companies (id, name, description, visible, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + companyColumns

	getCompanySQL          = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	getCompanyForUpdateSQL = getCompanySQL + ` FOR UPDATE`
	deleteCompanySQL       = `DELETE FROM companies WHERE id = $1`
)

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new company repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type companyRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Visible     bool      `db:"visible"`
	OwnerID     uuid.UUID `db:"owner_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r companyRow) toDomain() *domain.Company {
	return &domain.Company{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Visible:     r.Visible,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var r companyRow
	if err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Visible, &r.OwnerID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return r.toDomain(), nil
}

// Create inserts a new company.
func (r *Repo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanCompany(q.QueryRow(ctx, createCompanySQL,
		c.ID, c.Name, c.Description, c.Visible, c.OwnerID, c.CreatedAt, c.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "company", c.ID)
	}
	return created, nil
}

// GetByID returns a company by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCompany(q.QueryRow(ctx, getCompanySQL, id))
	if err != nil {
		return nil, postgres.MapNotFound(err, "company", id, domain.ErrCompanyNotFound)
	}
	return c, nil
}

// GetForUpdate returns a company and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	c, err := scanCompany(q.QueryRow(ctx, getCompanyForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapNotFound(err, "company", id, domain.ErrCompanyNotFound)
	}
	return c, nil
}

// Update applies the non-nil fields of params and returns the updated company.
// An empty params is a plain read.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CompanyUpdateParams) (*domain.Company, error) {
	set := map[string]any{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Description != nil {
		if *params.Description == "" {
			set["description"] = nil
		} else {
			set["description"] = *params.Description
		}
	}
	if params.Visible != nil {
		set["visible"] = *params.Visible
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set["updated_at"] = squirrel.Expr("now()")

	query, args, err := postgres.Builder.
		Update("companies").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + companyColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update company query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	c, err := scanCompany(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapNotFound(err, "company", id, domain.ErrCompanyNotFound)
	}
	return c, nil
}

// Delete removes a company row. Dependent rows must be removed by the caller first.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteCompanySQL, id)
	if err != nil {
		return postgres.MapError(err, "company", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("company %s: %w", id, domain.ErrCompanyNotFound)
	}
	return nil
}

// List returns one page of companies visible to viewerID (visible ones plus
// the viewer's own hidden ones), newest first, plus the total count.
func (r *Repo) List(ctx context.Context, viewerID uuid.UUID, page domain.Page) ([]domain.Company, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	visible := squirrel.Or{squirrel.Eq{"visible": true}, squirrel.Eq{"owner_id": viewerID}}

	query, args, err := postgres.Builder.
		Select(companyColumns).
		From("companies").
		Where(visible).
		OrderBy("created_at DESC", "id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list companies query: %w", err)
	}

	var rows []companyRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}

	countQuery, countArgs, err := postgres.Builder.
		Select("count(*)").
		From("companies").
		Where(visible).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count companies query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}

	companies := make([]domain.Company, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, *row.toDomain())
	}
	return companies, total, nil
}
