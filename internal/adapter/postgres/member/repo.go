// Package member implements the CompanyMember repository using PostgreSQL.
package member

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

const uniqueUserCompany = "company_members_user_company_key"

const (
	memberColumns = `id, user_id, company_id, role, created_at`

	createMemberSQL = `
		INSERT INTO company_members (id, user_id, company_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + memberColumns

	getMemberSQL     = `SELECT ` + memberColumns + ` FROM company_members WHERE company_id = $1 AND user_id = $2`
	getMemberByIDSQL = `SELECT ` + memberColumns + ` FROM company_members WHERE id = $1`

	updateRoleSQL = `
		UPDATE company_members SET role = $2
		WHERE id = $1
		RETURNING ` + memberColumns

	deleteMemberSQL           = `DELETE FROM company_members WHERE company_id = $1 AND user_id = $2`
	deleteMembersByCompanySQL = `DELETE FROM company_members WHERE company_id = $1`
	listUserIDsSQL            = `SELECT user_id FROM company_members WHERE company_id = $1 ORDER BY created_at`
)

// viewColumns projects company_members joined with users, companies and the
// pair's action row into domain.MemberView.
const viewColumns = `m.id AS member_id, m.user_id, u.username, m.company_id, c.name AS company_name,
	m.role, a.id AS action_id, m.created_at`

// Repo provides company membership persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new member repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func scanMember(row pgx.Row) (*domain.CompanyMember, error) {
	var (
		m    domain.CompanyMember
		role string
	)
	if err := row.Scan(&m.ID, &m.UserID, &m.CompanyID, &role, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Role = domain.MemberRole(role)
	return &m, nil
}

// Create inserts a membership. A second membership of the same user in the
// same company yields domain.ErrAlreadyInCompany.
func (r *Repo) Create(ctx context.Context, m *domain.CompanyMember) (*domain.CompanyMember, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanMember(q.QueryRow(ctx, createMemberSQL,
		m.ID, m.UserID, m.CompanyID, string(m.Role), m.CreatedAt,
	))
	if err != nil {
		if postgres.IsUniqueViolation(err, uniqueUserCompany) {
			return nil, fmt.Errorf("company_member %s: %w", m.ID, domain.ErrAlreadyInCompany)
		}
		return nil, postgres.MapError(err, "company_member", m.ID)
	}
	return created, nil
}

// Get returns the membership of userID in companyID.
func (r *Repo) Get(ctx context.Context, companyID, userID uuid.UUID) (*domain.CompanyMember, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	m, err := scanMember(q.QueryRow(ctx, getMemberSQL, companyID, userID))
	if err != nil {
		return nil, postgres.MapNotFound(err, "company_member", userID, domain.ErrMemberNotFound)
	}
	return m, nil
}

// GetByID returns a membership by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyMember, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	m, err := scanMember(q.QueryRow(ctx, getMemberByIDSQL, id))
	if err != nil {
		return nil, postgres.MapNotFound(err, "company_member", id, domain.ErrMemberNotFound)
	}
	return m, nil
}

// UpdateRole sets the role of a membership.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.MemberRole) (*domain.CompanyMember, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	m, err := scanMember(q.QueryRow(ctx, updateRoleSQL, id, string(role)))
	if err != nil {
		return nil, postgres.MapNotFound(err, "company_member", id, domain.ErrMemberNotFound)
	}
	return m, nil
}

// Delete removes the membership of userID in companyID.
func (r *Repo) Delete(ctx context.Context, companyID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteMemberSQL, companyID, userID)
	if err != nil {
		return postgres.MapError(err, "company_member", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("company_member %s: %w", userID, domain.ErrMemberNotFound)
	}
	return nil
}

// DeleteByCompany removes every membership of a company and returns how many went.
func (r *Repo) DeleteByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteMembersByCompanySQL, companyID)
	if err != nil {
		return 0, fmt.Errorf("delete company_members of %s: %w", companyID, err)
	}
	return int(tag.RowsAffected()), nil
}

// ListUserIDs returns the user ids of every member of a company.
func (r *Repo) ListUserIDs(ctx context.Context, companyID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, q, &ids, listUserIDsSQL, companyID); err != nil {
		return nil, fmt.Errorf("list member ids of %s: %w", companyID, err)
	}
	return ids, nil
}

func viewSelect() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(viewColumns).
		From("company_members m").
		Join("users u ON u.id = m.user_id").
		Join("companies c ON c.id = m.company_id").
		LeftJoin("actions a ON a.user_id = m.user_id AND a.company_id = m.company_id")
}

// ListByCompany returns the members of a company. A non-empty roles narrows
// the result to those roles.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID, roles ...domain.MemberRole) ([]domain.MemberView, error) {
	b := viewSelect().Where(squirrel.Eq{"m.company_id": companyID})
	if len(roles) > 0 {
		names := make([]string, len(roles))
		for i, role := range roles {
			names[i] = string(role)
		}
		b = b.Where(squirrel.Eq{"m.role": names})
	}
	return r.selectViews(ctx, b.OrderBy("m.created_at", "m.id"))
}

// ListByUser returns the memberships of a user within scope.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, scope domain.Scope) ([]domain.MemberView, error) {
	b := viewSelect().Where(squirrel.Eq{"m.user_id": userID})
	if companyID, ok := scope.CompanyID(); ok {
		b = b.Where(squirrel.Eq{"m.company_id": companyID})
	}
	return r.selectViews(ctx, b.OrderBy("m.created_at", "m.id"))
}

func (r *Repo) selectViews(ctx context.Context, b squirrel.SelectBuilder) ([]domain.MemberView, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build member view query: %w", err)
	}

	views := []domain.MemberView{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &views, query, args...); err != nil {
		return nil, fmt.Errorf("list member views: %w", err)
	}
	return views, nil
}
