// Package result implements the append-only quiz Result repository using PostgreSQL.
package result

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/quizly-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizly-backend/internal/domain"
)

const (
	resultColumns = `id, company_member_id, quiz_id, score, total_questions, correct_answers, created_at`

	createResultSQL = `
		INSERT INTO results (id, company_member_id, quiz_id, score, total_questions, correct_answers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + resultColumns

	listForUserQuizSQL = `
		SELECT r.id, r.company_member_id, r.quiz_id, r.score, r.total_questions, r.correct_answers, r.created_at
		FROM results r
		JOIN company_members m ON m.id = r.company_member_id
		WHERE m.user_id = $1 AND r.quiz_id = $2
		ORDER BY r.created_at, r.id`

	memberAverageSQL = `SELECT COALESCE(avg(score), 0), count(*) FROM results WHERE company_member_id = $1`

	companyAveragesSQL = `
		SELECT avg(r.score)
		FROM results r
		JOIN company_members m ON m.id = r.company_member_id
		WHERE m.user_id = $1
		GROUP BY m.company_id
		ORDER BY m.company_id`

	dueRemindersSQL = `
		SELECT m.user_id, r.quiz_id, q.name AS quiz_name, max(r.created_at) AS last_attempt
		FROM results r
		JOIN company_members m ON m.id = r.company_member_id
		JOIN quizzes q ON q.id = r.quiz_id
		WHERE q.is_active
		GROUP BY m.user_id, r.quiz_id, q.name, q.frequency_days
		HAVING max(r.created_at) < $1::timestamptz - make_interval(days => q.frequency_days)
		ORDER BY m.user_id, r.quiz_id`

	deleteByQuizSQL    = `DELETE FROM results WHERE quiz_id = $1`
	deleteByMemberSQL  = `DELETE FROM results WHERE company_member_id = $1`
	deleteByCompanySQL = `
		DELETE FROM results
		WHERE company_member_id IN (SELECT id FROM company_members WHERE company_id = $1)
		   OR quiz_id IN (SELECT id FROM quizzes WHERE company_id = $1)`
)

const rowColumns = `r.id, r.company_member_id, r.quiz_id, r.score, r.total_questions, r.correct_answers, r.created_at,
	m.user_id, u.username, m.company_id, c.name AS company_name, q.name AS quiz_name`

const latestColumns = `m.user_id, u.username, r.quiz_id, q.name AS quiz_name, m.company_id, c.name AS company_name,
	max(r.created_at) AS last_attempt, avg(r.score) AS average_score`

// Repo provides result persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new result repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends a graded attempt.
func (r *Repo) Create(ctx context.Context, res *domain.Result) (*domain.Result, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var created domain.Result
	err := q.QueryRow(ctx, createResultSQL,
		res.ID, res.CompanyMemberID, res.QuizID, res.Score, res.TotalQuestions, res.CorrectAnswers, res.CreatedAt,
	).Scan(&created.ID, &created.CompanyMemberID, &created.QuizID, &created.Score,
		&created.TotalQuestions, &created.CorrectAnswers, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "result", res.ID)
	}
	return &created, nil
}

// ListForUserQuiz returns every attempt of a user at a quiz, oldest first.
func (r *Repo) ListForUserQuiz(ctx context.Context, userID, quizID uuid.UUID) ([]domain.Result, error) {
	results := []domain.Result{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &results, listForUserQuizSQL, userID, quizID); err != nil {
		return nil, fmt.Errorf("list results of user %s quiz %s: %w", userID, quizID, err)
	}
	return results, nil
}

// MemberAverage returns the mean score and attempt count of one membership.
func (r *Repo) MemberAverage(ctx context.Context, memberID uuid.UUID) (float64, int, error) {
	var (
		avg   float64
		count int
	)
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, memberAverageSQL, memberID).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("average of member %s: %w", memberID, err)
	}
	return avg, count, nil
}

// CompanyAverages returns the user's mean score in each company where the
// user has at least one attempt.
func (r *Repo) CompanyAverages(ctx context.Context, userID uuid.UUID) ([]float64, error) {
	avgs := []float64{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &avgs, companyAveragesSQL, userID); err != nil {
		return nil, fmt.Errorf("company averages of %s: %w", userID, err)
	}
	return avgs, nil
}

func rowSelect() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(rowColumns).
		From("results r").
		Join("company_members m ON m.id = r.company_member_id").
		Join("users u ON u.id = m.user_id").
		Join("companies c ON c.id = m.company_id").
		Join("quizzes q ON q.id = r.quiz_id")
}

// ListByCompany returns every attempt made in a company, oldest first.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ResultRow, error) {
	return r.selectRows(ctx, rowSelect().
		Where(squirrel.Eq{"m.company_id": companyID}).
		OrderBy("r.created_at", "r.id"))
}

// ListByMember returns every attempt of one membership, oldest first.
func (r *Repo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]domain.ResultRow, error) {
	return r.selectRows(ctx, rowSelect().
		Where(squirrel.Eq{"r.company_member_id": memberID}).
		OrderBy("r.created_at", "r.id"))
}

func (r *Repo) selectRows(ctx context.Context, b squirrel.SelectBuilder) ([]domain.ResultRow, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build result rows query: %w", err)
	}

	rows := []domain.ResultRow{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list result rows: %w", err)
	}
	return rows, nil
}

func latestSelect() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(latestColumns).
		From("results r").
		Join("company_members m ON m.id = r.company_member_id").
		Join("users u ON u.id = m.user_id").
		Join("companies c ON c.id = m.company_id").
		Join("quizzes q ON q.id = r.quiz_id").
		GroupBy("m.user_id", "u.username", "r.quiz_id", "q.name", "m.company_id", "c.name").
		OrderBy("last_attempt DESC")
}

// LatestByUser returns, per quiz the user attempted, the last attempt time
// and the unrounded average score.
func (r *Repo) LatestByUser(ctx context.Context, userID uuid.UUID) ([]domain.LatestResult, error) {
	return r.selectLatest(ctx, latestSelect().Where(squirrel.Eq{"m.user_id": userID}))
}

// LatestByCompany returns the same projection for every member of a company.
func (r *Repo) LatestByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.LatestResult, error) {
	return r.selectLatest(ctx, latestSelect().Where(squirrel.Eq{"m.company_id": companyID}))
}

func (r *Repo) selectLatest(ctx context.Context, b squirrel.SelectBuilder) ([]domain.LatestResult, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest results query: %w", err)
	}

	latest := []domain.LatestResult{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &latest, query, args...); err != nil {
		return nil, fmt.Errorf("list latest results: %w", err)
	}
	return latest, nil
}

// DueReminders returns the (user, active quiz) pairs whose last attempt is
// older than the quiz frequency at the given instant.
func (r *Repo) DueReminders(ctx context.Context, now time.Time) ([]domain.DueReminder, error) {
	due := []domain.DueReminder{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &due, dueRemindersSQL, now); err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	return due, nil
}

// DeleteByQuiz removes every attempt at a quiz.
func (r *Repo) DeleteByQuiz(ctx context.Context, quizID uuid.UUID) (int, error) {
	return r.exec(ctx, deleteByQuizSQL, quizID)
}

// DeleteByMember removes every attempt of a membership.
func (r *Repo) DeleteByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	return r.exec(ctx, deleteByMemberSQL, memberID)
}

// DeleteByCompany removes every attempt made in a company or at its quizzes.
func (r *Repo) DeleteByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	return r.exec(ctx, deleteByCompanySQL, companyID)
}

func (r *Repo) exec(ctx context.Context, sql string, id uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, id)
	if err != nil {
		return 0, fmt.Errorf("delete results of %s: %w", id, err)
	}
	return int(tag.RowsAffected()), nil
}
