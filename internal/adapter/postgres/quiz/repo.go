// Package quiz implements the Quiz and Question repository using PostgreSQL.
package quiz

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

const uniqueCompanyName = "quizzes_company_name_key"

const (
	quizColumns     = `id, company_id, name, description, frequency_days, is_active, created_at, updated_at`
	questionColumns = `id, quiz_id, question_text, correct_answer, answer_options`

	createQuizSQL = `
		INSERT INTO quizzes (id, company_id, name, description, frequency_days, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + quizColumns

	getQuizSQL       = `SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1`
	getQuizByNameSQL = `SELECT ` + quizColumns + ` FROM quizzes WHERE company_id = $1 AND name = $2`
	setActiveSQL     = `UPDATE quizzes SET is_active = $2, updated_at = now() WHERE id = $1`

	listQuestionsSQL  = `SELECT ` + questionColumns + ` FROM questions WHERE quiz_id = $1 ORDER BY position, id`
	countQuestionsSQL = `SELECT count(*) FROM questions WHERE quiz_id = $1`

	addQuestionSQL = `
		INSERT INTO questions (id, quiz_id, question_text, correct_answer, answer_options, position)
		SELECT $1, $2, $3, $4, $5, COALESCE(max(position) + 1, 0) FROM questions WHERE quiz_id = $2
		RETURNING ` + questionColumns

	deleteQuestionSQL         = `DELETE FROM questions WHERE quiz_id = $1 AND id = $2`
	deleteQuestionsSQL        = `DELETE FROM questions WHERE quiz_id = $1`
	deleteQuizSQL             = `DELETE FROM quizzes WHERE id = $1`
	deleteQuizzesByCompanySQL = `DELETE FROM quizzes WHERE company_id = $1`
	countQuizzesSQL           = `SELECT count(*) FROM quizzes WHERE company_id = $1`
)

// Repo provides quiz persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new quiz repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type quizRow struct {
	ID            uuid.UUID `db:"id"`
	CompanyID     uuid.UUID `db:"company_id"`
	Name          string    `db:"name"`
	Description   *string   `db:"description"`
	FrequencyDays int       `db:"frequency_days"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r quizRow) toDomain() *domain.Quiz {
	return &domain.Quiz{
		ID:            r.ID,
		CompanyID:     r.CompanyID,
		Name:          r.Name,
		Description:   r.Description,
		FrequencyDays: r.FrequencyDays,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func scanQuiz(row pgx.Row) (*domain.Quiz, error) {
	var r quizRow
	if err := row.Scan(&r.ID, &r.CompanyID, &r.Name, &r.Description, &r.FrequencyDays,
		&r.IsActive, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return r.toDomain(), nil
}

func mapWriteError(err error, id uuid.UUID) error {
	if postgres.IsUniqueViolation(err, uniqueCompanyName) {
		return fmt.Errorf("quiz %s: %w", id, domain.NewValidationError("name", "a quiz with this name already exists in the company"))
	}
	return postgres.MapNotFound(err, "quiz", id, domain.ErrQuizNotFound)
}

// ---------------------------------------------------------------------------
// Quizzes
// ---------------------------------------------------------------------------

// Create inserts a quiz together with its questions. Call inside a transaction.
func (r *Repo) Create(ctx context.Context, qz *domain.Quiz) (*domain.Quiz, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanQuiz(q.QueryRow(ctx, createQuizSQL,
		qz.ID, qz.CompanyID, qz.Name, qz.Description, qz.FrequencyDays, qz.IsActive, qz.CreatedAt, qz.UpdatedAt,
	))
	if err != nil {
		return nil, mapWriteError(err, qz.ID)
	}

	questions, err := r.insertQuestions(ctx, qz.ID, qz.Questions)
	if err != nil {
		return nil, err
	}
	created.Questions = questions
	return created, nil
}

// GetByID returns a quiz with its questions.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	qz, err := scanQuiz(q.QueryRow(ctx, getQuizSQL, id))
	if err != nil {
		return nil, postgres.MapNotFound(err, "quiz", id, domain.ErrQuizNotFound)
	}

	qz.Questions, err = r.ListQuestions(ctx, id)
	if err != nil {
		return nil, err
	}
	return qz, nil
}

// GetByName returns the quiz of a company with the given name, without questions.
func (r *Repo) GetByName(ctx context.Context, companyID uuid.UUID, name string) (*domain.Quiz, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	qz, err := scanQuiz(q.QueryRow(ctx, getQuizByNameSQL, companyID, name))
	if err != nil {
		return nil, postgres.MapNotFound(err, "quiz", uuid.Nil, domain.ErrQuizNotFound)
	}
	return qz, nil
}

// Update applies the non-nil scalar fields of params. Questions are replaced
// separately through ReplaceQuestions.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.QuizUpdateParams) (*domain.Quiz, error) {
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
	if params.FrequencyDays != nil {
		set["frequency_days"] = *params.FrequencyDays
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set["updated_at"] = squirrel.Expr("now()")

	query, args, err := postgres.Builder.
		Update("quizzes").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + quizColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update quiz query: %w", err)
	}

	qz, err := scanQuiz(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapWriteError(err, id)
	}
	return qz, nil
}

// SetActive stores the playable flag of a quiz.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, setActiveSQL, id, active)
	if err != nil {
		return postgres.MapError(err, "quiz", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("quiz %s: %w", id, domain.ErrQuizNotFound)
	}
	return nil
}

// Delete removes a quiz row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteQuizSQL, id)
	if err != nil {
		return postgres.MapError(err, "quiz", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("quiz %s: %w", id, domain.ErrQuizNotFound)
	}
	return nil
}

// DeleteByCompany removes every quiz of a company.
func (r *Repo) DeleteByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteQuizzesByCompanySQL, companyID)
	if err != nil {
		return 0, fmt.Errorf("delete quizzes of %s: %w", companyID, err)
	}
	return int(tag.RowsAffected()), nil
}

// ListByCompany returns one page of a company's quizzes, newest first, without
// questions, plus the total count.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID, page domain.Page) ([]domain.Quiz, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Select(quizColumns).
		From("quizzes").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list quizzes query: %w", err)
	}

	var rows []quizRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list quizzes: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuizzesSQL, companyID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count quizzes: %w", err)
	}

	quizzes := make([]domain.Quiz, 0, len(rows))
	for _, row := range rows {
		quizzes = append(quizzes, *row.toDomain())
	}
	return quizzes, total, nil
}

// ---------------------------------------------------------------------------
// Questions
// ---------------------------------------------------------------------------

// ListQuestions returns the questions of a quiz in insertion order.
func (r *Repo) ListQuestions(ctx context.Context, quizID uuid.UUID) ([]domain.Question, error) {
	questions := []domain.Question{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &questions, listQuestionsSQL, quizID); err != nil {
		return nil, fmt.Errorf("list questions of %s: %w", quizID, err)
	}
	return questions, nil
}

// CountQuestions returns how many questions a quiz has.
func (r *Repo) CountQuestions(ctx context.Context, quizID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countQuestionsSQL, quizID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions of %s: %w", quizID, err)
	}
	return n, nil
}

// AddQuestion appends a question to a quiz.
func (r *Repo) AddQuestion(ctx context.Context, question domain.Question) (*domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var created domain.Question
	err := q.QueryRow(ctx, addQuestionSQL,
		question.ID, question.QuizID, question.QuestionText, question.CorrectAnswer, question.AnswerOptions,
	).Scan(&created.ID, &created.QuizID, &created.QuestionText, &created.CorrectAnswer, &created.AnswerOptions)
	if err != nil {
		return nil, postgres.MapNotFound(err, "question", question.ID, domain.ErrQuizNotFound)
	}
	return &created, nil
}

// DeleteQuestion removes one question of a quiz.
func (r *Repo) DeleteQuestion(ctx context.Context, quizID, questionID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteQuestionSQL, quizID, questionID)
	if err != nil {
		return postgres.MapError(err, "question", questionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", questionID, domain.ErrQuestionNotFound)
	}
	return nil
}

// ReplaceQuestions swaps the whole question set of a quiz. Call inside a transaction.
func (r *Repo) ReplaceQuestions(ctx context.Context, quizID uuid.UUID, questions []domain.Question) ([]domain.Question, error) {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteQuestionsSQL, quizID); err != nil {
		return nil, fmt.Errorf("delete questions of %s: %w", quizID, err)
	}
	return r.insertQuestions(ctx, quizID, questions)
}

func (r *Repo) insertQuestions(ctx context.Context, quizID uuid.UUID, questions []domain.Question) ([]domain.Question, error) {
	if len(questions) == 0 {
		return []domain.Question{}, nil
	}

	b := postgres.Builder.
		Insert("questions").
		Columns("id", "quiz_id", "question_text", "correct_answer", "answer_options", "position")
	out := make([]domain.Question, len(questions))
	for i, question := range questions {
		question.QuizID = quizID
		b = b.Values(question.ID, quizID, question.QuestionText, question.CorrectAnswer, question.AnswerOptions, i)
		out[i] = question
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert questions query: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "quiz", quizID)
	}
	return out, nil
}
