package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts a user with a unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholde",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCompany inserts a visible company owned by owner together with the OWNER membership.
func SeedCompany(t *testing.T, pool *pgxpool.Pool, owner domain.User) domain.Company {
	t.Helper()

	ts := now()
	company := domain.Company{
		ID:        uuid.New(),
		Name:      "company-" + uniqueSuffix(),
		Visible:   true,
		OwnerID:   owner.ID,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO companies (id, name, visible, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		company.ID, company.Name, company.Visible, company.OwnerID, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}

	SeedMember(t, pool, company.ID, owner.ID, domain.MemberRoleOwner)
	return company
}

// SeedMember inserts a membership row.
func SeedMember(t *testing.T, pool *pgxpool.Pool, companyID, userID uuid.UUID, role domain.MemberRole) domain.CompanyMember {
	t.Helper()

	m := domain.CompanyMember{
		ID:        uuid.New(),
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO company_members (id, user_id, company_id, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.UserID, m.CompanyID, string(m.Role), m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}
	return m
}

// SeedAction inserts an action row with the given status and type.
func SeedAction(t *testing.T, pool *pgxpool.Pool, companyID, userID uuid.UUID, status domain.ActionStatus, typ domain.ActionType) domain.Action {
	t.Helper()

	ts := now()
	a := domain.Action{
		ID:        uuid.New(),
		UserID:    userID,
		CompanyID: companyID,
		Status:    status,
		Type:      typ,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO actions (id, user_id, company_id, status, type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.UserID, a.CompanyID, string(a.Status), string(a.Type), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAction: %v", err)
	}
	return a
}

// SeedQuiz inserts an active quiz with two questions.
func SeedQuiz(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID) domain.Quiz {
	t.Helper()
	ctx := context.Background()

	ts := now()
	quiz := domain.Quiz{
		ID:            uuid.New(),
		CompanyID:     companyID,
		Name:          "quiz-" + uniqueSuffix(),
		FrequencyDays: 1,
		IsActive:      true,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO quizzes (id, company_id, name, frequency_days, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		quiz.ID, quiz.CompanyID, quiz.Name, quiz.FrequencyDays, quiz.IsActive, quiz.CreatedAt, quiz.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuiz insert quiz: %v", err)
	}

	for i, text := range []string{"2 + 2", "capital of France"} {
		q := domain.Question{
			ID:            uuid.New(),
			QuizID:        quiz.ID,
			QuestionText:  text,
			CorrectAnswer: []string{"a"},
			AnswerOptions: []string{"a", "b"},
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO questions (id, quiz_id, question_text, correct_answer, answer_options, position)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			q.ID, q.QuizID, q.QuestionText, q.CorrectAnswer, q.AnswerOptions, i,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedQuiz insert question: %v", err)
		}
		quiz.Questions = append(quiz.Questions, q)
	}

	return quiz
}
