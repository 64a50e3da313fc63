package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func mapSlice[S, T any](in []S, f func(*S) T) []T {
	out := make([]T, 0, len(in))
	for i := range in {
		out = append(out, f(&in[i]))
	}
	return out
}

type companyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Visible     bool      `json:"visible"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCompanyResponse(c *domain.Company) companyResponse {
	return companyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Visible:     c.Visible,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type memberResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CompanyID uuid.UUID `json:"company_id"`
	Role      string    `json:"role"`
}

func toMemberResponse(m *domain.CompanyMember) memberResponse {
	return memberResponse{ID: m.ID, UserID: m.UserID, CompanyID: m.CompanyID, Role: string(m.Role)}
}

type memberViewResponse struct {
	MemberID    uuid.UUID  `json:"member_id"`
	UserID      uuid.UUID  `json:"user_id"`
	Username    string     `json:"username"`
	CompanyID   uuid.UUID  `json:"company_id"`
	CompanyName string     `json:"company_name"`
	Role        string     `json:"role"`
	ActionID    *uuid.UUID `json:"action_id"`
}

func toMemberViewResponse(v *domain.MemberView) memberViewResponse {
	return memberViewResponse{
		MemberID:    v.MemberID,
		UserID:      v.UserID,
		Username:    v.Username,
		CompanyID:   v.CompanyID,
		CompanyName: v.CompanyName,
		Role:        string(v.Role),
		ActionID:    v.ActionID,
	}
}

type actionResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CompanyID uuid.UUID `json:"company_id"`
	Status    string    `json:"status"`
	Type      string    `json:"type"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toActionResponse(a *domain.Action) actionResponse {
	return actionResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		CompanyID: a.CompanyID,
		Status:    string(a.Status),
		Type:      string(a.Type),
		UpdatedAt: a.UpdatedAt,
	}
}

type actionViewResponse struct {
	ActionID    uuid.UUID `json:"action_id"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	CompanyID   uuid.UUID `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
}

func toActionViewResponse(v *domain.ActionView) actionViewResponse {
	return actionViewResponse{
		ActionID:    v.ActionID,
		UserID:      v.UserID,
		Username:    v.Username,
		CompanyID:   v.CompanyID,
		CompanyName: v.CompanyName,
		Status:      string(v.Status),
		Type:        string(v.Type),
	}
}

type questionResponse struct {
	ID            uuid.UUID `json:"id"`
	QuestionText  string    `json:"question_text"`
	CorrectAnswer []string  `json:"correct_answer"`
	AnswerOptions []string  `json:"answer_options"`
}

func toQuestionResponse(q *domain.Question) questionResponse {
	return questionResponse{
		ID:            q.ID,
		QuestionText:  q.QuestionText,
		CorrectAnswer: q.CorrectAnswer,
		AnswerOptions: q.AnswerOptions,
	}
}

type quizResponse struct {
	ID            uuid.UUID          `json:"id"`
	CompanyID     uuid.UUID          `json:"company_id"`
	Name          string             `json:"name"`
	Description   *string            `json:"description"`
	FrequencyDays int                `json:"frequency_days"`
	IsActive      bool               `json:"is_active"`
	Questions     []questionResponse `json:"questions,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func toQuizResponse(q *domain.Quiz) quizResponse {
	return quizResponse{
		ID:            q.ID,
		CompanyID:     q.CompanyID,
		Name:          q.Name,
		Description:   q.Description,
		FrequencyDays: q.FrequencyDays,
		IsActive:      q.IsActive,
		Questions:     mapSlice(q.Questions, toQuestionResponse),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

type resultResponse struct {
	ID              uuid.UUID `json:"id"`
	CompanyMemberID uuid.UUID `json:"company_member_id"`
	QuizID          uuid.UUID `json:"quiz_id"`
	Score           float64   `json:"score"`
	TotalQuestions  int       `json:"total_questions"`
	CorrectAnswers  int       `json:"correct_answers"`
	CreatedAt       time.Time `json:"created_at"`
}

func toResultResponse(r *domain.Result) resultResponse {
	return resultResponse{
		ID:              r.ID,
		CompanyMemberID: r.CompanyMemberID,
		QuizID:          r.QuizID,
		Score:           r.Score,
		TotalQuestions:  r.TotalQuestions,
		CorrectAnswers:  r.CorrectAnswers,
		CreatedAt:       r.CreatedAt,
	}
}

type ratingResponse struct {
	Rating float64 `json:"rating"`
}

type notificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{ID: n.ID, Text: n.Text, IsRead: n.IsRead, CreatedAt: n.CreatedAt}
}
