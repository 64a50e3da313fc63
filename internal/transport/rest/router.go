package rest

import (
	"net/http"

	"github.com/heartmarshall/quizly-backend/internal/transport/middleware"
)

// Handlers groups every endpoint handler of the API.
type Handlers struct {
	Auth          *AuthHandler
	User          *UserHandler
	Company       *CompanyHandler
	Action        *ActionHandler
	Quiz          *QuizHandler
	Result        *ResultHandler
	Notification  *NotificationHandler
	Health        *HealthHandler
	Metrics       http.Handler
	AuthRateLimit middleware.Middleware
}

// NewRouter registers all routes on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	limited := middleware.Chain(h.AuthRateLimit)
	mux.Handle("POST /auth/register", limited(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", limited(http.HandlerFunc(h.Auth.Login)))

	mux.HandleFunc("GET /users/me", h.User.Me)
	mux.HandleFunc("GET /users", h.User.List)
	mux.HandleFunc("GET /users/{id}", h.User.Get)

	mux.HandleFunc("POST /companies", h.Company.Create)
	mux.HandleFunc("GET /companies", h.Company.List)
	mux.HandleFunc("GET /companies/{id}", h.Company.Get)
	mux.HandleFunc("PATCH /companies/{id}", h.Company.Update)
	mux.HandleFunc("DELETE /companies/{id}", h.Company.Delete)

	mux.HandleFunc("POST /companies/{id}/invites", h.Action.CreateInvite)
	mux.HandleFunc("GET /companies/{id}/invites", h.Action.CompanyInvites)
	mux.HandleFunc("POST /companies/{id}/requests", h.Action.CreateRequest)
	mux.HandleFunc("GET /companies/{id}/requests", h.Action.CompanyRequests)
	mux.HandleFunc("GET /companies/{id}/members", h.Action.CompanyMembers)
	mux.HandleFunc("GET /companies/{id}/admins", h.Action.CompanyAdmins)
	mux.HandleFunc("POST /companies/{id}/admins", h.Action.AddAdmin)
	mux.HandleFunc("DELETE /companies/{id}/admins/{userID}", h.Action.RemoveAdmin)

	mux.HandleFunc("POST /actions/{id}/invite/accept", h.Action.AcceptInvite)
	mux.HandleFunc("POST /actions/{id}/invite/decline", h.Action.DeclineInvite)
	mux.HandleFunc("DELETE /actions/{id}/invite", h.Action.CancelInvite)
	mux.HandleFunc("POST /actions/{id}/request/accept", h.Action.AcceptRequest)
	mux.HandleFunc("POST /actions/{id}/request/decline", h.Action.DeclineRequest)
	mux.HandleFunc("DELETE /actions/{id}/request", h.Action.CancelRequest)
	mux.HandleFunc("POST /actions/{id}/leave", h.Action.Leave)
	mux.HandleFunc("POST /actions/{id}/kick", h.Action.Kick)

	mux.HandleFunc("GET /me/invites", h.Action.MyInvites)
	mux.HandleFunc("GET /me/requests", h.Action.MyRequests)
	mux.HandleFunc("GET /me/companies", h.Action.MyCompanies)

	mux.HandleFunc("POST /companies/{id}/quizzes", h.Quiz.Create)
	mux.HandleFunc("GET /companies/{id}/quizzes", h.Quiz.List)
	mux.HandleFunc("POST /companies/{id}/quizzes/import", h.Quiz.Import)
	mux.HandleFunc("GET /quizzes/{id}", h.Quiz.Get)
	mux.HandleFunc("PATCH /quizzes/{id}", h.Quiz.Update)
	mux.HandleFunc("DELETE /quizzes/{id}", h.Quiz.Delete)
	mux.HandleFunc("POST /quizzes/{id}/questions", h.Quiz.AddQuestion)
	mux.HandleFunc("DELETE /quizzes/{id}/questions/{questionID}", h.Quiz.RemoveQuestion)

	mux.HandleFunc("POST /quizzes/{id}/results", h.Result.Submit)
	mux.HandleFunc("GET /companies/{id}/rating", h.Result.CompanyRating)
	mux.HandleFunc("GET /me/rating", h.Result.GlobalRating)
	mux.HandleFunc("GET /me/analytics/quizzes/{id}", h.Result.MyQuizResults)
	mux.HandleFunc("GET /me/analytics/latest", h.Result.MyLatestResults)
	mux.HandleFunc("GET /companies/{id}/analytics/members", h.Result.CompanyMembersResults)
	mux.HandleFunc("GET /companies/{id}/analytics/members/{memberID}", h.Result.CompanyMemberResults)
	mux.HandleFunc("GET /companies/{id}/analytics/latest", h.Result.CompanyLatestResults)
	mux.HandleFunc("GET /companies/{id}/export", h.Result.ExportCompany)
	mux.HandleFunc("GET /companies/{id}/users/{userID}/export", h.Result.ExportUser)
	mux.HandleFunc("GET /me/export", h.Result.ExportMine)

	mux.HandleFunc("GET /notifications", h.Notification.ListUnread)
	mux.HandleFunc("POST /notifications/{id}/read", h.Notification.MarkRead)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", h.Metrics)

	return mux
}
