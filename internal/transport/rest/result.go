package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/internal/service/result"
)

type resultService interface {
	CreateResult(ctx context.Context, in result.SubmitInput) (*domain.Result, error)
	CompanyRating(ctx context.Context, companyID uuid.UUID) (float64, error)
	GlobalRating(ctx context.Context) (float64, error)

	MyQuizResults(ctx context.Context, quizID uuid.UUID) ([]domain.ChartPoint, error)
	MyLatestResults(ctx context.Context) ([]domain.LatestResult, error)
	CompanyMembersResults(ctx context.Context, companyID uuid.UUID) ([]domain.ChartSeries, error)
	CompanyMemberResults(ctx context.Context, companyID, memberID uuid.UUID) ([]domain.ChartSeries, error)
	CompanyLatestResults(ctx context.Context, companyID uuid.UUID) ([]domain.LatestResult, error)

	ExportCompanyAnswers(ctx context.Context, companyID uuid.UUID, format string) (*domain.ExportedFile, error)
	ExportUserAnswers(ctx context.Context, companyID, targetID uuid.UUID, format string) (*domain.ExportedFile, error)
	ExportMyAnswers(ctx context.Context, format string) (*domain.ExportedFile, error)
}

// ResultHandler serves quiz attempts, ratings, analytics and exports.
type ResultHandler struct {
	svc resultService
	log *slog.Logger
}

// NewResultHandler creates a ResultHandler.
func NewResultHandler(svc resultService, logger *slog.Logger) *ResultHandler {
	return &ResultHandler{svc: svc, log: logger.With("handler", "result")}
}

type submitRequest struct {
	Answers map[uuid.UUID][]string `json:"answers"`
}

// Submit handles POST /quizzes/{id}/results.
func (h *ResultHandler) Submit(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.CreateResult(r.Context(), result.SubmitInput{QuizID: quizID, Answers: req.Answers})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResultResponse(res))
}

// CompanyRating handles GET /companies/{id}/rating.
func (h *ResultHandler) CompanyRating(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rating, err := h.svc.CompanyRating(r.Context(), companyID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ratingResponse{Rating: rating})
}

// GlobalRating handles GET /me/rating.
func (h *ResultHandler) GlobalRating(w http.ResponseWriter, r *http.Request) {
	rating, err := h.svc.GlobalRating(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ratingResponse{Rating: rating})
}

// MyQuizResults handles GET /me/analytics/quizzes/{id}.
func (h *ResultHandler) MyQuizResults(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	points, err := h.svc.MyQuizResults(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// MyLatestResults handles GET /me/analytics/latest.
func (h *ResultHandler) MyLatestResults(w http.ResponseWriter, r *http.Request) {
	latest, err := h.svc.MyLatestResults(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, latest)
}

// CompanyMembersResults handles GET /companies/{id}/analytics/members.
func (h *ResultHandler) CompanyMembersResults(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	series, err := h.svc.CompanyMembersResults(r.Context(), companyID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// CompanyMemberResults handles GET /companies/{id}/analytics/members/{memberID}.
func (h *ResultHandler) CompanyMemberResults(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	memberID, ok := pathUUID(w, r, "memberID")
	if !ok {
		return
	}
	series, err := h.svc.CompanyMemberResults(r.Context(), companyID, memberID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// CompanyLatestResults handles GET /companies/{id}/analytics/latest.
func (h *ResultHandler) CompanyLatestResults(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	latest, err := h.svc.CompanyLatestResults(r.Context(), companyID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, latest)
}

// ExportCompany handles GET /companies/{id}/export?format=csv|json.
func (h *ResultHandler) ExportCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	f, err := h.svc.ExportCompanyAnswers(r.Context(), companyID, r.URL.Query().Get("format"))
	h.sendFile(w, r, f, err)
}

// ExportUser handles GET /companies/{id}/users/{userID}/export?format=csv|json.
func (h *ResultHandler) ExportUser(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}
	f, err := h.svc.ExportUserAnswers(r.Context(), companyID, userID, r.URL.Query().Get("format"))
	h.sendFile(w, r, f, err)
}

// ExportMine handles GET /me/export?format=csv|json.
func (h *ResultHandler) ExportMine(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.ExportMyAnswers(r.Context(), r.URL.Query().Get("format"))
	h.sendFile(w, r, f, err)
}

func (h *ResultHandler) sendFile(w http.ResponseWriter, r *http.Request, f *domain.ExportedFile, err error) {
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeFile(w, f)
}
