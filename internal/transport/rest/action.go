package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

type actionService interface {
	CreateInvite(ctx context.Context, companyID, userID uuid.UUID) (*domain.Action, error)
	AcceptInvite(ctx context.Context, actionID uuid.UUID) (*domain.Action, error)
	DeclineInvite(ctx context.Context, actionID uuid.UUID) (*domain.Action, error)
	CancelInvite(ctx context.Context, actionID uuid.UUID) error

	CreateRequest(ctx context.Context, companyID uuid.UUID) (*domain.Action, error)
	AcceptRequest(ctx context.Context, actionID uuid.UUID) (*domain.Action, error)
	DeclineRequest(ctx context.Context, actionID uuid.UUID) (*domain.Action, error)
	CancelRequest(ctx context.Context, actionID uuid.UUID) error

	LeaveCompany(ctx context.Context, actionID uuid.UUID) error
	KickFromCompany(ctx context.Context, actionID uuid.UUID) error
	AddAdmin(ctx context.Context, companyID, userID uuid.UUID) (*domain.CompanyMember, error)
	RemoveAdmin(ctx context.Context, companyID, userID uuid.UUID) (*domain.CompanyMember, error)

	CompanyInvites(ctx context.Context, companyID uuid.UUID) ([]domain.ActionView, error)
	CompanyRequests(ctx context.Context, companyID uuid.UUID) ([]domain.ActionView, error)
	CompanyMembers(ctx context.Context, companyID uuid.UUID) ([]domain.MemberView, error)
	CompanyAdmins(ctx context.Context, companyID uuid.UUID) ([]domain.MemberView, error)
	MyInvites(ctx context.Context, scope domain.Scope) ([]domain.ActionView, error)
	MyRequests(ctx context.Context, scope domain.Scope) ([]domain.ActionView, error)
	MyCompanies(ctx context.Context, scope domain.Scope) ([]domain.MemberView, error)
}

// ActionHandler serves invitation, request and membership endpoints.
type ActionHandler struct {
	svc actionService
	log *slog.Logger
}

// NewActionHandler creates an ActionHandler.
func NewActionHandler(svc actionService, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{svc: svc, log: logger.With("handler", "action")}
}

type userRefRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

type actionFunc func(ctx context.Context, id uuid.UUID) (*domain.Action, error)

type closeFunc func(ctx context.Context, id uuid.UUID) error

type actionListFunc func(ctx context.Context, companyID uuid.UUID) ([]domain.ActionView, error)

type memberListFunc func(ctx context.Context, companyID uuid.UUID) ([]domain.MemberView, error)

type scopedListFunc func(ctx context.Context, scope domain.Scope) ([]domain.ActionView, error)

// CreateInvite handles POST /companies/{id}/invites.
func (h *ActionHandler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	companyID, req, ok := h.companyUser(w, r)
	if !ok {
		return
	}
	a, err := h.svc.CreateInvite(r.Context(), companyID, req.UserID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActionResponse(a))
}

// CreateRequest handles POST /companies/{id}/requests.
func (h *ActionHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	a, err := h.svc.CreateRequest(r.Context(), companyID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActionResponse(a))
}

// AcceptInvite handles POST /actions/{id}/invite/accept.
func (h *ActionHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.svc.AcceptInvite)
}

// DeclineInvite handles POST /actions/{id}/invite/decline.
func (h *ActionHandler) DeclineInvite(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.svc.DeclineInvite)
}

// CancelInvite handles DELETE /actions/{id}/invite.
func (h *ActionHandler) CancelInvite(w http.ResponseWriter, r *http.Request) {
	h.close(w, r, h.svc.CancelInvite)
}

// AcceptRequest handles POST /actions/{id}/request/accept.
func (h *ActionHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.svc.AcceptRequest)
}

// DeclineRequest handles POST /actions/{id}/request/decline.
func (h *ActionHandler) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.svc.DeclineRequest)
}

// CancelRequest handles DELETE /actions/{id}/request.
func (h *ActionHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	h.close(w, r, h.svc.CancelRequest)
}

// Leave handles POST /actions/{id}/leave.
func (h *ActionHandler) Leave(w http.ResponseWriter, r *http.Request) {
	h.close(w, r, h.svc.LeaveCompany)
}

// Kick handles POST /actions/{id}/kick.
func (h *ActionHandler) Kick(w http.ResponseWriter, r *http.Request) {
	h.close(w, r, h.svc.KickFromCompany)
}

// AddAdmin handles POST /companies/{id}/admins.
func (h *ActionHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	companyID, req, ok := h.companyUser(w, r)
	if !ok {
		return
	}
	m, err := h.svc.AddAdmin(r.Context(), companyID, req.UserID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(m))
}

// RemoveAdmin handles DELETE /companies/{id}/admins/{userID}.
func (h *ActionHandler) RemoveAdmin(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}
	m, err := h.svc.RemoveAdmin(r.Context(), companyID, userID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(m))
}

// CompanyInvites handles GET /companies/{id}/invites.
func (h *ActionHandler) CompanyInvites(w http.ResponseWriter, r *http.Request) {
	h.companyActions(w, r, h.svc.CompanyInvites)
}

// CompanyRequests handles GET /companies/{id}/requests.
func (h *ActionHandler) CompanyRequests(w http.ResponseWriter, r *http.Request) {
	h.companyActions(w, r, h.svc.CompanyRequests)
}

// CompanyMembers handles GET /companies/{id}/members.
func (h *ActionHandler) CompanyMembers(w http.ResponseWriter, r *http.Request) {
	h.companyMembers(w, r, h.svc.CompanyMembers)
}

// CompanyAdmins handles GET /companies/{id}/admins.
func (h *ActionHandler) CompanyAdmins(w http.ResponseWriter, r *http.Request) {
	h.companyMembers(w, r, h.svc.CompanyAdmins)
}

// MyInvites handles GET /me/invites?company_id=.
func (h *ActionHandler) MyInvites(w http.ResponseWriter, r *http.Request) {
	h.myActions(w, r, h.svc.MyInvites)
}

// MyRequests handles GET /me/requests?company_id=.
func (h *ActionHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	h.myActions(w, r, h.svc.MyRequests)
}

// MyCompanies handles GET /me/companies?company_id=.
func (h *ActionHandler) MyCompanies(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeParam(w, r)
	if !ok {
		return
	}
	views, err := h.svc.MyCompanies(r.Context(), scope)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(views, toMemberViewResponse))
}

func (h *ActionHandler) companyUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, userRefRequest, bool) {
	var req userRefRequest
	companyID, ok := pathUUID(w, r, "id")
	if !ok || !decodeJSON(w, r, &req) {
		return uuid.Nil, req, false
	}
	return companyID, req, true
}

func (h *ActionHandler) answer(w http.ResponseWriter, r *http.Request, fn actionFunc) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	a, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActionResponse(a))
}

func (h *ActionHandler) close(w http.ResponseWriter, r *http.Request, fn closeFunc) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := fn(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeNoContent(w)
}

func (h *ActionHandler) companyActions(w http.ResponseWriter, r *http.Request, fn actionListFunc) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	views, err := fn(r.Context(), companyID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(views, toActionViewResponse))
}

func (h *ActionHandler) companyMembers(w http.ResponseWriter, r *http.Request, fn memberListFunc) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	views, err := fn(r.Context(), companyID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(views, toMemberViewResponse))
}

func (h *ActionHandler) myActions(w http.ResponseWriter, r *http.Request, fn scopedListFunc) {
	scope, ok := scopeParam(w, r)
	if !ok {
		return
	}
	views, err := fn(r.Context(), scope)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(views, toActionViewResponse))
}
