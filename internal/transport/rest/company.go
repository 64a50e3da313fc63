package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/internal/service/company"
)

type companyService interface {
	CreateCompany(ctx context.Context, in company.CreateInput) (*domain.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, in company.UpdateInput) (*domain.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
	GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	ListCompanies(ctx context.Context, in company.ListInput) ([]domain.Company, int, error)
}

// CompanyHandler serves company CRUD endpoints.
type CompanyHandler struct {
	svc companyService
	log *slog.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(svc companyService, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, log: logger.With("handler", "company")}
}

// Create handles POST /companies.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in company.CreateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := h.svc.CreateCompany(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCompanyResponse(c))
}

// Update handles PATCH /companies/{id}.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var in company.UpdateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := h.svc.UpdateCompany(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompanyResponse(c))
}

// Delete handles DELETE /companies/{id}.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCompany(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeNoContent(w)
}

// Get handles GET /companies/{id}.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.svc.GetCompany(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompanyResponse(c))
}

// List handles GET /companies?limit=&offset=.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}
	companies, total, err := h.svc.ListCompanies(r.Context(), company.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[companyResponse]{
		Items: mapSlice(companies, toCompanyResponse),
		Total: total,
	})
}
