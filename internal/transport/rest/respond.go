package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/pkg/ctxutil"
)

const maxJSONBody = 1 << 20

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps a service error to an HTTP status by its kind.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError renders err with the status of its kind. Named domain
// errors keep their message; anything unexpected is logged and hidden.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
		writeError(w, status, "internal server error")
		return
	}

	resp := errorResponse{Error: clientMessage(err)}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Errors
	}
	writeJSON(w, status, resp)
}

// clientMessage returns the innermost named error message without the
// wrapping operation prefixes.
func clientMessage(err error) string {
	var kerr *domain.KindError
	if errors.As(err, &kerr) {
		return kerr.Error()
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	for _, kind := range []error{
		domain.ErrNotFound, domain.ErrAlreadyExists, domain.ErrConflict,
		domain.ErrForbidden, domain.ErrUnauthorized, domain.ErrValidation,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return err.Error()
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads limit and offset. Missing values are zero so the
// service applies its defaults.
func pageParams(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &limit}, {"offset", &offset}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid "+p.name)
			return 0, 0, false
		}
		*p.dst = n
	}
	return limit, offset, true
}

// scopeParam reads the optional company_id query parameter.
func scopeParam(w http.ResponseWriter, r *http.Request) (domain.Scope, bool) {
	v := r.URL.Query().Get("company_id")
	if v == "" {
		return domain.AllCompanies(), true
	}
	id, err := uuid.Parse(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid company_id")
		return domain.Scope{}, false
	}
	return domain.SpecificCompany(id), true
}

func writeFile(w http.ResponseWriter, f *domain.ExportedFile) {
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+f.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Content)))
	w.WriteHeader(http.StatusOK)
	w.Write(f.Content) //nolint:errcheck
}
