package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

type notificationService interface {
	ListUnread(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
}

// NotificationHandler serves the caller's notifications.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// ListUnread handles GET /notifications.
func (h *NotificationHandler) ListUnread(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListUnread(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toNotificationResponse))
}

// MarkRead handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	n, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponse(n))
}
