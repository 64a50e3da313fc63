// Package notification stores user notifications and produces quiz reminders.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/pkg/ctxutil"
)

type notificationRepo interface {
	CreateMany(ctx context.Context, items []domain.Notification) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListUnread(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
}

// reminderSource finds attempts that are due to be repeated.
type reminderSource interface {
	DueReminders(ctx context.Context, now time.Time) ([]domain.DueReminder, error)
}

type recorder interface {
	RemindersSent(n int)
}

// Service implements notification delivery and reading.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	reminders     reminderSource
	metrics       recorder
	now           func() time.Time
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, notifications notificationRepo, reminders reminderSource, metrics recorder) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		reminders:     reminders,
		metrics:       metrics,
		now:           time.Now,
	}
}

// Notify stores the same text for every listed user. Duplicate ids get one notification.
func (s *Service) Notify(ctx context.Context, userIDs []uuid.UUID, text string) error {
	ids := slices.Clone(userIDs)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)

	now := s.now().UTC()
	items := make([]domain.Notification, 0, len(ids))
	for _, id := range ids {
		items = append(items, domain.Notification{
			ID:        uuid.New(),
			UserID:    id,
			Text:      text,
			CreatedAt: now,
		})
	}

	n, err := s.notifications.CreateMany(ctx, items)
	if err != nil {
		return fmt.Errorf("notification.Notify: %w", err)
	}
	s.log.DebugContext(ctx, "notifications stored", slog.Int("count", n))
	return nil
}

// ListUnread returns the caller's unread notifications, newest first.
func (s *Service) ListUnread(ctx context.Context) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.notifications.ListUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.ListUnread: %w", err)
	}
	return items, nil
}

// MarkRead marks one of the caller's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("notification.MarkRead: %w", err)
	}
	if n.UserID != userID {
		return nil, domain.ErrNotPermission
	}
	if n.IsRead {
		return n, nil
	}

	updated, err := s.notifications.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("notification.MarkRead: %w", err)
	}
	return updated, nil
}

// SendQuizReminders notifies every user whose last attempt at an active quiz
// is older than the quiz frequency. It returns how many reminders were stored.
func (s *Service) SendQuizReminders(ctx context.Context) (int, error) {
	now := s.now().UTC()

	due, err := s.reminders.DueReminders(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("notification.SendQuizReminders: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	items := make([]domain.Notification, 0, len(due))
	for _, d := range due {
		items = append(items, domain.Notification{
			ID:        uuid.New(),
			UserID:    d.UserID,
			Text:      domain.QuizReminderNotification(d.QuizName),
			CreatedAt: now,
		})
	}

	n, err := s.notifications.CreateMany(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("notification.SendQuizReminders: %w", err)
	}
	s.metrics.RemindersSent(n)

	s.log.InfoContext(ctx, "quiz reminders sent", slog.Int("count", n))
	return n, nil
}
