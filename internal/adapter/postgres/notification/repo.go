// Package notification implements the user Notification repository using PostgreSQL.
package notification

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/quizly-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizly-backend/internal/domain"
)

const (
	notificationColumns = `id, user_id, text, is_read, created_at`

	getNotificationSQL = `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`

	listUnreadSQL = `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1 AND NOT is_read
		ORDER BY created_at DESC, id`

	markReadSQL = `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1
		RETURNING ` + notificationColumns
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CreateMany inserts notifications in one statement. An empty slice is a no-op.
func (r *Repo) CreateMany(ctx context.Context, items []domain.Notification) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	b := postgres.Builder.
		Insert("notifications").
		Columns("id", "user_id", "text", "is_read", "created_at")
	for _, n := range items {
		b = b.Values(n.ID, n.UserID, n.Text, n.IsRead, n.CreatedAt)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert notifications query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "notification", items[0].ID)
	}
	return int(tag.RowsAffected()), nil
}

// GetByID returns a notification by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	var n domain.Notification
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, getNotificationSQL, id); err != nil {
		return nil, postgres.MapNotFound(err, "notification", id, domain.ErrNotificationNotFound)
	}
	return &n, nil
}

// ListUnread returns the unread notifications of a user, newest first.
func (r *Repo) ListUnread(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	items := []domain.Notification{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &items, listUnreadSQL, userID); err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	return items, nil
}

// MarkRead flags a notification as read and returns it. Marking twice is not an error.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	var n domain.Notification
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, markReadSQL, id); err != nil {
		return nil, postgres.MapNotFound(err, "notification", id, domain.ErrNotificationNotFound)
	}
	return &n, nil
}
