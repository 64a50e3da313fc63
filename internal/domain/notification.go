package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Notification is a short message stored for a user.
type Notification struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Text      string    `db:"text"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

// InviteNotification is sent to a user who was invited to a company.
func InviteNotification(companyName string) string {
	return fmt.Sprintf("You have been invited to join the %s company.", companyName)
}

// RequestNotification is sent to the owner when a user asks to join.
func RequestNotification(username, companyName string) string {
	return fmt.Sprintf("User %s wants to join the %s company.", username, companyName)
}

// QuizCreatedNotification is sent to company members when a quiz is published.
func QuizCreatedNotification(companyName, quizName string) string {
	return fmt.Sprintf("In %s company, a new quiz '%s' has been created. Take it now!", companyName, quizName)
}

// QuizReminderNotification reminds a user to retake a quiz.
func QuizReminderNotification(quizName string) string {
	return fmt.Sprintf("You should complete %s quiz again!", quizName)
}
