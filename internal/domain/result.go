package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result is one graded quiz attempt. Results are append-only.
type Result struct {
	ID              uuid.UUID `db:"id"`
	CompanyMemberID uuid.UUID `db:"company_member_id"`
	QuizID          uuid.UUID `db:"quiz_id"`
	Score           float64   `db:"score"`
	TotalQuestions  int       `db:"total_questions"`
	CorrectAnswers  int       `db:"correct_answers"`
	CreatedAt       time.Time `db:"created_at"`
}

// AnswerDetail is the graded answer to a single question.
type AnswerDetail struct {
	Question   string   `json:"question"`
	UserAnswer []string `json:"user_answer"`
	IsCorrect  bool     `json:"is_correct"`
}

// ResultDetail is the per-question record of an attempt kept in the cache.
type ResultDetail struct {
	ResultID  uuid.UUID      `json:"result_id"`
	UserID    uuid.UUID      `json:"user_id"`
	CompanyID uuid.UUID      `json:"company_id"`
	QuizID    uuid.UUID      `json:"quiz_id"`
	Score     float64        `json:"score"`
	CreatedAt time.Time      `json:"created_at"`
	Questions []AnswerDetail `json:"questions"`
}

// Grade compares the submitted answers with each question's correct answer
// set. Order and duplicates inside an answer do not matter.
func Grade(questions []Question, answers map[uuid.UUID][]string) (int, []AnswerDetail) {
	correct := 0
	details := make([]AnswerDetail, 0, len(questions))
	for _, q := range questions {
		given := answers[q.ID]
		ok := sameSet(given, q.CorrectAnswer)
		if ok {
			correct++
		}
		if given == nil {
			given = []string{}
		}
		details = append(details, AnswerDetail{
			Question:   q.QuestionText,
			UserAnswer: given,
			IsCorrect:  ok,
		})
	}
	return correct, details
}

func sameSet(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	as := make(map[string]struct{}, len(a))
	for _, v := range a {
		as[v] = struct{}{}
	}
	bs := make(map[string]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for v := range as {
		if _, ok := bs[v]; !ok {
			return false
		}
	}
	return true
}

// Round2 rounds half away from zero to two decimal places.
func Round2(f float64) float64 {
	v, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return v
}

// Score returns correct/total rounded to two decimals. Zero total scores zero.
func Score(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	v, _ := decimal.NewFromInt(int64(correct)).
		DivRound(decimal.NewFromInt(int64(total)), 2).
		Float64()
	return v
}

// Average returns the mean of values rounded to two decimals.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	avg, _ := sum.DivRound(decimal.NewFromInt(int64(len(values))), 2).Float64()
	return avg
}

// ChartPoint is the cumulative score after one attempt.
type ChartPoint struct {
	AttemptAt time.Time `json:"attempt_at"`
	Score     float64   `json:"score"`
}

// Chart builds the running correct/total series over results ordered by time.
func Chart(results []Result) []ChartPoint {
	points := make([]ChartPoint, 0, len(results))
	var correct, total int
	for _, r := range results {
		correct += r.CorrectAnswers
		total += r.TotalQuestions
		points = append(points, ChartPoint{AttemptAt: r.CreatedAt, Score: Score(correct, total)})
	}
	return points
}

// ChartSeries is a labelled chart, e.g. one per member or one per quiz.
type ChartSeries struct {
	ID     uuid.UUID    `json:"id"`
	Label  string       `json:"label"`
	Points []ChartPoint `json:"points"`
}

// ResultRow is a result joined with the member, user, quiz and company it belongs to.
type ResultRow struct {
	Result
	UserID      uuid.UUID `db:"user_id"`
	Username    string    `db:"username"`
	CompanyID   uuid.UUID `db:"company_id"`
	CompanyName string    `db:"company_name"`
	QuizName    string    `db:"quiz_name"`
}

// LatestResult is the last attempt of a user at a quiz with the user's average score.
type LatestResult struct {
	UserID       uuid.UUID `db:"user_id"       json:"user_id"`
	Username     string    `db:"username"      json:"username"`
	QuizID       uuid.UUID `db:"quiz_id"       json:"quiz_id"`
	QuizName     string    `db:"quiz_name"     json:"quiz_name"`
	CompanyID    uuid.UUID `db:"company_id"    json:"company_id"`
	CompanyName  string    `db:"company_name"  json:"company_name"`
	LastAttempt  time.Time `db:"last_attempt"  json:"last_attempt"`
	AverageScore float64   `db:"average_score" json:"average_score"`
}

// ExportedFile is a serialized export ready to be sent to a client.
type ExportedFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// DueReminder is a (user, quiz) pair whose last attempt is older than the quiz frequency.
type DueReminder struct {
	UserID      uuid.UUID `db:"user_id"`
	QuizID      uuid.UUID `db:"quiz_id"`
	QuizName    string    `db:"quiz_name"`
	LastAttempt time.Time `db:"last_attempt"`
}

// DetailFilter selects stored answer details. Nil ids match any value.
type DetailFilter struct {
	UserID    *uuid.UUID
	CompanyID *uuid.UUID
	QuizID    *uuid.UUID
}
