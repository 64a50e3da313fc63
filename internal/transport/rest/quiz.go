package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/internal/service/quiz"
)

type quizService interface {
	CreateQuiz(ctx context.Context, in quiz.CreateInput) (*domain.Quiz, error)
	UpdateQuiz(ctx context.Context, quizID uuid.UUID, in quiz.UpdateInput) (*domain.Quiz, error)
	DeleteQuiz(ctx context.Context, quizID uuid.UUID) error
	GetQuiz(ctx context.Context, quizID uuid.UUID) (*domain.Quiz, error)
	ListQuizzes(ctx context.Context, in quiz.ListInput) ([]domain.Quiz, int, error)
	AddQuestion(ctx context.Context, quizID uuid.UUID, in quiz.QuestionInput) (*domain.Question, error)
	RemoveQuestion(ctx context.Context, quizID, questionID uuid.UUID) error
	ImportQuizzes(ctx context.Context, companyID uuid.UUID, filename string, r io.Reader) (*quiz.ImportResult, error)
}

// QuizHandler serves quiz management endpoints.
type QuizHandler struct {
	svc       quizService
	log       *slog.Logger
	maxUpload int64
}

// NewQuizHandler creates a QuizHandler. maxUpload bounds an import upload in bytes.
func NewQuizHandler(svc quizService, logger *slog.Logger, maxUpload int64) *QuizHandler {
	return &QuizHandler{svc: svc, log: logger.With("handler", "quiz"), maxUpload: maxUpload}
}

// Create handles POST /companies/{id}/quizzes.
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var in quiz.CreateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in.CompanyID = companyID

	q, err := h.svc.CreateQuiz(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuizResponse(q))
}

// List handles GET /companies/{id}/quizzes?limit=&offset=.
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}

	quizzes, total, err := h.svc.ListQuizzes(r.Context(), quiz.ListInput{CompanyID: companyID, Limit: limit, Offset: offset})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[quizResponse]{
		Items: mapSlice(quizzes, toQuizResponse),
		Total: total,
	})
}

// Import handles POST /companies/{id}/quizzes/import with a multipart "file" field.
func (h *QuizHandler) Import(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	result, err := h.svc.ImportQuizzes(r.Context(), companyID, header.Filename, file)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /quizzes/{id}.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	q, err := h.svc.GetQuiz(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuizResponse(q))
}

// Update handles PATCH /quizzes/{id}.
func (h *QuizHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var in quiz.UpdateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	q, err := h.svc.UpdateQuiz(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuizResponse(q))
}

// Delete handles DELETE /quizzes/{id}.
func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteQuiz(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeNoContent(w)
}

// AddQuestion handles POST /quizzes/{id}/questions.
func (h *QuizHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var in quiz.QuestionInput
	if !decodeJSON(w, r, &in) {
		return
	}
	q, err := h.svc.AddQuestion(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuestionResponse(q))
}

// RemoveQuestion handles DELETE /quizzes/{id}/questions/{questionID}.
func (h *QuizHandler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	questionID, ok := pathUUID(w, r, "questionID")
	if !ok {
		return
	}
	if err := h.svc.RemoveQuestion(r.Context(), id, questionID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeNoContent(w)
}
