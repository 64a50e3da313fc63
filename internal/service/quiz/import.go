package quiz

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

var importColumns = []string{
	"name", "description", "frequency_days", "question_text", "correct_answer", "answer_options",
}

// ImportResult lists the quiz names an import created and updated.
type ImportResult struct {
	Created []string `json:"created_quizzes"`
	Updated []string `json:"updated_quizzes"`
}

// ImportQuizzes reads quizzes from an .xlsx workbook and upserts them by name.
// Rows sharing a quiz name and question text merge into one question.
func (s *Service) ImportQuizzes(ctx context.Context, companyID uuid.UUID, filename string, r io.Reader) (*ImportResult, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return nil, domain.NewValidationError("file", "only .xlsx workbooks are supported")
	}

	company, err := s.requireManager(ctx, companyID, userID)
	if err != nil {
		return nil, fmt.Errorf("quiz.ImportQuizzes: %w", err)
	}

	inputs, err := parseWorkbook(r, s.cfg.MaxImportRows)
	if err != nil {
		return nil, err
	}
	for i := range inputs {
		inputs[i].CompanyID = companyID
		if err := inputs[i].Validate(); err != nil {
			return nil, fmt.Errorf("quiz %q: %w", inputs[i].Name, err)
		}
	}

	res := &ImportResult{Created: []string{}, Updated: []string{}}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, in := range inputs {
			existing, err := s.quizzes.GetByName(txCtx, companyID, in.Name)
			switch {
			case errors.Is(err, domain.ErrQuizNotFound):
				if _, err := s.quizzes.Create(txCtx, newQuiz(in)); err != nil {
					return err
				}
				res.Created = append(res.Created, in.Name)
			case err != nil:
				return err
			default:
				if _, err := s.apply(txCtx, existing.ID, UpdateInput{
					Description:   in.Description,
					FrequencyDays: &in.FrequencyDays,
					Questions:     in.Questions,
				}); err != nil {
					return err
				}
				res.Updated = append(res.Updated, in.Name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("quiz.ImportQuizzes: %w", err)
	}

	s.log.InfoContext(ctx, "quizzes imported",
		slog.String("company_id", companyID.String()),
		slog.Int("created", len(res.Created)),
		slog.Int("updated", len(res.Updated)))

	for _, name := range res.Created {
		s.announce(ctx, company, name)
	}
	return res, nil
}

// parseWorkbook reads the active sheet. The first row holds the column names.
func parseWorkbook(r io.Reader, maxRows int) ([]CreateInput, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if !isZipContainer(mimetype.Detect(raw)) {
		return nil, domain.NewValidationError("file", "not an xlsx workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.NewValidationError("file", "not a readable xlsx workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.NewValidationError("file", "workbook is empty")
	}
	if len(rows)-1 > maxRows {
		return nil, domain.NewValidationError("file", fmt.Sprintf("at most %d rows allowed", maxRows))
	}

	col := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []domain.FieldError
	for _, name := range importColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, domain.FieldError{Field: name, Message: "missing required column"})
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationErrors(missing)
	}

	var (
		order  []string
		byName = map[string]*CreateInput{}
	)
	for n, row := range rows[1:] {
		cell := func(name string) string {
			if i := col[name]; i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}

		name := cell("name")
		if name == "" {
			continue
		}
		in, ok := byName[name]
		if !ok {
			days, err := strconv.Atoi(cell("frequency_days"))
			if err != nil {
				return nil, domain.NewValidationError(
					fmt.Sprintf("row %d frequency_days", n+2), "must be an integer")
			}
			in = &CreateInput{Name: name, FrequencyDays: days}
			if d := cell("description"); d != "" {
				in.Description = &d
			}
			byName[name] = in
			order = append(order, name)
		}

		mergeQuestion(in, cell("question_text"), cell("correct_answer"), splitOptions(cell("answer_options")))
	}

	out := make([]CreateInput, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out, nil
}

// mergeQuestion adds a row to the quiz. A repeated question text extends the
// existing question's correct answers and options.
func mergeQuestion(in *CreateInput, text, correct string, options []string) {
	idx := slices.IndexFunc(in.Questions, func(q QuestionInput) bool { return q.QuestionText == text })
	if idx < 0 {
		q := QuestionInput{QuestionText: text, CorrectAnswer: []string{}, AnswerOptions: []string{}}
		in.Questions = append(in.Questions, q)
		idx = len(in.Questions) - 1
	}

	q := &in.Questions[idx]
	if correct != "" && !slices.Contains(q.CorrectAnswer, correct) {
		q.CorrectAnswer = append(q.CorrectAnswer, correct)
	}
	for _, o := range options {
		if !slices.Contains(q.AnswerOptions, o) {
			q.AnswerOptions = append(q.AnswerOptions, o)
		}
	}
}

func splitOptions(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// isZipContainer reports whether the sniffed type is a zip archive or one of
// its OOXML descendants.
func isZipContainer(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}
