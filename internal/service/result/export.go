package result

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

var csvHeader = []string{
	"result_id", "user_id", "company_id", "quiz_id", "score", "created_at",
	"question", "user_answer", "is_correct",
}

// ExportCompanyAnswers exports every cached answer record of a company.
func (s *Service) ExportCompanyAnswers(ctx context.Context, companyID uuid.UUID, format string) (*domain.ExportedFile, error) {
	ff, err := domain.ParseFileFormat(format)
	if err != nil {
		return nil, err
	}
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	company, err := s.requireManager(ctx, companyID, userID)
	if err != nil {
		return nil, fmt.Errorf("result.ExportCompanyAnswers: %w", err)
	}

	return s.export(ctx, domain.DetailFilter{CompanyID: &companyID}, ff, companyLabel(company))
}

// ExportUserAnswers exports the cached answer records of one user inside a company.
func (s *Service) ExportUserAnswers(ctx context.Context, companyID, targetID uuid.UUID, format string) (*domain.ExportedFile, error) {
	ff, err := domain.ParseFileFormat(format)
	if err != nil {
		return nil, err
	}
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	company, err := s.requireManager(ctx, companyID, userID)
	if err != nil {
		return nil, fmt.Errorf("result.ExportUserAnswers: %w", err)
	}

	return s.export(ctx, domain.DetailFilter{UserID: &targetID, CompanyID: &companyID}, ff,
		companyLabel(company)+"_user_"+targetID.String())
}

// ExportMyAnswers exports the caller's own cached answer records.
func (s *Service) ExportMyAnswers(ctx context.Context, format string) (*domain.ExportedFile, error) {
	ff, err := domain.ParseFileFormat(format)
	if err != nil {
		return nil, err
	}
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	return s.export(ctx, domain.DetailFilter{UserID: &userID}, ff, "user_"+userID.String())
}

// companyLabel is a filename-safe company name. Names that slug to nothing
// fall back to the id.
func companyLabel(c *domain.Company) string {
	if label := slug.Make(c.Name); label != "" {
		return label
	}
	return "company_" + c.ID.String()
}

func (s *Service) export(ctx context.Context, f domain.DetailFilter, ff domain.FileFormat, name string) (*domain.ExportedFile, error) {
	details, err := s.details.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("result.export: %w", err)
	}

	var content []byte
	switch ff {
	case domain.FileFormatCSV:
		content, err = encodeCSV(details)
	default:
		content, err = json.MarshalIndent(details, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("result.export: encode %s: %w", ff, err)
	}

	return &domain.ExportedFile{
		Filename:    fmt.Sprintf("answers_%s.%s", name, ff),
		ContentType: ff.ContentType(),
		Content:     content,
	}, nil
}

// encodeCSV writes one row per answered question.
func encodeCSV(details []domain.ResultDetail) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, d := range details {
		for _, q := range d.Questions {
			record := []string{
				d.ResultID.String(),
				d.UserID.String(),
				d.CompanyID.String(),
				d.QuizID.String(),
				strconv.FormatFloat(d.Score, 'f', 2, 64),
				d.CreatedAt.UTC().Format(time.RFC3339),
				q.Question,
				strings.Join(q.UserAnswer, ";"),
				strconv.FormatBool(q.IsCorrect),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
