package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/app/repositories"
	"github.com/yigit/practicum/internal/db"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/dberrors"
	"github.com/yigit/practicum/internal/pkg/logger"
	"github.com/yigit/practicum/internal/pkg/validation"
)

// Dynamic query errors
var (
	ErrQueryRequired    = apperrors.NewValidationError("query is required")
	ErrOnlySelect       = apperrors.NewForbiddenError("only SELECT queries are allowed")
	ErrReadOnlyRejected = apperrors.NewForbiddenError("query attempted to modify data")
)

// IsReadOnlyStatement is the gateway's textual check: the trimmed, uppercased text must start
// with SELECT. It looks at the prefix only, so "SELECT 1; DROP TABLE users" passes; such text
// is stopped later by the store.
func IsReadOnlyStatement(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "SELECT")
}

// QueryService runs the report catalog, the stored functions and the dynamic query gateway
type QueryService interface {
	ReportNames() []string
	RunReport(ctx context.Context, name string) (*models.ResultSet, error)
	CreateStudentGroupsView(ctx context.Context) error
	CreatePracticeStudentsView(ctx context.Context) error
	ExecuteDynamic(ctx context.Context, query string) (*models.ResultSet, error)
	StudentsCount(ctx context.Context, practiceID int64) (int64, error)
	AverageDiaryEntries(ctx context.Context) (float64, error)
}

type queryServiceImpl struct {
	reports  ReportStore
	readOnly ReadOnlyRunner
}

// NewQueryService creates a new query service instance
func NewQueryService(reports ReportStore, readOnly ReadOnlyRunner) QueryService {
	return &queryServiceImpl{
		reports:  reports,
		readOnly: readOnly,
	}
}

func (s *queryServiceImpl) ReportNames() []string {
	return repositories.ReportNames()
}

func (s *queryServiceImpl) RunReport(ctx context.Context, name string) (*models.ResultSet, error) {
	result, err := s.reports.RunReport(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error running report %s: %w", name, err)
	}
	return result, nil
}

func (s *queryServiceImpl) CreateStudentGroupsView(ctx context.Context) error {
	return s.reports.CreateStudentGroupsView(ctx)
}

func (s *queryServiceImpl) CreatePracticeStudentsView(ctx context.Context) error {
	return s.reports.CreatePracticeStudentsView(ctx)
}

// ExecuteDynamic runs caller-supplied SELECT text inside a READ ONLY transaction
func (s *queryServiceImpl) ExecuteDynamic(ctx context.Context, query string) (*models.ResultSet, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrQueryRequired
	}
	if !IsReadOnlyStatement(query) {
		logger.Warn().Str("query", query).Msg("Rejected non-SELECT dynamic query")
		return nil, ErrOnlySelect
	}

	var result *models.ResultSet
	err := s.readOnly.InReadOnlyTx(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		result, err = s.reports.RunSelect(ctx, q, query)
		return err
	})
	if err != nil {
		if dberrors.IsReadOnlyViolation(err) {
			logger.Warn().Str("query", query).Msg("Dynamic query tried to write")
			return nil, ErrReadOnlyRejected
		}
		return nil, err
	}
	return result, nil
}

func (s *queryServiceImpl) StudentsCount(ctx context.Context, practiceID int64) (int64, error) {
	if err := validation.RequirePositiveID("practice_id", practiceID); err != nil {
		return 0, err
	}
	return s.reports.StudentsCount(ctx, practiceID)
}

func (s *queryServiceImpl) AverageDiaryEntries(ctx context.Context) (float64, error) {
	return s.reports.AverageDiaryEntries(ctx)
}
