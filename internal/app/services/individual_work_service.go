package services

import (
	"context"
	"fmt"
	"time"

	appauth "github.com/yigit/practicum/internal/app/auth"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/helpers"
	"github.com/yigit/practicum/internal/pkg/validation"
)

// NewIndividualWork carries the fields of an assignment to create
type NewIndividualWork struct {
	IssueDate     time.Time
	Description   string
	IssueDeadline time.Time
	CompleteMark  bool
}

// IndividualWorkService manages the signed-in student's individual assignments
type IndividualWorkService interface {
	List(ctx context.Context, userID int64) ([]*models.IndividualWork, error)
	Get(ctx context.Context, userID, workID int64) (*models.IndividualWork, error)
	Create(ctx context.Context, userID int64, input NewIndividualWork) (*models.IndividualWork, error)
	Update(ctx context.Context, userID, workID int64, patch models.IndividualWorkPatch) (*models.IndividualWork, error)
	Delete(ctx context.Context, userID, workID int64) error
}

type individualWorkServiceImpl struct {
	works IndividualWorkStore
	authz *appauth.AuthorizationService
}

// NewIndividualWorkService creates a new individual work service instance
func NewIndividualWorkService(works IndividualWorkStore, authz *appauth.AuthorizationService) IndividualWorkService {
	return &individualWorkServiceImpl{
		works: works,
		authz: authz,
	}
}

func checkDeadline(issueDate, deadline time.Time) error {
	if deadline.Before(issueDate) {
		return apperrors.NewValidationError("issue_deadline cannot be before issue_date")
	}
	return nil
}

func (s *individualWorkServiceImpl) ownedWork(ctx context.Context, userID, workID int64) (*models.Student, *models.IndividualWork, error) {
	if err := validation.RequirePositiveID("individual_work_id", workID); err != nil {
		return nil, nil, err
	}

	student, err := s.authz.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	work, err := s.works.GetByID(ctx, workID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving individual work: %w", err)
	}

	if err := s.authz.ValidateOwnership(student, work.StudentID); err != nil {
		return nil, nil, err
	}
	return student, work, nil
}

func (s *individualWorkServiceImpl) List(ctx context.Context, userID int64) ([]*models.IndividualWork, error) {
	student, err := s.authz.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	works, err := s.works.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving individual works: %w", err)
	}
	return works, nil
}

func (s *individualWorkServiceImpl) Get(ctx context.Context, userID, workID int64) (*models.IndividualWork, error) {
	_, work, err := s.ownedWork(ctx, userID, workID)
	return work, err
}

func (s *individualWorkServiceImpl) Create(ctx context.Context, userID int64, input NewIndividualWork) (*models.IndividualWork, error) {
	description, err := validation.RequireText("work_description", input.Description)
	if err != nil {
		return nil, err
	}
	if input.IssueDate.IsZero() {
		return nil, apperrors.NewValidationError("issue_date is required")
	}
	if input.IssueDeadline.IsZero() {
		return nil, apperrors.NewValidationError("issue_deadline is required")
	}
	issueDate, deadline := helpers.DateOf(input.IssueDate), helpers.DateOf(input.IssueDeadline)
	if err := checkDeadline(issueDate, deadline); err != nil {
		return nil, err
	}

	student, err := s.authz.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	work, err := s.works.Create(ctx, &models.IndividualWork{
		StudentID:     student.ID,
		IssueDate:     issueDate,
		Description:   description,
		IssueDeadline: deadline,
		CompleteMark:  input.CompleteMark,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating individual work: %w", err)
	}
	return work, nil
}

// Update changes only the fields present in patch
func (s *individualWorkServiceImpl) Update(ctx context.Context, userID, workID int64, patch models.IndividualWorkPatch) (*models.IndividualWork, error) {
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("at least one field must be provided")
	}
	if patch.Description != nil {
		description, err := validation.RequireText("work_description", *patch.Description)
		if err != nil {
			return nil, err
		}
		patch.Description = &description
	}
	if patch.IssueDate != nil {
		d := helpers.DateOf(*patch.IssueDate)
		patch.IssueDate = &d
	}
	if patch.IssueDeadline != nil {
		d := helpers.DateOf(*patch.IssueDeadline)
		patch.IssueDeadline = &d
	}

	student, current, err := s.ownedWork(ctx, userID, workID)
	if err != nil {
		return nil, err
	}

	issueDate, deadline := current.IssueDate, current.IssueDeadline
	if patch.IssueDate != nil {
		issueDate = *patch.IssueDate
	}
	if patch.IssueDeadline != nil {
		deadline = *patch.IssueDeadline
	}
	if err := checkDeadline(issueDate, deadline); err != nil {
		return nil, err
	}

	work, err := s.works.Update(ctx, student.ID, workID, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating individual work: %w", err)
	}
	return work, nil
}

// Delete soft deletes the work
func (s *individualWorkServiceImpl) Delete(ctx context.Context, userID, workID int64) error {
	student, _, err := s.ownedWork(ctx, userID, workID)
	if err != nil {
		return err
	}

	if err := s.works.SoftDelete(ctx, student.ID, workID); err != nil {
		return fmt.Errorf("error deleting individual work: %w", err)
	}
	return nil
}
