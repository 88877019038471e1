package auth

import (
	"context"
	"errors"

	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
	"github.com/yigit/practicum/internal/pkg/logger"
)

// Authorization errors
var (
	ErrNotStudent  = apperrors.NewForbiddenError("only students can perform this action")
	ErrNotRowOwner = apperrors.NewForbiddenError("you don't have permission to access this record")
)

// StudentLookup resolves the student record behind a user account
type StudentLookup interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
}

// AuthorizationService answers who a caller is on student routes and whether they own a row
type AuthorizationService struct {
	students StudentLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(students StudentLookup) *AuthorizationService {
	return &AuthorizationService{students: students}
}

// ResolveStudent returns the student record of userID, or ErrNotStudent when the account has none
func (s *AuthorizationService) ResolveStudent(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, ErrNotStudent
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error resolving student in ResolveStudent")
		return nil, err
	}
	return student, nil
}

// ValidateOwnership returns ErrNotRowOwner unless ownerStudentID is the caller's student id
func (s *AuthorizationService) ValidateOwnership(student *models.Student, ownerStudentID int64) error {
	if student == nil || student.ID != ownerStudentID {
		return ErrNotRowOwner
	}
	return nil
}
