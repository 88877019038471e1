package services

import (
	"context"
	"fmt"

	"github.com/yigit/practicum/internal/app/models"
)

// StudentService serves the signed-in student's own profile
type StudentService interface {
	GetProfile(ctx context.Context, userID int64) (*models.StudentProfile, error)
}

type studentServiceImpl struct {
	students StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore) StudentService {
	return &studentServiceImpl{students: students}
}

// GetProfile returns the profile of the student behind userID
func (s *studentServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	profile, err := s.students.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return profile, nil
}
