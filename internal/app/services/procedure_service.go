package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/auth"
	"github.com/yigit/practicum/internal/pkg/validation"
)

// AddStudentInput carries the add_student procedure arguments; Password is plaintext
type AddStudentInput struct {
	Username   string
	Password   string
	FullName   string
	GroupID    int64
	PracticeID int64
}

// ProcedureService calls the stored procedures
type ProcedureService interface {
	AddStudent(ctx context.Context, input AddStudentInput) error
	ClosePractice(ctx context.Context, practiceID int64, endDate time.Time) error
}

type procedureServiceImpl struct {
	reports ReportStore
	hash    func(string) (string, error)
}

// NewProcedureService creates a new procedure service instance
func NewProcedureService(reports ReportStore) ProcedureService {
	return &procedureServiceImpl{
		reports: reports,
		hash:    auth.HashPassword,
	}
}

// AddStudent creates the user and student rows through add_student, storing a bcrypt hash
func (s *procedureServiceImpl) AddStudent(ctx context.Context, input AddStudentInput) error {
	username, err := validation.RequireName("username", input.Username)
	if err != nil {
		return err
	}
	if _, err := validation.RequireText("password", input.Password); err != nil {
		return err
	}
	fullName, err := validation.RequireName("full_name", input.FullName)
	if err != nil {
		return err
	}
	if err := validation.RequirePositiveID("group_id", input.GroupID); err != nil {
		return err
	}
	if err := validation.RequirePositiveID("practice_id", input.PracticeID); err != nil {
		return err
	}

	hash, err := s.hash(input.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.reports.AddStudent(ctx, models.NewStudent{
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		GroupID:      input.GroupID,
		PracticeID:   input.PracticeID,
	}); err != nil {
		return fmt.Errorf("error adding student: %w", err)
	}
	return nil
}

// ClosePractice sets the practice end date through close_practice
func (s *procedureServiceImpl) ClosePractice(ctx context.Context, practiceID int64, endDate time.Time) error {
	if err := validation.RequirePositiveID("practice_id", practiceID); err != nil {
		return err
	}
	if err := s.reports.ClosePractice(ctx, practiceID, endDate); err != nil {
		return fmt.Errorf("error closing practice: %w", err)
	}
	return nil
}
