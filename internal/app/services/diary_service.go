package services

import (
	"context"
	"fmt"
	"time"

	appauth "github.com/yigit/practicum/internal/app/auth"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/helpers"
	"github.com/yigit/practicum/internal/pkg/validation"
)

// DiaryService manages the signed-in student's work diary. userID is always the session
// user; rows of other students are reported as permission errors.
type DiaryService interface {
	List(ctx context.Context, userID int64) ([]*models.DiaryEntry, error)
	Get(ctx context.Context, userID, entryID int64) (*models.DiaryEntry, error)
	Create(ctx context.Context, userID int64, workDate *time.Time, description string) (*models.DiaryEntry, error)
	Update(ctx context.Context, userID, entryID int64, workDate *time.Time, description string) (*models.DiaryEntry, error)
	Delete(ctx context.Context, userID, entryID int64) error
}

type diaryServiceImpl struct {
	diary DiaryStore
	authz *appauth.AuthorizationService
}

// NewDiaryService creates a new diary service instance
func NewDiaryService(diary DiaryStore, authz *appauth.AuthorizationService) DiaryService {
	return &diaryServiceImpl{
		diary: diary,
		authz: authz,
	}
}

// ownedEntry loads a live entry and checks it belongs to the caller
func (s *diaryServiceImpl) ownedEntry(ctx context.Context, userID, entryID int64) (*models.Student, *models.DiaryEntry, error) {
	if err := validation.RequirePositiveID("entry_id", entryID); err != nil {
		return nil, nil, err
	}

	student, err := s.authz.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	entry, err := s.diary.GetByID(ctx, entryID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving diary entry: %w", err)
	}

	if err := s.authz.ValidateOwnership(student, entry.StudentID); err != nil {
		return nil, nil, err
	}
	return student, entry, nil
}

func (s *diaryServiceImpl) List(ctx context.Context, userID int64) ([]*models.DiaryEntry, error) {
	student, err := s.authz.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.diary.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving diary entries: %w", err)
	}
	return entries, nil
}

func (s *diaryServiceImpl) Get(ctx context.Context, userID, entryID int64) (*models.DiaryEntry, error) {
	_, entry, err := s.ownedEntry(ctx, userID, entryID)
	return entry, err
}

// Create adds an entry; a nil workDate means today
func (s *diaryServiceImpl) Create(ctx context.Context, userID int64, workDate *time.Time, description string) (*models.DiaryEntry, error) {
	description, err := validation.RequireText("description", description)
	if err != nil {
		return nil, err
	}

	student, err := s.authz.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	date := helpers.Today()
	if workDate != nil {
		date = helpers.DateOf(*workDate)
	}

	entry, err := s.diary.Create(ctx, student.ID, date, description)
	if err != nil {
		return nil, fmt.Errorf("error creating diary entry: %w", err)
	}
	return entry, nil
}

// Update replaces the description and, when given, the work date
func (s *diaryServiceImpl) Update(ctx context.Context, userID, entryID int64, workDate *time.Time, description string) (*models.DiaryEntry, error) {
	description, err := validation.RequireText("description", description)
	if err != nil {
		return nil, err
	}

	student, _, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if workDate != nil {
		d := helpers.DateOf(*workDate)
		workDate = &d
	}

	entry, err := s.diary.Update(ctx, student.ID, entryID, workDate, description)
	if err != nil {
		return nil, fmt.Errorf("error updating diary entry: %w", err)
	}
	return entry, nil
}

// Delete soft deletes the entry
func (s *diaryServiceImpl) Delete(ctx context.Context, userID, entryID int64) error {
	student, _, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}

	if err := s.diary.SoftDelete(ctx, student.ID, entryID); err != nil {
		return fmt.Errorf("error deleting diary entry: %w", err)
	}
	return nil
}
