package services

import (
	"context"
	"fmt"

	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/db"
	"github.com/yigit/practicum/internal/pkg/logger"
	"github.com/yigit/practicum/internal/pkg/validation"
)

// moveDescription is the diary text recorded when a student changes group
const moveDescription = "Student moved to group ID: %d"

// TransactionService runs the composite student mutations. Each call is one transaction:
// every step commits together or none persists.
type TransactionService interface {
	MoveStudent(ctx context.Context, studentID, newGroupID int64) (*models.MoveStudentResult, error)
	DeleteStudent(ctx context.Context, studentID int64) (*models.DeleteStudentResult, error)
}

type transactionServiceImpl struct {
	tx       TxRunner
	students StudentStore
	diary    DiaryStore
	works    IndividualWorkStore
}

// NewTransactionService creates a new transaction service instance
func NewTransactionService(tx TxRunner, students StudentStore, diary DiaryStore, works IndividualWorkStore) TransactionService {
	return &transactionServiceImpl{
		tx:       tx,
		students: students,
		diary:    diary,
		works:    works,
	}
}

// MoveStudent reassigns the student's group and logs the move in the student's diary
func (s *transactionServiceImpl) MoveStudent(ctx context.Context, studentID, newGroupID int64) (*models.MoveStudentResult, error) {
	if err := validation.RequirePositiveID("student_id", studentID); err != nil {
		return nil, err
	}
	if err := validation.RequirePositiveID("new_group_id", newGroupID); err != nil {
		return nil, err
	}

	result := &models.MoveStudentResult{StudentID: studentID, NewGroupID: newGroupID}
	err := s.tx.InTx(ctx, func(ctx context.Context, q db.Querier) error {
		oldGroupID, err := s.students.LockGroup(ctx, q, studentID)
		if err != nil {
			return err
		}
		result.OldGroupID = oldGroupID

		if err := s.students.UpdateGroup(ctx, q, studentID, newGroupID); err != nil {
			return err
		}

		entryID, err := s.diary.InsertDatedToday(ctx, q, studentID, fmt.Sprintf(moveDescription, newGroupID))
		if err != nil {
			return err
		}
		result.DiaryEntryID = entryID
		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Int64("studentID", studentID).Int64("newGroupID", newGroupID).Msg("Move student rolled back")
		return nil, fmt.Errorf("error moving student: %w", err)
	}

	logger.Info().
		Int64("studentID", studentID).
		Int64("oldGroupID", result.OldGroupID).
		Int64("newGroupID", newGroupID).
		Msg("Student moved")
	return result, nil
}

// DeleteStudent purges the student's individual works and diary entries, soft-deleted rows
// included, then the student row. This is the only path that hard deletes those rows.
func (s *transactionServiceImpl) DeleteStudent(ctx context.Context, studentID int64) (*models.DeleteStudentResult, error) {
	if err := validation.RequirePositiveID("student_id", studentID); err != nil {
		return nil, err
	}

	result := &models.DeleteStudentResult{StudentID: studentID}
	err := s.tx.InTx(ctx, func(ctx context.Context, q db.Querier) error {
		if _, err := s.students.LockGroup(ctx, q, studentID); err != nil {
			return err
		}

		works, err := s.works.PurgeByStudent(ctx, q, studentID)
		if err != nil {
			return err
		}
		result.IndividualWorksDeleted = works

		entries, err := s.diary.PurgeByStudent(ctx, q, studentID)
		if err != nil {
			return err
		}
		result.DiaryEntriesDeleted = entries

		return s.students.Delete(ctx, q, studentID)
	})
	if err != nil {
		logger.Warn().Err(err).Int64("studentID", studentID).Msg("Delete student rolled back")
		return nil, fmt.Errorf("error deleting student: %w", err)
	}

	logger.Info().
		Int64("studentID", studentID).
		Int64("individualWorksDeleted", result.IndividualWorksDeleted).
		Int64("diaryEntriesDeleted", result.DiaryEntriesDeleted).
		Msg("Student deleted")
	return result, nil
}
