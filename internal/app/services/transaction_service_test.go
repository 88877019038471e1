package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/practicum/internal/pkg/apperrors"
)

type transactionFixture struct {
	svc      TransactionService
	tx       *injectedTx
	students *memStudents
	diary    *memDiary
	works    *memWorks
}

func newTransactionFixture() *transactionFixture {
	students := newMemStudents()
	students.add(1, aliceUser, 5)
	students.groups[6] = true
	diary := newMemDiary()
	works := newMemWorks()
	tx := newInjectedTx(students, diary, works)

	return &transactionFixture{
		svc:      NewTransactionService(tx, students, diary, works),
		tx:       tx,
		students: students,
		diary:    diary,
		works:    works,
	}
}

func TestMoveStudent_CommitsBothSteps(t *testing.T) {
	f := newTransactionFixture()

	result, err := f.svc.MoveStudent(context.Background(), 1, 6)
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.OldGroupID)
	assert.Equal(t, int64(6), result.NewGroupID)
	assert.Equal(t, int64(6), f.students.rows[1].GroupID)

	entry := f.diary.rows[result.DiaryEntryID]
	require.NotNil(t, entry)
	assert.Equal(t, int64(1), entry.StudentID)
	assert.Equal(t, "Student moved to group ID: 6", entry.Description)

	assert.Equal(t, 1, f.tx.CommitCalls)
	assert.Zero(t, f.tx.RollbackCalls)
}

func TestMoveStudent_DiaryFailureRollsBackGroupChange(t *testing.T) {
	f := newTransactionFixture()
	f.diary.failInsert = errors.New("disk full")

	_, err := f.svc.MoveStudent(context.Background(), 1, 6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	assert.Equal(t, int64(5), f.students.rows[1].GroupID)
	assert.Empty(t, f.diary.rows)
	assert.Equal(t, 1, f.tx.RollbackCalls)
	assert.Zero(t, f.tx.CommitCalls)
}

func TestMoveStudent_Failures(t *testing.T) {
	tests := []struct {
		name       string
		studentID  int64
		groupID    int64
		wantErr    error
		wantBegins int
	}{
		{name: "missing student", studentID: 99, groupID: 6, wantErr: apperrors.ErrStudentNotFound, wantBegins: 1},
		{name: "missing group", studentID: 1, groupID: 404, wantErr: apperrors.ErrGroupNotFound, wantBegins: 1},
		{name: "zero student id", studentID: 0, groupID: 6, wantErr: apperrors.ErrValidationFailed},
		{name: "zero group id", studentID: 1, groupID: 0, wantErr: apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransactionFixture()

			_, err := f.svc.MoveStudent(context.Background(), tt.studentID, tt.groupID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantBegins, f.tx.BeginCalls)
			assert.Equal(t, int64(5), f.students.rows[1].GroupID)
			assert.Empty(t, f.diary.rows)
		})
	}
}

func TestMoveStudent_CommitFailure(t *testing.T) {
	f := newTransactionFixture()
	f.tx.FailCommit = errors.New("commit failed")

	_, err := f.svc.MoveStudent(context.Background(), 1, 6)
	require.Error(t, err)
	assert.Equal(t, int64(5), f.students.rows[1].GroupID)
	assert.Empty(t, f.diary.rows)
}

func TestDeleteStudent_PurgesSoftDeletedRows(t *testing.T) {
	f := newTransactionFixture()
	f.students.add(2, bobUser, 5)
	f.diary.add(1, "live", false)
	f.diary.add(1, "soft deleted", true)
	f.diary.add(2, "other student", false)
	f.works.add(1, "live", false)
	f.works.add(1, "soft deleted", true)
	f.works.add(1, "another", false)

	result, err := f.svc.DeleteStudent(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.IndividualWorksDeleted)
	assert.Equal(t, int64(2), result.DiaryEntriesDeleted)
	assert.NotContains(t, f.students.rows, int64(1))

	live, deleted := f.diary.forStudent(1)
	assert.Zero(t, live+deleted)
	live, _ = f.diary.forStudent(2)
	assert.Equal(t, 1, live)
	assert.Len(t, f.works.rows, 0)
}

func TestDeleteStudent_FailureRestoresEverything(t *testing.T) {
	f := newTransactionFixture()
	f.diary.add(1, "entry", false)
	f.works.add(1, "work", true)
	f.students.failDelete = errors.New("lock timeout")

	_, err := f.svc.DeleteStudent(context.Background(), 1)
	require.Error(t, err)

	assert.Contains(t, f.students.rows, int64(1))
	assert.Len(t, f.diary.rows, 1)
	assert.Len(t, f.works.rows, 1)
	assert.Equal(t, 1, f.tx.RollbackCalls)
}

func TestDeleteStudent_Missing(t *testing.T) {
	f := newTransactionFixture()

	_, err := f.svc.DeleteStudent(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Equal(t, 1, f.tx.RollbackCalls)
}
