package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/pkg/apperrors"
)

type studentLookupStub struct {
	student *models.Student
	err     error
}

func (s studentLookupStub) GetByUserID(_ context.Context, _ int64) (*models.Student, error) {
	return s.student, s.err
}

func TestResolveStudent(t *testing.T) {
	svc := NewAuthorizationService(studentLookupStub{student: &models.Student{ID: 4, UserID: 9}})
	student, err := svc.ResolveStudent(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(4), student.ID)

	svc = NewAuthorizationService(studentLookupStub{err: apperrors.ErrStudentNotFound})
	_, err = svc.ResolveStudent(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	boom := errors.New("connection reset")
	svc = NewAuthorizationService(studentLookupStub{err: boom})
	_, err = svc.ResolveStudent(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestValidateOwnership(t *testing.T) {
	svc := NewAuthorizationService(nil)
	me := &models.Student{ID: 4}

	assert.NoError(t, svc.ValidateOwnership(me, 4))
	assert.ErrorIs(t, svc.ValidateOwnership(me, 5), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.ValidateOwnership(nil, 4), apperrors.ErrPermissionDenied)
}
