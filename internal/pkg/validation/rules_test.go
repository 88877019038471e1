package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/practicum/internal/pkg/apperrors"
)

func TestRequireText(t *testing.T) {
	got, err := RequireText("location", "  Plant No. 5 \t")
	require.NoError(t, err)
	assert.Equal(t, "Plant No. 5", got)

	for _, blank := range []string{"", "   ", "\t\n"} {
		_, err := RequireText("location", blank)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "%q", blank)
		assert.Equal(t, "location is required", apperrors.Message(err))
	}
}

func TestRequireName_MaxLength(t *testing.T) {
	_, err := RequireName("group_name", strings.Repeat("я", NameMaxLength))
	assert.NoError(t, err)

	_, err = RequireName("group_name", strings.Repeat("я", NameMaxLength+1))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestOptionalText(t *testing.T) {
	got, err := NewStringValidation("note", "  ").WithRequired(false).Validate()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRequirePositiveID(t *testing.T) {
	assert.NoError(t, RequirePositiveID("student_id", 1))
	assert.ErrorIs(t, RequirePositiveID("student_id", 0), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, RequirePositiveID("student_id", -3), apperrors.ErrValidationFailed)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("work_date", "2024-05-17")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("work_date", "17.05.2024")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
