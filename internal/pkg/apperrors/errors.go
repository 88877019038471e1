package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	ErrPermissionDenied = errors.New("permission denied")

	ErrValidationFailed = errors.New("validation failed")
)

// Entity specific not-found errors. All of them unwrap to ErrResourceNotFound.
var (
	ErrUserNotFound           = NewResourceNotFoundError("user not found")
	ErrStudentNotFound        = NewResourceNotFoundError("student not found")
	ErrGroupNotFound          = NewResourceNotFoundError("group not found")
	ErrLocationNotFound       = NewResourceNotFoundError("location not found")
	ErrRoleNotFound           = NewResourceNotFoundError("role not found")
	ErrPositionNotFound       = NewResourceNotFoundError("position not found")
	ErrOrganizationNotFound   = NewResourceNotFoundError("organization not found")
	ErrPracticeNotFound       = NewResourceNotFoundError("practice not found")
	ErrSupervisorNotFound     = NewResourceNotFoundError("supervisor not found")
	ErrDiaryEntryNotFound     = NewResourceNotFoundError("diary entry not found")
	ErrIndividualWorkNotFound = NewResourceNotFoundError("individual work not found")
	ErrReportNotFound         = NewResourceNotFoundError("report not found")
)

// Delete-blocked errors. All of them unwrap to ErrConflict.
var (
	ErrLocationInUse = NewConflictError("location is used by a practice and cannot be deleted")
	ErrGroupInUse    = NewConflictError("group has students and cannot be deleted")
	ErrRoleInUse     = NewConflictError("role is assigned to supervisors and cannot be deleted")
	ErrPositionInUse = NewConflictError("position is assigned to supervisors and cannot be deleted")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError pairs a client-facing message with the sentinel that decides the HTTP status
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Message extracts the most specific human readable message carried by err.
func Message(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
