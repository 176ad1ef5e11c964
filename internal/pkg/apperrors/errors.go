package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrScoreOutOfRange  = errors.New("score must be between 0 and 10")
)

// Student errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrStudentCodeExists = errors.New("student with this enrollment code already exists")
)

// Course errors
var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseCodeExists = errors.New("course with this code already exists")
)

// Grade errors
var (
	ErrGradeNotFound      = errors.New("no grade record found for this student, course and semester")
	ErrGradeAlreadyExists = errors.New("a grade record already exists for this student, course and semester")
)

// Report errors
var (
	ErrSemesterEmpty = errors.New("no grade records found for this semester")
)

// CustomError represents application-specific errors with additional context
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
