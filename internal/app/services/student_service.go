package services

import (
	"context"
	"strings"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

// StudentStore is the student persistence surface the service needs
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByCode(ctx context.Context, code string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
}

// StudentService handles student registry operations
type StudentService struct {
	students StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{
		students: students,
	}
}

// Register creates a new student for the given enrollment code.
// It fails with apperrors.ErrStudentCodeExists when the code is taken.
func (s *StudentService) Register(ctx context.Context, code, name string) (*models.Student, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)

	if code == "" {
		return nil, apperrors.NewValidationError("enrollment code cannot be empty")
	}
	if name == "" {
		return nil, apperrors.NewValidationError("student name cannot be empty")
	}

	student := &models.Student{
		Code: code,
		Name: name,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// List returns all registered students sorted by name
func (s *StudentService) List(ctx context.Context) ([]*models.Student, error) {
	return s.students.GetAll(ctx)
}

// FindByCode looks a student up by enrollment code
func (s *StudentService) FindByCode(ctx context.Context, code string) (*models.Student, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewValidationError("enrollment code cannot be empty")
	}

	return s.students.GetByCode(ctx, code)
}
