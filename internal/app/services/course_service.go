package services

import (
	"context"
	"strings"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

// CourseStore is the course persistence surface the service needs
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
}

// CourseService handles course registry operations
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{
		courses: courses,
	}
}

// Register creates a new course for the given course code.
// It fails with apperrors.ErrCourseCodeExists when the code is taken.
func (s *CourseService) Register(ctx context.Context, code, name string, creditHours int) (*models.Course, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)

	if code == "" {
		return nil, apperrors.NewValidationError("course code cannot be empty")
	}
	if name == "" {
		return nil, apperrors.NewValidationError("course name cannot be empty")
	}
	if creditHours < 0 {
		return nil, apperrors.NewValidationError("credit hours cannot be negative")
	}

	course := &models.Course{
		Code:        code,
		Name:        name,
		CreditHours: creditHours,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// List returns all registered courses sorted by name
func (s *CourseService) List(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}
