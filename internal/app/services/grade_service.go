package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

// GradeStore is the grade persistence surface the service needs
type GradeStore interface {
	Create(ctx context.Context, grade *models.Grade) error
	UpdateScores(ctx context.Context, studentID, courseID int64, semester string, s1, s2, s3 float64) error
}

// GradeInput carries the fields of a record or update operation. Students and
// courses are addressed by their natural codes, not internal identifiers.
type GradeInput struct {
	StudentCode string
	CourseCode  string
	Score1      float64
	Score2      float64
	Score3      float64
	Semester    string
}

// GradeResult reports the outcome of a record or update operation. Average and
// status are derived, never persisted.
type GradeResult struct {
	StudentCode string        `json:"studentCode"`
	CourseCode  string        `json:"courseCode"`
	Semester    string        `json:"semester"`
	Average     float64       `json:"average"`
	Status      models.Status `json:"status"`
}

// GradeService handles the grade ledger operations
type GradeService struct {
	students StudentStore
	courses  CourseStore
	grades   GradeStore
}

// NewGradeService creates a new grade service instance
func NewGradeService(students StudentStore, courses CourseStore, grades GradeStore) *GradeService {
	return &GradeService{
		students: students,
		courses:  courses,
		grades:   grades,
	}
}

// validateInput checks codes, semester and score ranges before any SQL runs.
// The storage CHECK constraints remain the backstop for score ranges.
func (s *GradeService) validateInput(in *GradeInput) error {
	in.StudentCode = strings.TrimSpace(in.StudentCode)
	in.CourseCode = strings.TrimSpace(in.CourseCode)
	in.Semester = strings.TrimSpace(in.Semester)

	if in.StudentCode == "" {
		return apperrors.NewValidationError("enrollment code cannot be empty")
	}
	if in.CourseCode == "" {
		return apperrors.NewValidationError("course code cannot be empty")
	}
	if in.Semester == "" {
		return apperrors.NewValidationError("semester cannot be empty")
	}

	for i, score := range []float64{in.Score1, in.Score2, in.Score3} {
		if !models.ValidScore(score) {
			return apperrors.NewCustomError(apperrors.ErrScoreOutOfRange,
				fmt.Sprintf("score %d must be between 0 and 10, got %.2f", i+1, score))
		}
	}

	return nil
}

// Record creates a grade record for a (student, course, semester) triple.
// Both codes must resolve; a second record for the same triple fails with
// apperrors.ErrGradeAlreadyExists.
func (s *GradeService) Record(ctx context.Context, in GradeInput) (*GradeResult, error) {
	if err := s.validateInput(&in); err != nil {
		return nil, err
	}

	student, err := s.students.GetByCode(ctx, in.StudentCode)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByCode(ctx, in.CourseCode)
	if err != nil {
		return nil, err
	}

	grade := &models.Grade{
		StudentID: student.ID,
		CourseID:  course.ID,
		Score1:    in.Score1,
		Score2:    in.Score2,
		Score3:    in.Score3,
		Semester:  in.Semester,
	}

	if err := s.grades.Create(ctx, grade); err != nil {
		return nil, err
	}

	return &GradeResult{
		StudentCode: student.Code,
		CourseCode:  course.Code,
		Semester:    grade.Semester,
		Average:     models.Round2(grade.Average()),
		Status:      grade.Status(),
	}, nil
}

// Update overwrites the three scores of an existing grade record matched by
// its (student, course, semester) triple. Identifiers stay unchanged.
func (s *GradeService) Update(ctx context.Context, in GradeInput) (*GradeResult, error) {
	if err := s.validateInput(&in); err != nil {
		return nil, err
	}

	student, err := s.students.GetByCode(ctx, in.StudentCode)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByCode(ctx, in.CourseCode)
	if err != nil {
		return nil, err
	}

	err = s.grades.UpdateScores(ctx, student.ID, course.ID, in.Semester, in.Score1, in.Score2, in.Score3)
	if err != nil {
		return nil, err
	}

	average := models.AverageOf(in.Score1, in.Score2, in.Score3)
	return &GradeResult{
		StudentCode: student.Code,
		CourseCode:  course.Code,
		Semester:    in.Semester,
		Average:     models.Round2(average),
		Status:      models.StatusOf(average),
	}, nil
}
