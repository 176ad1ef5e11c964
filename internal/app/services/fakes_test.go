package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

// In-memory stores backing the service tests.

type memStudentStore struct {
	students map[string]*models.Student
	nextID   int64
}

func newMemStudentStore() *memStudentStore {
	return &memStudentStore{students: map[string]*models.Student{}}
}

func (s *memStudentStore) Create(_ context.Context, student *models.Student) error {
	if _, ok := s.students[student.Code]; ok {
		return apperrors.ErrStudentCodeExists
	}
	s.nextID++
	student.ID = s.nextID
	student.CreatedAt = time.Now()
	copied := *student
	s.students[student.Code] = &copied
	return nil
}

func (s *memStudentStore) GetByCode(_ context.Context, code string) (*models.Student, error) {
	student, ok := s.students[code]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (s *memStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	all := make([]*models.Student, 0, len(s.students))
	for _, student := range s.students {
		copied := *student
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

type memCourseStore struct {
	courses map[string]*models.Course
	nextID  int64
}

func newMemCourseStore() *memCourseStore {
	return &memCourseStore{courses: map[string]*models.Course{}}
}

func (s *memCourseStore) Create(_ context.Context, course *models.Course) error {
	if _, ok := s.courses[course.Code]; ok {
		return apperrors.ErrCourseCodeExists
	}
	s.nextID++
	course.ID = s.nextID
	copied := *course
	s.courses[course.Code] = &copied
	return nil
}

func (s *memCourseStore) GetByCode(_ context.Context, code string) (*models.Course, error) {
	course, ok := s.courses[code]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (s *memCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	all := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		copied := *course
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

type memGradeStore struct {
	grades map[string]*models.Grade
	nextID int64
}

func newMemGradeStore() *memGradeStore {
	return &memGradeStore{grades: map[string]*models.Grade{}}
}

func gradeKey(studentID, courseID int64, semester string) string {
	return fmt.Sprintf("%d|%d|%s", studentID, courseID, semester)
}

func (s *memGradeStore) Create(_ context.Context, grade *models.Grade) error {
	key := gradeKey(grade.StudentID, grade.CourseID, grade.Semester)
	if _, ok := s.grades[key]; ok {
		return apperrors.ErrGradeAlreadyExists
	}
	s.nextID++
	grade.ID = s.nextID
	copied := *grade
	s.grades[key] = &copied
	return nil
}

func (s *memGradeStore) UpdateScores(_ context.Context, studentID, courseID int64, semester string, s1, s2, s3 float64) error {
	grade, ok := s.grades[gradeKey(studentID, courseID, semester)]
	if !ok {
		return apperrors.ErrGradeNotFound
	}
	grade.Score1, grade.Score2, grade.Score3 = s1, s2, s3
	return nil
}
