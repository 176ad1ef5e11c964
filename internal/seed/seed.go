package seed

import (
	"context"
	"errors"

	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

type sampleStudent struct {
	code string
	name string
}

type sampleCourse struct {
	code  string
	name  string
	hours int
}

type sampleGrade struct {
	studentCode string
	courseCode  string
	s1, s2, s3  float64
	semester    string
}

var sampleStudents = []sampleStudent{
	{"2024001", "Alice Johnson"},
	{"2024002", "Maria Santos"},
	{"2024003", "Peter Oliveira"},
	{"2024004", "Anna Costa"},
	{"2024005", "Carl Sousa"},
}

var sampleCourses = []sampleCourse{
	{"MAT101", "Mathematics I", 60},
	{"FIS101", "Physics I", 60},
	{"POR101", "Portuguese", 40},
	{"HIS101", "History", 40},
	{"QUI101", "Chemistry I", 60},
}

var sampleGrades = []sampleGrade{
	{"2024001", "MAT101", 8.5, 7.0, 9.0, "2024.1"},
	{"2024001", "FIS101", 7.5, 8.0, 7.0, "2024.1"},
	{"2024001", "POR101", 9.0, 8.5, 9.5, "2024.1"},
	{"2024001", "HIS101", 7.0, 7.5, 8.0, "2024.1"},
	{"2024001", "QUI101", 6.0, 7.5, 8.0, "2024.1"},

	{"2024002", "MAT101", 9.0, 9.5, 10.0, "2024.1"},
	{"2024002", "FIS101", 8.5, 9.0, 8.0, "2024.1"},
	{"2024002", "POR101", 10.0, 9.5, 9.0, "2024.1"},
	{"2024002", "HIS101", 8.0, 8.5, 9.0, "2024.1"},
	{"2024002", "QUI101", 9.0, 8.5, 9.5, "2024.1"},

	{"2024003", "MAT101", 5.0, 6.0, 6.5, "2024.1"},
	{"2024003", "FIS101", 7.0, 7.5, 8.0, "2024.1"},
	{"2024003", "POR101", 6.0, 5.5, 6.0, "2024.1"},
	{"2024003", "HIS101", 8.0, 7.5, 7.0, "2024.1"},
	{"2024003", "QUI101", 9.0, 8.0, 8.5, "2024.1"},
}

// LoadSampleData inserts the demo dataset. Rows that already exist are
// skipped so the loader can run repeatedly.
func LoadSampleData(ctx context.Context, svcs *services.Services) error {
	var finalErr error

	for _, s := range sampleStudents {
		_, err := svcs.StudentService.Register(ctx, s.code, s.name)
		if err != nil && !errors.Is(err, apperrors.ErrStudentCodeExists) {
			logger.Error().Err(err).Str("code", s.code).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, c := range sampleCourses {
		_, err := svcs.CourseService.Register(ctx, c.code, c.name, c.hours)
		if err != nil && !errors.Is(err, apperrors.ErrCourseCodeExists) {
			logger.Error().Err(err).Str("code", c.code).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, g := range sampleGrades {
		_, err := svcs.GradeService.Record(ctx, services.GradeInput{
			StudentCode: g.studentCode,
			CourseCode:  g.courseCode,
			Score1:      g.s1,
			Score2:      g.s2,
			Score3:      g.s3,
			Semester:    g.semester,
		})
		if err != nil && !errors.Is(err, apperrors.ErrGradeAlreadyExists) {
			logger.Error().Err(err).
				Str("studentCode", g.studentCode).
				Str("courseCode", g.courseCode).
				Msg("Error seeding grade record")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
