package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gradebook/internal/app/services"
)

// newWiredMenu builds a menu over in-memory stores shared between the
// services, so a full add-student/add-course/add-grades session works.
func newWiredMenu(script string) (*Menu, *bytes.Buffer) {
	students := newMemStudentStore()
	courses := newMemCourseStore()
	grades := newMemGradeStore()

	svcs := &services.Services{
		StudentService: services.NewStudentService(students),
		CourseService:  services.NewCourseService(courses),
		GradeService:   services.NewGradeService(students, courses, grades),
		ReportService:  services.NewReportService(&stubReportStore{}),
	}

	out := &bytes.Buffer{}
	return New(svcs, strings.NewReader(script), out), out
}

func TestRunExitsOnZero(t *testing.T) {
	m, out := newWiredMenu("0\n")

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "STUDENT GRADE MANAGEMENT")
	assert.Contains(t, out.String(), "Goodbye.")
}

func TestRunEndsOnEOF(t *testing.T) {
	m, _ := newWiredMenu("")

	require.NoError(t, m.Run(context.Background()))
}

func TestRunInvalidOption(t *testing.T) {
	m, out := newWiredMenu("99\n\n0\n")

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "Invalid option, try again.")
	assert.Contains(t, out.String(), "Goodbye.")
}

func TestAddAndListStudents(t *testing.T) {
	script := strings.Join([]string{
		"1", "2024001", "Alice Johnson", "",
		"2", "",
		"0", "",
	}, "\n")
	m, out := newWiredMenu(script)

	require.NoError(t, m.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Student Alice Johnson (code 2024001) added.")
	assert.Contains(t, got, "Total: 1 student(s)")
}

func TestAddStudentDuplicateReportsError(t *testing.T) {
	script := strings.Join([]string{
		"1", "2024001", "Alice Johnson", "",
		"1", "2024001", "Alice Again", "",
		"0", "",
	}, "\n")
	m, out := newWiredMenu(script)

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(),
		"Error: student with this enrollment code already exists")
}

func TestAddGradesSession(t *testing.T) {
	script := strings.Join([]string{
		"1", "2024001", "Alice Johnson", "",
		"3", "MAT101", "Mathematics", "4", "",
		"5", "2024001", "MAT101", "8.5", "7.0", "9.0", "2024.1", "",
		"0", "",
	}, "\n")
	m, out := newWiredMenu(script)

	require.NoError(t, m.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Course Mathematics (MAT101) added.")
	assert.Contains(t, got, "Grades added. Average: 8.17 - Status: PASS")
}

func TestUpdateGradesSession(t *testing.T) {
	script := strings.Join([]string{
		"1", "2024001", "Alice Johnson", "",
		"3", "MAT101", "Mathematics", "4", "",
		"5", "2024001", "MAT101", "8.5", "7.0", "9.0", "2024.1", "",
		"6", "2024001", "MAT101", "2024.1", "4.0", "5.0", "5.0", "",
		"0", "",
	}, "\n")
	m, out := newWiredMenu(script)

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(),
		"Grades updated. New average: 4.67 - Status: FAIL")
}

func TestInvalidNumberIsReported(t *testing.T) {
	script := strings.Join([]string{
		"3", "MAT101", "Mathematics", "four", "",
		"0", "",
	}, "\n")
	m, out := newWiredMenu(script)

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), `Error: invalid number "four"`)
}

func TestSemesterStatsSession(t *testing.T) {
	script := strings.Join([]string{
		"13", "2024.1", "",
		"0", "",
	}, "\n")
	m, out := newWiredMenu(script)

	require.NoError(t, m.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Semester: 2024.1")
	assert.Contains(t, got, "Grade records: 4")
	assert.Contains(t, got, "Pass rate: 75.00%")
}

func TestLoadSampleDataSession(t *testing.T) {
	script := strings.Join([]string{
		"14", "y", "",
		"2", "",
		"4", "",
		"0", "",
	}, "\n")
	m, out := newWiredMenu(script)

	require.NoError(t, m.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Sample data loaded.")
	assert.Contains(t, got, "Total: 5 student(s)")
	assert.Contains(t, got, "Total: 5 course(s)")
}

func TestLoadSampleDataDeclined(t *testing.T) {
	script := strings.Join([]string{
		"14", "n", "",
		"2", "",
		"0", "",
	}, "\n")
	m, out := newWiredMenu(script)

	require.NoError(t, m.Run(context.Background()))

	got := out.String()
	assert.NotContains(t, got, "Sample data loaded.")
	assert.Contains(t, got, "No students found.")
}
