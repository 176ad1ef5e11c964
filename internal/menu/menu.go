// Package menu implements the interactive numbered-menu loop of the
// gradebook CLI. Each iteration reads one choice, collects the field values
// for that operation, invokes a service and prints the formatted result.
// Errors are reported to the user and the loop continues.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/seed"
)

// Menu drives the interactive command loop
type Menu struct {
	services *services.Services
	in       *bufio.Reader
	out      io.Writer
}

// New creates a menu over the given services, reading from in and writing to out
func New(svcs *services.Services, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		services: svcs,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	printSeparator(m.out, 50)
	fmt.Fprintln(m.out, "   STUDENT GRADE MANAGEMENT")
	printSeparator(m.out, 50)
	fmt.Fprintln(m.out, "1.  Add Student")
	fmt.Fprintln(m.out, "2.  List Students")
	fmt.Fprintln(m.out, "3.  Add Course")
	fmt.Fprintln(m.out, "4.  List Courses")
	fmt.Fprintln(m.out, "5.  Add Grades")
	fmt.Fprintln(m.out, "6.  Update Grades")
	fmt.Fprintln(m.out, "7.  View Student Situation")
	fmt.Fprintln(m.out, "8.  View All Situations")
	fmt.Fprintln(m.out, "9.  View Student Summary")
	fmt.Fprintln(m.out, "10. View All Summaries")
	fmt.Fprintln(m.out, "11. List Passed Students")
	fmt.Fprintln(m.out, "12. List Failed Students")
	fmt.Fprintln(m.out, "13. Semester Statistics")
	fmt.Fprintln(m.out, "14. Load Sample Data")
	fmt.Fprintln(m.out, "0.  Exit")
	printSeparator(m.out, 50)
}

// Run executes the menu loop until the user exits or input ends
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		option, err := m.readLine("\nChoose an option: ")
		if err != nil {
			// EOF on stdin ends the session like an explicit exit
			if err == io.EOF {
				return nil
			}
			return err
		}

		if option == "0" {
			fmt.Fprintln(m.out, "\nGoodbye.")
			return nil
		}

		if err := m.dispatch(ctx, option); err != nil {
			if err == io.EOF {
				return nil
			}
			fmt.Fprintf(m.out, "Error: %s\n", err)
		}

		if _, err := m.readLine("\nPress ENTER to continue..."); err != nil {
			return nil
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, option string) error {
	switch option {
	case "1":
		return m.addStudent(ctx)
	case "2":
		return m.listStudents(ctx)
	case "3":
		return m.addCourse(ctx)
	case "4":
		return m.listCourses(ctx)
	case "5":
		return m.addGrades(ctx)
	case "6":
		return m.updateGrades(ctx)
	case "7":
		return m.studentSituation(ctx)
	case "8":
		return m.allSituations(ctx)
	case "9":
		return m.studentSummary(ctx)
	case "10":
		return m.allSummaries(ctx)
	case "11":
		return m.listPassed(ctx)
	case "12":
		return m.listFailed(ctx)
	case "13":
		return m.semesterStats(ctx)
	case "14":
		return m.loadSampleData(ctx)
	default:
		fmt.Fprintln(m.out, "\nInvalid option, try again.")
		return nil
	}
}

func (m *Menu) addStudent(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- ADD STUDENT ---")

	code, err := m.readLine("Enrollment code: ")
	if err != nil {
		return err
	}
	name, err := m.readLine("Full name: ")
	if err != nil {
		return err
	}

	student, err := m.services.StudentService.Register(ctx, code, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Student %s (code %s) added.\n", student.Name, student.Code)
	return nil
}

func (m *Menu) listStudents(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- STUDENTS ---")

	students, err := m.services.StudentService.List(ctx)
	if err != nil {
		return err
	}

	printStudents(m.out, students)
	return nil
}

func (m *Menu) addCourse(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- ADD COURSE ---")

	code, err := m.readLine("Course code: ")
	if err != nil {
		return err
	}
	name, err := m.readLine("Name: ")
	if err != nil {
		return err
	}
	hours, err := m.readInt("Credit hours: ")
	if err != nil {
		return err
	}

	course, err := m.services.CourseService.Register(ctx, code, name, hours)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Course %s (%s) added.\n", course.Name, course.Code)
	return nil
}

func (m *Menu) listCourses(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- COURSES ---")

	courses, err := m.services.CourseService.List(ctx)
	if err != nil {
		return err
	}

	printCourses(m.out, courses)
	return nil
}

// readGradeInput collects the shared fields of the add and update operations.
// The update flow asks for the semester before the scores, matching the order
// a user needs to identify the record first.
func (m *Menu) readGradeInput(update bool) (services.GradeInput, error) {
	var in services.GradeInput
	var err error

	if in.StudentCode, err = m.readLine("Student enrollment code: "); err != nil {
		return in, err
	}
	if in.CourseCode, err = m.readLine("Course code: "); err != nil {
		return in, err
	}

	if update {
		if in.Semester, err = m.readLine("Semester (e.g. 2024.1): "); err != nil {
			return in, err
		}
	}

	prefix := ""
	if update {
		prefix = "New "
	}
	if in.Score1, err = m.readFloat(prefix + "Score 1 (0-10): "); err != nil {
		return in, err
	}
	if in.Score2, err = m.readFloat(prefix + "Score 2 (0-10): "); err != nil {
		return in, err
	}
	if in.Score3, err = m.readFloat(prefix + "Score 3 (0-10): "); err != nil {
		return in, err
	}

	if !update {
		if in.Semester, err = m.readLine("Semester (e.g. 2024.1): "); err != nil {
			return in, err
		}
	}

	return in, nil
}

func (m *Menu) addGrades(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- ADD GRADES ---")

	in, err := m.readGradeInput(false)
	if err != nil {
		return err
	}

	result, err := m.services.GradeService.Record(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Grades added. Average: %.2f - Status: %s\n", result.Average, result.Status)
	return nil
}

func (m *Menu) updateGrades(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- UPDATE GRADES ---")

	in, err := m.readGradeInput(true)
	if err != nil {
		return err
	}

	result, err := m.services.GradeService.Update(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Grades updated. New average: %.2f - Status: %s\n", result.Average, result.Status)
	return nil
}

func (m *Menu) studentSituation(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- STUDENT SITUATION ---")

	code, err := m.readLine("Enrollment code: ")
	if err != nil {
		return err
	}

	situations, err := m.services.ReportService.StudentSituation(ctx, code)
	if err != nil {
		return err
	}

	printSituations(m.out, situations)
	return nil
}

func (m *Menu) allSituations(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- ALL SITUATIONS ---")

	situations, err := m.services.ReportService.AllSituations(ctx)
	if err != nil {
		return err
	}

	printSituations(m.out, situations)
	return nil
}

func (m *Menu) studentSummary(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- STUDENT SUMMARY ---")

	code, err := m.readLine("Enrollment code: ")
	if err != nil {
		return err
	}

	summaries, err := m.services.ReportService.Summaries(ctx, code)
	if err != nil {
		return err
	}

	printSummaries(m.out, summaries)
	return nil
}

func (m *Menu) allSummaries(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- ALL SUMMARIES ---")

	summaries, err := m.services.ReportService.Summaries(ctx, "")
	if err != nil {
		return err
	}

	printSummaries(m.out, summaries)
	return nil
}

func (m *Menu) listPassed(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- PASSED STUDENTS ---")

	groups, err := m.services.ReportService.PassedGroups(ctx)
	if err != nil {
		return err
	}

	printPassedGroups(m.out, groups)
	return nil
}

func (m *Menu) listFailed(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- FAILED STUDENTS ---")

	groups, err := m.services.ReportService.FailedGroups(ctx)
	if err != nil {
		return err
	}

	printFailedGroups(m.out, groups)
	return nil
}

func (m *Menu) semesterStats(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- SEMESTER STATISTICS ---")

	semester, err := m.readLine("Semester (e.g. 2024.1): ")
	if err != nil {
		return err
	}

	stats, err := m.services.ReportService.SemesterStats(ctx, semester)
	if err != nil {
		return err
	}

	printSemesterStats(m.out, stats)
	return nil
}

func (m *Menu) loadSampleData(ctx context.Context) error {
	answer, err := m.readLine("Load sample data? (y/n): ")
	if err != nil {
		return err
	}

	if strings.ToLower(answer) != "y" {
		return nil
	}

	fmt.Fprintln(m.out, "\n--- LOADING SAMPLE DATA ---")
	if err := seed.LoadSampleData(ctx, m.services); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Sample data loaded.")
	return nil
}
