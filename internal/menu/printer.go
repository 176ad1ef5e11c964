package menu

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yigit/gradebook/internal/app/models"
)

func printSeparator(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("=", width))
}

func printStudents(w io.Writer, students []*models.Student) {
	if len(students) == 0 {
		fmt.Fprintln(w, "No students found.")
		return
	}

	printSeparator(w, 80)
	fmt.Fprintf(w, "%-15s %-40s %-20s\n", "Code", "Name", "Registered")
	printSeparator(w, 80)
	for _, s := range students {
		fmt.Fprintf(w, "%-15s %-40s %-20s\n", s.Code, s.Name, s.CreatedAt.Format(time.DateTime))
	}
	printSeparator(w, 80)
	fmt.Fprintf(w, "Total: %d student(s)\n", len(students))
}

func printCourses(w io.Writer, courses []*models.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(w, "No courses found.")
		return
	}

	printSeparator(w, 70)
	fmt.Fprintf(w, "%-10s %-40s %-15s\n", "Code", "Name", "Credit Hours")
	printSeparator(w, 70)
	for _, c := range courses {
		fmt.Fprintf(w, "%-10s %-40s %-15d\n", c.Code, c.Name, c.CreditHours)
	}
	printSeparator(w, 70)
	fmt.Fprintf(w, "Total: %d course(s)\n", len(courses))
}

func printSituations(w io.Writer, situations []*models.CourseSituation) {
	if len(situations) == 0 {
		fmt.Fprintln(w, "No grade records found.")
		return
	}

	printSeparator(w, 100)
	fmt.Fprintf(w, "%-12s %-20s %-20s %-6s %-6s %-6s %-7s %-8s %-8s\n",
		"Code", "Student", "Course", "S1", "S2", "S3", "Avg", "Status", "Semester")
	printSeparator(w, 100)
	for _, s := range situations {
		fmt.Fprintf(w, "%-12s %-20s %-20s %-6.2f %-6.2f %-6.2f %-7.2f %-8s %-8s\n",
			s.StudentCode, s.StudentName, s.CourseName,
			s.Score1, s.Score2, s.Score3, s.Average, s.Status, s.Semester)
	}
	printSeparator(w, 100)
}

func printSummaries(w io.Writer, summaries []*models.StudentSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No grade records found.")
		return
	}

	printSeparator(w, 90)
	fmt.Fprintf(w, "%-12s %-25s %-10s %-8s %-8s %-8s %-8s\n",
		"Code", "Name", "Semester", "Total", "Passed", "Failed", "Average")
	printSeparator(w, 90)
	for _, s := range summaries {
		fmt.Fprintf(w, "%-12s %-25s %-10s %-8d %-8d %-8d %-8.2f\n",
			s.StudentCode, s.StudentName, s.Semester,
			s.TotalCourses, s.Passed, s.Failed, s.GroupAverage)
	}
	printSeparator(w, 90)
}

func printPassedGroups(w io.Writer, groups []*models.PassedGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No passed groups found.")
		return
	}

	printSeparator(w, 80)
	fmt.Fprintf(w, "%-12s %-25s %-10s %-8s %-8s\n",
		"Code", "Name", "Semester", "Total", "Average")
	printSeparator(w, 80)
	for _, g := range groups {
		fmt.Fprintf(w, "%-12s %-25s %-10s %-8d %-8.2f\n",
			g.StudentCode, g.StudentName, g.Semester, g.TotalCourses, g.GroupAverage)
	}
	printSeparator(w, 80)
}

func printFailedGroups(w io.Writer, groups []*models.FailedGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No failed groups found.")
		return
	}

	printSeparator(w, 80)
	fmt.Fprintf(w, "%-12s %-25s %-10s %-8s %-8s\n",
		"Code", "Name", "Semester", "Failed", "Average")
	printSeparator(w, 80)
	for _, g := range groups {
		fmt.Fprintf(w, "%-12s %-25s %-10s %-8d %-8.2f\n",
			g.StudentCode, g.StudentName, g.Semester, g.FailedCourses, g.GroupAverage)
	}
	printSeparator(w, 80)
}

func printSemesterStats(w io.Writer, stats *models.SemesterStats) {
	printSeparator(w, 80)
	fmt.Fprintf(w, "Semester: %s\n", stats.Semester)
	fmt.Fprintf(w, "Students: %d\n", stats.Students)
	fmt.Fprintf(w, "Grade records: %d\n", stats.Records)
	fmt.Fprintf(w, "Passes: %d\n", stats.Passed)
	fmt.Fprintf(w, "Fails: %d\n", stats.Failed)
	fmt.Fprintf(w, "Overall average: %.2f\n", stats.OverallAverage)
	fmt.Fprintf(w, "Pass rate: %.2f%%\n", stats.PassRate)
	printSeparator(w, 80)
}
