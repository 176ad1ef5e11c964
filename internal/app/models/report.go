package models

// CourseSituation is one per-course row of a student's situation report.
type CourseSituation struct {
	StudentCode string  `json:"studentCode" db:"student_code"`
	StudentName string  `json:"studentName" db:"student_name"`
	CourseCode  string  `json:"courseCode" db:"course_code"`
	CourseName  string  `json:"courseName" db:"course_name"`
	Score1      float64 `json:"score1" db:"score1"`
	Score2      float64 `json:"score2" db:"score2"`
	Score3      float64 `json:"score3" db:"score3"`
	Average     float64 `json:"average" db:"average"`
	Status      Status  `json:"status" db:"status"`
	Semester    string  `json:"semester" db:"semester"`
}

// StudentSummary aggregates one (student, semester) group.
type StudentSummary struct {
	StudentCode  string  `json:"studentCode" db:"student_code"`
	StudentName  string  `json:"studentName" db:"student_name"`
	Semester     string  `json:"semester" db:"semester"`
	TotalCourses int     `json:"totalCourses" db:"total_courses"`
	Passed       int     `json:"passed" db:"passed"`
	Failed       int     `json:"failed" db:"failed"`
	GroupAverage float64 `json:"groupAverage" db:"group_average"`
}

// PassedGroup is a (student, semester) group with no failed courses.
type PassedGroup struct {
	StudentCode  string  `json:"studentCode" db:"student_code"`
	StudentName  string  `json:"studentName" db:"student_name"`
	Semester     string  `json:"semester" db:"semester"`
	TotalCourses int     `json:"totalCourses" db:"total_courses"`
	GroupAverage float64 `json:"groupAverage" db:"group_average"`
}

// FailedGroup is a (student, semester) group with at least one failed course.
type FailedGroup struct {
	StudentCode   string  `json:"studentCode" db:"student_code"`
	StudentName   string  `json:"studentName" db:"student_name"`
	Semester      string  `json:"semester" db:"semester"`
	FailedCourses int     `json:"failedCourses" db:"failed_courses"`
	GroupAverage  float64 `json:"groupAverage" db:"group_average"`
}

// SemesterStats is the semester-wide aggregate row.
type SemesterStats struct {
	Semester       string  `json:"semester" db:"semester"`
	Students       int     `json:"students" db:"students"`
	Records        int     `json:"records" db:"records"`
	Passed         int     `json:"passed" db:"passed"`
	Failed         int     `json:"failed" db:"failed"`
	OverallAverage float64 `json:"overallAverage" db:"overall_average"`
	PassRate       float64 `json:"passRate" db:"pass_rate"` // percentage, 100 * passed / records
}
