package models

import "math"

// Status classifies a grade record by its average score.
type Status string

const (
	StatusPassed Status = "PASS"
	StatusFailed Status = "FAIL"
)

// PassThreshold is the minimum average required to pass a course.
// Fixed business rule, not configurable.
const PassThreshold = 7.0

// ScoreMin and ScoreMax bound every component score.
const (
	ScoreMin = 0.0
	ScoreMax = 10.0
)

// Grade defines a grade record based on the 'grades' table. A student has at
// most one grade record per course per semester.
type Grade struct {
	ID        int64   `json:"id" db:"id"`
	StudentID int64   `json:"studentId" db:"student_id"`
	CourseID  int64   `json:"courseId" db:"course_id"`
	Score1    float64 `json:"score1" db:"score1"`
	Score2    float64 `json:"score2" db:"score2"`
	Score3    float64 `json:"score3" db:"score3"`
	Semester  string  `json:"semester" db:"semester"`
}

// Average returns the arithmetic mean of the three component scores.
// It is derived at read time and never persisted.
func (g *Grade) Average() float64 {
	return AverageOf(g.Score1, g.Score2, g.Score3)
}

// Status returns the PASS/FAIL classification for this grade record.
func (g *Grade) Status() Status {
	return StatusOf(g.Average())
}

// AverageOf returns the arithmetic mean of three component scores.
func AverageOf(s1, s2, s3 float64) float64 {
	return (s1 + s2 + s3) / 3
}

// StatusOf classifies an average against the pass threshold.
// An average of exactly 7.0 passes.
func StatusOf(average float64) Status {
	if average >= PassThreshold {
		return StatusPassed
	}
	return StatusFailed
}

// ValidScore reports whether a component score lies in [0,10].
func ValidScore(score float64) bool {
	return score >= ScoreMin && score <= ScoreMax
}

// Round2 rounds a value to two decimal places for display and report parity.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
