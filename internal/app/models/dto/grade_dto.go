package dto

// GradeRequest is the payload for recording or updating a grade record.
// The same triple (studentCode, courseCode, semester) addresses the record
// in both cases.
type GradeRequest struct {
	StudentCode string  `json:"studentCode" binding:"required" example:"2024001"`
	CourseCode  string  `json:"courseCode" binding:"required" example:"MAT101"`
	Score1      float64 `json:"score1" binding:"gte=0,lte=10" example:"8.5"`
	Score2      float64 `json:"score2" binding:"gte=0,lte=10" example:"7.0"`
	Score3      float64 `json:"score3" binding:"gte=0,lte=10" example:"9.0"`
	Semester    string  `json:"semester" binding:"required" example:"2024.1"`
}
