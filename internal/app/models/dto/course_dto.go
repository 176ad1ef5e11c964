package dto

// CreateCourseRequest is the payload for registering a course
type CreateCourseRequest struct {
	Code        string `json:"code" binding:"required" example:"MAT101"`
	Name        string `json:"name" binding:"required" example:"Mathematics I"`
	CreditHours int    `json:"creditHours" binding:"gte=0" example:"60"`
}
