package dto

// CreateStudentRequest is the payload for registering a student
type CreateStudentRequest struct {
	Code string `json:"code" binding:"required" example:"2024001"`
	Name string `json:"name" binding:"required" example:"Alice Johnson"`
}
