package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`                  // Unique identifier for the student record
	Code      string    `json:"code" db:"code" example:"2024001"`        // Student's unique enrollment code
	Name      string    `json:"name" db:"name" example:"Alice Johnson"`  // Display name
	CreatedAt time.Time `json:"createdAt" db:"created_at"`               // Registration timestamp, assigned by the database
}
