package models

// Course represents a course that grades can be recorded against.
type Course struct {
	ID          int64  `json:"id" db:"id"`
	Code        string `json:"code" db:"code"`
	Name        string `json:"name" db:"name"`
	CreditHours int    `json:"creditHours" db:"credit_hours"`
}
