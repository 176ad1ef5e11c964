package services

import (
	"github.com/yigit/gradebook/internal/app/repositories"
)

// Services holds all the service instances
type Services struct {
	StudentService *StudentService
	CourseService  *CourseService
	GradeService   *GradeService
	ReportService  *ReportService
}

// NewServices wires all services over the repository layer
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		StudentService: NewStudentService(repos.StudentRepository),
		CourseService:  NewCourseService(repos.CourseRepository),
		GradeService: NewGradeService(
			repos.StudentRepository,
			repos.CourseRepository,
			repos.GradeRepository,
		),
		ReportService: NewReportService(repos.ReportRepository),
	}
}
