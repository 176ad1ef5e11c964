package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	gradeController *controllers.GradeController,
	reportController *controllers.ReportController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.POST("", studentController.Register)
		students.GET("", studentController.List)
		students.GET("/:code", studentController.GetByCode)
		students.GET("/:code/situation", reportController.StudentSituation)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.Register)
		courses.GET("", courseController.List)
	}

	grades := v1.Group("/grades")
	{
		grades.POST("", gradeController.Record)
		grades.PUT("", gradeController.Update)
	}

	v1.GET("/situations", reportController.AllSituations)
	v1.GET("/summaries", reportController.Summaries)

	reports := v1.Group("/reports")
	{
		reports.GET("/passed", reportController.Passed)
		reports.GET("/failed", reportController.Failed)
	}

	v1.GET("/semesters/:semester/stats", reportController.SemesterStats)
}
