package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// ReportController handles the derived report endpoints
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// StudentSituation returns per-course rows for one student
func (c *ReportController) StudentSituation(ctx *gin.Context) {
	situations, err := c.reportService.StudentSituation(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(situations, ""))
}

// AllSituations returns per-course rows for every grade record
func (c *ReportController) AllSituations(ctx *gin.Context) {
	situations, err := c.reportService.AllSituations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(situations, ""))
}

// Summaries returns per (student, semester) aggregates. The optional
// "student" query parameter narrows the report to one student.
func (c *ReportController) Summaries(ctx *gin.Context) {
	summaries, err := c.reportService.Summaries(ctx, ctx.Query("student"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries, ""))
}

// Passed returns the (student, semester) groups with zero failed courses
func (c *ReportController) Passed(ctx *gin.Context) {
	groups, err := c.reportService.PassedGroups(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(groups, ""))
}

// Failed returns the (student, semester) groups with at least one failed course
func (c *ReportController) Failed(ctx *gin.Context) {
	groups, err := c.reportService.FailedGroups(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(groups, ""))
}

// SemesterStats returns the semester-wide aggregate row, 404 when the
// semester has no grade records
func (c *ReportController) SemesterStats(ctx *gin.Context) {
	stats, err := c.reportService.SemesterStats(ctx, ctx.Param("semester"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
