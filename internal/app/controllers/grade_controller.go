package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradebook/internal/app/models/dto"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/middleware"
)

// GradeController handles grade ledger endpoints
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

func (c *GradeController) bindGradeRequest(ctx *gin.Context) (*services.GradeInput, bool) {
	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return nil, false
	}

	return &services.GradeInput{
		StudentCode: req.StudentCode,
		CourseCode:  req.CourseCode,
		Score1:      req.Score1,
		Score2:      req.Score2,
		Score3:      req.Score3,
		Semester:    req.Semester,
	}, true
}

// Record creates a grade record and reports the derived average and status
func (c *GradeController) Record(ctx *gin.Context) {
	in, ok := c.bindGradeRequest(ctx)
	if !ok {
		return
	}

	result, err := c.gradeService.Record(ctx, *in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result, "Grade record created"))
}

// Update overwrites the scores of an existing grade record
func (c *GradeController) Update(ctx *gin.Context) {
	in, ok := c.bindGradeRequest(ctx)
	if !ok {
		return
	}

	result, err := c.gradeService.Update(ctx, *in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Grade record updated"))
}
