package services

import (
	"context"
	"strings"

	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

// ReportStore is the read-only aggregation surface the service needs
type ReportStore interface {
	StudentSituation(ctx context.Context, studentCode string) ([]*models.CourseSituation, error)
	AllSituations(ctx context.Context) ([]*models.CourseSituation, error)
	Summaries(ctx context.Context, studentCode string) ([]*models.StudentSummary, error)
	PassedGroups(ctx context.Context) ([]*models.PassedGroup, error)
	FailedGroups(ctx context.Context) ([]*models.FailedGroup, error)
	SemesterStats(ctx context.Context, semester string) (*models.SemesterStats, error)
}

// ReportService exposes the derived pass/fail reports
type ReportService struct {
	reports ReportStore
}

// NewReportService creates a new report service instance
func NewReportService(reports ReportStore) *ReportService {
	return &ReportService{
		reports: reports,
	}
}

// StudentSituation returns the per-course rows for one student
func (s *ReportService) StudentSituation(ctx context.Context, studentCode string) ([]*models.CourseSituation, error) {
	studentCode = strings.TrimSpace(studentCode)
	if studentCode == "" {
		return nil, apperrors.NewValidationError("enrollment code cannot be empty")
	}

	return s.reports.StudentSituation(ctx, studentCode)
}

// AllSituations returns the per-course rows for every grade record
func (s *ReportService) AllSituations(ctx context.Context) ([]*models.CourseSituation, error) {
	return s.reports.AllSituations(ctx)
}

// Summaries returns per (student, semester) aggregates. An empty studentCode
// covers all students.
func (s *ReportService) Summaries(ctx context.Context, studentCode string) ([]*models.StudentSummary, error) {
	return s.reports.Summaries(ctx, strings.TrimSpace(studentCode))
}

// PassedGroups returns the groups with zero failed courses
func (s *ReportService) PassedGroups(ctx context.Context) ([]*models.PassedGroup, error) {
	return s.reports.PassedGroups(ctx)
}

// FailedGroups returns the groups with at least one failed course
func (s *ReportService) FailedGroups(ctx context.Context) ([]*models.FailedGroup, error) {
	return s.reports.FailedGroups(ctx)
}

// SemesterStats returns the semester-wide aggregates, or
// apperrors.ErrSemesterEmpty when no records exist for the semester
func (s *ReportService) SemesterStats(ctx context.Context, semester string) (*models.SemesterStats, error) {
	semester = strings.TrimSpace(semester)
	if semester == "" {
		return nil, apperrors.NewValidationError("semester cannot be empty")
	}

	return s.reports.SemesterStats(ctx, semester)
}
