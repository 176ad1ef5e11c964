package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

// ReportRepository runs the read-only aggregation queries. The report SQL is
// kept as raw statements; squirrel adds nothing over grouped CASE expressions.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

const situationSelect = `
	SELECT
		s.code AS student_code,
		s.name AS student_name,
		c.code AS course_code,
		c.name AS course_name,
		g.score1,
		g.score2,
		g.score3,
		(g.score1 + g.score2 + g.score3) / 3.0 AS average,
		CASE
			WHEN (g.score1 + g.score2 + g.score3) / 3.0 >= 7.0 THEN 'PASS'
			ELSE 'FAIL'
		END AS status,
		g.semester
	FROM grades g
	INNER JOIN students s ON g.student_id = s.id
	INNER JOIN courses c ON g.course_id = c.id`

// StudentSituation returns per-course rows for one student, course name ascending
func (r *ReportRepository) StudentSituation(ctx context.Context, studentCode string) ([]*models.CourseSituation, error) {
	query := situationSelect + `
	WHERE s.code = $1
	ORDER BY c.name`

	rows, err := r.db.Query(ctx, query, studentCode)
	if err != nil {
		logger.Error().Err(err).Str("studentCode", studentCode).Msg("Error executing student situation query")
		return nil, fmt.Errorf("error querying student situation: %w", err)
	}
	defer rows.Close()

	return scanSituations(rows)
}

// AllSituations returns per-course rows for every grade record,
// ordered by student name then course name
func (r *ReportRepository) AllSituations(ctx context.Context) ([]*models.CourseSituation, error) {
	query := situationSelect + `
	ORDER BY s.name, c.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing all situations query")
		return nil, fmt.Errorf("error querying situations: %w", err)
	}
	defer rows.Close()

	return scanSituations(rows)
}

func scanSituations(rows pgx.Rows) ([]*models.CourseSituation, error) {
	situations := []*models.CourseSituation{}
	for rows.Next() {
		row := &models.CourseSituation{}
		if err := rows.Scan(
			&row.StudentCode,
			&row.StudentName,
			&row.CourseCode,
			&row.CourseName,
			&row.Score1,
			&row.Score2,
			&row.Score3,
			&row.Average,
			&row.Status,
			&row.Semester,
		); err != nil {
			return nil, fmt.Errorf("error scanning situation row: %w", err)
		}
		situations = append(situations, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating situation rows: %w", err)
	}

	return situations, nil
}

const summarySelect = `
	SELECT
		s.code AS student_code,
		s.name AS student_name,
		g.semester,
		COUNT(*) AS total_courses,
		SUM(CASE WHEN (g.score1 + g.score2 + g.score3) / 3.0 >= 7.0 THEN 1 ELSE 0 END) AS passed,
		SUM(CASE WHEN (g.score1 + g.score2 + g.score3) / 3.0 < 7.0 THEN 1 ELSE 0 END) AS failed,
		ROUND(AVG((g.score1 + g.score2 + g.score3) / 3.0)::numeric, 2)::float8 AS group_average
	FROM students s
	INNER JOIN grades g ON s.id = g.student_id`

// Summaries returns per (student, semester) aggregates. An empty studentCode
// covers all students.
func (r *ReportRepository) Summaries(ctx context.Context, studentCode string) ([]*models.StudentSummary, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if studentCode != "" {
		query := summarySelect + `
	WHERE s.code = $1
	GROUP BY s.code, s.name, g.semester
	ORDER BY s.name, g.semester`
		rows, err = r.db.Query(ctx, query, studentCode)
	} else {
		query := summarySelect + `
	GROUP BY s.code, s.name, g.semester
	ORDER BY s.name, g.semester`
		rows, err = r.db.Query(ctx, query)
	}

	if err != nil {
		logger.Error().Err(err).Str("studentCode", studentCode).Msg("Error executing summary query")
		return nil, fmt.Errorf("error querying summaries: %w", err)
	}
	defer rows.Close()

	summaries := []*models.StudentSummary{}
	for rows.Next() {
		row := &models.StudentSummary{}
		if err := rows.Scan(
			&row.StudentCode,
			&row.StudentName,
			&row.Semester,
			&row.TotalCourses,
			&row.Passed,
			&row.Failed,
			&row.GroupAverage,
		); err != nil {
			return nil, fmt.Errorf("error scanning summary row: %w", err)
		}
		summaries = append(summaries, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary rows: %w", err)
	}

	return summaries, nil
}

// PassedGroups returns (student, semester) groups with zero failed courses,
// ordered by group average descending
func (r *ReportRepository) PassedGroups(ctx context.Context) ([]*models.PassedGroup, error) {
	query := `
	SELECT
		s.code AS student_code,
		s.name AS student_name,
		g.semester,
		COUNT(*) AS total_courses,
		ROUND(AVG((g.score1 + g.score2 + g.score3) / 3.0)::numeric, 2)::float8 AS group_average
	FROM students s
	INNER JOIN grades g ON s.id = g.student_id
	GROUP BY s.code, s.name, g.semester
	HAVING SUM(CASE WHEN (g.score1 + g.score2 + g.score3) / 3.0 < 7.0 THEN 1 ELSE 0 END) = 0
	ORDER BY group_average DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing passed groups query")
		return nil, fmt.Errorf("error querying passed groups: %w", err)
	}
	defer rows.Close()

	groups := []*models.PassedGroup{}
	for rows.Next() {
		row := &models.PassedGroup{}
		if err := rows.Scan(
			&row.StudentCode,
			&row.StudentName,
			&row.Semester,
			&row.TotalCourses,
			&row.GroupAverage,
		); err != nil {
			return nil, fmt.Errorf("error scanning passed group row: %w", err)
		}
		groups = append(groups, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating passed group rows: %w", err)
	}

	return groups, nil
}

// FailedGroups returns (student, semester) groups with at least one failed
// course, ordered by failed-count descending then group average ascending
func (r *ReportRepository) FailedGroups(ctx context.Context) ([]*models.FailedGroup, error) {
	query := `
	SELECT
		s.code AS student_code,
		s.name AS student_name,
		g.semester,
		SUM(CASE WHEN (g.score1 + g.score2 + g.score3) / 3.0 < 7.0 THEN 1 ELSE 0 END) AS failed_courses,
		ROUND(AVG((g.score1 + g.score2 + g.score3) / 3.0)::numeric, 2)::float8 AS group_average
	FROM students s
	INNER JOIN grades g ON s.id = g.student_id
	GROUP BY s.code, s.name, g.semester
	HAVING SUM(CASE WHEN (g.score1 + g.score2 + g.score3) / 3.0 < 7.0 THEN 1 ELSE 0 END) > 0
	ORDER BY failed_courses DESC, group_average ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing failed groups query")
		return nil, fmt.Errorf("error querying failed groups: %w", err)
	}
	defer rows.Close()

	groups := []*models.FailedGroup{}
	for rows.Next() {
		row := &models.FailedGroup{}
		if err := rows.Scan(
			&row.StudentCode,
			&row.StudentName,
			&row.Semester,
			&row.FailedCourses,
			&row.GroupAverage,
		); err != nil {
			return nil, fmt.Errorf("error scanning failed group row: %w", err)
		}
		groups = append(groups, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating failed group rows: %w", err)
	}

	return groups, nil
}

// SemesterStats returns the semester-wide aggregate row. It returns
// apperrors.ErrSemesterEmpty when no grade records exist for the semester,
// which also guards the pass-rate division.
func (r *ReportRepository) SemesterStats(ctx context.Context, semester string) (*models.SemesterStats, error) {
	query := `
	SELECT
		COUNT(DISTINCT student_id) AS students,
		COUNT(*) AS records,
		COALESCE(SUM(CASE WHEN (score1 + score2 + score3) / 3.0 >= 7.0 THEN 1 ELSE 0 END), 0) AS passed,
		COALESCE(SUM(CASE WHEN (score1 + score2 + score3) / 3.0 < 7.0 THEN 1 ELSE 0 END), 0) AS failed,
		COALESCE(ROUND(AVG((score1 + score2 + score3) / 3.0)::numeric, 2)::float8, 0) AS overall_average,
		COALESCE(ROUND((100.0 * SUM(CASE WHEN (score1 + score2 + score3) / 3.0 >= 7.0 THEN 1 ELSE 0 END) / COUNT(*))::numeric, 2)::float8, 0) AS pass_rate
	FROM grades
	WHERE semester = $1`

	stats := &models.SemesterStats{Semester: semester}
	err := r.db.QueryRow(ctx, query, semester).Scan(
		&stats.Students,
		&stats.Records,
		&stats.Passed,
		&stats.Failed,
		&stats.OverallAverage,
		&stats.PassRate,
	)
	if err != nil {
		logger.Error().Err(err).Str("semester", semester).Msg("Error executing semester stats query")
		return nil, fmt.Errorf("error querying semester stats: %w", err)
	}

	if stats.Records == 0 {
		return nil, apperrors.ErrSemesterEmpty
	}

	return stats, nil
}
