package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
	"github.com/yigit/gradebook/internal/pkg/dberrors"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

// GradeRepository handles grade record database operations
type GradeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new grade record and fills in the generated ID
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	sql, args, err := r.sb.Insert("grades").
		Columns("student_id", "course_id", "score1", "score2", "score3", "semester").
		Values(grade.StudentID, grade.CourseID, grade.Score1, grade.Score2, grade.Score3, grade.Semester).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create grade SQL")
		return fmt.Errorf("failed to build create grade query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&grade.ID)
	if err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrGradeAlreadyExists
		case dberrors.IsCheckViolation(err):
			return apperrors.ErrScoreOutOfRange
		}
		logger.Error().Err(err).
			Int64("studentID", grade.StudentID).
			Int64("courseID", grade.CourseID).
			Str("semester", grade.Semester).
			Msg("Error executing create grade query")
		return fmt.Errorf("error creating grade record: %w", err)
	}

	return nil
}

// UpdateScores overwrites the three scores of the record matching the
// (student, course, semester) triple. Identifiers are never touched.
func (r *GradeRepository) UpdateScores(ctx context.Context, studentID, courseID int64, semester string, s1, s2, s3 float64) error {
	sql, args, err := r.sb.Update("grades").
		Set("score1", s1).
		Set("score2", s2).
		Set("score3", s3).
		Where(squirrel.Eq{
			"student_id": studentID,
			"course_id":  courseID,
			"semester":   semester,
		}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update grade SQL")
		return fmt.Errorf("failed to build update grade query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsCheckViolation(err) {
			return apperrors.ErrScoreOutOfRange
		}
		logger.Error().Err(err).
			Int64("studentID", studentID).
			Int64("courseID", courseID).
			Str("semester", semester).
			Msg("Error executing update grade query")
		return fmt.Errorf("error updating grade record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}
