package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/prepkit/assessment-service/internal/models"
)

// StatsRepository runs the read-only aggregations behind the analytics
// endpoints. All cross-student grouping deduplicates participants by email,
// the stable natural key.
type StatsRepository interface {
	CountStudents(ctx context.Context) (int, error)
	CountDistinctContestCodes(ctx context.Context) (int, error)
	CountContestParticipants(ctx context.Context) (int, error)
	MonthlyContestParticipation(ctx context.Context) ([]models.MonthlyBucket, error)
	WeeklyContestParticipation(ctx context.Context) ([]models.WeeklyBucket, error)
	DriveParticipation(ctx context.Context) (*models.DriveParticipation, error)
	StudentSummaries(ctx context.Context) ([]models.StudentSummary, error)
}

type statsRepository struct {
	*PostgresRepository
}

func NewStatsRepository(db *sql.DB, logger zerolog.Logger) StatsRepository {
	return &statsRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *statsRepository) CountStudents(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM students`

	var total int
	err := r.db.QueryRowContext(ctx, query).Scan(&total)
	return total, err
}

// CountDistinctContestCodes counts distinct contest_code values across all
// students. Codes are only unique per student, so identical codes from
// different students collapse into one; the result is an upper bound on
// distinct contest identity.
func (r *statsRepository) CountDistinctContestCodes(ctx context.Context) (int, error) {
	query := `SELECT COUNT(DISTINCT contest_code) FROM contest_records`

	var total int
	err := r.db.QueryRowContext(ctx, query).Scan(&total)
	return total, err
}

func (r *statsRepository) CountContestParticipants(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(DISTINCT s.email)
		FROM contest_records c
		JOIN students s ON c.student_id = s.id
	`

	var participants int
	err := r.db.QueryRowContext(ctx, query).Scan(&participants)
	return participants, err
}

func (r *statsRepository) MonthlyContestParticipation(ctx context.Context) ([]models.MonthlyBucket, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM c.date_taken)::int AS year,
			EXTRACT(MONTH FROM c.date_taken)::int AS month,
			COUNT(DISTINCT s.email) AS participants
		FROM contest_records c
		JOIN students s ON c.student_id = s.id
		GROUP BY year, month
		ORDER BY year, month
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []models.MonthlyBucket
	for rows.Next() {
		var bucket models.MonthlyBucket
		if err := rows.Scan(&bucket.Year, &bucket.Month, &bucket.Participants); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	return buckets, rows.Err()
}

// WeeklyContestParticipation buckets records by fixed day-of-month ranges
// (1-7, 8-14, 15-21, 22-31). The grouping key is (month, week) without the
// year, so the same month across different years merges into one bucket.
func (r *statsRepository) WeeklyContestParticipation(ctx context.Context) ([]models.WeeklyBucket, error) {
	query := `
		SELECT
			EXTRACT(MONTH FROM c.date_taken)::int AS month,
			CASE
				WHEN EXTRACT(DAY FROM c.date_taken) <= 7 THEN 1
				WHEN EXTRACT(DAY FROM c.date_taken) <= 14 THEN 2
				WHEN EXTRACT(DAY FROM c.date_taken) <= 21 THEN 3
				ELSE 4
			END AS week,
			COUNT(DISTINCT s.email) AS participants
		FROM contest_records c
		JOIN students s ON c.student_id = s.id
		GROUP BY month, week
		ORDER BY month, week
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []models.WeeklyBucket
	for rows.Next() {
		var bucket models.WeeklyBucket
		if err := rows.Scan(&bucket.Month, &bucket.Week, &bucket.Participants); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	return buckets, rows.Err()
}

func (r *statsRepository) DriveParticipation(ctx context.Context) (*models.DriveParticipation, error) {
	query := `
		SELECT
			(SELECT COUNT(DISTINCT s.email) FROM contest_records c JOIN students s ON c.student_id = s.id),
			(SELECT COUNT(DISTINCT s.email) FROM interview_records i JOIN students s ON i.student_id = s.id),
			(SELECT COUNT(DISTINCT s.email) FROM mcq_records m JOIN students s ON m.student_id = s.id)
	`

	stats := &models.DriveParticipation{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.ContestParticipants,
		&stats.InterviewParticipants,
		&stats.McqParticipants,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *statsRepository) StudentSummaries(ctx context.Context) ([]models.StudentSummary, error) {
	query := `
		SELECT
			s.id, s.name, s.email,
			COALESCE(c.cnt, 0) + COALESCE(m.cnt, 0) + COALESCE(i.cnt, 0) AS total_tests_taken,
			COALESCE(c.total, 0) + COALESCE(m.total, 0) + COALESCE(i.total, 0) AS total_score
		FROM students s
		LEFT JOIN (
			SELECT student_id, COUNT(*) AS cnt, SUM(COALESCE(score, 0)) AS total
			FROM contest_records GROUP BY student_id
		) c ON c.student_id = s.id
		LEFT JOIN (
			SELECT student_id, COUNT(*) AS cnt, SUM(COALESCE(score, 0)) AS total
			FROM mcq_records GROUP BY student_id
		) m ON m.student_id = s.id
		LEFT JOIN (
			SELECT student_id, COUNT(*) AS cnt, SUM(COALESCE(score, 0)) AS total
			FROM interview_records GROUP BY student_id
		) i ON i.student_id = s.id
		ORDER BY s.registered_at, s.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.StudentSummary{}
	for rows.Next() {
		var summary models.StudentSummary
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Email,
			&summary.TotalTestsTaken,
			&summary.TotalScore,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
