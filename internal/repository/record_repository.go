package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/prepkit/assessment-service/pkg/codes"
)

// RecordRepository appends assessment records to a student's history. Each
// append runs in a transaction that locks the student row, so concurrent
// submissions for the same student are serialized and sequence-derived codes
// cannot collide. Counts are always recomputed from the record tables.
type RecordRepository interface {
	AppendContest(ctx context.Context, studentID string, score float64, takenAt time.Time) (string, error)
	AppendMcq(ctx context.Context, studentID, technology string, score float64, takenAt time.Time) (string, error)
	AppendInterview(ctx context.Context, studentID string, score float64, feedback string, takenAt time.Time) (string, error)
}

type recordRepository struct {
	*PostgresRepository
}

func NewRecordRepository(db *sql.DB, logger zerolog.Logger) RecordRepository {
	return &recordRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *recordRepository) AppendContest(ctx context.Context, studentID string, score float64, takenAt time.Time) (string, error) {
	var code string

	err := r.withStudentLock(ctx, studentID, func(tx *sql.Tx) error {
		var count int
		countQuery := `SELECT COUNT(*) FROM contest_records WHERE student_id = $1`
		if err := tx.QueryRowContext(ctx, countQuery, studentID).Scan(&count); err != nil {
			return err
		}

		code = codes.ContestCode(count)

		insertQuery := `
			INSERT INTO contest_records (student_id, contest_code, score, date_taken)
			VALUES ($1, $2, $3, $4)
		`
		_, err := tx.ExecContext(ctx, insertQuery, studentID, code, score, takenAt)
		return err
	})
	if err != nil {
		return "", err
	}

	return code, nil
}

func (r *recordRepository) AppendMcq(ctx context.Context, studentID, technology string, score float64, takenAt time.Time) (string, error) {
	var code string

	err := r.withStudentLock(ctx, studentID, func(tx *sql.Tx) error {
		var count int
		countQuery := `
			SELECT COUNT(*) FROM mcq_records
			WHERE student_id = $1 AND LOWER(technology) = LOWER($2)
		`
		if err := tx.QueryRowContext(ctx, countQuery, studentID, technology).Scan(&count); err != nil {
			return err
		}

		code = codes.McqCode(technology, count)

		insertQuery := `
			INSERT INTO mcq_records (student_id, test_code, technology, score, date_taken)
			VALUES ($1, $2, $3, $4, $5)
		`
		_, err := tx.ExecContext(ctx, insertQuery, studentID, code, technology, score, takenAt)
		return err
	})
	if err != nil {
		return "", err
	}

	return code, nil
}

func (r *recordRepository) AppendInterview(ctx context.Context, studentID string, score float64, feedback string, takenAt time.Time) (string, error) {
	var code string

	err := r.withStudentLock(ctx, studentID, func(tx *sql.Tx) error {
		var count int
		countQuery := `SELECT COUNT(*) FROM interview_records WHERE student_id = $1`
		if err := tx.QueryRowContext(ctx, countQuery, studentID).Scan(&count); err != nil {
			return err
		}

		code = codes.InterviewCode(count)

		insertQuery := `
			INSERT INTO interview_records (student_id, interview_code, score, feedback, date_taken)
			VALUES ($1, $2, $3, $4, $5)
		`
		_, err := tx.ExecContext(ctx, insertQuery, studentID, code, score, feedback, takenAt)
		return err
	})
	if err != nil {
		return "", err
	}

	return code, nil
}

// withStudentLock runs fn inside a transaction holding a row lock on the
// student, the serialization point for all appends to that student's history.
func (r *recordRepository) withStudentLock(ctx context.Context, studentID string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT id FROM students WHERE id = $1 FOR UPDATE`
	var id string
	if err := tx.QueryRowContext(ctx, lockQuery, studentID).Scan(&id); err != nil {
		return fmt.Errorf("failed to lock student row: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}
