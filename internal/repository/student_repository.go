package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/prepkit/assessment-service/internal/models"
)

// ErrDuplicateEmail is returned when an insert hits the unique constraint on
// students.email. Two concurrent registrations can both pass the pre-insert
// lookup; the constraint is the authoritative guard.
var ErrDuplicateEmail = errors.New("student email already exists")

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.StudentProfile, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
}

type studentRepository struct {
	*PostgresRepository
}

func NewStudentRepository(db *sql.DB, logger zerolog.Logger) StudentRepository {
	return &studentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, name, email, password_hash, registered_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		student.ID,
		student.Name,
		student.Email,
		student.PasswordHash,
		student.RegisteredAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT id, name, email, password_hash, login_count, last_login_at, registered_at
		FROM students
		WHERE email = $1
	`

	student := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.PasswordHash,
		&student.LoginCount,
		&student.LastLoginAt,
		&student.RegisteredAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return student, err
}

func (r *studentRepository) GetProfileByEmail(ctx context.Context, email string) (*models.StudentProfile, error) {
	query := `
		SELECT id, name, email, registered_at
		FROM students
		WHERE email = $1
	`

	profile := &models.StudentProfile{
		CodingContestsTaken:   []models.ContestRecord{},
		McqTestsTaken:         []models.McqRecord{},
		AiMockInterviewsTaken: []models.InterviewRecord{},
	}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Email,
		&profile.RegisteredAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if profile.CodingContestsTaken, err = r.contestRecords(ctx, profile.ID); err != nil {
		return nil, err
	}
	if profile.McqTestsTaken, err = r.mcqRecords(ctx, profile.ID); err != nil {
		return nil, err
	}
	if profile.AiMockInterviewsTaken, err = r.interviewRecords(ctx, profile.ID); err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *studentRepository) contestRecords(ctx context.Context, studentID string) ([]models.ContestRecord, error) {
	query := `
		SELECT contest_code, score, date_taken
		FROM contest_records
		WHERE student_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.ContestRecord{}
	for rows.Next() {
		var record models.ContestRecord
		if err := rows.Scan(&record.ContestCode, &record.Score, &record.DateTaken); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *studentRepository) mcqRecords(ctx context.Context, studentID string) ([]models.McqRecord, error) {
	query := `
		SELECT test_code, technology, score, date_taken
		FROM mcq_records
		WHERE student_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.McqRecord{}
	for rows.Next() {
		var record models.McqRecord
		if err := rows.Scan(&record.TestCode, &record.Technology, &record.Score, &record.DateTaken); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *studentRepository) interviewRecords(ctx context.Context, studentID string) ([]models.InterviewRecord, error) {
	query := `
		SELECT interview_code, score, feedback, date_taken
		FROM interview_records
		WHERE student_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.InterviewRecord{}
	for rows.Next() {
		var record models.InterviewRecord
		if err := rows.Scan(&record.InterviewCode, &record.Score, &record.Feedback, &record.DateTaken); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *studentRepository) RecordLogin(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE students
		SET login_count = login_count + 1, last_login_at = $1
		WHERE id = $2
	`

	_, err := r.db.ExecContext(ctx, query, at, id)
	return err
}
