package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/prepkit/assessment-service/internal/models"
	"github.com/prepkit/assessment-service/internal/repository"
)

// RecordService validates one assessment submission, resolves the student by
// email and appends exactly one record to the matching history list.
// Resubmitting identical data is not deduplicated: it appends a second record
// with the next sequence-derived code.
type RecordService interface {
	SubmitContest(ctx context.Context, req *models.SubmitContestRequest) (string, error)
	SubmitMcq(ctx context.Context, req *models.SubmitMcqRequest) (string, error)
	SubmitInterview(ctx context.Context, req *models.SubmitInterviewRequest) (string, error)
}

type recordService struct {
	studentRepo repository.StudentRepository
	recordRepo  repository.RecordRepository
	logger      zerolog.Logger
	now         func() time.Time
}

func NewRecordService(
	studentRepo repository.StudentRepository,
	recordRepo repository.RecordRepository,
	logger zerolog.Logger,
) RecordService {
	return &recordService{
		studentRepo: studentRepo,
		recordRepo:  recordRepo,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *recordService) SubmitContest(ctx context.Context, req *models.SubmitContestRequest) (string, error) {
	if req.Email == "" {
		return "", fmt.Errorf("%w: email is required", ErrValidation)
	}
	if req.Score == nil {
		return "", fmt.Errorf("%w: score is required", ErrValidation)
	}

	student, err := s.findStudent(ctx, req.Email)
	if err != nil {
		return "", err
	}

	code, err := s.recordRepo.AppendContest(ctx, student.ID, *req.Score, s.now())
	if err != nil {
		return "", fmt.Errorf("failed to append contest record: %w", err)
	}

	s.logger.Info().
		Str("student_id", student.ID).
		Str("contest_code", code).
		Msg("Contest score submitted")

	return code, nil
}

func (s *recordService) SubmitMcq(ctx context.Context, req *models.SubmitMcqRequest) (string, error) {
	if req.Email == "" {
		return "", fmt.Errorf("%w: email is required", ErrValidation)
	}
	if req.Technology == "" {
		return "", fmt.Errorf("%w: technology is required", ErrValidation)
	}
	if req.Score == nil {
		return "", fmt.Errorf("%w: score is required", ErrValidation)
	}

	student, err := s.findStudent(ctx, req.Email)
	if err != nil {
		return "", err
	}

	code, err := s.recordRepo.AppendMcq(ctx, student.ID, req.Technology, *req.Score, s.now())
	if err != nil {
		return "", fmt.Errorf("failed to append mcq record: %w", err)
	}

	s.logger.Info().
		Str("student_id", student.ID).
		Str("test_code", code).
		Msg("MCQ test submitted")

	return code, nil
}

func (s *recordService) SubmitInterview(ctx context.Context, req *models.SubmitInterviewRequest) (string, error) {
	if req.Email == "" {
		return "", fmt.Errorf("%w: email is required", ErrValidation)
	}
	if req.Score == nil {
		return "", fmt.Errorf("%w: score is required", ErrValidation)
	}

	student, err := s.findStudent(ctx, req.Email)
	if err != nil {
		return "", err
	}

	// Feedback is optional and defaults to the empty string.
	code, err := s.recordRepo.AppendInterview(ctx, student.ID, *req.Score, req.Feedback, s.now())
	if err != nil {
		return "", fmt.Errorf("failed to append interview record: %w", err)
	}

	s.logger.Info().
		Str("student_id", student.ID).
		Str("interview_code", code).
		Msg("AI interview submitted")

	return code, nil
}

func (s *recordService) findStudent(ctx context.Context, email string) (*models.Student, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}
