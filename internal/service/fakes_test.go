package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/prepkit/assessment-service/internal/models"
	"github.com/prepkit/assessment-service/internal/repository"
	"github.com/prepkit/assessment-service/pkg/codes"
)

// fakeStore backs the service tests with an in-memory implementation of the
// student and record repositories. Appends are serialized by the mutex and
// codes are derived from current counts, mirroring the row-lock behavior of
// the Postgres implementation.
type fakeStore struct {
	mu         sync.Mutex
	students   map[string]*models.Student // keyed by email
	contests   map[string][]models.ContestRecord
	mcqs       map[string][]models.McqRecord
	interviews map[string][]models.InterviewRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		students:   make(map[string]*models.Student),
		contests:   make(map[string][]models.ContestRecord),
		mcqs:       make(map[string][]models.McqRecord),
		interviews: make(map[string][]models.InterviewRecord),
	}
}

func (f *fakeStore) Create(ctx context.Context, student *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Same behavior as the unique constraint on students.email.
	if _, ok := f.students[student.Email]; ok {
		return repository.ErrDuplicateEmail
	}

	copied := *student
	f.students[student.Email] = &copied
	return nil
}

func (f *fakeStore) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	student, ok := f.students[email]
	if !ok {
		return nil, nil
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStore) GetProfileByEmail(ctx context.Context, email string) (*models.StudentProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	student, ok := f.students[email]
	if !ok {
		return nil, nil
	}

	profile := &models.StudentProfile{
		ID:                    student.ID,
		Name:                  student.Name,
		Email:                 student.Email,
		RegisteredAt:          student.RegisteredAt,
		CodingContestsTaken:   append([]models.ContestRecord{}, f.contests[student.ID]...),
		McqTestsTaken:         append([]models.McqRecord{}, f.mcqs[student.ID]...),
		AiMockInterviewsTaken: append([]models.InterviewRecord{}, f.interviews[student.ID]...),
	}
	return profile, nil
}

func (f *fakeStore) RecordLogin(ctx context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, student := range f.students {
		if student.ID == id {
			student.LoginCount++
			loginAt := at
			student.LastLoginAt = &loginAt
			return nil
		}
	}
	return nil
}

func (f *fakeStore) AppendContest(ctx context.Context, studentID string, score float64, takenAt time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	code := codes.ContestCode(len(f.contests[studentID]))
	f.contests[studentID] = append(f.contests[studentID], models.ContestRecord{
		ContestCode: code,
		Score:       &score,
		DateTaken:   takenAt,
	})
	return code, nil
}

func (f *fakeStore) AppendMcq(ctx context.Context, studentID, technology string, score float64, takenAt time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, record := range f.mcqs[studentID] {
		if strings.EqualFold(record.Technology, technology) {
			count++
		}
	}

	code := codes.McqCode(technology, count)
	f.mcqs[studentID] = append(f.mcqs[studentID], models.McqRecord{
		TestCode:   code,
		Technology: technology,
		Score:      &score,
		DateTaken:  takenAt,
	})
	return code, nil
}

func (f *fakeStore) AppendInterview(ctx context.Context, studentID string, score float64, feedback string, takenAt time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	code := codes.InterviewCode(len(f.interviews[studentID]))
	f.interviews[studentID] = append(f.interviews[studentID], models.InterviewRecord{
		InterviewCode: code,
		Score:         &score,
		Feedback:      feedback,
		DateTaken:     takenAt,
	})
	return code, nil
}
