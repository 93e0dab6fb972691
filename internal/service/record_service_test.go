package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepkit/assessment-service/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func setupRecordService(t *testing.T, emails ...string) (RecordService, StudentService, *fakeStore) {
	t.Helper()

	store := newFakeStore()
	studentSvc := NewStudentService(store, zerolog.Nop())
	recordSvc := NewRecordService(store, store, zerolog.Nop())

	for _, email := range emails {
		_, err := studentSvc.Register(context.Background(), &models.RegisterStudentRequest{
			Name:     "Student " + email,
			Email:    email,
			Password: "secret",
		})
		require.NoError(t, err)
	}

	return recordSvc, studentSvc, store
}

func TestSubmitContest_Validation(t *testing.T) {
	svc, _, _ := setupRecordService(t, "a@x.com")
	ctx := context.Background()

	_, err := svc.SubmitContest(ctx, &models.SubmitContestRequest{Score: floatPtr(90)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SubmitContest(ctx, &models.SubmitContestRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitContest_UnknownStudent(t *testing.T) {
	svc, _, _ := setupRecordService(t, "a@x.com")

	_, err := svc.SubmitContest(context.Background(), &models.SubmitContestRequest{
		Email: "nobody@x.com",
		Score: floatPtr(90),
	})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestSubmitContest_SequentialCodes(t *testing.T) {
	svc, _, _ := setupRecordService(t, "a@x.com", "b@x.com")
	ctx := context.Background()

	// Interleave submissions from two students: each keeps an independent,
	// gapless sequence.
	expected := map[string][]string{
		"a@x.com": {"contest-1", "contest-2", "contest-3"},
		"b@x.com": {"contest-1", "contest-2"},
	}

	order := []string{"a@x.com", "b@x.com", "a@x.com", "b@x.com", "a@x.com"}
	got := map[string][]string{}
	for _, email := range order {
		code, err := svc.SubmitContest(ctx, &models.SubmitContestRequest{
			Email: email,
			Score: floatPtr(50),
		})
		require.NoError(t, err)
		got[email] = append(got[email], code)
	}

	assert.Equal(t, expected, got)
}

func TestSubmitContest_ResubmissionAppendsNewRecord(t *testing.T) {
	svc, _, _ := setupRecordService(t, "a@x.com")
	ctx := context.Background()

	req := &models.SubmitContestRequest{Email: "a@x.com", Score: floatPtr(70)}

	first, err := svc.SubmitContest(ctx, req)
	require.NoError(t, err)
	second, err := svc.SubmitContest(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "contest-1", first)
	assert.Equal(t, "contest-2", second)
}

func TestSubmitMcq_Validation(t *testing.T) {
	svc, _, _ := setupRecordService(t, "a@x.com")
	ctx := context.Background()

	_, err := svc.SubmitMcq(ctx, &models.SubmitMcqRequest{Email: "a@x.com", Score: floatPtr(80)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SubmitMcq(ctx, &models.SubmitMcqRequest{Email: "a@x.com", Technology: "java"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitMcq_PerTechnologySequence(t *testing.T) {
	svc, _, _ := setupRecordService(t, "a@x.com")
	ctx := context.Background()

	submissions := []struct {
		technology string
		want       string
	}{
		{"Java", "mcq-java-1"},
		{"Python", "mcq-python-1"},
		{"Java", "mcq-java-2"},
	}

	for _, sub := range submissions {
		code, err := svc.SubmitMcq(ctx, &models.SubmitMcqRequest{
			Email:      "a@x.com",
			Technology: sub.technology,
			Score:      floatPtr(80),
		})
		require.NoError(t, err)
		assert.Equal(t, sub.want, code)
	}
}

func TestSubmitMcq_TechnologyMatchIsCaseInsensitive(t *testing.T) {
	svc, _, _ := setupRecordService(t, "a@x.com")
	ctx := context.Background()

	first, err := svc.SubmitMcq(ctx, &models.SubmitMcqRequest{
		Email:      "a@x.com",
		Technology: "java",
		Score:      floatPtr(80),
	})
	require.NoError(t, err)
	assert.Equal(t, "mcq-java-1", first)

	second, err := svc.SubmitMcq(ctx, &models.SubmitMcqRequest{
		Email:      "a@x.com",
		Technology: "Java",
		Score:      floatPtr(90),
	})
	require.NoError(t, err)
	assert.Equal(t, "mcq-java-2", second)
}

func TestSubmitInterview(t *testing.T) {
	svc, studentSvc, _ := setupRecordService(t, "a@x.com")
	ctx := context.Background()

	t.Run("missing score", func(t *testing.T) {
		_, err := svc.SubmitInterview(ctx, &models.SubmitInterviewRequest{Email: "a@x.com"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("feedback defaults to empty string", func(t *testing.T) {
		code, err := svc.SubmitInterview(ctx, &models.SubmitInterviewRequest{
			Email: "a@x.com",
			Score: floatPtr(65),
		})
		require.NoError(t, err)
		assert.Equal(t, "ai-1", code)

		profile, err := studentSvc.GetProfile(ctx, "a@x.com")
		require.NoError(t, err)
		require.Len(t, profile.AiMockInterviewsTaken, 1)
		assert.Equal(t, "", profile.AiMockInterviewsTaken[0].Feedback)
	})

	t.Run("sequence continues", func(t *testing.T) {
		code, err := svc.SubmitInterview(ctx, &models.SubmitInterviewRequest{
			Email:    "a@x.com",
			Score:    floatPtr(72),
			Feedback: "good communication",
		})
		require.NoError(t, err)
		assert.Equal(t, "ai-2", code)
	})
}

func TestSubmit_ZeroScoreIsValid(t *testing.T) {
	svc, _, _ := setupRecordService(t, "a@x.com")

	code, err := svc.SubmitContest(context.Background(), &models.SubmitContestRequest{
		Email: "a@x.com",
		Score: floatPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, "contest-1", code)
}

func TestProfileReflectsSubmissions(t *testing.T) {
	svc, studentSvc, _ := setupRecordService(t, "a@x.com")
	ctx := context.Background()

	_, err := svc.SubmitContest(ctx, &models.SubmitContestRequest{Email: "a@x.com", Score: floatPtr(40)})
	require.NoError(t, err)
	_, err = svc.SubmitMcq(ctx, &models.SubmitMcqRequest{Email: "a@x.com", Technology: "go", Score: floatPtr(85)})
	require.NoError(t, err)

	profile, err := studentSvc.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, profile.CodingContestsTaken, 1)
	require.Len(t, profile.McqTestsTaken, 1)
	assert.Equal(t, "contest-1", profile.CodingContestsTaken[0].ContestCode)
	assert.Equal(t, "mcq-go-1", profile.McqTestsTaken[0].TestCode)
	assert.False(t, profile.CodingContestsTaken[0].DateTaken.IsZero())
}
