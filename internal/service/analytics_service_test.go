package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepkit/assessment-service/internal/models"
)

type fakeStatsRepo struct {
	students      int
	distinctCodes int
	participants  int
	monthly       []models.MonthlyBucket
	weekly        []models.WeeklyBucket
	drive         models.DriveParticipation
	summaries     []models.StudentSummary
	err           error
}

func (f *fakeStatsRepo) CountStudents(ctx context.Context) (int, error) {
	return f.students, f.err
}

func (f *fakeStatsRepo) CountDistinctContestCodes(ctx context.Context) (int, error) {
	return f.distinctCodes, f.err
}

func (f *fakeStatsRepo) CountContestParticipants(ctx context.Context) (int, error) {
	return f.participants, f.err
}

func (f *fakeStatsRepo) MonthlyContestParticipation(ctx context.Context) ([]models.MonthlyBucket, error) {
	return f.monthly, f.err
}

func (f *fakeStatsRepo) WeeklyContestParticipation(ctx context.Context) ([]models.WeeklyBucket, error) {
	return f.weekly, f.err
}

func (f *fakeStatsRepo) DriveParticipation(ctx context.Context) (*models.DriveParticipation, error) {
	if f.err != nil {
		return nil, f.err
	}
	drive := f.drive
	return &drive, nil
}

func (f *fakeStatsRepo) StudentSummaries(ctx context.Context) ([]models.StudentSummary, error) {
	return f.summaries, f.err
}

func newAnalytics(repo *fakeStatsRepo) AnalyticsService {
	return NewAnalyticsService(repo, nil, zerolog.Nop())
}

func TestContestParticipationPercentage(t *testing.T) {
	tests := []struct {
		name         string
		students     int
		participants int
		want         string
	}{
		{"no students", 0, 0, "0.00%"},
		{"one third", 3, 1, "33.33%"},
		{"three quarters", 4, 3, "75.00%"},
		{"everyone", 5, 5, "100.00%"},
		{"none participated", 10, 0, "0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAnalytics(&fakeStatsRepo{students: tt.students, participants: tt.participants})

			resp, err := svc.ContestParticipationPercentage(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.students, resp.TotalStudents)
			assert.Equal(t, tt.participants, resp.ContestParticipants)
			assert.Equal(t, tt.want, resp.ParticipationPercentage)
		})
	}
}

func TestMonthlyContestParticipation_Formatting(t *testing.T) {
	svc := newAnalytics(&fakeStatsRepo{
		monthly: []models.MonthlyBucket{
			{Year: 2024, Month: 1, Participants: 2},
			{Year: 2024, Month: 11, Participants: 5},
			{Year: 2025, Month: 3, Participants: 1},
		},
	})

	entries, err := svc.MonthlyContestParticipation(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.MonthlyParticipationEntry{
		{Month: "Jan", Participants: 2},
		{Month: "Nov", Participants: 5},
		{Month: "Mar", Participants: 1},
	}, entries)
}

func TestWeeklyContestParticipation_Formatting(t *testing.T) {
	svc := newAnalytics(&fakeStatsRepo{
		weekly: []models.WeeklyBucket{
			{Month: 1, Week: 1, Participants: 3},
			{Month: 1, Week: 4, Participants: 1},
			{Month: 12, Week: 2, Participants: 7},
		},
	})

	entries, err := svc.WeeklyContestParticipation(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.WeeklyParticipationEntry{
		{Month: "Jan", Week: "Week 1", Participants: 3},
		{Month: "Jan", Week: "Week 4", Participants: 1},
		{Month: "Dec", Week: "Week 2", Participants: 7},
	}, entries)
}

func TestDriveParticipation_FixedCategoryOrder(t *testing.T) {
	svc := newAnalytics(&fakeStatsRepo{
		drive: models.DriveParticipation{
			ContestParticipants:   4,
			InterviewParticipants: 2,
			McqParticipants:       9,
		},
	})

	entries, err := svc.DriveParticipation(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.DriveParticipationEntry{
		{Category: "Coding Contest", Count: 4},
		{Category: "AI Interview", Count: 2},
		{Category: "MCQ", Count: 9},
	}, entries)
}

func TestAnalytics_RepositoryErrorsPropagate(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := newAnalytics(&fakeStatsRepo{err: repoErr})
	ctx := context.Background()

	_, err := svc.TotalStudents(ctx)
	assert.ErrorIs(t, err, repoErr)

	_, err = svc.ContestParticipationPercentage(ctx)
	assert.ErrorIs(t, err, repoErr)

	entries, err := svc.MonthlyContestParticipation(ctx)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, entries)

	summaries, err := svc.StudentSummaries(ctx)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, summaries)
}

func TestMonthAbbr(t *testing.T) {
	want := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, abbr := range want {
		assert.Equal(t, abbr, monthAbbr(i+1))
	}
}

func TestTotalAndParticipantCounts(t *testing.T) {
	svc := newAnalytics(&fakeStatsRepo{students: 12, distinctCodes: 8, participants: 6})
	ctx := context.Background()

	total, err := svc.TotalStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, total)

	distinct, err := svc.TotalDistinctContestCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, distinct)

	participants, err := svc.ContestParticipants(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, participants)
}
