package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/prepkit/assessment-service/internal/models"
	"github.com/prepkit/assessment-service/internal/repository"
)

const (
	cacheKeyMonthly = "stats:monthly_contest_participation"
	cacheKeyWeekly  = "stats:weekly_contest_participation"
	cacheKeyDrive   = "stats:drive_participation"
)

// AnalyticsService computes derived statistics over the full student
// population. Every operation is an independent read-only snapshot; a failed
// aggregation returns no data rather than a partial set.
type AnalyticsService interface {
	TotalStudents(ctx context.Context) (int, error)
	TotalDistinctContestCodes(ctx context.Context) (int, error)
	ContestParticipants(ctx context.Context) (int, error)
	ContestParticipationPercentage(ctx context.Context) (*models.ParticipationPercentageResponse, error)
	MonthlyContestParticipation(ctx context.Context) ([]models.MonthlyParticipationEntry, error)
	WeeklyContestParticipation(ctx context.Context) ([]models.WeeklyParticipationEntry, error)
	DriveParticipation(ctx context.Context) ([]models.DriveParticipationEntry, error)
	StudentSummaries(ctx context.Context) ([]models.StudentSummary, error)
}

type analyticsService struct {
	statsRepo repository.StatsRepository
	cache     *repository.StatsCache
	logger    zerolog.Logger
}

// NewAnalyticsService creates the analytics engine. cache may be nil, in
// which case every call goes straight to the database.
func NewAnalyticsService(
	statsRepo repository.StatsRepository,
	cache *repository.StatsCache,
	logger zerolog.Logger,
) AnalyticsService {
	return &analyticsService{
		statsRepo: statsRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (s *analyticsService) TotalStudents(ctx context.Context) (int, error) {
	total, err := s.statsRepo.CountStudents(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return total, nil
}

func (s *analyticsService) TotalDistinctContestCodes(ctx context.Context) (int, error) {
	total, err := s.statsRepo.CountDistinctContestCodes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct contest codes: %w", err)
	}
	return total, nil
}

func (s *analyticsService) ContestParticipants(ctx context.Context) (int, error) {
	participants, err := s.statsRepo.CountContestParticipants(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count contest participants: %w", err)
	}
	return participants, nil
}

func (s *analyticsService) ContestParticipationPercentage(ctx context.Context) (*models.ParticipationPercentageResponse, error) {
	total, err := s.statsRepo.CountStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}

	participants, err := s.statsRepo.CountContestParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contest participants: %w", err)
	}

	// No division when there are no students.
	percentage := "0.00%"
	if total > 0 {
		percentage = fmt.Sprintf("%.2f%%", float64(participants)/float64(total)*100)
	}

	return &models.ParticipationPercentageResponse{
		TotalStudents:           total,
		ContestParticipants:     participants,
		ParticipationPercentage: percentage,
	}, nil
}

func (s *analyticsService) MonthlyContestParticipation(ctx context.Context) ([]models.MonthlyParticipationEntry, error) {
	var cached []models.MonthlyParticipationEntry
	if s.cacheGet(ctx, cacheKeyMonthly, &cached) {
		return cached, nil
	}

	buckets, err := s.statsRepo.MonthlyContestParticipation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly participation: %w", err)
	}

	entries := make([]models.MonthlyParticipationEntry, 0, len(buckets))
	for _, bucket := range buckets {
		entries = append(entries, models.MonthlyParticipationEntry{
			Month:        monthAbbr(bucket.Month),
			Participants: bucket.Participants,
		})
	}

	s.cacheSet(ctx, cacheKeyMonthly, entries)
	return entries, nil
}

func (s *analyticsService) WeeklyContestParticipation(ctx context.Context) ([]models.WeeklyParticipationEntry, error) {
	var cached []models.WeeklyParticipationEntry
	if s.cacheGet(ctx, cacheKeyWeekly, &cached) {
		return cached, nil
	}

	buckets, err := s.statsRepo.WeeklyContestParticipation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekly participation: %w", err)
	}

	entries := make([]models.WeeklyParticipationEntry, 0, len(buckets))
	for _, bucket := range buckets {
		entries = append(entries, models.WeeklyParticipationEntry{
			Month:        monthAbbr(bucket.Month),
			Week:         fmt.Sprintf("Week %d", bucket.Week),
			Participants: bucket.Participants,
		})
	}

	s.cacheSet(ctx, cacheKeyWeekly, entries)
	return entries, nil
}

// DriveParticipation returns distinct-participant counts per category in a
// fixed order: Coding Contest, AI Interview, MCQ.
func (s *analyticsService) DriveParticipation(ctx context.Context) ([]models.DriveParticipationEntry, error) {
	var cached []models.DriveParticipationEntry
	if s.cacheGet(ctx, cacheKeyDrive, &cached) {
		return cached, nil
	}

	stats, err := s.statsRepo.DriveParticipation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate drive participation: %w", err)
	}

	entries := []models.DriveParticipationEntry{
		{Category: "Coding Contest", Count: stats.ContestParticipants},
		{Category: "AI Interview", Count: stats.InterviewParticipants},
		{Category: "MCQ", Count: stats.McqParticipants},
	}

	s.cacheSet(ctx, cacheKeyDrive, entries)
	return entries, nil
}

func (s *analyticsService) StudentSummaries(ctx context.Context) ([]models.StudentSummary, error) {
	summaries, err := s.statsRepo.StudentSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build student summaries: %w", err)
	}
	return summaries, nil
}

func (s *analyticsService) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	if s.cache == nil {
		return false
	}

	err := s.cache.Get(ctx, key, dst)
	if err == nil {
		return true
	}
	if err != repository.ErrCacheMiss {
		s.logger.Warn().Err(err).Str("key", key).Msg("Stats cache read failed")
	}
	return false
}

func (s *analyticsService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, key, value)
}

func monthAbbr(month int) string {
	return time.Month(month).String()[:3]
}
