package models

// Raw aggregation buckets as returned by the stats repository. The analytics
// service turns numeric months and week numbers into display labels.

type MonthlyBucket struct {
	Year         int
	Month        int
	Participants int
}

// WeeklyBucket is keyed by (month, week) only: records from the same month of
// different years land in the same bucket.
type WeeklyBucket struct {
	Month        int
	Week         int
	Participants int
}

type DriveParticipation struct {
	ContestParticipants   int
	InterviewParticipants int
	McqParticipants       int
}
