package models

import "time"

// A score may be absent on historical rows; sums treat it as zero.

type ContestRecord struct {
	ContestCode string    `json:"contest_code" db:"contest_code"`
	Score       *float64  `json:"score,omitempty" db:"score"`
	DateTaken   time.Time `json:"date_taken" db:"date_taken"`
}

type McqRecord struct {
	TestCode   string    `json:"test_code" db:"test_code"`
	Technology string    `json:"technology" db:"technology"`
	Score      *float64  `json:"score,omitempty" db:"score"`
	DateTaken  time.Time `json:"date_taken" db:"date_taken"`
}

type InterviewRecord struct {
	InterviewCode string    `json:"interview_code" db:"interview_code"`
	Score         *float64  `json:"score,omitempty" db:"score"`
	Feedback      string    `json:"feedback" db:"feedback"`
	DateTaken     time.Time `json:"date_taken" db:"date_taken"`
}
