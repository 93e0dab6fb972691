package models

import (
	"time"
)

type Student struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	LoginCount   int        `json:"login_count" db:"login_count"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	RegisteredAt time.Time  `json:"registered_at" db:"registered_at"`
}

// StudentProfile is the outward view of a student: the full record history
// with the credential hash stripped.
type StudentProfile struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Email                 string            `json:"email"`
	RegisteredAt          time.Time         `json:"registered_at"`
	CodingContestsTaken   []ContestRecord   `json:"coding_contests_taken"`
	McqTestsTaken         []McqRecord       `json:"mcq_tests_taken"`
	AiMockInterviewsTaken []InterviewRecord `json:"ai_mock_interviews_taken"`
}
