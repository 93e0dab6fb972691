package models

// Data Transfer Objects

type RegisterStudentRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Score is a pointer so a missing field can be told apart from an explicit 0.

type SubmitContestRequest struct {
	Email string   `json:"email" validate:"required,email"`
	Score *float64 `json:"score" validate:"required"`
}

type SubmitContestResponse struct {
	ContestCode string `json:"contest_code"`
}

type SubmitMcqRequest struct {
	Email      string   `json:"email" validate:"required,email"`
	Technology string   `json:"technology" validate:"required"`
	Score      *float64 `json:"score" validate:"required"`
}

type SubmitMcqResponse struct {
	TestCode string `json:"test_code"`
}

type SubmitInterviewRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Score    *float64 `json:"score" validate:"required"`
	Feedback string   `json:"feedback"`
}

type SubmitInterviewResponse struct {
	InterviewCode string `json:"interview_code"`
}

type ParticipationPercentageResponse struct {
	TotalStudents           int    `json:"total_students"`
	ContestParticipants     int    `json:"contest_participants"`
	ParticipationPercentage string `json:"participation_percentage"`
}

type MonthlyParticipationEntry struct {
	Month        string `json:"month"`
	Participants int    `json:"participants"`
}

type WeeklyParticipationEntry struct {
	Month        string `json:"month"`
	Week         string `json:"week"`
	Participants int    `json:"participants"`
}

type DriveParticipationEntry struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type StudentSummary struct {
	ID              string  `json:"id" db:"id"`
	Name            string  `json:"name" db:"name"`
	Email           string  `json:"email" db:"email"`
	TotalTestsTaken int     `json:"total_tests_taken" db:"total_tests_taken"`
	TotalScore      float64 `json:"total_score" db:"total_score"`
}
