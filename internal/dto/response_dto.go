package dto

import (
	"time"

	"github.com/google/uuid"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	User         UserResponse `json:"user"`
}

type AnswerResponseDTO struct {
	QuestionID      uuid.UUID `json:"question_id"`
	SelectedOption  *int      `json:"selected_option"`
	MarkedForReview bool      `json:"marked_for_review"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AttemptResponseDTO struct {
	ID          uuid.UUID           `json:"id"`
	TestID      uuid.UUID           `json:"test_id"`
	UserID      uuid.UUID           `json:"user_id"`
	StartedAt   time.Time           `json:"started_at"`
	SubmittedAt *time.Time          `json:"submitted_at"`
	IsSubmitted bool                `json:"is_submitted"`
	Status      string              `json:"status"`
	Answers     []AnswerResponseDTO `json:"answers,omitempty"`
}

// ResultRowDTO is the in-memory outcome of evaluating one attempt.
type ResultRowDTO struct {
	AttemptID   uuid.UUID `json:"attempt_id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Correct     int       `json:"correct"`
	Wrong       int       `json:"wrong"`
	NotAnswered int       `json:"not_answered"`
}

type ResultResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	AttemptID   uuid.UUID `json:"attempt_id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Correct     int       `json:"correct"`
	Wrong       int       `json:"wrong"`
	NotAnswered int       `json:"not_answered"`
	Percentage  float64   `json:"percentage"`
	CreatedAt   time.Time `json:"created_at"`
}

type RankRowDTO struct {
	Rank        int        `json:"rank"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	Score       int        `json:"score"`
	Total       int        `json:"total"`
	Correct     int        `json:"correct"`
	Wrong       int        `json:"wrong"`
	NotAnswered int        `json:"not_answered"`
	SubmittedAt *time.Time `json:"submitted_at"`
}
