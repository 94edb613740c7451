package dto

import (
	"time"

	"github.com/google/uuid"
)

// QuestionResponseDTO is shown to users; CorrectAnswer is only filled in for admins.
type QuestionResponseDTO struct {
	ID            uuid.UUID `json:"id"`
	SectionID     uuid.UUID `json:"section_id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	CorrectAnswer *int      `json:"correct_answer,omitempty"`
}

type SectionResponseDTO struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Duration  *int                  `json:"duration,omitempty"`
	Questions []QuestionResponseDTO `json:"questions"`
}

// TestResponseDTO is used for displaying full test details.
type TestResponseDTO struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Duration    int                  `json:"duration"`
	Sections    []SectionResponseDTO `json:"sections"`
	CreatedAt   time.Time            `json:"created_at"`
}

// TestSummaryDTO is used for listing tests.
type TestSummaryDTO struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Duration      int       `json:"duration"`
	SectionCount  int       `json:"section_count"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
