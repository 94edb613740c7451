package dto

import "github.com/google/uuid"

// QuestionCreateDTO describes a new question.
type QuestionCreateDTO struct {
	Text          string   `json:"text" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer *int     `json:"correct_answer" validate:"omitempty,min=0"`
}

// SectionCreateDTO describes a new section with its questions.
type SectionCreateDTO struct {
	Name      string              `json:"name" validate:"required,max=100"`
	Duration  *int                `json:"duration" validate:"omitempty,min=1"`
	Questions []QuestionCreateDTO `json:"questions" validate:"dive"`
}

// TestCreateDTO is for admin to create a test with all its sections and questions.
type TestCreateDTO struct {
	Title       string             `json:"title" validate:"required,max=200"`
	Description string             `json:"description"`
	Duration    int                `json:"duration" validate:"required,min=1"`
	Sections    []SectionCreateDTO `json:"sections" validate:"dive"`
}

// QuestionUpdateDTO changes only the fields that are present.
type QuestionUpdateDTO struct {
	ID            uuid.UUID `json:"id" validate:"required"`
	Text          *string   `json:"text" validate:"omitempty,min=1"`
	Options       []string  `json:"options" validate:"omitempty,min=2,dive,required"`
	CorrectAnswer *int      `json:"correct_answer" validate:"omitempty,min=0"`
	// ClearCorrectAnswer makes the question ungraded.
	ClearCorrectAnswer bool `json:"clear_correct_answer"`
}

// QuestionChangeDTO is either a new question or an update of an existing one; exactly one
// branch must be set.
type QuestionChangeDTO struct {
	New    *QuestionCreateDTO `json:"new,omitempty"`
	Update *QuestionUpdateDTO `json:"update,omitempty"`
}

// SectionUpdateDTO changes only the fields that are present.
type SectionUpdateDTO struct {
	ID        uuid.UUID           `json:"id" validate:"required"`
	Name      *string             `json:"name" validate:"omitempty,min=1,max=100"`
	Duration  *int                `json:"duration" validate:"omitempty,min=1"`
	Questions []QuestionChangeDTO `json:"questions" validate:"dive"`
}

// SectionChangeDTO is either a new section or an update of an existing one; exactly one
// branch must be set.
type SectionChangeDTO struct {
	New    *SectionCreateDTO `json:"new,omitempty"`
	Update *SectionUpdateDTO `json:"update,omitempty"`
}

// TestUpdateDTO patches a test. Absent fields are left untouched.
type TestUpdateDTO struct {
	Title       *string            `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string            `json:"description"`
	Duration    *int               `json:"duration" validate:"omitempty,min=1"`
	Sections    []SectionChangeDTO `json:"sections" validate:"dive"`
}

// DeleteIDsDTO carries the ids for bulk section/question deletion.
type DeleteIDsDTO struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// DeleteResponseDTO reports how many rows a delete removed.
type DeleteResponseDTO struct {
	Deleted int64 `json:"deleted"`
}
