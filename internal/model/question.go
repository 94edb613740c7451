package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Question struct {
	ID        uuid.UUID                   `gorm:"primaryKey" json:"id"`
	SectionID uuid.UUID                   `json:"section_id" gorm:"not null;index"`
	Text      string                      `json:"text" gorm:"type:text;not null"`
	Options   datatypes.JSONSlice[string] `json:"options"`
	Position  int                         `json:"position" gorm:"not null;default:0"`
	// CorrectAnswer is an index into Options. Nil means the question is ungraded:
	// it still counts toward a result's total but can never be answered correctly.
	CorrectAnswer *int      `json:"correct_answer,omitempty"`
	Answers       []Answer  `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`
	CreatedAt     time.Time `json:"created_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
