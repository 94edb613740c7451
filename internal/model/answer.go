package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Answer struct {
	ID              uuid.UUID `gorm:"primaryKey" json:"id"`
	AttemptID       uuid.UUID `json:"attempt_id" gorm:"not null;uniqueIndex:idx_answer_attempt_question"`
	QuestionID      uuid.UUID `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_attempt_question;index"`
	SelectedOption  *int      `json:"selected_option"`
	MarkedForReview bool      `json:"marked_for_review" gorm:"not null;default:false"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
