package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Result is written only by test evaluation, one per attempt.
type Result struct {
	ID          uuid.UUID `gorm:"primaryKey" json:"id"`
	AttemptID   uuid.UUID `json:"attempt_id" gorm:"not null;uniqueIndex"`
	Score       int       `json:"score" gorm:"not null"`
	Total       int       `json:"total" gorm:"not null"`
	Correct     int       `json:"correct" gorm:"not null"`
	Wrong       int       `json:"wrong" gorm:"not null"`
	NotAnswered int       `json:"not_answered" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *Result) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
