package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusSubmitted  = "submitted"
	AttemptStatusEvaluated  = "evaluated"
)

// Attempt is one user's single run at one test. The (test_id, user_id) pair is unique.
type Attempt struct {
	ID          uuid.UUID  `gorm:"primaryKey" json:"id"`
	TestID      uuid.UUID  `json:"test_id" gorm:"not null;uniqueIndex:idx_attempt_test_user"`
	UserID      uuid.UUID  `json:"user_id" gorm:"not null;uniqueIndex:idx_attempt_test_user;index"`
	StartedAt   time.Time  `json:"started_at" gorm:"not null"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	IsSubmitted bool       `json:"is_submitted" gorm:"not null;default:false"`
	Answers     []Answer   `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE;"`
	Result      *Result    `json:"result,omitempty" gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE;"`
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.StartedAt.IsZero() {
		a.StartedAt = time.Now()
	}
	return nil
}

// Status derives the lifecycle state. hasResult reports whether evaluation produced a Result.
func (a *Attempt) Status(hasResult bool) string {
	switch {
	case hasResult:
		return AttemptStatusEvaluated
	case a.IsSubmitted:
		return AttemptStatusSubmitted
	default:
		return AttemptStatusInProgress
	}
}
