package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Section struct {
	ID        uuid.UUID  `gorm:"primaryKey" json:"id"`
	TestID    uuid.UUID  `json:"test_id" gorm:"not null;index"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	Duration  *int       `json:"duration,omitempty"` // overrides Test.Duration when set
	Position  int        `json:"position" gorm:"not null;default:0"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time  `json:"created_at"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
