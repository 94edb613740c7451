package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Test struct {
	ID          uuid.UUID `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Duration    int       `json:"duration" gorm:"not null"` // minutes
	Sections    []Section `json:"sections,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE;"`
	Attempts    []Attempt `json:"-" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE;"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *Test) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
