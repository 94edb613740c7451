package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

type User struct {
	ID           uuid.UUID `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name" gorm:"size:100"`
	Email        string    `json:"email" gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"size:20;not null;default:'STUDENT'"`
	Attempts     []Attempt `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleStudent
	}
	return nil
}
