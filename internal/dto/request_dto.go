package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=150"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=STUDENT ADMIN"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// SaveAnswerRequest records a selection for one question. A null selected_option clears it.
type SaveAnswerRequest struct {
	QuestionID      uuid.UUID `json:"question_id" binding:"required"`
	SelectedOption  *int      `json:"selected_option" binding:"omitempty,min=0"`
	MarkedForReview bool      `json:"marked_for_review"`
}
