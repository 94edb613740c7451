package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyStarted     = errors.New("test already started")
	ErrAttemptClosed      = errors.New("attempt already submitted")
	ErrQuestionNotInTest  = errors.New("question does not belong to this test")
	ErrInvalidOption      = errors.New("selected option is out of range")
	ErrNoAttempts         = errors.New("no attempts found for test")
	ErrResultNotReady     = errors.New("result not available yet")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// notFound converts gorm.ErrRecordNotFound into ErrNotFound and wraps anything else.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("load %s: %w", what, err)
}
