// Package controller holds what the user, admin and auth handlers share: path parsing,
// caller lookup and the mapping from service errors to HTTP statuses.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/middleware"
	"github.com/lshigami/mcqarena/internal/service"
	"github.com/rs/zerolog/log"
)

// UUIDParam parses a path parameter and writes a 400 when it is not a UUID.
func UUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// Caller returns the authenticated principal and writes a 401 when there is none.
func Caller(ctx *gin.Context) (service.Principal, bool) {
	p, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
	}
	return p, ok
}

// BindError writes a 400 for a request body that failed binding.
func BindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Str("op", op).Msg("Failed to bind JSON")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidOption),
		errors.Is(err, service.ErrQuestionNotInTest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyStarted),
		errors.Is(err, service.ErrAlreadyExists),
		errors.Is(err, service.ErrAttemptClosed),
		errors.Is(err, service.ErrResultNotReady),
		errors.Is(err, service.ErrNoAttempts):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the error response for err. Internal failures are logged and their
// text is not sent to the client.
func RespondError(ctx *gin.Context, op string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("op", op).Str("path", ctx.FullPath()).Msg("Service error")
		ctx.JSON(status, dto.ErrorResponse{Message: "internal error"})
		return
	}
	log.Warn().Err(err).Str("op", op).Int("status", status).Msg("Request rejected")
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}
