package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqarena/internal/controller"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/service"
)

type AttemptController struct {
	attemptService    service.AttemptService
	evaluationService service.EvaluationService
}

func NewAttemptController(as service.AttemptService, es service.EvaluationService) *AttemptController {
	return &AttemptController{attemptService: as, evaluationService: es}
}

// ListMyAttempts godoc
// @Summary (User) The caller's attempts, newest first
// @Tags User - Attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AttemptResponseDTO
// @Router /attempts [get]
func (c *AttemptController) ListMyAttempts(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	attempts, err := c.attemptService.ListMyAttempts(ctx.Request.Context(), caller)
	if err != nil {
		controller.RespondError(ctx, "ListMyAttempts", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttempt godoc
// @Summary (User) One attempt with its saved answers
// @Tags User - Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path string true "Attempt ID (uuid)"
// @Success 200 {object} dto.AttemptResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	attemptID, ok := controller.UUIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	attempt, err := c.attemptService.GetAttempt(ctx.Request.Context(), attemptID, caller)
	if err != nil {
		controller.RespondError(ctx, "GetAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// SaveAnswer godoc
// @Summary (User) Save or change the answer to one question
// @Description Idempotent. A null selected_option clears the selection. Rejected once the attempt is submitted.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt_id path string true "Attempt ID (uuid)"
// @Param answer body dto.SaveAnswerRequest true "Answer"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Question not in test or option out of range"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Router /attempts/{attempt_id}/answers [put]
func (c *AttemptController) SaveAnswer(ctx *gin.Context) {
	attemptID, ok := controller.UUIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	var req dto.SaveAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "SaveAnswer", err)
		return
	}
	saved, err := c.attemptService.SaveAnswer(ctx.Request.Context(), attemptID, req, caller)
	if err != nil {
		controller.RespondError(ctx, "SaveAnswer", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: saved})
}

// SubmitAttempt godoc
// @Summary (User) Submit the attempt
// @Description Closes the attempt for answers. Submitting again keeps the first submission time.
// @Tags User - Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path string true "Attempt ID (uuid)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id}/submit [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	attemptID, ok := controller.UUIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	submitted, err := c.attemptService.SubmitAttempt(ctx.Request.Context(), attemptID, caller)
	if err != nil {
		controller.RespondError(ctx, "SubmitAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: submitted})
}

// GetResult godoc
// @Summary (User) Result of an evaluated attempt
// @Tags User - Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path string true "Attempt ID (uuid)"
// @Success 200 {object} dto.ResultResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Result not available yet"
// @Router /attempts/{attempt_id}/result [get]
func (c *AttemptController) GetResult(ctx *gin.Context) {
	attemptID, ok := controller.UUIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	result, err := c.evaluationService.GetResult(ctx.Request.Context(), attemptID, caller)
	if err != nil {
		controller.RespondError(ctx, "GetResult", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
