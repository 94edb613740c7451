package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqarena/internal/controller"
	"github.com/lshigami/mcqarena/internal/service"
)

// UserTestController serves the catalog and the test-scoped actions of a student.
type UserTestController struct {
	userTestService    service.UserTestService
	attemptService     service.AttemptService
	leaderboardService service.LeaderboardService
}

func NewUserTestController(uts service.UserTestService, as service.AttemptService, ls service.LeaderboardService) *UserTestController {
	return &UserTestController{
		userTestService:    uts,
		attemptService:     as,
		leaderboardService: ls,
	}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "GetAllTests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Sections and questions in order. correct_answer is only returned to admins.
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path string true "Test ID (uuid)"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID, ok := controller.UUIDParam(ctx, "test_id")
	if !ok {
		return
	}
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	details, err := c.userTestService.GetTestDetails(ctx.Request.Context(), testID, caller)
	if err != nil {
		controller.RespondError(ctx, "GetTestDetails", err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// StartAttempt godoc
// @Summary (User) Start the caller's attempt at a test
// @Description Each user gets exactly one attempt per test.
// @Tags User - Attempts
// @Produce json
// @Security BearerAuth
// @Param test_id path string true "Test ID (uuid)"
// @Success 201 {object} dto.AttemptResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Test already started"
// @Router /tests/{test_id}/attempts [post]
func (c *UserTestController) StartAttempt(ctx *gin.Context) {
	testID, ok := controller.UUIDParam(ctx, "test_id")
	if !ok {
		return
	}
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	attempt, err := c.attemptService.StartAttempt(ctx.Request.Context(), testID, caller)
	if err != nil {
		controller.RespondError(ctx, "StartAttempt", err)
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// GetLeaderboard godoc
// @Summary (User) Ranked results of a test
// @Description Score descending, earlier submission first on equal score. Only evaluated attempts appear.
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path string true "Test ID (uuid)"
// @Success 200 {array} dto.RankRowDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Router /tests/{test_id}/leaderboard [get]
func (c *UserTestController) GetLeaderboard(ctx *gin.Context) {
	testID, ok := controller.UUIDParam(ctx, "test_id")
	if !ok {
		return
	}
	rows, err := c.leaderboardService.GetLeaderboard(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, "GetLeaderboard", err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
