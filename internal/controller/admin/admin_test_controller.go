package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqarena/internal/controller"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService  service.AdminTestService
	evaluationService service.EvaluationService
}

func NewAdminTestController(ats service.AdminTestService, es service.EvaluationService) *AdminTestController {
	return &AdminTestController{adminTestService: ats, evaluationService: es}
}

// CreateTest godoc
// @Summary (Admin) Create a new test
// @Description Creates a test with its sections and questions in one transaction.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_data body dto.TestCreateDTO true "Test, sections and questions"
// @Success 201 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "CreateTest", err)
		return
	}
	log.Info().Str("title", req.Title).Int("sections", len(req.Sections)).Msg("Admin CreateTest: received request")

	resp, err := c.adminTestService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "CreateTest", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateTest godoc
// @Summary (Admin) Patch a test
// @Description Each entry of sections (and of a section's questions) sets exactly one of "new" or "update".
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path string true "Test ID (uuid)"
// @Param patch body dto.TestUpdateDTO true "Changes"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Test, section or question not found"
// @Router /admin/tests/{test_id} [patch]
func (c *AdminTestController) UpdateTest(ctx *gin.Context) {
	testID, ok := controller.UUIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "UpdateTest", err)
		return
	}
	resp, err := c.adminTestService.UpdateTest(ctx.Request.Context(), testID, req)
	if err != nil {
		controller.RespondError(ctx, "UpdateTest", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteTest godoc
// @Summary (Admin) Delete a test with everything under it
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path string true "Test ID (uuid)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	testID, ok := controller.UUIDParam(ctx, "test_id")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteTest(ctx.Request.Context(), testID); err != nil {
		controller.RespondError(ctx, "DeleteTest", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// DeleteSections godoc
// @Summary (Admin) Delete sections with their questions
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ids body dto.DeleteIDsDTO true "Section IDs"
// @Success 200 {object} dto.DeleteResponseDTO
// @Router /admin/sections [delete]
func (c *AdminTestController) DeleteSections(ctx *gin.Context) {
	var req dto.DeleteIDsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "DeleteSections", err)
		return
	}
	n, err := c.adminTestService.DeleteSections(ctx.Request.Context(), req.IDs)
	if err != nil {
		controller.RespondError(ctx, "DeleteSections", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponseDTO{Deleted: n})
}

// DeleteQuestions godoc
// @Summary (Admin) Delete questions
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ids body dto.DeleteIDsDTO true "Question IDs"
// @Success 200 {object} dto.DeleteResponseDTO
// @Router /admin/questions [delete]
func (c *AdminTestController) DeleteQuestions(ctx *gin.Context) {
	var req dto.DeleteIDsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "DeleteQuestions", err)
		return
	}
	n, err := c.adminTestService.DeleteQuestions(ctx.Request.Context(), req.IDs)
	if err != nil {
		controller.RespondError(ctx, "DeleteQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponseDTO{Deleted: n})
}

// EvaluateTest godoc
// @Summary (Admin) Score every attempt of a test
// @Description Scores all attempts against the current answer key, replaces their results and closes every attempt. Safe to re-run.
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path string true "Test ID (uuid)"
// @Success 200 {array} dto.ResultRowDTO
// @Failure 409 {object} dto.ErrorResponse "No attempts found for test"
// @Failure 500 {object} dto.ErrorResponse "Transaction failed"
// @Router /admin/tests/{test_id}/evaluate [post]
func (c *AdminTestController) EvaluateTest(ctx *gin.Context) {
	testID, ok := controller.UUIDParam(ctx, "test_id")
	if !ok {
		return
	}
	rows, err := c.evaluationService.EvaluateTest(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, "EvaluateTest", err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
