package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqarena/config"
	"github.com/lshigami/mcqarena/internal/controller"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/middleware"
	"github.com/lshigami/mcqarena/internal/service"
)

const refreshTokenCookie = "refresh_token"

type AuthController struct {
	authService service.AuthService
	cfg         config.Auth
	secure      bool
}

func NewAuthController(as service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{
		authService: as,
		cfg:         cfg.Auth,
		secure:      cfg.Server.GinMode == "release",
	}
}

// Register godoc
// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Account"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Register", err)
		return
	}
	user, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Register", err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in with email and password
// @Description Returns the tokens and also sets them as http-only cookies.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Login", err)
		return
	}
	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Login", err)
		return
	}
	c.setCookie(ctx, middleware.AccessTokenCookie, resp.AccessToken, c.cfg.AccessTokenTTL)
	c.setCookie(ctx, refreshTokenCookie, resp.RefreshToken, c.cfg.RefreshTokenTTL)
	ctx.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new access token
// @Description The refresh token is read from the body or, when absent, from the refresh_token cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest false "Refresh token"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid refresh token"
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	_ = ctx.ShouldBindJSON(&req)
	token := req.RefreshToken
	if token == "" {
		token, _ = ctx.Cookie(refreshTokenCookie)
	}
	if token == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Refresh token required"})
		return
	}
	resp, err := c.authService.Refresh(ctx.Request.Context(), token)
	if err != nil {
		controller.RespondError(ctx, "Refresh", err)
		return
	}
	c.setCookie(ctx, middleware.AccessTokenCookie, resp.AccessToken, c.cfg.AccessTokenTTL)
	ctx.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary The authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	user, err := c.authService.Me(ctx.Request.Context(), caller)
	if err != nil {
		controller.RespondError(ctx, "Me", err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *AuthController) setCookie(ctx *gin.Context, name, value string, ttl time.Duration) {
	if value == "" {
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, value, int(ttl.Seconds()), "/", "", c.secure, true)
}
