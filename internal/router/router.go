// Package router builds the gin engine and mounts every route under /api/v1.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqarena/config"
	adminctrl "github.com/lshigami/mcqarena/internal/controller/admin"
	authctrl "github.com/lshigami/mcqarena/internal/controller/auth"
	userctrl "github.com/lshigami/mcqarena/internal/controller/user"
	"github.com/lshigami/mcqarena/internal/middleware"
	"github.com/lshigami/mcqarena/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers groups the handlers mounted by Register.
type Controllers struct {
	Auth    *authctrl.AuthController
	Tests   *userctrl.UserTestController
	Attempt *userctrl.AttemptController
	Admin   *adminctrl.AdminTestController
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	switch cfg.Server.GinMode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.GinMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := cfg.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	// Credentials cannot be combined with a wildcard origin.
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

// Register mounts the API. Everything except /auth requires a valid access token; /admin
// additionally requires the ADMIN role.
func Register(r *gin.Engine, authService service.AuthService, c Controllers) {
	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", c.Auth.Register)
		authGroup.POST("/login", c.Auth.Login)
		authGroup.POST("/refresh", c.Auth.Refresh)
	}

	protected := api.Group("", middleware.Authenticate(authService))
	{
		protected.GET("/me", c.Auth.Me)

		protected.GET("/tests", c.Tests.GetAllTests)
		protected.GET("/tests/:test_id", c.Tests.GetTestDetails)
		protected.POST("/tests/:test_id/attempts", c.Tests.StartAttempt)
		protected.GET("/tests/:test_id/leaderboard", c.Tests.GetLeaderboard)

		protected.GET("/attempts", c.Attempt.ListMyAttempts)
		protected.GET("/attempts/:attempt_id", c.Attempt.GetAttempt)
		protected.PUT("/attempts/:attempt_id/answers", c.Attempt.SaveAnswer)
		protected.POST("/attempts/:attempt_id/submit", c.Attempt.SubmitAttempt)
		protected.GET("/attempts/:attempt_id/result", c.Attempt.GetResult)
	}

	admin := protected.Group("/admin", middleware.RequireAdmin())
	{
		admin.POST("/tests", c.Admin.CreateTest)
		admin.PATCH("/tests/:test_id", c.Admin.UpdateTest)
		admin.DELETE("/tests/:test_id", c.Admin.DeleteTest)
		admin.DELETE("/sections", c.Admin.DeleteSections)
		admin.DELETE("/questions", c.Admin.DeleteQuestions)
		admin.POST("/tests/:test_id/evaluate", c.Admin.EvaluateTest)
	}
}
