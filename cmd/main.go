package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqarena/config"
	"github.com/lshigami/mcqarena/database"
	_ "github.com/lshigami/mcqarena/docs"
	"github.com/lshigami/mcqarena/internal/cache"
	adminctrl "github.com/lshigami/mcqarena/internal/controller/admin"
	authctrl "github.com/lshigami/mcqarena/internal/controller/auth"
	userctrl "github.com/lshigami/mcqarena/internal/controller/user"
	"github.com/lshigami/mcqarena/internal/logger"
	"github.com/lshigami/mcqarena/internal/repository"
	"github.com/lshigami/mcqarena/internal/router"
	"github.com/lshigami/mcqarena/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title MCQ Arena API
// @version 1.0
// @description Timed multiple-choice tests: attempts, answer saving, cohort evaluation and leaderboards.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			NewDatabase,
			NewRedisClient,
			cache.NewLeaderboardCache,
			router.NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewTestRepository,
			repository.NewSectionRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewAnswerRepository,
			repository.NewResultRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewScoreConverterService,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewAttemptService,
			service.NewEvaluationService,
			service.NewLeaderboardService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			userctrl.NewUserTestController,
			userctrl.NewAttemptController,
			adminctrl.NewAdminTestController,
		),

		fx.Invoke(InitLogger),
		fx.Invoke(database.AutoMigrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func InitLogger(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
}

// NewDatabase opens the store and closes it when the app stops.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewDatabase(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			log.Info().Msg("Closing database connection")
			return sqlDB.Close()
		},
	})
	return db, nil
}

// NewRedisClient returns nil when Redis is not configured.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	client := cache.NewRedisClient(cfg)
	if client == nil {
		return nil
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// The cache is optional; keep serving from the database.
				log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis not reachable, leaderboard cache will miss")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client
}

// RegisterRoutesAndStartServer mounts the API and ties the HTTP server to the app lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *authctrl.AuthController,
	testCtrl *userctrl.UserTestController,
	attemptCtrl *userctrl.AttemptController,
	adminCtrl *adminctrl.AdminTestController,
) {
	router.Register(engine, authService, router.Controllers{
		Auth:    authCtrl,
		Tests:   testCtrl,
		Attempt: attemptCtrl,
		Admin:   adminCtrl,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("MCQ Arena API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
