package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Redis    Redis
	Log      Log
}

type Server struct {
	Port        string
	GinMode     string
	CORSOrigins []string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	DSN      string // sqlite file path, or a full postgres DSN overriding the fields above
}

type Auth struct {
	JWTSecret       string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// AllowAdminSignup lets /auth/register create ADMIN accounts. Meant for bootstrapping.
	AllowAdminSignup bool
}

// Redis is optional; an empty Addr disables the leaderboard cache.
type Redis struct {
	Addr           string
	Password       string
	DB             int
	LeaderboardTTL time.Duration
}

type Log struct {
	Level  string
	Pretty bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("ACCESS_TOKEN_TTL", "30m")
	viper.SetDefault("REFRESH_TOKEN_TTL", "24h")
	viper.SetDefault("ALLOW_ADMIN_SIGNUP", false)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LEADERBOARD_CACHE_TTL", "1m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.CORSOrigins = splitList(viper.GetString("CORS_ORIGINS"))

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.DSN = viper.GetString("DATABASE_DSN")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.RefreshSecret = viper.GetString("REFRESH_SECRET")
	config.Auth.AccessTokenTTL = viper.GetDuration("ACCESS_TOKEN_TTL")
	config.Auth.RefreshTokenTTL = viper.GetDuration("REFRESH_TOKEN_TTL")
	config.Auth.AllowAdminSignup = viper.GetBool("ALLOW_ADMIN_SIGNUP")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.LeaderboardTTL = viper.GetDuration("LEADERBOARD_CACHE_TTL")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	if config.Auth.JWTSecret == "" || config.Auth.RefreshSecret == "" {
		log.Warn().Msg("JWT_SECRET or REFRESH_SECRET is empty; tokens are signed with an empty key")
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("dbHost", config.Database.Host).
		Bool("redis", config.Redis.Addr != "").
		Msg("Config loaded")
	return &config, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
