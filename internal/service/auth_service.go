package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/config"
	"github.com/lshigami/mcqarena/database"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/model"
	"github.com/lshigami/mcqarena/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenIssuer = "mcqarena"

// Claims is the payload of both token kinds; refresh tokens are signed with a separate secret.
type Claims struct {
	Role  string `json:"role,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	ParseAccessToken(token string) (Principal, error)
	Me(ctx context.Context, caller Principal) (*dto.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      config.Auth
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg.Auth,
		now:      time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	switch role {
	case "":
		role = model.RoleStudent
	case model.RoleStudent:
	case model.RoleAdmin:
		if !s.cfg.AllowAdminSignup {
			return nil, fmt.Errorf("admin signup is disabled: %w", ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("email %s: %w", user.Email, ErrAlreadyExists)
		}
		log.Error().Err(err).Str("email", user.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Info().Str("userID", user.ID.String()).Str("role", user.Role).Msg("User registered")
	return toUserResponse(&user), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user, true)
}

// Refresh issues a new access token for a valid refresh token. The refresh token itself is
// not rotated.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.parse(refreshToken, s.cfg.RefreshSecret)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return s.issue(user, false)
}

func (s *authService) ParseAccessToken(token string) (Principal, error) {
	claims, err := s.parse(token, s.cfg.JWTSecret)
	if err != nil {
		return Principal{}, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidCredentials)
	}
	return Principal{UserID: userID, Role: claims.Role, Name: claims.Name, Email: claims.Email}, nil
}

func (s *authService) Me(ctx context.Context, caller Principal) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return toUserResponse(user), nil
}

func (s *authService) issue(user *model.User, withRefresh bool) (*dto.AuthResponse, error) {
	now := s.now()
	access := Claims{
		Role:  user.Role,
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, access).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	resp := &dto.AuthResponse{AccessToken: accessToken, User: *toUserResponse(user)}
	if !withRefresh {
		return resp, nil
	}
	refresh := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.RefreshTokenTTL)),
		},
	}
	resp.RefreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refresh).SignedString([]byte(s.cfg.RefreshSecret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	return resp, nil
}

func (s *authService) parse(token, secret string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

func toUserResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
