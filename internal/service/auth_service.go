package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceConfig holds configuration for AuthService
type AuthServiceConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
	Issuer         string
}

// AuthService defines the interface for authentication operations.
// There is no real credential store behind it; accounts are seeded at
// startup and sessions live only in the issued token.
type AuthService interface {
	// Login authenticates a resident and issues an access token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)

	// ValidateToken validates an access token and returns its claims
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
}

// authService implements AuthService
type authService struct {
	residentRepo repository.ResidentRepository
	config       *AuthServiceConfig
	clock        clock.Clock
}

// NewAuthService creates a new AuthService
func NewAuthService(residentRepo repository.ResidentRepository, cfg *AuthServiceConfig, clk clock.Clock) AuthService {
	if cfg.AccessTokenTTL == 0 {
		cfg.AccessTokenTTL = 24 * time.Hour
	}
	return &authService{
		residentRepo: residentRepo,
		config:       cfg,
		clock:        clk,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	resident, err := s.residentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrResidentNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(resident.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(resident)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.config.AccessTokenTTL.Seconds()),
		User: dto.UserResponse{
			ID:        resident.ID,
			Name:      resident.Name,
			Email:     resident.Email,
			Role:      string(resident.Role),
			Apartment: resident.Apartment,
			Block:     resident.Block,
		},
	}, nil
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}

	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	residentID, _ := claims["resident_id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if residentID == "" || role == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Claims{
		ResidentID: residentID,
		Email:      email,
		Role:       domain.Role(role),
	}, nil
}

func (s *authService) generateAccessToken(resident *domain.Resident) (string, error) {
	now := s.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"resident_id": resident.ID,
		"email":       resident.Email,
		"role":        string(resident.Role),
		"iss":         s.config.Issuer,
		"exp":         now.Add(s.config.AccessTokenTTL).Unix(),
		"iat":         now.Unix(),
	})
	return token.SignedString([]byte(s.config.JWTSecret))
}
