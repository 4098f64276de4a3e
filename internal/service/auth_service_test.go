package service

import (
	"context"
	"testing"
	"time"

	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-jwt-secret-for-unit-tests"

func newTestAuthService(t *testing.T, clk clock.Clock) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	residents := []*domain.Resident{
		{
			ID:           "res-001",
			Name:         "Ana Clara Oliveira",
			Email:        "ana.oliveira@email.com",
			PasswordHash: string(hash),
			Apartment:    "302",
			Block:        "B",
			Role:         domain.RoleResident,
		},
		{
			ID:           "res-900",
			Name:         "Carlos Mendes",
			Email:        "sindico@moradahub.com.br",
			PasswordHash: string(hash),
			Role:         domain.RoleManager,
		},
	}

	return NewAuthService(
		repository.NewMemoryResidentRepository(residents, clk),
		&AuthServiceConfig{
			JWTSecret:      testJWTSecret,
			AccessTokenTTL: time.Hour,
			Issuer:         "backend-resident-test",
		},
		clk,
	)
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t, clock.NewFixed(testNow))

	tests := []struct {
		name    string
		req     *dto.LoginRequest
		wantErr error
		wantID  string
	}{
		{
			name:   "valid credentials",
			req:    &dto.LoginRequest{Email: "ana.oliveira@email.com", Password: "123456"},
			wantID: "res-001",
		},
		{
			name:   "email is case insensitive",
			req:    &dto.LoginRequest{Email: "ANA.OLIVEIRA@email.com", Password: "123456"},
			wantID: "res-001",
		},
		{
			name:    "wrong password",
			req:     &dto.LoginRequest{Email: "ana.oliveira@email.com", Password: "654321"},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "unknown email",
			req:     &dto.LoginRequest{Email: "nobody@email.com", Password: "123456"},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Login(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.AccessToken)
			assert.Equal(t, int64(3600), got.ExpiresIn)
			assert.Equal(t, tt.wantID, got.User.ID)
		})
	}
}

func TestAuthService_ValidateToken_Roundtrip(t *testing.T) {
	svc := newTestAuthService(t, clock.NewFixed(testNow))
	ctx := context.Background()

	auth, err := svc.Login(ctx, &dto.LoginRequest{Email: "sindico@moradahub.com.br", Password: "123456"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "res-900", claims.ResidentID)
	assert.Equal(t, "sindico@moradahub.com.br", claims.Email)
	assert.Equal(t, domain.RoleManager, claims.Role)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	issuer := newTestAuthService(t, clock.NewFixed(testNow))
	ctx := context.Background()

	auth, err := issuer.Login(ctx, &dto.LoginRequest{Email: "ana.oliveira@email.com", Password: "123456"})
	require.NoError(t, err)

	// Validate with a clock past the one-hour TTL.
	later := newTestAuthService(t, clock.NewFixed(testNow.Add(2*time.Hour)))
	_, err = later.ValidateToken(ctx, auth.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestAuthService(t, clock.NewFixed(testNow))

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = svc.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestAuthService(t, clock.NewFixed(testNow))
	ctx := context.Background()

	auth, err := issuer.Login(ctx, &dto.LoginRequest{Email: "ana.oliveira@email.com", Password: "123456"})
	require.NoError(t, err)

	other := NewAuthService(
		repository.NewMemoryResidentRepository(nil, clock.NewFixed(testNow)),
		&AuthServiceConfig{JWTSecret: "a-different-secret", AccessTokenTTL: time.Hour},
		clock.NewFixed(testNow),
	)
	_, err = other.ValidateToken(ctx, auth.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
