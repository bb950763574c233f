package service

import (
	"context"
	"testing"

	"roadmap-voting-be/internal/config"
	"roadmap-voting-be/internal/dto"
	"roadmap-voting-be/internal/entity"
	"roadmap-voting-be/internal/repository/memory"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminFixture(t *testing.T) (IAdminService, *roadmapFixture) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.PasswordHash = string(hash)
	cfg.Admin.JWTSecret = "test-secret"

	f := newRoadmapFixture()
	auditLog := memory.NewAdminLogRepository()
	kv := memory.NewKVStore()
	listing := NewListingCache(kv, nopLogger{})
	svc := NewAdminService(f.store, auditLog, listing, nil, nopLogger{}, cfg)
	return svc, f
}

func TestAdminLogin(t *testing.T) {
	svc, _ := newAdminFixture(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &dto.AdminLoginRequest{Email: "admin@example.com", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	token, err := jwt.Parse(res.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin@example.com", claims["email"])
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAdminFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.AdminLoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.AdminLoginRequest{Email: "other@example.com", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateStatus(t *testing.T) {
	svc, f := newAdminFixture(t)
	ctx := context.Background()

	seedFeature(t, f.store, 1, "Dark Mode", 42, entity.StatusUnderReview)

	require.NoError(t, svc.UpdateStatus(ctx, 1, "In Progress"))

	stored, err := f.store.FindById(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, stored.Status)

	trail, err := svc.GetAuditTrail(ctx, 10)
	require.NoError(t, err)
	require.Len(t, trail, 1)
	assert.Equal(t, "status_change", trail[0].Action)
	require.NotNil(t, trail[0].FeatureId)
	assert.Equal(t, 1, *trail[0].FeatureId)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, f := newAdminFixture(t)
	ctx := context.Background()

	seedFeature(t, f.store, 1, "Dark Mode", 42, entity.StatusUnderReview)

	err := svc.UpdateStatus(ctx, 1, "Shipped Yesterday")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(ctx, 999, "Planned")
	assert.ErrorIs(t, err, ErrFeatureNotFound)
}
