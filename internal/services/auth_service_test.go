package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"learnhub/internal/config"
	"learnhub/internal/shared"
)

func setupAuthTest(t *testing.T) (*config.Config, string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "learnhub_auth_")
	assert.NoError(t, err)

	cfgPath := filepath.Join(tmpDir, "config.toml")
	cfg, err := config.Load(cfgPath)
	assert.NoError(t, err)

	assert.NoError(t, EnsureAdminCredentials(cfg, cfgPath))

	cleanup := func() {
		os.RemoveAll(tmpDir)
	}
	return cfg, cfgPath, cleanup
}

func TestEnsureAdminCredentials(t *testing.T) {
	cfg, cfgPath, cleanup := setupAuthTest(t)
	defer cleanup()

	assert.NotEmpty(t, cfg.Admin.PasswordHash)
	assert.NotEmpty(t, cfg.Admin.TokenSecret)

	// Credentials were persisted and survive a reload.
	reloaded, err := config.Load(cfgPath)
	assert.NoError(t, err)
	assert.Equal(t, cfg.Admin.PasswordHash, reloaded.Admin.PasswordHash)
	assert.Equal(t, cfg.Admin.TokenSecret, reloaded.Admin.TokenSecret)

	// A second run leaves everything untouched.
	assert.NoError(t, EnsureAdminCredentials(reloaded, cfgPath))
	assert.Equal(t, cfg.Admin.PasswordHash, reloaded.Admin.PasswordHash)
	assert.Equal(t, cfg.Admin.TokenSecret, reloaded.Admin.TokenSecret)
}

func TestLoginAndVerify(t *testing.T) {
	cfg, _, cleanup := setupAuthTest(t)
	defer cleanup()

	auth := NewAuthService(cfg)
	token, err := auth.Login("admin", "admin123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := auth.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	cfg, _, cleanup := setupAuthTest(t)
	defer cleanup()

	auth := NewAuthService(cfg)
	_, err := auth.Login("admin", "wrong")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	_, err = auth.Login("root", "admin123")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	cfg, _, cleanup := setupAuthTest(t)
	defer cleanup()

	auth := NewAuthService(cfg)
	token, err := auth.Login("admin", "admin123")
	assert.NoError(t, err)

	_, err = auth.Verify(token + "x")
	assert.ErrorIs(t, err, shared.ErrInvalidToken)
	_, err = auth.Verify("not-a-token")
	assert.ErrorIs(t, err, shared.ErrInvalidToken)

	// A token signed under a different secret does not verify.
	otherCfg := *cfg
	otherCfg.Admin.TokenSecret = "0000000000000000000000000000000000000000000000000000000000000000"
	_, err = NewAuthService(&otherCfg).Verify(token)
	assert.ErrorIs(t, err, shared.ErrInvalidToken)
}

func TestUpdatePassword(t *testing.T) {
	cfg, cfgPath, cleanup := setupAuthTest(t)
	defer cleanup()

	assert.NoError(t, UpdatePassword(cfg, cfgPath, "s3cret"))

	auth := NewAuthService(cfg)
	_, err := auth.Login("admin", "admin123")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	_, err = auth.Login("admin", "s3cret")
	assert.NoError(t, err)
}
