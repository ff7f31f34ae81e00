package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"learnhub/internal/config"
	"learnhub/internal/logging"
	"learnhub/internal/shared"
)

// defaultAdminPassword is the out-of-the-box admin console password,
// hashed into the config file on first run. Change it with
// 'learnhub admin passwd'.
const defaultAdminPassword = "admin123"

var _ AuthService = (*authService)(nil)

type authService struct {
	cfg *config.Config
}

// NewAuthService creates the admin login service.
func NewAuthService(cfg *config.Config) *authService {
	return &authService{cfg: cfg}
}

// EnsureAdminCredentials bootstraps the admin password hash and the token
// signing secret on first run and persists them back to the config file.
// Subsequent runs find both present and do nothing.
func EnsureAdminCredentials(cfg *config.Config, cfgPath string) error {
	changed := false

	if cfg.Admin.PasswordHash == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		cfg.Admin.PasswordHash = string(hash)
		changed = true
		logging.Log.Infof("Generated default admin credentials for user %q", cfg.Admin.Username)
	}

	if cfg.Admin.TokenSecret == "" {
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			return fmt.Errorf("failed to generate token secret: %w", err)
		}
		cfg.Admin.TokenSecret = hex.EncodeToString(raw)
		changed = true
	}

	if changed {
		if err := config.Save(cfgPath, cfg); err != nil {
			return err
		}
	}
	return nil
}

// Login matches the supplied credentials against the locally configured
// admin account and returns a signed session token on success. This is a
// trivial single-account match, not a user system.
func (s *authService) Login(username, password string) (string, error) {
	if username != s.cfg.Admin.Username {
		return "", shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password)); err != nil {
		return "", shared.ErrInvalidCredentials
	}

	duration := time.Duration(s.cfg.Admin.SessionDurationMin) * time.Minute
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.Admin.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify validates a session token and returns the admin username it was
// issued for. Expired or tampered tokens come back as ErrInvalidToken.
func (s *authService) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Admin.TokenSecret), nil
	})
	if err != nil || !token.Valid {
		return "", shared.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", shared.ErrInvalidToken
	}
	return claims.Subject, nil
}

// UpdatePassword re-hashes and persists a new admin password.
func UpdatePassword(cfg *config.Config, cfgPath, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	cfg.Admin.PasswordHash = string(hash)
	return config.Save(cfgPath, cfg)
}
