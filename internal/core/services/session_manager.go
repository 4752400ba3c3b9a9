package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/srgjo27/seatflow/internal/core/domain"
	"github.com/srgjo27/seatflow/internal/core/ports"
)

// defaultTokenTTL applies when the token carries no exp claim.
const defaultTokenTTL = 24 * time.Hour

type loginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// SessionManager owns the authentication token used by every gateway call.
type SessionManager struct {
	auth   ports.AuthGateway
	store  ports.TokenStore
	logger *slog.Logger
	now    func() time.Time

	mu    sync.RWMutex
	token string
}

func NewSessionManager(auth ports.AuthGateway, store ports.TokenStore, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionManager{auth: auth, store: store, logger: logger, now: time.Now}
}

func (m *SessionManager) Login(ctx context.Context, username, password string) error {
	if err := validate.Struct(loginRequest{Username: strings.TrimSpace(username), Password: password}); err != nil {
		return domain.NewError(domain.KindValidation, "username and password are required", err).WithOp("login")
	}

	token, err := m.auth.Authenticate(ctx, strings.TrimSpace(username), password)
	if err != nil {
		m.logger.Warn("authentication failed", slog.String("user", username), slog.String("error", err.Error()))
		return domain.AsAppError(err).WithOp("login")
	}

	ttl := defaultTokenTTL
	if exp, ok := tokenExpiry(token); ok {
		ttl = exp.Sub(m.now())
		if ttl <= 0 {
			return domain.NewError(domain.KindAuth, "Session expired", domain.ErrNotAuthenticated).WithOp("login")
		}
	}

	if m.store != nil {
		if err := m.store.Save(ctx, token, ttl); err != nil {
			m.logger.Warn("failed to persist token", slog.String("error", err.Error()))
		}
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	m.logger.Info("authenticated", slog.String("user", username), slog.Duration("ttl", ttl))
	return nil
}

// Token returns the current bearer token, loading it from the store when
// the process has none in memory.
func (m *SessionManager) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if token == "" && m.store != nil {
		stored, err := m.store.Get(ctx)
		if err != nil {
			m.logger.Warn("failed to read stored token", slog.String("error", err.Error()))
		}
		token = stored
	}

	if token == "" {
		return "", domain.ErrNotAuthenticated
	}

	if exp, ok := tokenExpiry(token); ok && !exp.After(m.now()) {
		_ = m.Logout(ctx)
		return "", domain.ErrNotAuthenticated
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	return token, nil
}

func (m *SessionManager) IsAuthenticated(ctx context.Context) bool {
	_, err := m.Token(ctx)
	return err == nil
}

func (m *SessionManager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()

	if m.store == nil {
		return nil
	}

	return m.store.Clear(ctx)
}

// tokenExpiry reads the exp claim without verifying the signature; the
// backend is the one that validates tokens.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
