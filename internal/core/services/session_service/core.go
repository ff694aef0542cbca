package session_service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

// TeardownHook вызывается при завершении сессии
type TeardownHook func(ctx context.Context, session domain.Session)

type SessionService struct {
	dentalAPIPort out.DentalAPIPort
	store         out.SessionStorePort
	logger        out.LoggerPort
	cfg           *config.Config
	now           func() time.Time

	mu    sync.RWMutex
	hooks []TeardownHook
}

func NewSessionService(
	dentalAPIPort out.DentalAPIPort,
	store out.SessionStorePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *SessionService {
	return &SessionService{
		dentalAPIPort: dentalAPIPort,
		store:         store,
		logger:        logger.WithModule("SessionService"),
		cfg:           cfg,
		now:           time.Now,
	}
}

func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

func (s *SessionService) OnTeardown(hook TeardownHook) {
	s.mu.Lock()
	s.hooks = append(s.hooks, hook)
	s.mu.Unlock()
}

// HashPassword хэш пароля в том виде, в каком его ждет внешний API при входе
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *SessionService) Login(ctx context.Context, credentials domain.Credentials) (*domain.Session, error) {
	if credentials.Email == "" || credentials.Password == "" {
		return nil, domain.ErrRequiredFields
	}

	result, err := s.dentalAPIPort.Login(ctx, domain.Credentials{
		Email:    credentials.Email,
		Password: HashPassword(credentials.Password),
	})
	if err != nil {
		s.logger.Warn("session.login.failed", out.LogFields{
			"email": credentials.Email,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("session.login.failed: %w", err)
	}

	now := s.now()
	session := domain.Session{
		ID:        uuid.NewString(),
		Token:     result.Token,
		User:      result.User,
		CreatedAt: now,
		ExpiresAt: s.expiresAt(result.Token, now),
	}
	s.store.SaveSession(ctx, session)

	s.logger.Info("session.login.success", out.LogFields{
		"userId":    session.User.ID,
		"expiresAt": session.ExpiresAt.Format(time.RFC3339),
	})

	return &session, nil
}

// expiresAt срок сессии: настроенный TTL, но не позже exp токена внешнего API.
// Подпись токена не проверяется, ее проверяет внешний API.
func (s *SessionService) expiresAt(token string, now time.Time) time.Time {
	expiresAt := now.Add(s.cfg.Session.TTL)

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		s.logger.Debug("session.token.opaque", out.LogFields{
			"error": err.Error(),
		})
		return expiresAt
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(expiresAt) {
		return claims.ExpiresAt.Time.In(now.Location())
	}

	return expiresAt
}

func (s *SessionService) Register(ctx context.Context, registration domain.Registration) error {
	if registration.Name == "" || registration.Email == "" || registration.Password == "" {
		return domain.ErrRequiredFields
	}

	if err := s.dentalAPIPort.Register(ctx, registration); err != nil {
		return fmt.Errorf("session.register.failed: %w", err)
	}

	s.logger.Info("session.register.success", out.LogFields{
		"email": registration.Email,
	})

	return nil
}

// Logout завершает сессию. Повторный выход не считается ошибкой.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	session, exists := s.store.GetSession(ctx, sessionID)
	if !exists {
		return nil
	}

	s.Teardown(ctx, session)
	return nil
}

func (s *SessionService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, exists := s.store.GetSession(ctx, sessionID)
	if !exists {
		return nil, domain.ErrSessionNotFound
	}

	if session.Expired(s.now()) {
		s.logger.Info("session.expired", out.LogFields{
			"userId": session.User.ID,
		})
		s.Teardown(ctx, session)
		return nil, domain.ErrSessionNotFound
	}

	return &session, nil
}

func (s *SessionService) Teardown(ctx context.Context, session domain.Session) {
	s.store.DeleteSession(ctx, session.ID)

	s.mu.RLock()
	hooks := append([]TeardownHook(nil), s.hooks...)
	s.mu.RUnlock()

	for _, hook := range hooks {
		hook(ctx, session)
	}

	s.logger.Info("session.teardown", out.LogFields{
		"userId": session.User.ID,
	})
}
