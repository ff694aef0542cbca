package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

// SessionStore сессии браузера в памяти процесса.
// Хранится не дольше SESSION_TTL, точный срок проверяет сервис сессий.
type SessionStore struct {
	cache  *expirable.LRU[string, domain.Session]
	logger out.LoggerPort
}

func NewSessionStore(cfg *config.Config, logger out.LoggerPort) *SessionStore {
	return &SessionStore{
		cache:  expirable.NewLRU[string, domain.Session](cfg.Session.StoreSize, nil, sessionTTL(cfg)),
		logger: logger.WithModule("SessionStore"),
	}
}

func sessionTTL(cfg *config.Config) time.Duration {
	if cfg.Session.TTL <= 0 {
		return 12 * time.Hour
	}
	return cfg.Session.TTL
}

func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (domain.Session, bool) {
	return s.cache.Get(sessionID)
}

func (s *SessionStore) SaveSession(ctx context.Context, session domain.Session) {
	if evicted := s.cache.Add(session.ID, session); evicted {
		s.logger.Warn("session.store.evicted", out.LogFields{
			"size": s.cache.Len(),
		})
	}
}

func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) {
	s.cache.Remove(sessionID)
}
