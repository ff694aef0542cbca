package cache

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
)

// BookingFormStore открытые формы записи, по одной на сессию
type BookingFormStore struct {
	mu     sync.Mutex
	cache  *expirable.LRU[string, domain.BookingForm]
	logger out.LoggerPort
}

func NewBookingFormStore(cfg *config.Config, logger out.LoggerPort) *BookingFormStore {
	return &BookingFormStore{
		cache:  expirable.NewLRU[string, domain.BookingForm](cfg.Session.StoreSize, nil, sessionTTL(cfg)),
		logger: logger.WithModule("BookingFormStore"),
	}
}

func (s *BookingFormStore) GetForm(ctx context.Context, sessionID string) (domain.BookingForm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Get(sessionID)
}

func (s *BookingFormStore) SaveForm(ctx context.Context, form domain.BookingForm) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Add(form.SessionID, form)
}

func (s *BookingFormStore) UpdateForm(ctx context.Context, sessionID string, fn func(form *domain.BookingForm) bool) (domain.BookingForm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, exists := s.cache.Get(sessionID)
	if !exists {
		return domain.BookingForm{}, false
	}

	if fn(&form) {
		s.cache.Add(sessionID, form)
		return form, true
	}

	// Изменение отклонено, возвращаем сохраненное состояние
	stored, _ := s.cache.Get(sessionID)
	return stored, true
}

func (s *BookingFormStore) DeleteForm(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache.Remove(sessionID) {
		s.logger.Debug("booking_form.store.deleted", out.LogFields{
			"sessionId": sessionID,
		})
	}
}
