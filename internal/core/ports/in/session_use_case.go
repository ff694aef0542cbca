package in

import (
	"context"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

type SessionUseCase interface {
	Login(ctx context.Context, credentials domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, registration domain.Registration) error
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
	// Teardown завершает сессию, например после 401 от внешнего API
	Teardown(ctx context.Context, session domain.Session)
}
