package out

import (
	"context"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

type SessionStorePort interface {
	GetSession(ctx context.Context, sessionID string) (domain.Session, bool)
	SaveSession(ctx context.Context, session domain.Session)
	DeleteSession(ctx context.Context, sessionID string)
}

// BookingFormStorePort хранилище открытых форм записи по идентификатору сессии
type BookingFormStorePort interface {
	GetForm(ctx context.Context, sessionID string) (domain.BookingForm, bool)
	SaveForm(ctx context.Context, form domain.BookingForm)
	// UpdateForm атомарно применяет fn к сохраненной форме. Если fn вернул false, форма не сохраняется.
	UpdateForm(ctx context.Context, sessionID string, fn func(form *domain.BookingForm) bool) (domain.BookingForm, bool)
	DeleteForm(ctx context.Context, sessionID string)
}
