package dentalapi

import (
	"context"
	"net/http"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

func (a *DentalAPIAdapter) ListStatuses(ctx context.Context, session domain.Session) ([]domain.AppointmentStatus, error) {
	statuses := make([]domain.AppointmentStatus, 0)
	if err := a.do(ctx, "dental_api.statuses.list", http.MethodGet, "/status", session.Token, nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}
