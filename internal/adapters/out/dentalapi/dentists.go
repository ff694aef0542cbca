package dentalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

func (a *DentalAPIAdapter) ListDentists(ctx context.Context, session domain.Session) ([]domain.Dentist, error) {
	dentists := make([]domain.Dentist, 0)
	if err := a.do(ctx, "dental_api.dentists.list", http.MethodGet, "/dentists", session.Token, nil, &dentists); err != nil {
		return nil, err
	}
	return dentists, nil
}

func (a *DentalAPIAdapter) CreateDentist(ctx context.Context, session domain.Session, input domain.DentistInput) (*domain.Dentist, error) {
	dentist := dentistFromInput(0, input)
	if err := a.do(ctx, "dental_api.dentists.create", http.MethodPost, "/dentists", session.Token, input, &dentist); err != nil {
		return nil, err
	}
	return &dentist, nil
}

func (a *DentalAPIAdapter) UpdateDentist(ctx context.Context, session domain.Session, dentistID int, input domain.DentistInput) (*domain.Dentist, error) {
	dentist := dentistFromInput(dentistID, input)
	path := fmt.Sprintf("/dentists/%d", dentistID)
	if err := a.do(ctx, "dental_api.dentists.update", http.MethodPut, path, session.Token, input, &dentist); err != nil {
		return nil, err
	}
	return &dentist, nil
}

func (a *DentalAPIAdapter) DeleteDentist(ctx context.Context, session domain.Session, dentistID int) error {
	path := fmt.Sprintf("/dentists/%d", dentistID)
	return a.do(ctx, "dental_api.dentists.delete", http.MethodDelete, path, session.Token, nil, nil)
}

func dentistFromInput(id int, input domain.DentistInput) domain.Dentist {
	return domain.Dentist{
		ID:             id,
		Name:           input.Name,
		Email:          input.Email,
		Specialization: input.Specialization,
		AvailableStart: input.AvailableStart,
		AvailableEnd:   input.AvailableEnd,
	}
}
