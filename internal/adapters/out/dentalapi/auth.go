package dentalapi

import (
	"context"
	"net/http"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

// Login ожидает пароль уже в виде SHA-256
func (a *DentalAPIAdapter) Login(ctx context.Context, credentials domain.Credentials) (*domain.LoginResult, error) {
	var result domain.LoginResult
	if err := a.do(ctx, "dental_api.login", http.MethodPost, "/login", "", credentials, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *DentalAPIAdapter) Register(ctx context.Context, registration domain.Registration) error {
	return a.do(ctx, "dental_api.register", http.MethodPost, "/register", "", registration, nil)
}
