package dentalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

func (a *DentalAPIAdapter) ListUsers(ctx context.Context, session domain.Session) ([]domain.User, error) {
	users := make([]domain.User, 0)
	if err := a.do(ctx, "dental_api.users.list", http.MethodGet, "/users", session.Token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *DentalAPIAdapter) CreateUser(ctx context.Context, session domain.Session, input domain.UserInput) (*domain.User, error) {
	user := domain.User{Name: input.Name, Email: input.Email, IsAdmin: input.IsAdmin}
	if err := a.do(ctx, "dental_api.users.create", http.MethodPost, "/users", session.Token, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser пустой пароль в теле не передается
func (a *DentalAPIAdapter) UpdateUser(ctx context.Context, session domain.Session, userID int, input domain.UserInput) (*domain.User, error) {
	user := domain.User{ID: userID, Name: input.Name, Email: input.Email, IsAdmin: input.IsAdmin}
	path := fmt.Sprintf("/users/%d", userID)
	if err := a.do(ctx, "dental_api.users.update", http.MethodPut, path, session.Token, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *DentalAPIAdapter) DeleteUser(ctx context.Context, session domain.Session, userID int) error {
	path := fmt.Sprintf("/users/%d", userID)
	return a.do(ctx, "dental_api.users.delete", http.MethodDelete, path, session.Token, nil, nil)
}
