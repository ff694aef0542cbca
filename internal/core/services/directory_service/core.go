package directory_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/dental-schedule-slots/internal/config"
	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/in"
	"github.com/suchimauz/dental-schedule-slots/internal/core/ports/out"
	"github.com/suchimauz/dental-schedule-slots/internal/core/services/slot_generator_service"
	"github.com/suchimauz/dental-schedule-slots/internal/utils"
)

// DirectoryService справочники клиники: врачи, пользователи и статусы записей
type DirectoryService struct {
	dentalAPIPort out.DentalAPIPort
	cachePort     out.CachePort
	slots         *slot_generator_service.SlotGeneratorService
	logger        out.LoggerPort
	cfg           *config.Config
}

func NewDirectoryService(
	dentalAPIPort out.DentalAPIPort,
	cachePort out.CachePort,
	slots *slot_generator_service.SlotGeneratorService,
	cfg *config.Config,
	logger out.LoggerPort,
) *DirectoryService {
	return &DirectoryService{
		dentalAPIPort: dentalAPIPort,
		cachePort:     cachePort,
		slots:         slots,
		logger:        logger.WithModule("DirectoryService"),
		cfg:           cfg,
	}
}

// Врачи

func (s *DirectoryService) ListDentists(ctx context.Context, session domain.Session, sort in.SortQuery) ([]domain.Dentist, error) {
	dentists, err := s.dentalAPIPort.ListDentists(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("directory.dentists.fetch_failed: %w", err)
	}

	if s.cachePort != nil {
		s.cachePort.StoreDentists(ctx, dentists)
	}

	compare := dentistComparator(sort.Key)
	if sort.Descending {
		compare = utils.Reverse(compare)
	}

	return utils.QuickSort(dentists, compare), nil
}

func (s *DirectoryService) CreateDentist(ctx context.Context, session domain.Session, input domain.DentistInput) (*domain.Dentist, error) {
	if err := validateDentist(input); err != nil {
		return nil, err
	}

	dentist, err := s.dentalAPIPort.CreateDentist(ctx, session, input)
	if err != nil {
		return nil, fmt.Errorf("directory.dentists.create_failed: %w", err)
	}

	s.logger.Info("directory.dentists.created", out.LogFields{
		"dentistId": dentist.ID,
	})

	return dentist, nil
}

func (s *DirectoryService) UpdateDentist(ctx context.Context, session domain.Session, dentistID int, input domain.DentistInput) (*domain.Dentist, error) {
	if err := validateDentist(input); err != nil {
		return nil, err
	}

	dentist, err := s.dentalAPIPort.UpdateDentist(ctx, session, dentistID, input)
	if err != nil {
		return nil, fmt.Errorf("directory.dentists.update_failed: %w", err)
	}

	// Рабочие часы могли поменяться, сетка слотов врача пересчитается
	_ = s.slots.InvalidateDentistCache(ctx, dentistID)

	s.logger.Info("directory.dentists.updated", out.LogFields{
		"dentistId": dentistID,
	})

	return dentist, nil
}

func (s *DirectoryService) DeleteDentist(ctx context.Context, session domain.Session, dentistID int) error {
	if err := s.dentalAPIPort.DeleteDentist(ctx, session, dentistID); err != nil {
		return fmt.Errorf("directory.dentists.delete_failed: %w", err)
	}

	_ = s.slots.InvalidateDentistCache(ctx, dentistID)

	s.logger.Info("directory.dentists.deleted", out.LogFields{
		"dentistId": dentistID,
	})

	return nil
}

func validateDentist(input domain.DentistInput) error {
	if err := validateRequired(dentistForm(nil), dentistValues(input)); err != nil {
		return err
	}
	if !input.AvailableStart.Before(input.AvailableEnd) {
		return domain.ErrInvalidSchedule
	}
	return nil
}

func dentistValues(input domain.DentistInput) domain.FormValues {
	return domain.FormValues{
		"name":           input.Name,
		"email":          input.Email,
		"specialization": input.Specialization,
		"availableStart": input.AvailableStart.String(),
		"availableEnd":   input.AvailableEnd.String(),
	}
}

// Пользователи

func (s *DirectoryService) ListUsers(ctx context.Context, session domain.Session, sort in.SortQuery) ([]domain.User, error) {
	users, err := s.dentalAPIPort.ListUsers(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("directory.users.fetch_failed: %w", err)
	}

	compare := userComparator(sort.Key)
	if sort.Descending {
		compare = utils.Reverse(compare)
	}

	return utils.QuickSort(users, compare), nil
}

func (s *DirectoryService) CreateUser(ctx context.Context, session domain.Session, input domain.UserInput) (*domain.User, error) {
	if err := validateRequired(userCreateForm(), userValues(input)); err != nil {
		return nil, err
	}

	user, err := s.dentalAPIPort.CreateUser(ctx, session, input)
	if err != nil {
		return nil, fmt.Errorf("directory.users.create_failed: %w", err)
	}

	s.logger.Info("directory.users.created", out.LogFields{
		"userId": user.ID,
	})

	return user, nil
}

// UpdateUser меняет имя, email и признак администратора. Пароль при изменении не отправляется.
func (s *DirectoryService) UpdateUser(ctx context.Context, session domain.Session, userID int, input domain.UserInput) (*domain.User, error) {
	input.Password = ""
	if err := validateRequired(userEditForm(), userValues(input)); err != nil {
		return nil, err
	}

	user, err := s.dentalAPIPort.UpdateUser(ctx, session, userID, input)
	if err != nil {
		return nil, fmt.Errorf("directory.users.update_failed: %w", err)
	}

	s.logger.Info("directory.users.updated", out.LogFields{
		"userId": userID,
	})

	return user, nil
}

func (s *DirectoryService) DeleteUser(ctx context.Context, session domain.Session, userID int) error {
	if err := s.dentalAPIPort.DeleteUser(ctx, session, userID); err != nil {
		return fmt.Errorf("directory.users.delete_failed: %w", err)
	}

	s.logger.Info("directory.users.deleted", out.LogFields{
		"userId": userID,
	})

	return nil
}

func userValues(input domain.UserInput) domain.FormValues {
	return domain.FormValues{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
		"isAdmin":  input.IsAdmin,
	}
}

// Статусы

func (s *DirectoryService) ListStatuses(ctx context.Context, session domain.Session) ([]domain.AppointmentStatus, error) {
	if s.cachePort != nil {
		if statuses, exists := s.cachePort.GetStatuses(ctx); exists {
			return statuses, nil
		}
	}

	statuses, err := s.dentalAPIPort.ListStatuses(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("directory.statuses.fetch_failed: %w", err)
	}

	if s.cachePort != nil {
		s.cachePort.StoreStatuses(ctx, statuses)
	}

	return statuses, nil
}
