package directory_service

import (
	"strings"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

// Сравнение строк с учетом регистра, отсутствующие значения считаются пустой строкой

func dentistComparator(key string) func(a, b domain.Dentist) int {
	switch key {
	case "email":
		return func(a, b domain.Dentist) int { return strings.Compare(a.Email, b.Email) }
	case "specialization":
		return func(a, b domain.Dentist) int { return strings.Compare(a.Specialization, b.Specialization) }
	case "availableStart":
		return func(a, b domain.Dentist) int {
			return strings.Compare(a.AvailableStart.String(), b.AvailableStart.String())
		}
	case "availableEnd":
		return func(a, b domain.Dentist) int {
			return strings.Compare(a.AvailableEnd.String(), b.AvailableEnd.String())
		}
	default:
		return func(a, b domain.Dentist) int { return strings.Compare(a.Name, b.Name) }
	}
}

func userComparator(key string) func(a, b domain.User) int {
	switch key {
	case "email":
		return func(a, b domain.User) int { return strings.Compare(a.Email, b.Email) }
	default:
		return func(a, b domain.User) int { return strings.Compare(a.Name, b.Name) }
	}
}
