package directory_service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/suchimauz/dental-schedule-slots/internal/core/domain"
)

func describeForm(form domain.Form) *domain.FormDescriptor {
	descriptor := &domain.FormDescriptor{
		Name:   form.Name,
		Title:  form.Title,
		Fields: make([]domain.FieldDescriptor, 0, len(form.Fields)),
	}
	for _, field := range form.Fields {
		descriptor.Fields = append(descriptor.Fields, describeField(field))
	}
	return descriptor
}

func describeField(field domain.FormField) domain.FieldDescriptor {
	switch f := field.(type) {
	case domain.TextField:
		return domain.FieldDescriptor{Kind: f.Kind(), Name: f.Name, Label: f.Label, Required: f.Required}
	case domain.PasswordField:
		return domain.FieldDescriptor{Kind: f.Kind(), Name: f.Name, Label: f.Label, Required: f.Required}
	case domain.CheckboxField:
		return domain.FieldDescriptor{Kind: f.Kind(), Name: f.Name, Label: f.Label}
	case domain.DateField:
		return domain.FieldDescriptor{Kind: f.Kind(), Name: f.Name, Label: f.Label, Required: f.Required, Min: f.Min.String()}
	case domain.SelectField:
		return domain.FieldDescriptor{Kind: f.Kind(), Name: f.Name, Label: f.Label, Required: f.Required, Options: f.Options}
	case domain.ScheduleField:
		return domain.FieldDescriptor{
			Kind:      f.Kind(),
			Label:     f.Label,
			SubFields: []domain.FieldDescriptor{describeField(f.From), describeField(f.To)},
		}
	default:
		panic(fmt.Sprintf("unknown form field %T", field))
	}
}

// validateRequired проверяет, что все обязательные поля формы заполнены
func validateRequired(form domain.Form, values domain.FormValues) error {
	for _, field := range form.Fields {
		if missingRequired(field, values) {
			return domain.ErrRequiredFields
		}
	}
	return nil
}

func missingRequired(field domain.FormField, values domain.FormValues) bool {
	switch f := field.(type) {
	case domain.TextField:
		return f.Required && formValue(values, f.Name) == ""
	case domain.PasswordField:
		return f.Required && formValue(values, f.Name) == ""
	case domain.CheckboxField:
		return false
	case domain.DateField:
		return f.Required && formValue(values, f.Name) == ""
	case domain.SelectField:
		return f.Required && formValue(values, f.Name) == ""
	case domain.ScheduleField:
		return missingRequired(f.From, values) || missingRequired(f.To, values)
	default:
		panic(fmt.Sprintf("unknown form field %T", field))
	}
}

// formValue значение поля строкой. JSON числа приходят как float64.
func formValue(values domain.FormValues, name string) string {
	switch v := values[name].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
