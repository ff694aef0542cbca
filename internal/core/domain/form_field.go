package domain

import "github.com/suchimauz/dental-schedule-slots/internal/core/json_types"

type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindEmail    FieldKind = "email"
	FieldKindPassword FieldKind = "password"
	FieldKindCheckbox FieldKind = "checkbox"
	FieldKindDate     FieldKind = "date"
	FieldKindSelect   FieldKind = "select"
	FieldKindSchedule FieldKind = "schedule"
)

// FormField закрытый набор видов полей формы.
// Реализации есть только в этом пакете, обработчики обязаны разбирать каждый вид.
type FormField interface {
	Kind() FieldKind
	formField()
}

type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TextField текстовое поле, InputType text или email
type TextField struct {
	Name      string
	Label     string
	InputType FieldKind
	Required  bool
}

type PasswordField struct {
	Name     string
	Label    string
	Required bool
}

type CheckboxField struct {
	Name  string
	Label string
}

type DateField struct {
	Name     string
	Label    string
	Min      json_types.Date
	Required bool
}

type SelectField struct {
	Name     string
	Label    string
	Options  []SelectOption
	Required bool
}

// ScheduleField пара связанных списков "с" и "по". Смена From сбрасывает To.
type ScheduleField struct {
	Label string
	From  SelectField
	To    SelectField
}

func (f TextField) Kind() FieldKind {
	if f.InputType == FieldKindEmail {
		return FieldKindEmail
	}
	return FieldKindText
}
func (PasswordField) Kind() FieldKind { return FieldKindPassword }
func (CheckboxField) Kind() FieldKind { return FieldKindCheckbox }
func (DateField) Kind() FieldKind { return FieldKindDate }
func (SelectField) Kind() FieldKind { return FieldKindSelect }
func (ScheduleField) Kind() FieldKind { return FieldKindSchedule }

func (TextField) formField() {}
func (PasswordField) formField() {}
func (CheckboxField) formField() {}
func (DateField) formField() {}
func (SelectField) formField() {}
func (ScheduleField) formField() {}

type Form struct {
	Name   string
	Title  string
	Fields []FormField
}

// FormValues значения формы в том виде, в каком их прислал браузер
type FormValues map[string]any

// FieldDescriptor описание поля для отрисовки в браузере
type FieldDescriptor struct {
	Kind      FieldKind         `json:"type"`
	Name      string            `json:"name,omitempty"`
	Label     string            `json:"label,omitempty"`
	Required  bool              `json:"required,omitempty"`
	Min       string            `json:"min,omitempty"`
	Options   []SelectOption    `json:"options,omitempty"`
	SubFields []FieldDescriptor `json:"subFields,omitempty"`
}

type FormDescriptor struct {
	Name   string            `json:"name"`
	Title  string            `json:"title"`
	Fields []FieldDescriptor `json:"fields"`
}
