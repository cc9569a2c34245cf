package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
)

// AppointmentField is an admin-defined extra data point collected per
// appointment. Options holds the JSON-encoded choice list for select fields.
type AppointmentField struct {
	gorm.Model
	FieldKey    string    `json:"field_key" gorm:"uniqueIndex"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type" gorm:"default:text"`
	Required    bool      `json:"required"`
	Options     *string   `json:"-"`
	Active      bool      `json:"active" gorm:"default:true"`
	ShowInTable bool      `json:"show_in_table" gorm:"default:true"`
	ForBooking  bool      `json:"for_booking"`
	SortOrder   int       `json:"sort_order"`
}

// OptionList decodes the stored select options; empty for other types.
func (f *AppointmentField) OptionList() []string {
	if f.Options == nil {
		return []string{}
	}
	var opts []string
	if err := json.Unmarshal([]byte(*f.Options), &opts); err != nil {
		return []string{}
	}
	return opts
}

func (f *AppointmentField) SetOptions(opts []string) error {
	if opts == nil {
		f.Options = nil
		return nil
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	s := string(raw)
	f.Options = &s
	return nil
}

// Validate checks a submitted value against the field's type. Blank values
// are always valid here; required-ness is enforced separately.
func (f *AppointmentField) Validate(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return true
	}
	switch f.Type {
	case FieldNumber:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	case FieldDate:
		_, err := time.Parse("2006-01-02", v)
		return err == nil
	case FieldSelect:
		for _, opt := range f.OptionList() {
			if opt == v {
				return true
			}
		}
		return false
	default:
		// text and textarea accept any string
		return true
	}
}

// AppointmentFieldValue stores one value per field per appointment.
// Re-saving a value overwrites the previous one.
type AppointmentFieldValue struct {
	gorm.Model
	AppointmentID uint   `json:"appointment_id" gorm:"uniqueIndex:idx_appt_field"`
	FieldKey      string `json:"field_key" gorm:"uniqueIndex:idx_appt_field"`
	Value         string `json:"value"`
}

func (AppointmentFieldValue) TableName() string {
	return "appointment_custom_fields"
}

type AppointmentPhoto struct {
	gorm.Model
	AppointmentID uint   `json:"appointment_id" gorm:"index"`
	URL           string `json:"url"`
}
