package models

import "testing"

func TestFieldValidateBlankAlwaysValid(t *testing.T) {
	for _, ft := range []FieldType{FieldText, FieldNumber, FieldDate, FieldTextarea, FieldSelect} {
		f := AppointmentField{Type: ft}
		if !f.Validate("") {
			t.Errorf("blank value should be valid for %s", ft)
		}
		if !f.Validate("   ") {
			t.Errorf("whitespace value should be valid for %s", ft)
		}
	}
}

func TestFieldValidateNumber(t *testing.T) {
	f := AppointmentField{Type: FieldNumber}
	for _, ok := range []string{"42", "-3.5", "0"} {
		if !f.Validate(ok) {
			t.Errorf("%q should be a valid number", ok)
		}
	}
	for _, bad := range []string{"abc", "12,5", "1e"} {
		if f.Validate(bad) {
			t.Errorf("%q should be rejected as a number", bad)
		}
	}
}

func TestFieldValidateDate(t *testing.T) {
	f := AppointmentField{Type: FieldDate}
	if !f.Validate("2026-08-31") {
		t.Error("2026-08-31 should be a valid date")
	}
	for _, bad := range []string{"31-08-2026", "2026-13-01", "today"} {
		if f.Validate(bad) {
			t.Errorf("%q should be rejected as a date", bad)
		}
	}
}

func TestFieldValidateSelect(t *testing.T) {
	f := AppointmentField{Type: FieldSelect}
	if err := f.SetOptions([]string{"mic", "mediu", "mare"}); err != nil {
		t.Fatalf("SetOptions: %v", err)
	}
	if !f.Validate("mediu") {
		t.Error("listed option should be valid")
	}
	if f.Validate("urias") {
		t.Error("unlisted option should be rejected")
	}
}

func TestFieldValidateText(t *testing.T) {
	f := AppointmentField{Type: FieldText}
	if !f.Validate("anything at all") {
		t.Error("text fields accept any value")
	}
}

func TestOptionListRoundTrip(t *testing.T) {
	f := AppointmentField{Type: FieldSelect}
	opts := []string{"a", "b"}
	if err := f.SetOptions(opts); err != nil {
		t.Fatalf("SetOptions: %v", err)
	}
	got := f.OptionList()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("OptionList = %v, want %v", got, opts)
	}

	var empty AppointmentField
	if len(empty.OptionList()) != 0 {
		t.Error("nil options should decode as empty list")
	}
}
