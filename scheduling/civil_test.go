package scheduling

import (
	"testing"
	"time"
)

func TestToCivilWinterOffset(t *testing.T) {
	// 2026-01-15 08:00 UTC is 10:00 in Bucharest (UTC+2)
	utc := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	date, minute, weekday := ToCivil(utc)
	if date != "2026-01-15" {
		t.Errorf("date = %q, want 2026-01-15", date)
	}
	if minute != 600 {
		t.Errorf("minute = %d, want 600", minute)
	}
	if weekday != 4 {
		t.Errorf("weekday = %d, want 4 (Thursday)", weekday)
	}
}

func TestToCivilSummerOffset(t *testing.T) {
	// 2026-07-15 07:00 UTC is 10:00 in Bucharest (UTC+3)
	utc := time.Date(2026, 7, 15, 7, 0, 0, 0, time.UTC)
	date, minute, _ := ToCivil(utc)
	if date != "2026-07-15" {
		t.Errorf("date = %q, want 2026-07-15", date)
	}
	if minute != 600 {
		t.Errorf("minute = %d, want 600", minute)
	}
}

func TestToCivilDateRollover(t *testing.T) {
	// 23:30 UTC is already the next civil day in Bucharest
	utc := time.Date(2026, 1, 15, 23, 30, 0, 0, time.UTC)
	date, minute, _ := ToCivil(utc)
	if date != "2026-01-16" {
		t.Errorf("date = %q, want 2026-01-16", date)
	}
	if minute != 90 {
		t.Errorf("minute = %d, want 90", minute)
	}
}

func TestCivilToUTCAroundSpringForward(t *testing.T) {
	// clocks jump 03:00 -> 04:00 on 2026-03-29 in Bucharest
	before, err := CivilToUTC("2026-03-29", 2*60)
	if err != nil {
		t.Fatalf("CivilToUTC: %v", err)
	}
	if want := time.Date(2026, 3, 29, 0, 0, 0, 0, time.UTC); !before.Equal(want) {
		t.Errorf("02:00 local = %v, want %v", before, want)
	}

	after, err := CivilToUTC("2026-03-29", 5*60)
	if err != nil {
		t.Fatalf("CivilToUTC: %v", err)
	}
	if want := time.Date(2026, 3, 29, 2, 0, 0, 0, time.UTC); !after.Equal(want) {
		t.Errorf("05:00 local = %v, want %v", after, want)
	}
}

func TestCivilRoundTrip(t *testing.T) {
	cases := []struct {
		date   string
		minute int
	}{
		{"2026-01-15", 0},
		{"2026-01-15", 540},
		{"2026-07-15", 1439},
		{"2026-10-25", 600}, // fall-back day, after the transition
	}
	for _, tc := range cases {
		utc, err := CivilToUTC(tc.date, tc.minute)
		if err != nil {
			t.Fatalf("CivilToUTC(%s, %d): %v", tc.date, tc.minute, err)
		}
		date, minute, _ := ToCivil(utc)
		if date != tc.date || minute != tc.minute {
			t.Errorf("round trip (%s, %d) = (%s, %d)", tc.date, tc.minute, date, minute)
		}
	}
}

func TestISOWeekday(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2026-08-31", 1}, // Monday
		{"2026-08-28", 5}, // Friday
		{"2026-08-30", 7}, // Sunday
	}
	for _, tc := range cases {
		got, err := ISOWeekday(tc.date)
		if err != nil {
			t.Fatalf("ISOWeekday(%s): %v", tc.date, err)
		}
		if got != tc.want {
			t.Errorf("ISOWeekday(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2026-02-28") {
		t.Error("2026-02-28 should be valid")
	}
	for _, bad := range []string{"", "2026-13-01", "2026-02-30", "28-08-2026", "not-a-date"} {
		if ValidDate(bad) {
			t.Errorf("%q should be invalid", bad)
		}
	}
}
