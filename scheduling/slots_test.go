package scheduling

import (
	"testing"
	"time"
)

const slotsDate = "2026-08-31" // a Monday

var openDay = DayWindow{OpenMin: 540, CloseMin: 1080, Source: SourceRecurring}

func slotTime(t *testing.T, minute int) time.Time {
	t.Helper()
	ts, err := CivilToUTC(slotsDate, minute)
	if err != nil {
		t.Fatalf("CivilToUTC: %v", err)
	}
	return ts
}

func TestGenerateSlotsFullGrid(t *testing.T) {
	// 09:00-18:00 at 30 minutes yields 18 slots, 09:00 through 17:30
	slots, err := GenerateSlots(slotsDate, 30, openDay, nil, 1, time.Time{})
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 18 {
		t.Fatalf("len(slots) = %d, want 18", len(slots))
	}
	if !slots[0].Start.Equal(slotTime(t, 540)) {
		t.Errorf("first slot starts %v, want 09:00 local", slots[0].Start)
	}
	if !slots[17].Start.Equal(slotTime(t, 1050)) {
		t.Errorf("last slot starts %v, want 17:30 local", slots[17].Start)
	}
	if !slots[17].End.Equal(slotTime(t, 1080)) {
		t.Errorf("last slot ends %v, want 18:00 local", slots[17].End)
	}
}

func TestGenerateSlotsNoPartialTrailingSlot(t *testing.T) {
	// 50-minute service in a 9-hour day: floor(540/50) = 10 slots, the
	// candidate ending past close is dropped, not clipped
	slots, err := GenerateSlots(slotsDate, 50, openDay, nil, 1, time.Time{})
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 10 {
		t.Fatalf("len(slots) = %d, want 10", len(slots))
	}
	last := slots[len(slots)-1]
	if last.End.After(slotTime(t, 1080)) {
		t.Errorf("last slot ends %v, past closing", last.End)
	}
}

func TestGenerateSlotsSkipsBookedInterval(t *testing.T) {
	booked := []Interval{
		{EmployeeID: 1, Start: slotTime(t, 600), End: slotTime(t, 630)}, // 10:00-10:30
	}
	slots, err := GenerateSlots(slotsDate, 30, openDay, booked, 1, time.Time{})
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 17 {
		t.Fatalf("len(slots) = %d, want 17", len(slots))
	}
	for _, s := range slots {
		if s.Start.Equal(slotTime(t, 600)) {
			t.Error("booked 10:00 slot should be omitted")
		}
	}
	// adjacent neighbours survive
	found930, found1030 := false, false
	for _, s := range slots {
		if s.Start.Equal(slotTime(t, 570)) {
			found930 = true
		}
		if s.Start.Equal(slotTime(t, 630)) {
			found1030 = true
		}
	}
	if !found930 || !found1030 {
		t.Error("slots adjacent to a booking should remain free")
	}
}

func TestGenerateSlotsIgnoresOtherEmployeesBookings(t *testing.T) {
	booked := []Interval{
		{EmployeeID: 2, Start: slotTime(t, 600), End: slotTime(t, 630)},
	}
	slots, err := GenerateSlots(slotsDate, 30, openDay, booked, 1, time.Time{})
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 18 {
		t.Errorf("len(slots) = %d, want 18; another employee's booking must not block", len(slots))
	}
}

func TestGenerateSlotsDropsPast(t *testing.T) {
	// now is 11:10 local: everything up to and including 11:00 is gone
	now := slotTime(t, 670)
	slots, err := GenerateSlots(slotsDate, 30, openDay, nil, 1, now)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 13 {
		t.Fatalf("len(slots) = %d, want 13", len(slots))
	}
	if !slots[0].Start.Equal(slotTime(t, 690)) {
		t.Errorf("first slot starts %v, want 11:30 local", slots[0].Start)
	}
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	slots, err := GenerateSlots(slotsDate, 30, DayWindow{Closed: true}, nil, 1, time.Time{})
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("closed day produced %d slots", len(slots))
	}
}
