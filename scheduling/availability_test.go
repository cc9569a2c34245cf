package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/platforma-programari/booking-backend/models"
)

type fakeAvailabilityStore struct {
	services  map[uint]*models.Service
	employees []EmployeeRef
	intervals []Interval
}

func (f *fakeAvailabilityStore) ActiveService(id uint) (*models.Service, error) {
	return f.services[id], nil
}

func (f *fakeAvailabilityStore) EligibleEmployees(serviceID, employeeID uint) ([]EmployeeRef, error) {
	if employeeID == 0 {
		return f.employees, nil
	}
	for _, e := range f.employees {
		if e.ID == employeeID {
			return []EmployeeRef{e}, nil
		}
	}
	return nil, nil
}

func (f *fakeAvailabilityStore) BlockingIntervals(employeeIDs []uint, from, to time.Time) ([]Interval, error) {
	out := []Interval{}
	for _, iv := range f.intervals {
		for _, id := range employeeIDs {
			if iv.EmployeeID == id && Overlaps(iv.Start, iv.End, from, to) {
				out = append(out, iv)
			}
		}
	}
	return out, nil
}

func newTestAvailability(store *fakeAvailabilityStore) *AvailabilityService {
	svc := NewAvailabilityService(store, NewWindowResolver(weekdaysOpen()))
	svc.Now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func defaultStore() *fakeAvailabilityStore {
	return &fakeAvailabilityStore{
		services: map[uint]*models.Service{
			1: {Name: "Tuns", DurationMinutes: 30, Active: true},
		},
		employees: []EmployeeRef{
			{ID: 1, Name: "Ana"},
			{ID: 2, Name: "Bogdan"},
		},
	}
}

func TestDaySlotsUnknownService(t *testing.T) {
	svc := newTestAvailability(defaultStore())
	_, err := svc.DaySlots(99, "2026-08-31", 0)
	if !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("err = %v, want ErrServiceNotFound", err)
	}
}

func TestDaySlotsClosedDay(t *testing.T) {
	svc := newTestAvailability(defaultStore())
	out, err := svc.DaySlots(1, "2026-08-30", 0) // Sunday
	if err != nil {
		t.Fatalf("DaySlots: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("closed day returned %d employee entries", len(out))
	}
}

func TestDaySlotsPerEmployee(t *testing.T) {
	store := defaultStore()
	booked, _ := CivilToUTC("2026-08-31", 600)
	bookedEnd, _ := CivilToUTC("2026-08-31", 630)
	store.intervals = []Interval{{EmployeeID: 1, Start: booked, End: bookedEnd}}

	svc := newTestAvailability(store)
	out, err := svc.DaySlots(1, "2026-08-31", 0)
	if err != nil {
		t.Fatalf("DaySlots: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if len(out[0].Slots) != 17 {
		t.Errorf("employee 1 has %d slots, want 17 (one booked)", len(out[0].Slots))
	}
	if len(out[1].Slots) != 18 {
		t.Errorf("employee 2 has %d slots, want 18", len(out[1].Slots))
	}
}

func TestDaySlotsSingleEmployeeFilter(t *testing.T) {
	svc := newTestAvailability(defaultStore())
	out, err := svc.DaySlots(1, "2026-08-31", 2)
	if err != nil {
		t.Fatalf("DaySlots: %v", err)
	}
	if len(out) != 1 || out[0].EmployeeID != 2 {
		t.Fatalf("filter by employee 2 returned %+v", out)
	}
}

func TestDaySlotsBookingRemovesSlot(t *testing.T) {
	store := defaultStore()
	store.employees = store.employees[:1]
	svc := newTestAvailability(store)

	before, err := svc.DaySlots(1, "2026-08-31", 0)
	if err != nil {
		t.Fatalf("DaySlots: %v", err)
	}
	target := before[0].Slots[3]

	// book the slot the query just offered
	store.intervals = append(store.intervals, Interval{
		EmployeeID: 1, Start: target.Start, End: target.End,
	})

	after, err := svc.DaySlots(1, "2026-08-31", 0)
	if err != nil {
		t.Fatalf("DaySlots: %v", err)
	}
	if len(after[0].Slots) != len(before[0].Slots)-1 {
		t.Errorf("slot count went %d -> %d, want exactly one fewer", len(before[0].Slots), len(after[0].Slots))
	}
	for _, s := range after[0].Slots {
		if s.Start.Equal(target.Start) {
			t.Error("booked slot still offered")
		}
	}
}

func TestMonthAvailability(t *testing.T) {
	svc := newTestAvailability(defaultStore())
	flags, err := svc.MonthAvailability(1, 2026, 8, 0)
	if err != nil {
		t.Fatalf("MonthAvailability: %v", err)
	}
	if len(flags) != 31 {
		t.Fatalf("len(flags) = %d, want 31", len(flags))
	}
	byDay := map[int]bool{}
	for _, f := range flags {
		byDay[f.Day] = f.Available
	}
	if !byDay[31] {
		t.Error("Monday the 31st should be available")
	}
	if byDay[30] {
		t.Error("Sunday the 30th should be unavailable")
	}
}

func TestMonthAvailabilityNoEmployees(t *testing.T) {
	store := defaultStore()
	store.employees = nil
	svc := newTestAvailability(store)

	flags, err := svc.MonthAvailability(1, 2026, 8, 0)
	if err != nil {
		t.Fatalf("MonthAvailability: %v", err)
	}
	for _, f := range flags {
		if f.Available {
			t.Fatalf("day %d available with no eligible employees", f.Day)
		}
	}
}

func TestMonthAvailabilityFullyBookedDay(t *testing.T) {
	store := defaultStore()
	store.employees = store.employees[:1]
	// fill every slot of Monday the 31st
	for m := 540; m+30 <= 1080; m += 30 {
		start, _ := CivilToUTC("2026-08-31", m)
		end, _ := CivilToUTC("2026-08-31", m+30)
		store.intervals = append(store.intervals, Interval{EmployeeID: 1, Start: start, End: end})
	}
	svc := newTestAvailability(store)

	flags, err := svc.MonthAvailability(1, 2026, 8, 0)
	if err != nil {
		t.Fatalf("MonthAvailability: %v", err)
	}
	for _, f := range flags {
		if f.Day == 31 && f.Available {
			t.Error("fully booked day should be unavailable")
		}
		if f.Day == 28 && !f.Available { // Friday, untouched
			t.Error("free Friday should stay available")
		}
	}
}
