package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/platforma-programari/booking-backend/models"
)

var ErrServiceNotFound = errors.New("service not found or inactive")

// EmployeeRef is the minimal employee identity needed by availability
// queries.
type EmployeeRef struct {
	ID   uint   `json:"employee_id"`
	Name string `json:"employee_name"`
}

// AvailabilityStore reads the data availability queries need.
type AvailabilityStore interface {
	// ActiveService returns (nil, nil) when the service is unknown or
	// inactive.
	ActiveService(id uint) (*models.Service, error)
	// EligibleEmployees returns the active employees offering the service,
	// ordered by ascending id. When employeeID is non-zero only that
	// employee is considered (still subject to the active and capability
	// checks).
	EligibleEmployees(serviceID, employeeID uint) ([]EmployeeRef, error)
	// BlockingIntervals returns the blocking-status appointment intervals
	// of the given employees that overlap [from, to).
	BlockingIntervals(employeeIDs []uint, from, to time.Time) ([]Interval, error)
}

// EmployeeSlots is the per-employee breakdown returned for day queries.
type EmployeeSlots struct {
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Slots        []Slot `json:"slots"`
}

// DayFlag marks whether one day of a month has at least one free slot.
type DayFlag struct {
	Day       int  `json:"day"`
	Available bool `json:"available"`
}

// AvailabilityService answers the public availability queries on top of the
// window resolver and slot generator.
type AvailabilityService struct {
	Store AvailabilityStore
	Hours *WindowResolver
	Now   func() time.Time
}

func NewAvailabilityService(store AvailabilityStore, hours *WindowResolver) *AvailabilityService {
	return &AvailabilityService{Store: store, Hours: hours, Now: time.Now}
}

// DaySlots computes the free slots of one civil date for every eligible
// employee. An unknown or inactive service is an error; a day with no
// eligible employees is an empty result.
func (s *AvailabilityService) DaySlots(serviceID uint, date string, employeeID uint) ([]EmployeeSlots, error) {
	svc, err := s.Store.ActiveService(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	window, err := s.Hours.Resolve(date)
	if err != nil {
		return nil, err
	}
	if window.Closed {
		return []EmployeeSlots{}, nil
	}

	employees, err := s.Store.EligibleEmployees(serviceID, employeeID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return []EmployeeSlots{}, nil
	}

	booked, err := s.bookedForDay(employees, date)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	result := make([]EmployeeSlots, 0, len(employees))
	for _, emp := range employees {
		slots, err := GenerateSlots(date, svc.DurationMinutes, window, booked, emp.ID, now)
		if err != nil {
			return nil, err
		}
		result = append(result, EmployeeSlots{EmployeeID: emp.ID, EmployeeName: emp.Name, Slots: slots})
	}
	return result, nil
}

// MonthAvailability flags every day of a month with whether at least one
// eligible employee has at least one free slot, short-circuiting per day on
// the first hit.
func (s *AvailabilityService) MonthAvailability(serviceID uint, year, month int, employeeID uint) ([]DayFlag, error) {
	svc, err := s.Store.ActiveService(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	employees, err := s.Store.EligibleEmployees(serviceID, employeeID)
	if err != nil {
		return nil, err
	}

	totalDays := daysInMonth(year, month)
	now := s.Now()
	flags := make([]DayFlag, 0, totalDays)

	for d := 1; d <= totalDays; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
		available := false

		if len(employees) > 0 {
			window, err := s.Hours.Resolve(date)
			if err != nil {
				return nil, err
			}
			if !window.Closed {
				booked, err := s.bookedForDay(employees, date)
				if err != nil {
					return nil, err
				}
				available, err = anyFreeSlot(date, svc.DurationMinutes, window, booked, employees, now)
				if err != nil {
					return nil, err
				}
			}
		}
		flags = append(flags, DayFlag{Day: d, Available: available})
	}
	return flags, nil
}

// bookedForDay loads the blocking intervals of the employees overlapping
// the civil day [00:00, 24:00).
func (s *AvailabilityService) bookedForDay(employees []EmployeeRef, date string) ([]Interval, error) {
	dayStart, err := CivilToUTC(date, 0)
	if err != nil {
		return nil, err
	}
	dayEnd, err := CivilToUTC(date, 24*60)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
	}
	return s.Store.BlockingIntervals(ids, dayStart, dayEnd)
}

// anyFreeSlot walks the slot grid and stops at the first free candidate.
func anyFreeSlot(date string, durationMinutes int, window DayWindow, booked []Interval, employees []EmployeeRef, now time.Time) (bool, error) {
	if durationMinutes <= 0 {
		return false, nil
	}
	for _, emp := range employees {
		for m := window.OpenMin; m+durationMinutes <= window.CloseMin; m += durationMinutes {
			start, err := CivilToUTC(date, m)
			if err != nil {
				return false, err
			}
			if start.Before(now) {
				continue
			}
			end, err := CivilToUTC(date, m+durationMinutes)
			if err != nil {
				return false, err
			}
			if !conflictsWith(booked, emp.ID, start, end) {
				return true, nil
			}
		}
	}
	return false, nil
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
