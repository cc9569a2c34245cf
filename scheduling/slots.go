package scheduling

import (
	"time"
)

// Slot is one bookable candidate interval, both boundaries in UTC.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// GenerateSlots enumerates the fixed-duration grid of a day window and
// filters out past and conflicting candidates for one employee.
//
// Starting at OpenMin and stepping by the duration, a candidate
// [m, m+duration) is emitted only while m+duration <= CloseMin, so a slot
// that would run past closing is dropped rather than clipped. Candidates
// starting before now are dropped as well. Results are in ascending order.
func GenerateSlots(date string, durationMinutes int, window DayWindow, booked []Interval, employeeID uint, now time.Time) ([]Slot, error) {
	slots := []Slot{}
	if window.Closed || durationMinutes <= 0 {
		return slots, nil
	}

	for m := window.OpenMin; m+durationMinutes <= window.CloseMin; m += durationMinutes {
		start, err := CivilToUTC(date, m)
		if err != nil {
			return nil, err
		}
		end, err := CivilToUTC(date, m+durationMinutes)
		if err != nil {
			return nil, err
		}
		if start.Before(now) {
			continue
		}
		if conflictsWith(booked, employeeID, start, end) {
			continue
		}
		slots = append(slots, Slot{Start: start, End: end})
	}
	return slots, nil
}

func conflictsWith(booked []Interval, employeeID uint, start, end time.Time) bool {
	for _, iv := range booked {
		if iv.EmployeeID == employeeID && Overlaps(start, end, iv.Start, iv.End) {
			return true
		}
	}
	return false
}
