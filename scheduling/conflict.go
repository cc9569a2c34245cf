package scheduling

import (
	"time"
)

// Interval is a half-open [Start, End) appointment interval held by an
// employee.
type Interval struct {
	EmployeeID uint
	Start      time.Time
	End        time.Time
}

// Overlaps applies the half-open overlap rule: two intervals overlap unless
// one ends at or before the other starts.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ConflictStore answers whether any appointment in a blocking status
// overlaps the given interval for the employee. excludeID, when non-zero,
// leaves that appointment's own row out (edit-in-place).
type ConflictStore interface {
	BlockingConflictExists(employeeID uint, start, end time.Time, excludeID uint) (bool, error)
}

// ConflictChecker decides whether an employee is free for an interval.
// Only PENDING, BOOKED and WORKING appointments block.
type ConflictChecker struct {
	Store ConflictStore
}

func NewConflictChecker(store ConflictStore) *ConflictChecker {
	return &ConflictChecker{Store: store}
}

func (c *ConflictChecker) IsFree(employeeID uint, start, end time.Time, excludeID uint) (bool, error) {
	conflict, err := c.Store.BlockingConflictExists(employeeID, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}
