package scheduling

import (
	"errors"
	"time"
)

var ErrSlotTaken = errors.New("employee already has an appointment in this interval")

// ReservationStore extends the conflict probe with a per-employee lock. The
// gorm implementation takes the employee row's FOR UPDATE lock, which is held
// until the surrounding transaction commits.
type ReservationStore interface {
	ConflictStore
	LockEmployee(employeeID uint) error
}

// ReserveInterval books [start, end) for an employee under the employee's
// lock: acquire the lock, re-run the conflict probe while holding it, and
// only then run insert. Locking the employee (not the appointment rows)
// serializes two concurrent bookings for the same free slot: the probe alone
// has no rows to lock when the slot is empty, so both writers would pass it
// and commit an overlap. The second writer now blocks on the employee lock
// until the first commits, re-checks, and sees the fresh row.
//
// Must be called inside the transaction that performs the insert.
func ReserveInterval(store ReservationStore, employeeID uint, start, end time.Time, excludeID uint, insert func() error) error {
	if err := store.LockEmployee(employeeID); err != nil {
		return err
	}
	free, err := NewConflictChecker(store).IsFree(employeeID, start, end, excludeID)
	if err != nil {
		return err
	}
	if !free {
		return ErrSlotTaken
	}
	return insert()
}
