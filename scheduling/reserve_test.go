package scheduling

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"
)

// fakeReservationStore models the database's behavior during booking: the
// per-employee lock is held from LockEmployee until the test releases it
// (the "commit"), and the conflict probe only sees intervals that were
// inserted before it runs.
type fakeReservationStore struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
	held  []Interval
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{locks: map[uint]*sync.Mutex{}}
}

func (f *fakeReservationStore) lockFor(employeeID uint) *sync.Mutex {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.locks[employeeID]
	if !ok {
		m = &sync.Mutex{}
		f.locks[employeeID] = m
	}
	return m
}

func (f *fakeReservationStore) LockEmployee(employeeID uint) error {
	f.lockFor(employeeID).Lock()
	return nil
}

func (f *fakeReservationStore) release(employeeID uint) {
	f.lockFor(employeeID).Unlock()
}

func (f *fakeReservationStore) BlockingConflictExists(employeeID uint, start, end time.Time, excludeID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, iv := range f.held {
		if iv.EmployeeID == employeeID && Overlaps(start, end, iv.Start, iv.End) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationStore) add(iv Interval) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.held = append(f.held, iv)
}

func (f *fakeReservationStore) intervals() []Interval {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Interval{}, f.held...)
}

// Two writers race for the same free slot of the same employee. Without the
// employee lock both conflict probes see zero rows and both insert; with it
// the loser blocks until the winner's insert is visible and must fail.
func TestReserveIntervalSerializesConcurrentBookings(t *testing.T) {
	store := newFakeReservationStore()
	start, end := minuteUTC(600), minuteUTC(630)

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			err := ReserveInterval(store, 1, start, end, 0, func() error {
				store.add(Interval{EmployeeID: 1, Start: start, End: end})
				return nil
			})
			store.release(1)
			results <- err
		}()
	}

	var wins, taken int
	for i := 0; i < 2; i++ {
		switch err := <-results; {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotTaken):
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || taken != 1 {
		t.Fatalf("wins=%d taken=%d, want exactly one winner", wins, taken)
	}
	if n := len(store.intervals()); n != 1 {
		t.Fatalf("stored %d intervals, want 1", n)
	}
}

func TestReserveIntervalAnotherEmployeeUnaffected(t *testing.T) {
	store := newFakeReservationStore()
	start, end := minuteUTC(600), minuteUTC(630)
	store.add(Interval{EmployeeID: 1, Start: start, End: end})

	err := ReserveInterval(store, 2, start, end, 0, func() error {
		store.add(Interval{EmployeeID: 2, Start: start, End: end})
		return nil
	})
	store.release(2)
	if err != nil {
		t.Fatalf("employee 2 should book the slot employee 1 holds: %v", err)
	}
}

// Random insertion attempts: whatever mix of overlapping and disjoint
// intervals arrives, accepted bookings stay pairwise disjoint per employee.
func TestReserveIntervalRandomizedRejectsOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	store := newFakeReservationStore()
	base := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

	accepted, rejected := 0, 0
	for i := 0; i < 500; i++ {
		emp := uint(rng.Intn(3) + 1)
		start := base.Add(time.Duration(rng.Intn(600)) * time.Minute)
		end := start.Add(time.Duration(15+rng.Intn(90)) * time.Minute)

		err := ReserveInterval(store, emp, start, end, 0, func() error {
			store.add(Interval{EmployeeID: emp, Start: start, End: end})
			return nil
		})
		store.release(emp)
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, ErrSlotTaken):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if accepted == 0 || rejected == 0 {
		t.Fatalf("accepted=%d rejected=%d, want both branches exercised", accepted, rejected)
	}

	held := store.intervals()
	for i := 0; i < len(held); i++ {
		for j := i + 1; j < len(held); j++ {
			a, b := held[i], held[j]
			if a.EmployeeID == b.EmployeeID && Overlaps(a.Start, a.End, b.Start, b.End) {
				t.Fatalf("accepted overlapping intervals for employee %d: [%v,%v) and [%v,%v)",
					a.EmployeeID, a.Start, a.End, b.Start, b.End)
			}
		}
	}
}
