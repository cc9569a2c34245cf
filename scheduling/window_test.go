package scheduling

import (
	"testing"
	"time"

	"github.com/platforma-programari/booking-backend/models"
)

type fakeHoursStore struct {
	exceptions map[string]*models.BusinessException
	recurring  map[int]*models.BusinessHours
}

func (f *fakeHoursStore) ExceptionForDate(date string) (*models.BusinessException, error) {
	return f.exceptions[date], nil
}

func (f *fakeHoursStore) RecurringForWeekday(weekday int) (*models.BusinessHours, error) {
	return f.recurring[weekday], nil
}

func intPtr(v int) *int { return &v }

// weekdaysOpen returns a store with Mon-Fri 09:00-18:00 and the weekend
// absent.
func weekdaysOpen() *fakeHoursStore {
	store := &fakeHoursStore{
		exceptions: map[string]*models.BusinessException{},
		recurring:  map[int]*models.BusinessHours{},
	}
	for wd := 1; wd <= 5; wd++ {
		store.recurring[wd] = &models.BusinessHours{
			Weekday:  wd,
			OpenMin:  intPtr(540),
			CloseMin: intPtr(1080),
			Active:   true,
		}
	}
	return store
}

func TestResolveRecurring(t *testing.T) {
	resolver := NewWindowResolver(weekdaysOpen())

	window, err := resolver.Resolve("2026-08-31") // Monday
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if window.Closed {
		t.Fatal("Monday should be open")
	}
	if window.OpenMin != 540 || window.CloseMin != 1080 {
		t.Errorf("window = [%d, %d), want [540, 1080)", window.OpenMin, window.CloseMin)
	}
	if window.Source != SourceRecurring {
		t.Errorf("source = %q, want %q", window.Source, SourceRecurring)
	}
}

func TestResolveMissingWeekdayIsClosed(t *testing.T) {
	resolver := NewWindowResolver(weekdaysOpen())
	window, err := resolver.Resolve("2026-08-30") // Sunday, no row
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !window.Closed {
		t.Error("Sunday without a recurring row should be closed")
	}
}

func TestResolveInactiveWeekdayIsClosed(t *testing.T) {
	store := weekdaysOpen()
	store.recurring[1].Active = false
	resolver := NewWindowResolver(store)

	window, err := resolver.Resolve("2026-08-31")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !window.Closed {
		t.Error("inactive recurring row should resolve as closed")
	}
}

func TestResolveNilMinutesIsClosed(t *testing.T) {
	store := weekdaysOpen()
	store.recurring[1].OpenMin = nil
	resolver := NewWindowResolver(store)

	window, err := resolver.Resolve("2026-08-31")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !window.Closed {
		t.Error("recurring row without minutes should resolve as closed")
	}
}

func TestResolveExceptionWinsOverRecurring(t *testing.T) {
	store := weekdaysOpen()
	store.exceptions["2026-08-31"] = &models.BusinessException{
		Date:     "2026-08-31",
		OpenMin:  intPtr(600),
		CloseMin: intPtr(840),
	}
	resolver := NewWindowResolver(store)

	window, err := resolver.Resolve("2026-08-31")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if window.Closed {
		t.Fatal("exception with a window should be open")
	}
	if window.OpenMin != 600 || window.CloseMin != 840 {
		t.Errorf("window = [%d, %d), want [600, 840)", window.OpenMin, window.CloseMin)
	}
	if window.Source != SourceException {
		t.Errorf("source = %q, want %q", window.Source, SourceException)
	}
}

func TestResolveClosedException(t *testing.T) {
	store := weekdaysOpen()
	store.exceptions["2026-08-31"] = &models.BusinessException{
		Date:   "2026-08-31",
		Closed: true,
	}
	resolver := NewWindowResolver(store)

	window, err := resolver.Resolve("2026-08-31")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !window.Closed {
		t.Error("closed exception should close an otherwise open Monday")
	}
}

func TestResolveExceptionWithoutWindowIsClosed(t *testing.T) {
	store := weekdaysOpen()
	store.exceptions["2026-08-31"] = &models.BusinessException{
		Date:   "2026-08-31",
		Closed: false, // but no minutes either
	}
	resolver := NewWindowResolver(store)

	window, err := resolver.Resolve("2026-08-31")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !window.Closed {
		t.Error("exception without a window should count as closed")
	}
}

func TestValidateStart(t *testing.T) {
	resolver := NewWindowResolver(weekdaysOpen())

	mustUTC := func(date string, minute int) time.Time {
		ts, err := CivilToUTC(date, minute)
		if err != nil {
			t.Fatalf("CivilToUTC: %v", err)
		}
		return ts
	}

	if err := resolver.ValidateStart(mustUTC("2026-08-31", 540)); err != nil {
		t.Errorf("opening minute should be valid, got %v", err)
	}
	if err := resolver.ValidateStart(mustUTC("2026-08-31", 1079)); err != nil {
		t.Errorf("last minute before close should be valid, got %v", err)
	}
	if err := resolver.ValidateStart(mustUTC("2026-08-31", 1080)); err != ErrOutsideHours {
		t.Errorf("closing minute should be rejected, got %v", err)
	}
	if err := resolver.ValidateStart(mustUTC("2026-08-31", 480)); err != ErrOutsideHours {
		t.Errorf("before opening should be rejected, got %v", err)
	}
	if err := resolver.ValidateStart(mustUTC("2026-08-30", 600)); err != ErrDayClosed {
		t.Errorf("Sunday should be closed, got %v", err)
	}
}
