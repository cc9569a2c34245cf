package scheduling

import (
	"errors"
	"time"

	"github.com/platforma-programari/booking-backend/models"
)

var (
	ErrDayClosed    = errors.New("business is closed on this day")
	ErrOutsideHours = errors.New("time is outside business hours")
)

const (
	SourceException = "exception"
	SourceRecurring = "recurring"
)

// DayWindow is the resolved schedule for one civil date: either closed, or
// an [OpenMin, CloseMin) minute-of-day range. Source tells which rule won.
type DayWindow struct {
	Closed   bool   `json:"closed"`
	OpenMin  int    `json:"open_min,omitempty"`
	CloseMin int    `json:"close_min,omitempty"`
	Source   string `json:"source,omitempty"`
}

// HoursStore reads the schedule reference data. Both lookups return
// (nil, nil) when no row exists; absence of data is not an error.
type HoursStore interface {
	ExceptionForDate(date string) (*models.BusinessException, error)
	RecurringForWeekday(weekday int) (*models.BusinessHours, error)
}

// WindowResolver turns a civil date into its day window. An exception row
// always takes precedence over the recurring schedule for its date.
type WindowResolver struct {
	Store HoursStore
}

func NewWindowResolver(store HoursStore) *WindowResolver {
	return &WindowResolver{Store: store}
}

func (r *WindowResolver) Resolve(date string) (DayWindow, error) {
	exc, err := r.Store.ExceptionForDate(date)
	if err != nil {
		return DayWindow{}, err
	}
	if exc != nil {
		if exc.Closed {
			return DayWindow{Closed: true, Source: SourceException}, nil
		}
		// an exception without a window counts as closed
		if exc.OpenMin == nil || exc.CloseMin == nil {
			return DayWindow{Closed: true, Source: SourceException}, nil
		}
		return DayWindow{OpenMin: *exc.OpenMin, CloseMin: *exc.CloseMin, Source: SourceException}, nil
	}

	weekday, err := ISOWeekday(date)
	if err != nil {
		return DayWindow{}, err
	}
	rec, err := r.Store.RecurringForWeekday(weekday)
	if err != nil {
		return DayWindow{}, err
	}
	if rec == nil || !rec.Active || rec.OpenMin == nil || rec.CloseMin == nil {
		return DayWindow{Closed: true, Source: SourceRecurring}, nil
	}
	return DayWindow{OpenMin: *rec.OpenMin, CloseMin: *rec.CloseMin, Source: SourceRecurring}, nil
}

// ValidateStart checks that a UTC start instant falls on an open day and
// inside its [open, close) window. Every booking entry point goes through
// this single check.
func (r *WindowResolver) ValidateStart(start time.Time) error {
	date, minute, _ := ToCivil(start)
	window, err := r.Resolve(date)
	if err != nil {
		return err
	}
	if window.Closed {
		return ErrDayClosed
	}
	if minute < window.OpenMin || minute >= window.CloseMin {
		return ErrOutsideHours
	}
	return nil
}
