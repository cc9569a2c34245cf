package scheduling

import (
	"fmt"
	"time"
)

// All business-hours logic is interpreted in this fixed civil zone while
// appointments are stored in UTC.
const TZ = "Europe/Bucharest"

const civilDateLayout = "2006-01-02"

var civilZone *time.Location

func init() {
	loc, err := time.LoadLocation(TZ)
	if err != nil {
		panic(fmt.Sprintf("failed to load timezone %s: %v", TZ, err))
	}
	civilZone = loc
}

// ToCivil projects a UTC instant onto the civil calendar: the local date
// ("YYYY-MM-DD"), the minute of day (0-1439) and the ISO weekday (1=Monday
// .. 7=Sunday).
func ToCivil(t time.Time) (date string, minuteOfDay int, isoWeekday int) {
	local := t.In(civilZone)
	date = local.Format(civilDateLayout)
	minuteOfDay = local.Hour()*60 + local.Minute()
	isoWeekday = int(local.Weekday())
	if isoWeekday == 0 {
		isoWeekday = 7
	}
	return date, minuteOfDay, isoWeekday
}

// CivilToUTC builds the UTC instant for a civil date plus minute of day.
// The arithmetic runs in the civil zone so daylight-saving shifts are
// resolved by the location database, not by fixed-offset addition.
func CivilToUTC(date string, minuteOfDay int) (time.Time, error) {
	day, err := time.ParseInLocation(civilDateLayout, date, civilZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	local := time.Date(day.Year(), day.Month(), day.Day(), minuteOfDay/60, minuteOfDay%60, 0, 0, civilZone)
	return local.UTC(), nil
}

// ISOWeekday returns the ISO weekday (1..7) of a civil date.
func ISOWeekday(date string) (int, error) {
	day, err := time.ParseInLocation(civilDateLayout, date, civilZone)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd, nil
}

// ValidDate reports whether date is a well-formed "YYYY-MM-DD" string.
func ValidDate(date string) bool {
	_, err := time.ParseInLocation(civilDateLayout, date, civilZone)
	return err == nil
}
