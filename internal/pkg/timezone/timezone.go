// Package timezone bridges between UTC instants, as stored in the database,
// and the local civil calendar at a fixed UTC offset (WITA, UTC+8).
//
// The database stores timestamps in UTC. Every date-scoped query must go
// through DayBoundaries or MonthBoundaries so that "which local day did this
// event happen on" is answered consistently across the whole backend.
package timezone

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// OffsetHours is the single source of truth for the local UTC offset.
// Changing the deployment timezone (e.g. WIB UTC+7 vs WITA UTC+8) means
// changing this value and nothing else.
const OffsetHours = 8

const dateLayout = "2006-01-02"

var (
	offset   = time.Duration(OffsetHours) * time.Hour
	location = time.FixedZone("WITA", OffsetHours*60*60)

	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// minInstant is the earliest timestamp accepted from user input.
	minInstant = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
)

var (
	ErrInvalidFormat    = errors.New("invalid date format")
	ErrInvalidDateValue = errors.New("invalid date value")
)

// LocalFromUTC shifts a UTC instant by the local offset.
func LocalFromUTC(t time.Time) time.Time {
	return t.Add(offset)
}

// UTCFromLocal is the exact inverse of LocalFromUTC, including sub-second
// precision: UTCFromLocal(LocalFromUTC(x)) == x for every instant x.
func UTCFromLocal(t time.Time) time.Time {
	return t.Add(-offset)
}

// DayBoundaries returns the UTC instants of local 00:00:00 and local 23:59:59
// for a calendar date given as "YYYY-MM-DD".
//
// The date string must match the exact layout (ErrInvalidFormat otherwise) and
// must name a real calendar day, including month length and leap years
// (ErrInvalidDateValue otherwise).
func DayBoundaries(date string) (startUTC, endUTC time.Time, err error) {
	if !dateRegex.MatchString(date) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidFormat, date)
	}

	year, _ := strconv.Atoi(date[0:4])
	month, _ := strconv.Atoi(date[5:7])
	day, _ := strconv.Atoi(date[8:10])

	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateValue, date)
	}
	if day < 1 || day > lastDayOfMonth(month, year) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateValue, date)
	}

	startUTC = time.Date(year, time.Month(month), day, 0, 0, 0, 0, location).UTC()
	endUTC = time.Date(year, time.Month(month), day, 23, 59, 59, 0, location).UTC()
	return startUTC, endUTC, nil
}

// MonthBoundaries returns the UTC instants of local day 1 00:00:00 through the
// last calendar day of the month at local 23:59:59.
func MonthBoundaries(month, year int) (startUTC, endUTC time.Time, err error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month %d, expected 1-12", ErrInvalidDateValue, month)
	}

	startUTC = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, location).UTC()
	endUTC = time.Date(year, time.Month(month), lastDayOfMonth(month, year), 23, 59, 59, 0, location).UTC()
	return startUTC, endUTC, nil
}

// WithinLocalDate reports whether a UTC instant falls inside the given local
// calendar date. Both boundaries are inclusive; the instant at local midnight
// of the next day is outside.
func WithinLocalDate(instant time.Time, date string) (bool, error) {
	start, end, err := DayBoundaries(date)
	if err != nil {
		return false, err
	}
	return !instant.Before(start) && !instant.After(end), nil
}

// LocalDateOf returns the local calendar date ("YYYY-MM-DD") an instant falls on.
func LocalDateOf(instant time.Time) string {
	return instant.In(location).Format(dateLayout)
}

// TodayLocal returns the current local calendar date as "YYYY-MM-DD".
func TodayLocal() string {
	return LocalDateOf(time.Now())
}

// CurrentMonth returns the current local month (1-12) and year.
func CurrentMonth() (month, year int) {
	now := time.Now().In(location)
	return int(now.Month()), now.Year()
}

// ParseInstant parses an ISO-8601 UTC timestamp. Timestamps missing the
// trailing "Z" are a known storage quirk and are treated as UTC.
func ParseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", ErrInvalidFormat)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	// Z-less variants, interpreted as UTC.
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05.999999999"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// IsValidInstant reports whether an instant is plausible for user-supplied
// timestamps: not before 2020-01-01 UTC and not more than a year in the
// future. It is a sanity guard, not a correctness check.
func IsValidInstant(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	max := time.Now().AddDate(1, 0, 0)
	return !t.Before(minInstant) && !t.After(max)
}

func lastDayOfMonth(month, year int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
