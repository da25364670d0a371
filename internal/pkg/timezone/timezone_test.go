package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFromUTCRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 23, 59, 59, 999999999, time.UTC),
		time.Date(2020, 2, 29, 12, 30, 45, 123456789, time.UTC),
		time.Now().UTC(),
	}
	for _, x := range instants {
		got := UTCFromLocal(LocalFromUTC(x))
		assert.True(t, got.Equal(x), "round-trip changed %v to %v", x, got)
	}
}

func TestLocalFromUTCShiftsByOffset(t *testing.T) {
	x := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	local := LocalFromUTC(x)
	assert.Equal(t, time.Duration(OffsetHours)*time.Hour, local.Sub(x))
}

func TestDayBoundaries(t *testing.T) {
	// Local (UTC+8) 2025-01-02 spans UTC 2025-01-01T16:00:00Z .. 2025-01-02T15:59:59Z.
	start, end, err := DayBoundaries("2025-01-02")
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 1, 1, 16, 0, 0, 0, time.UTC)), "start = %v", start)
	assert.True(t, end.Equal(time.Date(2025, 1, 2, 15, 59, 59, 0, time.UTC)), "end = %v", end)
}

func TestDayBoundariesInvalidFormat(t *testing.T) {
	for _, input := range []string{"", "2025-1-2", "02-01-2025", "2025/01/02", "2025-01-02T00:00:00", "abcd-ef-gh"} {
		_, _, err := DayBoundaries(input)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", input)
	}
}

func TestDayBoundariesInvalidValues(t *testing.T) {
	for _, input := range []string{"2025-00-10", "2025-13-01", "2025-01-00", "2025-01-32", "2025-02-30", "2025-04-31", "2023-02-29"} {
		_, _, err := DayBoundaries(input)
		assert.ErrorIs(t, err, ErrInvalidDateValue, "input %q", input)
	}

	// Leap year February 29 is a real day.
	_, _, err := DayBoundaries("2024-02-29")
	assert.NoError(t, err)
}

func TestMonthBoundaries(t *testing.T) {
	cases := []struct {
		month, year int
		start, end  time.Time
	}{
		{1, 2025, time.Date(2024, 12, 31, 16, 0, 0, 0, time.UTC), time.Date(2025, 1, 31, 15, 59, 59, 0, time.UTC)},
		{2, 2024, time.Date(2024, 1, 31, 16, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 15, 59, 59, 0, time.UTC)},
		{2, 2025, time.Date(2025, 1, 31, 16, 0, 0, 0, time.UTC), time.Date(2025, 2, 28, 15, 59, 59, 0, time.UTC)},
		{12, 2025, time.Date(2025, 11, 30, 16, 0, 0, 0, time.UTC), time.Date(2025, 12, 31, 15, 59, 59, 0, time.UTC)},
	}
	for _, c := range cases {
		start, end, err := MonthBoundaries(c.month, c.year)
		require.NoError(t, err, "month %d year %d", c.month, c.year)
		assert.True(t, start.Equal(c.start), "month %d/%d start = %v, want %v", c.month, c.year, start, c.start)
		assert.True(t, end.Equal(c.end), "month %d/%d end = %v, want %v", c.month, c.year, end, c.end)
	}

	_, _, err := MonthBoundaries(0, 2025)
	assert.ErrorIs(t, err, ErrInvalidDateValue)
	_, _, err = MonthBoundaries(13, 2025)
	assert.ErrorIs(t, err, ErrInvalidDateValue)
}

func TestWithinLocalDateBoundariesInclusive(t *testing.T) {
	cases := []struct {
		instant time.Time
		want    bool
	}{
		{time.Date(2025, 1, 1, 16, 0, 0, 0, time.UTC), true},   // exactly local midnight
		{time.Date(2025, 1, 2, 15, 59, 59, 0, time.UTC), true}, // last second of local day
		{time.Date(2025, 1, 2, 16, 0, 0, 0, time.UTC), false},  // next local day
		{time.Date(2025, 1, 1, 15, 59, 59, 0, time.UTC), false},
		{time.Date(2025, 1, 2, 4, 0, 0, 0, time.UTC), true}, // local noon
	}
	for _, c := range cases {
		got, err := WithinLocalDate(c.instant, "2025-01-02")
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "instant %v", c.instant)
	}
}

func TestLocalDateOf(t *testing.T) {
	// 18:00Z is already the next local day at UTC+8.
	assert.Equal(t, "2025-01-03", LocalDateOf(time.Date(2025, 1, 2, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-01-02", LocalDateOf(time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)))
}

func TestParseInstant(t *testing.T) {
	want := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

	for _, input := range []string{
		"2025-03-10T08:30:00Z",
		"2025-03-10T08:30:00",  // missing Z, treated as UTC
		"2025-03-10 08:30:00",  // storage-layer variant
	} {
		got, err := ParseInstant(input)
		require.NoError(t, err, "input %q", input)
		assert.True(t, got.Equal(want), "input %q parsed to %v", input, got)
	}

	for _, input := range []string{"", "not-a-time", "2025-03-10"} {
		_, err := ParseInstant(input)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", input)
	}
}

func TestParseInstantZSuffixEquivalence(t *testing.T) {
	with, err := ParseInstant("2025-07-01T22:15:30Z")
	require.NoError(t, err)
	without, err := ParseInstant("2025-07-01T22:15:30")
	require.NoError(t, err)
	assert.True(t, with.Equal(without))
}

func TestIsValidInstant(t *testing.T) {
	assert.True(t, IsValidInstant(time.Now()))
	assert.True(t, IsValidInstant(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsValidInstant(time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, IsValidInstant(time.Now().AddDate(2, 0, 0)))
	assert.False(t, IsValidInstant(time.Time{}))
}

func TestTodayLocalMatchesLocalDateOfNow(t *testing.T) {
	// Two conversions taken moments apart can only disagree across a local
	// midnight; accept either reading in that case.
	before := LocalDateOf(time.Now())
	today := TodayLocal()
	after := LocalDateOf(time.Now())
	assert.Contains(t, []string{before, after}, today)
}
