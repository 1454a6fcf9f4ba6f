package datex_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/pandda/pkg/datex"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		months   int
		want     time.Time
		rollover bool
	}{
		{"jan 31 plus one month rolls to mar 1", day(2025, time.January, 31), 1, day(2025, time.March, 1), true},
		{"jan 31 plus one month in a leap year", day(2024, time.January, 31), 1, day(2024, time.March, 1), true},
		{"jan 29 plus one month in a leap year fits", day(2024, time.January, 29), 1, day(2024, time.February, 29), false},
		{"jan 29 plus one month in a common year", day(2025, time.January, 29), 1, day(2025, time.March, 1), true},
		{"mar 31 plus one month rolls to may 1", day(2025, time.March, 31), 1, day(2025, time.May, 1), true},
		{"day preserved", day(2025, time.March, 15), 3, day(2025, time.June, 15), false},
		{"crosses the year", day(2025, time.November, 15), 3, day(2026, time.February, 15), false},
		{"nov 30 plus three months rolls past february", day(2025, time.November, 30), 3, day(2026, time.March, 1), true},
		{"twelve months", day(2025, time.August, 31), 12, day(2026, time.August, 31), false},
		{"aug 31 plus six months rolls into march", day(2025, time.August, 31), 6, day(2026, time.March, 1), true},
		{"dec 31 plus two months", day(2025, time.December, 31), 2, day(2026, time.March, 1), true},
		{"zero months", day(2025, time.January, 31), 0, day(2025, time.January, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rolled := datex.AddMonthsClamped(tt.from, tt.months)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.rollover, rolled)
		})
	}
}

func TestAddMonthsClampedKeepsLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	from := time.Date(2025, time.January, 31, 23, 30, 0, 0, loc)

	got, rolled := datex.AddMonthsClamped(from, 1)
	require.True(t, rolled)
	require.Equal(t, loc, got.Location())
	require.Equal(t, "2025-03-01", datex.Format(got))
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, time.May, 10, 18, 0, 0, 0, time.UTC)

	require.Equal(t, 0, datex.DaysBetween(base, day(2025, time.May, 10)))
	require.Equal(t, 2, datex.DaysBetween(base, day(2025, time.May, 12)))
	require.Equal(t, -10, datex.DaysBetween(base, day(2025, time.April, 30)))
	require.Equal(t, -40, datex.DaysBetween(base, day(2025, time.March, 31)))
}

func TestDaysInMonth(t *testing.T) {
	require.Equal(t, 29, datex.DaysInMonth(2024, time.February))
	require.Equal(t, 28, datex.DaysInMonth(2025, time.February))
	require.Equal(t, 31, datex.DaysInMonth(2025, time.December))
}

func TestParseAndFormat(t *testing.T) {
	d, err := datex.Parse("2025-03-01", nil)
	require.NoError(t, err)
	require.Equal(t, day(2025, time.March, 1), d)
	require.Equal(t, "01/03/2025", datex.FormatDisplay(d))

	_, err = datex.Parse("01/03/2025", nil)
	require.Error(t, err)

	require.Empty(t, datex.Format(time.Time{}))
}
