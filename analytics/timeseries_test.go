package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dated struct {
	at    *time.Time
	value float64
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestByMonthChronologicalAcrossYearBoundary(t *testing.T) {
	items := []dated{
		{at: day(2025, time.January, 15)},
		{at: day(2024, time.December, 3)},
		{at: day(2025, time.January, 20)},
	}
	groups := ByMonth(items, func(d dated) *time.Time { return d.at })

	require.Len(t, groups, 2)
	// "Dec 2024" > "Jan 2025" as strings; chronology must win.
	assert.Equal(t, "Dec 2024", groups[0].Label())
	assert.Equal(t, "Jan 2025", groups[1].Label())
	assert.Len(t, groups[0].Items, 1)
	assert.Len(t, groups[1].Items, 2)
}

func TestByMonthExcludesNilDates(t *testing.T) {
	items := []dated{
		{at: day(2025, time.March, 1)},
		{at: nil},
	}
	groups := ByMonth(items, func(d dated) *time.Time { return d.at })
	require.Len(t, groups, 1)
	assert.Equal(t, "Mar 2025", groups[0].Label())
}

func TestMonthGroupAverageAndSum(t *testing.T) {
	items := []dated{
		{at: day(2025, time.May, 2), value: 80},
		{at: day(2025, time.May, 9), value: 85},
	}
	groups := ByMonth(items, func(d dated) *time.Time { return d.at })
	require.Len(t, groups, 1)
	assert.Equal(t, 82.5, groups[0].Average(func(d dated) float64 { return d.value }))
	assert.Equal(t, float64(165), groups[0].Sum(func(d dated) float64 { return d.value }))
}

func TestMonthGroupAverageRoundsToOneDecimal(t *testing.T) {
	items := []dated{
		{at: day(2025, time.May, 2), value: 10},
		{at: day(2025, time.May, 9), value: 10},
		{at: day(2025, time.May, 10), value: 11},
	}
	groups := ByMonth(items, func(d dated) *time.Time { return d.at })
	require.Len(t, groups, 1)
	assert.Equal(t, 10.3, groups[0].Average(func(d dated) float64 { return d.value }))
}

func TestByMonthEmptyInput(t *testing.T) {
	groups := ByMonth(nil, func(d dated) *time.Time { return d.at })
	assert.Empty(t, groups)
}
