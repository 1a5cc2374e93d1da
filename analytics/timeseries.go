package analytics

import (
	"sort"
	"time"
)

// MonthGroup is one calendar-month bucket of a time series. Sorting is by
// the (Year, Month) pair, never by the label: "Dec 2024" must precede
// "Jan 2025" even though the strings sort the other way.
type MonthGroup[T any] struct {
	Year  int
	Month time.Month
	Items []T
}

// Label renders the bucket in the frontend's "Jan 2006" form.
func (g MonthGroup[T]) Label() string {
	return time.Date(g.Year, g.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// ByMonth buckets items into the calendar month of their date attribute,
// ordered chronologically. Items with a nil date are excluded.
func ByMonth[T any](items []T, dateFn func(T) *time.Time) []MonthGroup[T] {
	type key struct {
		year  int
		month time.Month
	}
	index := make(map[key]int)
	var groups []MonthGroup[T]
	for _, it := range items {
		d := dateFn(it)
		if d == nil {
			continue
		}
		k := key{d.Year(), d.Month()}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, MonthGroup[T]{Year: k.year, Month: k.month})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Year != groups[j].Year {
			return groups[i].Year < groups[j].Year
		}
		return groups[i].Month < groups[j].Month
	})
	return groups
}

// Average computes the mean of valueFn over the bucket's members, rounded
// to one decimal. An empty bucket yields 0.
func (g MonthGroup[T]) Average(valueFn func(T) float64) float64 {
	if len(g.Items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range g.Items {
		sum += valueFn(it)
	}
	return Round1(sum / float64(len(g.Items)))
}

// Sum totals valueFn over the bucket's members.
func (g MonthGroup[T]) Sum(valueFn func(T) float64) float64 {
	var sum float64
	for _, it := range g.Items {
		sum += valueFn(it)
	}
	return sum
}
