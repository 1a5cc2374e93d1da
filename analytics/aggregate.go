package analytics

import "math"

// Group is one row of a grouped aggregation: a key with its count, the sum
// of the grouped numeric field, and the share of the declared total.
type Group struct {
	Key        string
	Count      int
	Sum        float64
	Percentage float64
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SafePercentage computes count/total as a percentage rounded to one
// decimal. A zero total yields 0 by convention rather than NaN; callers
// that need to distinguish "no data" from 0% must check the total
// themselves.
func SafePercentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round1(float64(count) / float64(total) * 100)
}

// Distribution groups items by key and computes per-group counts and
// percentages against the supplied total. Items with an empty key are
// dropped before grouping; the caller decides whether the declared total
// includes them. Group order follows first appearance, so an unchanged
// input always yields an identical result.
func Distribution[T any](items []T, keyFn func(T) string, total int) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, it := range items {
		key := keyFn(it)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Count++
	}
	for i := range groups {
		groups[i].Percentage = SafePercentage(groups[i].Count, total)
	}
	return groups
}

// SumBy groups items by key and sums a numeric field per group. A nil or
// missing value contributes 0. Percentages are computed against the total
// number of grouped items.
func SumBy[T any](items []T, keyFn func(T) string, valueFn func(T) float64) []Group {
	index := make(map[string]int)
	var groups []Group
	grouped := 0
	for _, it := range items {
		key := keyFn(it)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Count++
		groups[i].Sum += valueFn(it)
		grouped++
	}
	for i := range groups {
		groups[i].Percentage = SafePercentage(groups[i].Count, grouped)
	}
	return groups
}

// CountWhere counts the items satisfying the predicate.
func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// SumWhere sums valueFn over the items satisfying the predicate.
func SumWhere[T any](items []T, pred func(T) bool, valueFn func(T) float64) float64 {
	var sum float64
	for _, it := range items {
		if pred(it) {
			sum += valueFn(it)
		}
	}
	return sum
}
