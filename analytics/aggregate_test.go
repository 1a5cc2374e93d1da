package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	key  string
	cost float64
}

func TestDistributionCountsAndPercentages(t *testing.T) {
	items := []row{
		{key: "Developer"},
		{key: "Developer"},
		{key: "QA"},
		{key: "Developer"},
	}
	groups := Distribution(items, func(r row) string { return r.key }, len(items))

	assert.Len(t, groups, 2)
	assert.Equal(t, Group{Key: "Developer", Count: 3, Percentage: 75}, groups[0])
	assert.Equal(t, Group{Key: "QA", Count: 1, Percentage: 25}, groups[1])
}

func TestDistributionDropsEmptyKeys(t *testing.T) {
	items := []row{{key: "A"}, {key: ""}, {key: "A"}}
	// Total deliberately includes the dropped row: the call site declares
	// the denominator.
	groups := Distribution(items, func(r row) string { return r.key }, len(items))
	assert.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Count)
	assert.InDelta(t, 66.7, groups[0].Percentage, 0.01)
}

func TestDistributionPercentagesSumToRoughly100(t *testing.T) {
	items := []row{
		{key: "a"}, {key: "a"}, {key: "b"}, {key: "c"},
		{key: "c"}, {key: "c"}, {key: "d"},
	}
	groups := Distribution(items, func(r row) string { return r.key }, len(items))
	var sum float64
	for _, g := range groups {
		sum += g.Percentage
	}
	// Rounding tolerance of one decimal per group.
	assert.InDelta(t, 100, sum, 0.5*float64(len(groups)))
}

func TestSafePercentageEmptyPopulation(t *testing.T) {
	assert.Equal(t, float64(0), SafePercentage(0, 0))
	assert.Equal(t, float64(0), SafePercentage(5, 0))

	groups := Distribution([]row{}, func(r row) string { return r.key }, 0)
	assert.Empty(t, groups)
}

func TestSumByAggregatesCosts(t *testing.T) {
	items := []row{
		{key: "Shadow", cost: 1000},
		{key: "Training", cost: 500},
		{key: "Shadow", cost: 2500},
	}
	groups := SumBy(items,
		func(r row) string { return r.key },
		func(r row) float64 { return r.cost },
	)
	assert.Len(t, groups, 2)
	assert.Equal(t, "Shadow", groups[0].Key)
	assert.Equal(t, float64(3500), groups[0].Sum)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "Training", groups[1].Key)
	assert.Equal(t, float64(500), groups[1].Sum)
}

func TestDistributionOrderIsStable(t *testing.T) {
	items := []row{{key: "z"}, {key: "a"}, {key: "z"}, {key: "m"}}
	first := Distribution(items, func(r row) string { return r.key }, len(items))
	second := Distribution(items, func(r row) string { return r.key }, len(items))
	assert.Equal(t, first, second)
	assert.Equal(t, "z", first[0].Key, "groups follow first appearance, not sort order")
}

func TestCountAndSumWhere(t *testing.T) {
	items := []row{{key: "a", cost: 10}, {key: "b", cost: 20}, {key: "a", cost: 5}}
	isA := func(r row) bool { return r.key == "a" }
	assert.Equal(t, 2, CountWhere(items, isA))
	assert.Equal(t, float64(15), SumWhere(items, isA, func(r row) float64 { return r.cost }))
}
