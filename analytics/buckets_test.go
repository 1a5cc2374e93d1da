package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySeniorityBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		years float64
		want  string
	}{
		{"just under junior boundary", 2.9, "Junior"},
		{"exactly three years", 3.0, "Mid"},
		{"just under mid boundary", 5.9, "Mid"},
		{"exactly six years", 6.0, "Senior"},
		{"zero years", 0, "Junior"},
		{"very senior", 25, "Senior"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Classify(&tt.years, SeniorityBuckets)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyBenchAgingBoundaries(t *testing.T) {
	tests := []struct {
		days     float64
		want     string
		wantRisk string
	}{
		{29, "<30 days", "low"},
		{30, "30-60 days", "medium"},
		{59, "30-60 days", "medium"},
		{60, "60-90 days", "high"},
		{89, "60-90 days", "high"},
		{90, ">90 days", "high"},
		{400, ">90 days", "high"},
	}
	for _, tt := range tests {
		got, risk := Classify(&tt.days, BenchAgingBuckets)
		assert.Equal(t, tt.want, got, "days=%v", tt.days)
		assert.Equal(t, tt.wantRisk, risk, "days=%v", tt.days)
	}
}

func TestClassifyUnknownInputs(t *testing.T) {
	got, risk := Classify(nil, BenchAgingBuckets)
	assert.Equal(t, UnknownBucket, got)
	assert.Empty(t, risk)

	neg := -5.0
	got, _ = Classify(&neg, SeniorityBuckets)
	assert.Equal(t, UnknownBucket, got)
}

func TestRiskFor(t *testing.T) {
	assert.Equal(t, "medium", RiskFor("30-60 days", BenchAgingBuckets))
	assert.Equal(t, "", RiskFor("no such bucket", BenchAgingBuckets))
}
