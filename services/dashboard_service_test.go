package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
)

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

func tptr(t time.Time) *time.Time { return &t }

func date(year int, month time.Month, day int) *time.Time {
	return tptr(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func TestKPICards(t *testing.T) {
	projects := []models.Project{
		{HealthStatus: models.HealthGreen},
		{HealthStatus: models.HealthAmber},
		{HealthStatus: models.HealthRed},
		{HealthStatus: models.HealthGreen},
	}
	escalations := []models.Escalation{
		{Status: models.EscalationOpen},
		{Status: models.EscalationResolved},
		{Status: models.EscalationInProgress},
	}

	cards := kpiCards(projects, escalations)
	require.Len(t, cards, 4)

	byID := make(map[string]float64)
	for _, c := range cards {
		byID[c.ID] = c.Value
	}
	assert.Equal(t, float64(4), byID["active-projects"])
	assert.Equal(t, float64(2), byID["on-track"])
	assert.Equal(t, float64(2), byID["at-risk"])
	assert.Equal(t, float64(2), byID["escalations"])
}

func TestExperienceDistribution(t *testing.T) {
	resources := []models.Resource{
		{FullName: "A", Experience: fptr(2)},
		{FullName: "B", Experience: fptr(4)},
		{FullName: "C", Experience: fptr(7)},
	}

	dist := experienceDistribution(resources)
	require.Len(t, dist, 3)

	byLevel := make(map[string]models.ExperienceDistribution)
	for _, d := range dist {
		byLevel[d.Level] = d
	}
	assert.Equal(t, 1, byLevel["Junior"].Count)
	assert.Equal(t, 1, byLevel["Mid"].Count)
	assert.Equal(t, 1, byLevel["Senior"].Count)
	assert.InDelta(t, 33.3, byLevel["Junior"].Percentage, 0.05)
	assert.InDelta(t, 33.3, byLevel["Mid"].Percentage, 0.05)
	assert.InDelta(t, 33.3, byLevel["Senior"].Percentage, 0.05)
}

func TestExperienceDistributionUnknownExcludedFromDenominator(t *testing.T) {
	resources := []models.Resource{
		{FullName: "A", Experience: fptr(2)},
		{FullName: "B", Experience: fptr(8)},
		{FullName: "C", Experience: nil},
	}

	dist := experienceDistribution(resources)

	byLevel := make(map[string]models.ExperienceDistribution)
	for _, d := range dist {
		byLevel[d.Level] = d
	}
	require.Contains(t, byLevel, "Unknown")
	assert.Equal(t, 1, byLevel["Unknown"].Count)
	assert.Equal(t, float64(0), byLevel["Unknown"].Percentage)
	assert.InDelta(t, 50.0, byLevel["Junior"].Percentage, 0.05)
	assert.InDelta(t, 50.0, byLevel["Senior"].Percentage, 0.05)
}

func TestBenchAgingData(t *testing.T) {
	nonBillable := []models.Resource{
		{FullName: "A", BenchDays: iptr(10), MonthlyCost: 1000},
		{FullName: "B", BenchDays: iptr(45), MonthlyCost: 2000},
		{FullName: "C", BenchDays: nil, MonthlyCost: 500},
	}

	buckets := benchAgingData(nonBillable)
	require.Len(t, buckets, 3)

	assert.Equal(t, "<30 days", buckets[0].Bucket)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, float64(1000), buckets[0].Cost)
	assert.Equal(t, "low", buckets[0].RiskLevel)

	assert.Equal(t, "30-60 days", buckets[1].Bucket)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, "medium", buckets[1].RiskLevel)

	assert.Equal(t, "Unknown", buckets[2].Bucket)
	assert.Equal(t, 1, buckets[2].Count)
	assert.Equal(t, "", buckets[2].RiskLevel)
}

func TestBenchAgingDataExactBoundary(t *testing.T) {
	nonBillable := []models.Resource{
		{FullName: "A", BenchDays: iptr(30)},
	}

	buckets := benchAgingData(nonBillable)
	require.Len(t, buckets, 1)
	assert.Equal(t, "30-60 days", buckets[0].Bucket)
}

func TestAvgBenchDays(t *testing.T) {
	nonBillable := []models.Resource{
		{BenchDays: iptr(10)},
		{BenchDays: iptr(45)},
		{BenchDays: nil},
	}

	// Missing values count as zero but stay in the denominator.
	assert.InDelta(t, 18.3, avgBenchDays(nonBillable), 0.05)
	assert.Equal(t, float64(0), avgBenchDays(nil))
}

func TestMonthlyFinancials(t *testing.T) {
	resources := []models.Resource{
		{FullName: "A", MonthlyCost: 1000, BillableStatus: true, JoiningDate: date(2025, time.February, 10)},
		{FullName: "B", MonthlyCost: 500, JoiningDate: date(2025, time.January, 5)},
		{FullName: "C", MonthlyCost: 300, IsIntern: true, JoiningDate: date(2025, time.January, 20)},
		{FullName: "D", MonthlyCost: 0, JoiningDate: date(2025, time.March, 1)},
		{FullName: "E", MonthlyCost: 700, JoiningDate: nil},
	}

	months := monthlyFinancials(resources)
	require.Len(t, months, 2)

	assert.Equal(t, "Jan 2025", months[0].Month)
	assert.Equal(t, float64(800), months[0].Total)
	assert.Equal(t, float64(0), months[0].Billable)
	assert.Equal(t, float64(500), months[0].NonBillable)
	assert.Equal(t, float64(300), months[0].Intern)

	assert.Equal(t, "Feb 2025", months[1].Month)
	assert.Equal(t, float64(1000), months[1].Total)
	assert.Equal(t, float64(1000), months[1].Billable)
	assert.Equal(t, float64(0), months[1].NonBillable)
}

func TestMonthlyFinancialsChronologicalAcrossYears(t *testing.T) {
	resources := []models.Resource{
		{MonthlyCost: 100, JoiningDate: date(2025, time.January, 1)},
		{MonthlyCost: 100, JoiningDate: date(2024, time.December, 1)},
	}

	months := monthlyFinancials(resources)
	require.Len(t, months, 2)
	assert.Equal(t, "Dec 2024", months[0].Month)
	assert.Equal(t, "Jan 2025", months[1].Month)
}

func TestYTDTotalsBillablePrecedence(t *testing.T) {
	resources := []models.Resource{
		{MonthlyCost: 1000, BillableStatus: true, IsIntern: true},
		{MonthlyCost: 500},
		{MonthlyCost: 300, IsIntern: true},
	}

	totals := ytdTotals(resources)
	assert.Equal(t, float64(1800), totals.Total)
	assert.Equal(t, float64(1000), totals.Billable)
	assert.Equal(t, float64(500), totals.NonBillable)
	assert.Equal(t, float64(300), totals.Intern)
}

func TestResourceOverview(t *testing.T) {
	resources := []models.Resource{
		{Designation: "Engineer", BillableStatus: true},
		{Designation: "Engineer", CurrentBenchStatus: true},
		{Designation: "QA", BillableStatus: true},
		{Designation: "QA", CurrentBenchStatus: true},
	}

	overview := resourceOverview(resources)
	assert.Equal(t, 4, overview.TotalEngineers)
	assert.Equal(t, float64(50), overview.BenchPercentage)
	assert.Equal(t, float64(50), overview.AllocationPercentage)
	assert.Equal(t, 2, overview.BillableRatio.Billable)
	assert.Equal(t, 2, overview.BillableRatio.NonBillable)
	assert.Equal(t, float64(50), overview.BillableRatio.BillablePercentage)
	require.Len(t, overview.RoleDistribution, 2)
	assert.Equal(t, "Engineer", overview.RoleDistribution[0].Role)
}

func TestResourceOverviewEmpty(t *testing.T) {
	overview := resourceOverview(nil)
	assert.Equal(t, 0, overview.TotalEngineers)
	assert.Equal(t, float64(0), overview.BenchPercentage)
	assert.Equal(t, float64(0), overview.BillableRatio.BillablePercentage)
}

func TestDashboardKPIs(t *testing.T) {
	projects := []models.Project{
		{Status: "On Track"},
		{Status: "Critical"},
		{Status: "Completed"},
		{Status: "active"},
	}

	kpis := dashboardKPIs(projects)
	assert.Equal(t, 4, kpis.TotalProjects)
	assert.Equal(t, 3, kpis.ActiveProjects)
	assert.Equal(t, 1, kpis.CriticalProjects)
	assert.Equal(t, 1, kpis.OnTrackProjects)
}

func TestProjectCards(t *testing.T) {
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()
	projects := []models.Project{
		{ID: p1, Name: "Apollo", HealthStatus: models.HealthGreen, Progress: fptr(80), TeamSize: iptr(5)},
		{ID: p2, Name: "Hermes"},
	}
	kpis := []models.KPI{
		{Name: "velocity", Value: fptr(42), ProjectID: &p1},
		{Name: "orphaned", Value: fptr(1), ProjectID: nil},
	}

	cards := projectCards(projects, kpis)
	require.Len(t, cards, 2)

	assert.Equal(t, "Apollo", cards[0].Name)
	assert.Equal(t, float64(80), cards[0].Progress)
	assert.Equal(t, 5, cards[0].TeamSize)
	require.Len(t, cards[0].KPIs, 1)
	assert.Equal(t, "velocity", cards[0].KPIs[0].Name)

	assert.Equal(t, "Unknown", cards[1].HealthStatus)
	assert.Equal(t, float64(0), cards[1].Progress)
	assert.Empty(t, cards[1].KPIs)
}

func TestWeeklyMovementSortedByWeek(t *testing.T) {
	nonBillable := []models.Resource{
		{BenchStartDate: date(2025, time.March, 10)},
		{BenchStartDate: date(2025, time.January, 6)},
		{BenchStartDate: date(2025, time.January, 8)},
		{BenchStartDate: nil},
	}

	weeks := weeklyMovement(nonBillable)
	require.Len(t, weeks, 2)
	assert.Equal(t, "02 2025", weeks[0].Week)
	assert.Equal(t, 2, weeks[0].Moved)
	assert.Equal(t, "11 2025", weeks[1].Week)
}

func TestUpcomingReleases(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	resources := []models.Resource{
		{FullName: "A", ReleaseDate: date(2025, time.July, 1)},
		{FullName: "B", ReleaseDate: date(2025, time.May, 1)},
		{FullName: "C"},
	}

	releases := upcomingReleases(resources, now)
	require.Len(t, releases, 1)
	assert.Equal(t, "A", releases[0].FullName)
}

func TestBenchReasonData(t *testing.T) {
	nonBillable := []models.Resource{
		{BenchReason: "Between projects", MonthlyCost: 1000},
		{BenchReason: "Between projects", MonthlyCost: 500},
		{BenchReason: "Training", MonthlyCost: 200},
		{BenchReason: "", MonthlyCost: 999},
	}

	reasons := benchReasonData(nonBillable)
	require.Len(t, reasons, 2)
	assert.Equal(t, "Between projects", reasons[0].Reason)
	assert.Equal(t, 2, reasons[0].Count)
	assert.Equal(t, float64(1500), reasons[0].Cost)
	assert.Equal(t, "Training", reasons[1].Reason)
}

func TestMetricIsolation(t *testing.T) {
	s := &DashboardService{}
	touched := false

	assert.NotPanics(t, func() {
		s.metric("exploding", func() { panic("boom") })
		s.metric("healthy", func() { touched = true })
	})
	assert.True(t, touched)
}

func TestInternAveragesAndFunnelInputs(t *testing.T) {
	interns := []models.Resource{
		{FullName: "A", IsIntern: true, LearningHours: 10, ProductiveHours: 20, AssignedProject: "Apollo"},
		{FullName: "B", IsIntern: true, LearningHours: 10, ProductiveHours: 30},
		{FullName: "C", IsIntern: true, LearningHours: 11, ProductiveHours: 40, AssignedProject: "Hermes"},
	}

	assert.InDelta(t, 10.3, averageOver(interns, func(r models.Resource) float64 { return r.LearningHours }), 0.01)
	assert.InDelta(t, 30.0, averageOver(interns, func(r models.Resource) float64 { return r.ProductiveHours }), 0.01)

	details := internDetails(interns)
	require.Len(t, details, 3)
	assert.Equal(t, "Apollo", details[0].Project)
}
