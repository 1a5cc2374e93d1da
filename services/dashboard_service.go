package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/analytics"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/logging"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
)

// DashboardService composes the full dashboard payload. Each request is a
// stateless full recompute: collections are read once up front through a
// circuit breaker, normalized, and every widget is computed independently
// over the in-memory copies. A failing widget is logged and served as its
// zero default; only store unavailability fails the request.
type DashboardService struct {
	store   *Store
	breaker *gobreaker.CircuitBreaker
}

func NewDashboardService(store *Store) *DashboardService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "RecordStoreCB",
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
	return &DashboardService{store: store, breaker: breaker}
}

func (s *DashboardService) listRaw(ctx context.Context, collection string) ([]bson.M, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.store.ListRaw(ctx, collection, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return result.([]bson.M), nil
}

func (s *DashboardService) listEscalations(ctx context.Context) ([]models.Escalation, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		var escalations []models.Escalation
		if err := s.store.ListInto(ctx, "escalations", nil, &escalations); err != nil {
			return nil, err
		}
		return escalations, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return result.([]models.Escalation), nil
}

func (s *DashboardService) listKPIs(ctx context.Context) ([]models.KPI, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		var kpis []models.KPI
		if err := s.store.ListInto(ctx, "kpis", nil, &kpis); err != nil {
			return nil, err
		}
		return kpis, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return result.([]models.KPI), nil
}

// metric runs one widget computation in isolation. A panic inside a metric
// leaves its zero default in the response and never fails the request.
func (s *DashboardService) metric(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Warnf("Event ID: METRIC_COMPUTE_FAILED, Description: Metric %s failed, serving default: %v", name, r)
		}
	}()
	fn()
}

// BuildDashboard recomputes the whole payload from the current store
// contents. Calling it twice against an unchanged store yields an
// identical payload.
func (s *DashboardService) BuildDashboard(ctx context.Context) (*models.DashboardResponse, error) {
	resourcesRaw, err := s.listRaw(ctx, "resources")
	if err != nil {
		return nil, err
	}
	projectsRaw, err := s.listRaw(ctx, "projects")
	if err != nil {
		return nil, err
	}
	escalations, err := s.listEscalations(ctx)
	if err != nil {
		return nil, err
	}
	kpis, err := s.listKPIs(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]models.Resource, 0, len(resourcesRaw))
	for _, doc := range resourcesRaw {
		resources = append(resources, analytics.NormalizeResource(doc))
	}
	projects := make([]models.Project, 0, len(projectsRaw))
	for _, doc := range projectsRaw {
		projects = append(projects, analytics.NormalizeProject(doc))
	}

	nonBillable := filterResources(resources, func(r models.Resource) bool { return !r.BillableStatus })
	billable := filterResources(resources, func(r models.Resource) bool { return r.BillableStatus })
	interns := filterResources(resources, func(r models.Resource) bool { return r.IsIntern })

	resp := &models.DashboardResponse{}

	s.metric("kpi_cards", func() { resp.KPIs = kpiCards(projects, escalations) })
	s.metric("resource_overview", func() { resp.ResourceOverview = resourceOverview(resources) })
	s.metric("project_cards", func() {
		resp.ProjectCards = projectCards(projects, kpis)
		resp.DashboardKPIs = dashboardKPIs(projects)
	})

	s.metric("resource_totals", func() {
		resp.TotalResources = len(resources)
		resp.ActiveResources = analytics.CountWhere(resources, isActiveResource)
		resp.NonBillableCount = len(nonBillable)
		resp.UtilizationRate = analytics.SafePercentage(resp.ActiveResources, len(resources))
		resp.NonBillableCostDrain = analytics.SumWhere(nonBillable, anyResource, monthlyCost)
	})

	s.metric("distributions", func() {
		resp.SkillData = skillData(resources)
		resp.SeniorityData = seniorityData(resources)
		resp.DepartmentData = departmentData(resources)
		resp.DesignationData = designationData(resources)
		resp.LocationData = locationData(resources)
		resp.EngagementData = engagementData(resources)
		resp.MonthlyGrowth = monthlyGrowth(resources)
	})

	s.metric("billable_analytics", func() {
		resp.BillableResources = billableDetail(billable)
		resp.BillableResourcesCount = len(billable)
		resp.UtilizationTrend = utilizationTrend(billable)
		resp.ClientAllocationData = clientAllocation(billable)
		resp.ProductivityTrend = productivityTrend(billable)
	})

	s.metric("bench_analytics", func() {
		resp.BenchReasonData = benchReasonData(nonBillable)
		resp.BenchAgingData = benchAgingData(nonBillable)
		resp.WeeklyMovementData = weeklyMovement(nonBillable)
		resp.NonBillableLocation = nonBillableLocations(nonBillable)
		resp.NonBillableList = nonBillableList(nonBillable)
		resp.AvgBenchDays = avgBenchDays(nonBillable)
		resp.ReallocationOpps = analytics.CountWhere(nonBillable, func(r models.Resource) bool { return r.ReallocationOpportunity })
	})

	s.metric("intern_analytics", func() {
		assigned := analytics.CountWhere(interns, func(r models.Resource) bool { return r.AssignedProject != "" })
		resp.TotalInterns = len(interns)
		resp.InternsAssigned = assigned
		resp.InternsUnassigned = len(interns) - assigned
		resp.InternConversionRate = analytics.SafePercentage(assigned, len(interns))
		resp.AvgLearningHours = averageOver(interns, func(r models.Resource) float64 { return r.LearningHours })
		resp.AvgProductiveHours = averageOver(interns, func(r models.Resource) float64 { return r.ProductiveHours })
		resp.InternConversionFunnel = []models.FunnelStage{
			{Name: "Total", Value: len(interns)},
			{Name: "Assigned", Value: assigned},
			{Name: "Unassigned", Value: len(interns) - assigned},
		}
		resp.InternMonthlyConversions = internMonthlyConversions(interns)
		resp.InternLearningVsProductive = internLearningVsProductive(interns)
		resp.InternLocations = internLocations(interns)
		resp.InternDetails = internDetails(interns)
		resp.InternsData = interns
	})

	s.metric("upcoming_releases", func() { resp.UpcomingReleases = upcomingReleases(resources, time.Now()) })

	s.metric("financials", func() {
		resp.MonthlyFinancials = monthlyFinancials(resources)
		resp.YTDTotals = ytdTotals(resources)
	})

	return resp, nil
}

func filterResources(resources []models.Resource, pred func(models.Resource) bool) []models.Resource {
	var out []models.Resource
	for _, r := range resources {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func anyResource(models.Resource) bool { return true }

func monthlyCost(r models.Resource) float64 { return r.MonthlyCost }

func isActiveResource(r models.Resource) bool {
	return r.Status == "active" || r.Status == "Active"
}

func averageOver(resources []models.Resource, valueFn func(models.Resource) float64) float64 {
	if len(resources) == 0 {
		return 0
	}
	return analytics.Round1(analytics.SumWhere(resources, anyResource, valueFn) / float64(len(resources)))
}

func kpiCards(projects []models.Project, escalations []models.Escalation) []models.KPICard {
	onTrack := analytics.CountWhere(projects, func(p models.Project) bool { return p.HealthStatus == models.HealthGreen })
	atRisk := analytics.CountWhere(projects, func(p models.Project) bool {
		return p.HealthStatus == models.HealthAmber || p.HealthStatus == models.HealthRed
	})
	open := analytics.CountWhere(escalations, func(e models.Escalation) bool { return e.IsOpen() })
	return []models.KPICard{
		{ID: "active-projects", Title: "Active Projects", Value: float64(len(projects))},
		{ID: "on-track", Title: "On Track", Value: float64(onTrack)},
		{ID: "at-risk", Title: "At Risk", Value: float64(atRisk)},
		{ID: "escalations", Title: "Escalations", Value: float64(open)},
	}
}

func dashboardKPIs(projects []models.Project) models.DashboardKPIs {
	activeStatuses := map[string]bool{
		"On Track": true, "At Risk": true, "Critical": true,
		"Delayed": true, "active": true, "Active": true,
	}
	return models.DashboardKPIs{
		TotalProjects:    len(projects),
		ActiveProjects:   analytics.CountWhere(projects, func(p models.Project) bool { return activeStatuses[p.Status] }),
		CriticalProjects: analytics.CountWhere(projects, func(p models.Project) bool { return p.Status == "Critical" }),
		OnTrackProjects:  analytics.CountWhere(projects, func(p models.Project) bool { return p.Status == "On Track" }),
	}
}

func resourceOverview(resources []models.Resource) models.ResourceOverview {
	total := len(resources)
	benchCount := analytics.CountWhere(resources, func(r models.Resource) bool { return r.CurrentBenchStatus })
	billableCount := analytics.CountWhere(resources, func(r models.Resource) bool { return r.BillableStatus })

	roleGroups := analytics.Distribution(resources, func(r models.Resource) string { return r.Designation }, total)
	roles := make([]models.RoleDistribution, 0, len(roleGroups))
	for _, g := range roleGroups {
		roles = append(roles, models.RoleDistribution{Role: g.Key, Count: g.Count, Percentage: g.Percentage})
	}

	return models.ResourceOverview{
		TotalEngineers:         total,
		BenchPercentage:        analytics.SafePercentage(benchCount, total),
		AllocationPercentage:   analytics.SafePercentage(billableCount, total),
		RoleDistribution:       roles,
		ExperienceDistribution: experienceDistribution(resources),
		BillableRatio: models.BillableRatio{
			Billable:           billableCount,
			NonBillable:        total - billableCount,
			BillablePercentage: analytics.SafePercentage(billableCount, total),
		},
	}
}

// experienceDistribution classifies resources into seniority tiers from
// their years of experience. The Unknown tier is reported when non-empty
// but excluded from the percentage denominator.
func experienceDistribution(resources []models.Resource) []models.ExperienceDistribution {
	tier := func(r models.Resource) string {
		name, _ := analytics.Classify(r.Experience, analytics.SeniorityBuckets)
		return name
	}
	known := analytics.CountWhere(resources, func(r models.Resource) bool { return tier(r) != analytics.UnknownBucket })
	groups := analytics.Distribution(resources, tier, known)

	out := make([]models.ExperienceDistribution, 0, len(groups))
	for _, g := range groups {
		pct := g.Percentage
		if g.Key == analytics.UnknownBucket {
			pct = 0
		}
		out = append(out, models.ExperienceDistribution{Level: g.Key, Count: g.Count, Percentage: pct})
	}
	return out
}

func skillData(resources []models.Resource) []models.SkillCount {
	var skills []string
	for _, r := range resources {
		skills = append(skills, r.Skills...)
	}
	groups := analytics.Distribution(skills, func(s string) string { return s }, len(skills))
	out := make([]models.SkillCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.SkillCount{Skill: g.Key, Count: g.Count})
	}
	return out
}

func seniorityData(resources []models.Resource) []models.SeniorityCount {
	groups := analytics.Distribution(resources, func(r models.Resource) string { return r.SeniorityLevel }, len(resources))
	out := make([]models.SeniorityCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.SeniorityCount{Seniority: g.Key, Count: g.Count})
	}
	return out
}

// departmentData and locationData use the non-null population as their
// denominator, unlike role distribution which declares the full headcount.
func departmentData(resources []models.Resource) []models.NamedDistribution {
	withDept := analytics.CountWhere(resources, func(r models.Resource) bool { return r.Department != "" })
	groups := analytics.Distribution(resources, func(r models.Resource) string { return r.Department }, withDept)
	out := make([]models.NamedDistribution, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.NamedDistribution{Name: g.Key, Count: g.Count, Percentage: g.Percentage})
	}
	return out
}

func designationData(resources []models.Resource) []models.NamedCount {
	groups := analytics.Distribution(resources, func(r models.Resource) string { return r.Designation }, len(resources))
	out := make([]models.NamedCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.NamedCount{Name: g.Key, Count: g.Count})
	}
	return out
}

func locationData(resources []models.Resource) []models.NamedDistribution {
	withLocation := analytics.CountWhere(resources, func(r models.Resource) bool { return r.Location != "" })
	groups := analytics.Distribution(resources, func(r models.Resource) string { return r.Location }, withLocation)
	out := make([]models.NamedDistribution, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.NamedDistribution{Name: g.Key, Count: g.Count, Percentage: g.Percentage})
	}
	return out
}

func engagementData(resources []models.Resource) []models.EngagementCount {
	groups := analytics.Distribution(resources, func(r models.Resource) string { return r.CurrentEngagement }, len(resources))
	out := make([]models.EngagementCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.EngagementCount{Engagement: g.Key, Count: g.Count})
	}
	return out
}

func monthlyGrowth(resources []models.Resource) []models.MonthCount {
	groups := analytics.ByMonth(resources, func(r models.Resource) *time.Time { return r.JoiningDate })
	out := make([]models.MonthCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.MonthCount{Month: g.Label(), Count: len(g.Items)})
	}
	return out
}

func billableDetail(billable []models.Resource) []models.BillableResourceDetail {
	out := make([]models.BillableResourceDetail, 0, len(billable))
	for _, r := range billable {
		out = append(out, models.BillableResourceDetail{
			FullName:        r.FullName,
			Designation:     r.Designation,
			Client:          r.Client,
			UtilizationRate: r.UtilizationPercentage,
			BillingRate:     r.BillingRate,
			Productivity:    r.ProductivityScore,
		})
	}
	return out
}

func utilizationTrend(billable []models.Resource) []models.UtilizationPoint {
	groups := analytics.ByMonth(billable, func(r models.Resource) *time.Time { return r.JoiningDate })
	out := make([]models.UtilizationPoint, 0, len(groups))
	for _, g := range groups {
		avg := g.Average(func(r models.Resource) float64 {
			if r.UtilizationPercentage == nil {
				return 0
			}
			return *r.UtilizationPercentage
		})
		out = append(out, models.UtilizationPoint{Week: g.Label(), Utilization: avg})
	}
	return out
}

func clientAllocation(billable []models.Resource) []models.ClientAllocation {
	groups := analytics.Distribution(billable, func(r models.Resource) string { return r.Client }, len(billable))
	out := make([]models.ClientAllocation, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.ClientAllocation{Client: g.Key, Resources: g.Count})
	}
	return out
}

func productivityTrend(billable []models.Resource) []models.ProductivityPoint {
	groups := analytics.ByMonth(billable, func(r models.Resource) *time.Time { return r.JoiningDate })
	out := make([]models.ProductivityPoint, 0, len(groups))
	for _, g := range groups {
		avg := g.Average(func(r models.Resource) float64 {
			if r.ProductivityScore == nil {
				return 0
			}
			return *r.ProductivityScore
		})
		out = append(out, models.ProductivityPoint{Month: g.Label(), Productivity: avg, Allocation: avg})
	}
	return out
}

func benchReasonData(nonBillable []models.Resource) []models.BenchReason {
	groups := analytics.SumBy(nonBillable,
		func(r models.Resource) string { return r.BenchReason },
		monthlyCost,
	)
	out := make([]models.BenchReason, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.BenchReason{Reason: g.Key, Count: g.Count, Cost: g.Sum})
	}
	return out
}

// benchAgingData classifies every benched resource's days on bench into
// the aging table and totals headcount and cost per bucket. Buckets come
// out in table order; the Unknown bucket trails and only appears when a
// resource had no usable bench-days value.
func benchAgingData(nonBillable []models.Resource) []models.BenchAgingBucket {
	type agg struct {
		count int
		cost  float64
	}
	byBucket := make(map[string]agg)
	for _, r := range nonBillable {
		var days *float64
		if r.BenchDays != nil {
			d := float64(*r.BenchDays)
			days = &d
		}
		name, _ := analytics.Classify(days, analytics.BenchAgingBuckets)
		a := byBucket[name]
		a.count++
		a.cost += r.MonthlyCost
		byBucket[name] = a
	}

	var out []models.BenchAgingBucket
	for _, b := range analytics.BenchAgingBuckets {
		if a, ok := byBucket[b.Name]; ok {
			out = append(out, models.BenchAgingBucket{Bucket: b.Name, Count: a.count, Cost: a.cost, RiskLevel: b.Risk})
		}
	}
	if a, ok := byBucket[analytics.UnknownBucket]; ok {
		out = append(out, models.BenchAgingBucket{Bucket: analytics.UnknownBucket, Count: a.count, Cost: a.cost, RiskLevel: ""})
	}
	return out
}

func weeklyMovement(nonBillable []models.Resource) []models.WeeklyMovement {
	type weekKey struct {
		year int
		week int
	}
	counts := make(map[weekKey]int)
	for _, r := range nonBillable {
		if r.BenchStartDate == nil {
			continue
		}
		y, w := r.BenchStartDate.ISOWeek()
		counts[weekKey{y, w}]++
	}
	keys := make([]weekKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})
	out := make([]models.WeeklyMovement, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.WeeklyMovement{
			Week:  fmt.Sprintf("%02d %d", k.week, k.year),
			Moved: counts[k],
			Added: counts[k],
		})
	}
	return out
}

func nonBillableLocations(nonBillable []models.Resource) []models.LocationCost {
	groups := analytics.SumBy(nonBillable,
		func(r models.Resource) string { return r.Location },
		monthlyCost,
	)
	out := make([]models.LocationCost, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.LocationCost{Location: g.Key, Count: g.Count, Cost: g.Sum})
	}
	return out
}

func nonBillableList(nonBillable []models.Resource) []models.NonBillableResourceEntry {
	out := make([]models.NonBillableResourceEntry, 0, len(nonBillable))
	for _, r := range nonBillable {
		out = append(out, models.NonBillableResourceEntry{
			Name:        r.FullName,
			Designation: r.Designation,
			Reason:      r.BenchReason,
			BenchDays:   r.BenchDays,
			Location:    r.Location,
			MonthlyCost: r.MonthlyCost,
			Suggestion:  r.Suggestion,
		})
	}
	return out
}

func avgBenchDays(nonBillable []models.Resource) float64 {
	if len(nonBillable) == 0 {
		return 0
	}
	total := analytics.SumWhere(nonBillable, anyResource, func(r models.Resource) float64 {
		if r.BenchDays == nil {
			return 0
		}
		return float64(*r.BenchDays)
	})
	return analytics.Round1(total / float64(len(nonBillable)))
}

func internMonthlyConversions(interns []models.Resource) []models.InternMonthlyConversion {
	groups := analytics.ByMonth(interns, func(r models.Resource) *time.Time { return r.InternshipStartDate })
	out := make([]models.InternMonthlyConversion, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.InternMonthlyConversion{Month: g.Label(), ConversionRate: len(g.Items)})
	}
	return out
}

func internLearningVsProductive(interns []models.Resource) []models.InternLearningProductive {
	out := make([]models.InternLearningProductive, 0, len(interns))
	for _, r := range interns {
		out = append(out, models.InternLearningProductive{
			Intern:     r.FullName,
			Learning:   r.LearningHours,
			Productive: r.ProductiveHours,
		})
	}
	return out
}

func internLocations(interns []models.Resource) []models.InternLocation {
	groups := analytics.Distribution(interns, func(r models.Resource) string { return r.Location }, len(interns))
	out := make([]models.InternLocation, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.InternLocation{Location: g.Key, Count: g.Count})
	}
	return out
}

func internDetails(interns []models.Resource) []models.InternDetail {
	out := make([]models.InternDetail, 0, len(interns))
	for _, r := range interns {
		out = append(out, models.InternDetail{
			Name:                r.FullName,
			Designation:         r.Designation,
			Project:             r.AssignedProject,
			Mentor:              r.MentorName,
			Status:              r.Status,
			Department:          r.Department,
			LearningHours:       r.LearningHours,
			ProductiveHours:     r.ProductiveHours,
			Feedback:            r.PerformanceFeedback,
			ConversionPotential: r.ConversionPotential,
		})
	}
	return out
}

func upcomingReleases(resources []models.Resource, now time.Time) []models.Resource {
	return filterResources(resources, func(r models.Resource) bool {
		return r.ReleaseDate != nil && r.ReleaseDate.After(now)
	})
}

// monthlyFinancials buckets resource cost into the calendar month of the
// joining date and splits each month three ways. Billable takes precedence
// over intern when a record carries both flags.
func monthlyFinancials(resources []models.Resource) []models.MonthlyFinancial {
	costed := filterResources(resources, func(r models.Resource) bool { return r.MonthlyCost > 0 })
	groups := analytics.ByMonth(costed, func(r models.Resource) *time.Time { return r.JoiningDate })

	out := make([]models.MonthlyFinancial, 0, len(groups))
	for _, g := range groups {
		total := g.Sum(monthlyCost)
		billable := analytics.SumWhere(g.Items, func(r models.Resource) bool { return r.BillableStatus }, monthlyCost)
		intern := analytics.SumWhere(g.Items, func(r models.Resource) bool { return !r.BillableStatus && r.IsIntern }, monthlyCost)
		out = append(out, models.MonthlyFinancial{
			Month:       g.Label(),
			Total:       total,
			Billable:    billable,
			NonBillable: total - billable - intern,
			Intern:      intern,
		})
	}
	return out
}

func ytdTotals(resources []models.Resource) models.YTDTotals {
	totals := models.YTDTotals{}
	for _, r := range resources {
		totals.Total += r.MonthlyCost
		switch {
		case r.BillableStatus:
			totals.Billable += r.MonthlyCost
		case r.IsIntern:
			totals.Intern += r.MonthlyCost
		default:
			totals.NonBillable += r.MonthlyCost
		}
	}
	return totals
}

func projectCards(projects []models.Project, kpis []models.KPI) []models.ProjectCard {
	kpisByProject := make(map[primitive.ObjectID][]models.KPI)
	for _, k := range kpis {
		if k.ProjectID == nil {
			// Globally scoped KPIs stay out of per-project rollups.
			continue
		}
		kpisByProject[*k.ProjectID] = append(kpisByProject[*k.ProjectID], k)
	}

	cards := make([]models.ProjectCard, 0, len(projects))
	for _, p := range projects {
		card := models.ProjectCard{
			ID:           p.ID.Hex(),
			Name:         p.Name,
			Description:  p.Description,
			Customer:     p.Customer,
			Status:       p.Status,
			HealthStatus: p.HealthStatus,
		}
		if card.HealthStatus == "" {
			card.HealthStatus = "Unknown"
		}
		if p.OnTimePercentage != nil {
			card.OnTimePercentage = *p.OnTimePercentage
		}
		if p.Progress != nil {
			card.Progress = *p.Progress
		}
		if p.TeamSize != nil {
			card.TeamSize = *p.TeamSize
		}
		for _, k := range kpisByProject[p.ID] {
			card.KPIs = append(card.KPIs, models.ProjectCardKPI{Name: k.Name, Title: k.Title, Value: k.Value})
		}
		cards = append(cards, card)
	}
	return cards
}
