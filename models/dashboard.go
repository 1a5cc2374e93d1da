package models

// Dashboard payload types. The json tags are the wire contract consumed by
// the frontend; the mixed camelCase/snake_case naming is kept on purpose
// for compatibility.

type KPICard struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Value float64 `json:"value"`
}

type RoleDistribution struct {
	Role       string  `json:"role"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ExperienceDistribution struct {
	Level      string  `json:"level"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type BillableRatio struct {
	Billable           int     `json:"billable"`
	NonBillable        int     `json:"nonBillable"`
	BillablePercentage float64 `json:"billablePercentage"`
}

type ResourceOverview struct {
	TotalEngineers         int                      `json:"totalEngineers"`
	BenchPercentage        float64                  `json:"benchPercentage"`
	AllocationPercentage   float64                  `json:"allocationPercentage"`
	RoleDistribution       []RoleDistribution       `json:"roleDistribution"`
	ExperienceDistribution []ExperienceDistribution `json:"experienceDistribution"`
	BillableRatio          BillableRatio            `json:"billableRatio"`
}

type MonthlyFinancial struct {
	Month       string  `json:"month"`
	Total       float64 `json:"total"`
	Billable    float64 `json:"billable"`
	NonBillable float64 `json:"nonBillable"`
	Intern      float64 `json:"intern"`
}

type YTDTotals struct {
	Total       float64 `json:"total"`
	Billable    float64 `json:"billable"`
	NonBillable float64 `json:"nonBillable"`
	Intern      float64 `json:"intern"`
}

type BenchAgingBucket struct {
	Bucket    string  `json:"bucket"`
	Count     int     `json:"count"`
	Cost      float64 `json:"cost"`
	RiskLevel string  `json:"riskLevel"`
}

type BenchReason struct {
	Reason string  `json:"reason"`
	Count  int     `json:"count"`
	Cost   float64 `json:"cost"`
}

type FunnelStage struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type SeniorityCount struct {
	Seniority string `json:"seniority"`
	Count     int    `json:"count"`
}

type NamedDistribution struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type EngagementCount struct {
	Engagement string `json:"engagement"`
	Count      int    `json:"count"`
}

type UtilizationPoint struct {
	Week        string  `json:"week"`
	Utilization float64 `json:"utilization"`
}

type ClientAllocation struct {
	Client    string `json:"client"`
	Resources int    `json:"resources"`
}

type ProductivityPoint struct {
	Month        string  `json:"month"`
	Productivity float64 `json:"productivity"`
	Allocation   float64 `json:"allocation"`
}

type BillableResourceDetail struct {
	FullName        string   `json:"full_name"`
	Designation     string   `json:"designation"`
	Client          string   `json:"client"`
	UtilizationRate *float64 `json:"utilization_rate"`
	BillingRate     float64  `json:"billing_rate"`
	Productivity    *float64 `json:"productivity"`
}

type NonBillableResourceEntry struct {
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Reason      string  `json:"reason"`
	BenchDays   *int    `json:"benchDays"`
	Location    string  `json:"location"`
	MonthlyCost float64 `json:"monthlyCost"`
	Suggestion  string  `json:"suggestion"`
}

type LocationCost struct {
	Location string  `json:"location"`
	Count    int     `json:"count"`
	Cost     float64 `json:"cost"`
}

type WeeklyMovement struct {
	Week  string `json:"week"`
	Moved int    `json:"moved"`
	Added int    `json:"added"`
}

type InternMonthlyConversion struct {
	Month          string `json:"month"`
	ConversionRate int    `json:"conversionRate"`
}

type InternLearningProductive struct {
	Intern     string  `json:"intern"`
	Learning   float64 `json:"learning"`
	Productive float64 `json:"productive"`
}

type InternLocation struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type InternDetail struct {
	Name                string  `json:"name"`
	Designation         string  `json:"designation"`
	Project             string  `json:"project"`
	Mentor              string  `json:"mentor"`
	Status              string  `json:"status"`
	Department          string  `json:"department"`
	LearningHours       float64 `json:"learningHours"`
	ProductiveHours     float64 `json:"productiveHours"`
	Feedback            string  `json:"feedback"`
	ConversionPotential string  `json:"conversionPotential"`
}

type ProjectCardKPI struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Value *float64 `json:"value"`
}

type ProjectCard struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Customer         string           `json:"customer"`
	Status           string           `json:"status"`
	HealthStatus     string           `json:"healthStatus"`
	OnTimePercentage float64          `json:"onTimePercentage"`
	Progress         float64          `json:"progress"`
	TeamSize         int              `json:"teamSize"`
	KPIs             []ProjectCardKPI `json:"kpis"`
}

type DashboardKPIs struct {
	TotalProjects    int `json:"totalProjects"`
	ActiveProjects   int `json:"activeProjects"`
	CriticalProjects int `json:"criticalProjects"`
	OnTrackProjects  int `json:"onTrackProjects"`
}

// DashboardResponse is the full payload for GET /dashboard.
type DashboardResponse struct {
	KPIs             []KPICard        `json:"kpis"`
	ResourceOverview ResourceOverview `json:"resourceOverview"`

	ProjectCards  []ProjectCard `json:"projectCards"`
	DashboardKPIs DashboardKPIs `json:"dashboard_kpis"`

	TotalResources       int     `json:"total_resources"`
	ActiveResources      int     `json:"active_resources"`
	NonBillableCount     int     `json:"non_billable_resources_count"`
	UtilizationRate      float64 `json:"utilization_rate"`
	NonBillableCostDrain float64 `json:"non_billable_cost_drain"`

	SkillData       []SkillCount        `json:"skillData"`
	SeniorityData   []SeniorityCount    `json:"seniorityData"`
	DepartmentData  []NamedDistribution `json:"departmentData"`
	DesignationData []NamedCount        `json:"designationData"`
	LocationData    []NamedDistribution `json:"locationData"`
	EngagementData  []EngagementCount   `json:"engagementData"`
	MonthlyGrowth   []MonthCount        `json:"monthly_growth_data"`

	BillableResources      []BillableResourceDetail `json:"billable_resources"`
	BillableResourcesCount int                      `json:"billable_resources_count"`
	UtilizationTrend       []UtilizationPoint       `json:"utilization_trend"`
	ClientAllocationData   []ClientAllocation       `json:"client_allocation"`
	ProductivityTrend      []ProductivityPoint      `json:"productivity_trend"`

	BenchReasonData     []BenchReason              `json:"bench_reason_data"`
	BenchAgingData      []BenchAgingBucket         `json:"bench_aging_data"`
	WeeklyMovementData  []WeeklyMovement           `json:"weekly_movement_data"`
	NonBillableLocation []LocationCost             `json:"non_billable_location_distribution"`
	NonBillableList     []NonBillableResourceEntry `json:"non_billable_resources_list"`
	AvgBenchDays        float64                    `json:"avg_bench_days"`
	ReallocationOpps    int                        `json:"reallocation_opportunities"`

	TotalInterns               int                        `json:"total_interns"`
	InternsAssigned            int                        `json:"interns_assigned"`
	InternsUnassigned          int                        `json:"interns_unassigned"`
	InternConversionRate       float64                    `json:"intern_conversion_rate"`
	AvgLearningHours           float64                    `json:"avg_learning_hours"`
	AvgProductiveHours         float64                    `json:"avg_productive_hours"`
	InternConversionFunnel     []FunnelStage              `json:"intern_conversion_funnel"`
	InternMonthlyConversions   []InternMonthlyConversion  `json:"intern_monthly_conversion"`
	InternLearningVsProductive []InternLearningProductive `json:"intern_learning_vs_productive"`
	InternLocations            []InternLocation           `json:"intern_location_distribution"`
	InternDetails              []InternDetail             `json:"intern_details_list"`

	InternsData      []Resource `json:"internsData"`
	UpcomingReleases []Resource `json:"upcomingReleases"`

	MonthlyFinancials []MonthlyFinancial `json:"monthlyFinancials"`
	YTDTotals         YTDTotals          `json:"ytdTotals"`
}
