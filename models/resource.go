package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is the canonical employee record. Older record shapes
// (camelCase keys, comma-joined skills, string dates) are folded into this
// shape by the analytics normalizer before anything else reads them.
type Resource struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID string             `json:"employeeId" bson:"employee_id"`
	FullName   string             `json:"fullName" bson:"full_name"`
	Email      string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`

	Designation      string     `json:"designation" bson:"designation"`
	Department       string     `json:"department" bson:"department"`
	SeniorityLevel   string     `json:"seniorityLevel" bson:"seniority_level"`
	Experience       *float64   `json:"experience" bson:"experience"`
	Location         string     `json:"location" bson:"location"`
	JoiningDate      *time.Time `json:"joiningDate" bson:"joining_date"`
	EmploymentType   string     `json:"employmentType,omitempty" bson:"employment_type,omitempty"`
	ReportingManager string     `json:"reportingManager,omitempty" bson:"reporting_manager,omitempty"`
	Status           string     `json:"status,omitempty" bson:"status,omitempty"`

	Skills []string `json:"skills" bson:"skills"`

	BillableStatus    bool                `json:"billableStatus" bson:"billable_status"`
	CurrentEngagement string              `json:"currentEngagement,omitempty" bson:"current_engagement,omitempty"`
	ProjectID         *primitive.ObjectID `json:"projectId,omitempty" bson:"project_id,omitempty"`
	// ProjectName is a deprecated compatibility join key; new records carry
	// ProjectID instead.
	ProjectName string     `json:"projectName,omitempty" bson:"project_name,omitempty"`
	Client      string     `json:"client,omitempty" bson:"client,omitempty"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty" bson:"release_date,omitempty"`

	CurrentBenchStatus      bool       `json:"currentBenchStatus" bson:"current_bench_status"`
	BenchDays               *int       `json:"benchDays" bson:"bench_days"`
	BenchReason             string     `json:"benchReason,omitempty" bson:"bench_reason,omitempty"`
	BenchStartDate          *time.Time `json:"benchStartDate,omitempty" bson:"bench_start_date,omitempty"`
	ReallocationOpportunity bool       `json:"reallocationOpportunity" bson:"reallocation_opportunity"`
	Suggestion              string     `json:"suggestion,omitempty" bson:"suggestion,omitempty"`

	IsIntern            bool       `json:"isIntern" bson:"is_intern"`
	InternshipStartDate *time.Time `json:"internshipStartDate,omitempty" bson:"internship_start_date,omitempty"`
	InternshipEndDate   *time.Time `json:"internshipEndDate,omitempty" bson:"internship_end_date,omitempty"`
	AssignedProject     string     `json:"assignedProject,omitempty" bson:"assigned_project,omitempty"`
	MentorName          string     `json:"mentorName,omitempty" bson:"mentor_name,omitempty"`
	LearningHours       float64    `json:"learningHours" bson:"learning_hours"`
	ProductiveHours     float64    `json:"productiveHours" bson:"productive_hours"`
	ConversionPotential string     `json:"conversionPotential,omitempty" bson:"conversion_potential,omitempty"`
	PerformanceFeedback string     `json:"performanceFeedback,omitempty" bson:"performance_feedback,omitempty"`

	MonthlyCost             float64  `json:"monthlyCost" bson:"monthly_cost"`
	BillingRate             float64  `json:"billingRate" bson:"billing_rate"`
	MonthlyRevenueGenerated float64  `json:"monthlyRevenueGenerated" bson:"monthly_revenue_generated"`
	UtilizationPercentage   *float64 `json:"utilizationPercentage" bson:"utilization_percentage"`
	ProductivityScore       *float64 `json:"productivityScore" bson:"productivity_score"`
	PerformanceRating       *float64 `json:"performanceRating" bson:"performance_rating"`

	LastWorkingDay *time.Time `json:"lastWorkingDay,omitempty" bson:"last_working_day,omitempty"`
}
