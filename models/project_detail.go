package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Milestone struct {
	ID        primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string              `json:"name" bson:"name"`
	Progress  *float64            `json:"progress" bson:"progress"`
	Status    string              `json:"status" bson:"status"`
	Date      *time.Time          `json:"date" bson:"date"`
	ProjectID *primitive.ObjectID `json:"projectId,omitempty" bson:"project_id,omitempty"`
}

type Risk struct {
	ID        primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Issue     string              `json:"issue" bson:"issue"`
	Owner     string              `json:"owner" bson:"owner"`
	Priority  string              `json:"priority" bson:"priority"`
	Status    string              `json:"status" bson:"status"`
	ProjectID *primitive.ObjectID `json:"projectId,omitempty" bson:"project_id,omitempty"`
}

type KPI struct {
	ID         primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string              `json:"name,omitempty" bson:"name,omitempty"`
	Title      string              `json:"title" bson:"title"`
	Value      *float64            `json:"value" bson:"value"`
	Subtitle   string              `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Trend      string              `json:"trend,omitempty" bson:"trend,omitempty"`
	Icon       string              `json:"icon,omitempty" bson:"icon,omitempty"`
	EntityType string              `json:"entityType,omitempty" bson:"entity_type,omitempty"`
	ProjectID  *primitive.ObjectID `json:"projectId,omitempty" bson:"project_id,omitempty"`
}

type Sprint struct {
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	SprintNumber   int                 `json:"sprintNumber" bson:"sprint_number"`
	Velocity       *float64            `json:"velocity" bson:"velocity"`
	Predictability *float64            `json:"predictability" bson:"predictability"`
	DefectLeakage  *float64            `json:"defectLeakage" bson:"defect_leakage"`
	OnTimeDelivery *float64            `json:"onTimeDelivery" bson:"on_time_delivery"`
	ProjectID      *primitive.ObjectID `json:"projectId,omitempty" bson:"project_id,omitempty"`
}

type Finance struct {
	ID                   primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	ProjectID            *primitive.ObjectID `json:"projectId,omitempty" bson:"project_id,omitempty"`
	SOWValue             float64             `json:"sowValue" bson:"sow_value"`
	BillingRate          float64             `json:"billingRate" bson:"billing_rate"`
	ActualCostToDate     float64             `json:"actualCostToDate" bson:"actual_cost_to_date"`
	BillableResources    int                 `json:"billableResources" bson:"billable_resources"`
	NonBillableResources int                 `json:"nonBillableResources" bson:"non_billable_resources"`
	ShadowResources      int                 `json:"shadowResources" bson:"shadow_resources"`
	MonthlyBurn          float64             `json:"monthlyBurn" bson:"monthly_burn"`
	ProjectedCompletion  string              `json:"projectedCompletion,omitempty" bson:"projected_completion,omitempty"`
	NetPosition          float64             `json:"netPosition" bson:"net_position"`
	HealthStatus         string              `json:"healthStatus,omitempty" bson:"health_status,omitempty"`
	ProfitMargin         *float64            `json:"profitMargin,omitempty" bson:"profit_margin,omitempty"`
	UtilizationRate      *float64            `json:"utilizationRate,omitempty" bson:"utilization_rate,omitempty"`
	BillableCost         float64             `json:"billableCost" bson:"billable_cost"`
	NonBillableCost      float64             `json:"nonBillableCost" bson:"non_billable_cost"`
	ShadowCost           float64             `json:"shadowCost" bson:"shadow_cost"`
}

type Intern struct {
	ID                  primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name                string              `json:"name" bson:"name"`
	Duration            string              `json:"duration,omitempty" bson:"duration,omitempty"`
	Department          string              `json:"department,omitempty" bson:"department,omitempty"`
	Mentor              string              `json:"mentor,omitempty" bson:"mentor,omitempty"`
	ConversionStatus    string              `json:"conversionStatus,omitempty" bson:"conversion_status,omitempty"`
	Status              string              `json:"status,omitempty" bson:"status,omitempty"`
	Feedback            string              `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Education           string              `json:"education,omitempty" bson:"education,omitempty"`
	Stipend             float64             `json:"stipend" bson:"stipend"`
	ConversionPotential string              `json:"conversionPotential,omitempty" bson:"conversion_potential,omitempty"`
	ProjectID           *primitive.ObjectID `json:"projectId,omitempty" bson:"project_id,omitempty"`
}
