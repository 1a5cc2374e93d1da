package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project health statuses as stored. The dashboard treats Green as on
// track and Amber/Red as at risk.
const (
	HealthGreen = "Green"
	HealthAmber = "Amber"
	HealthRed   = "Red"
)

type Project struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Customer         string             `json:"customer,omitempty" bson:"customer,omitempty"`
	Status           string             `json:"status" bson:"status"`
	Priority         string             `json:"priority,omitempty" bson:"priority,omitempty"`
	HealthStatus     string             `json:"healthStatus" bson:"health_status"`
	Progress         *float64           `json:"progress" bson:"progress"`
	TeamSize         *int               `json:"teamSize" bson:"team_size"`
	OnTimePercentage *float64           `json:"onTimePercentage" bson:"on_time_percentage"`
	StartDate        *time.Time         `json:"startDate,omitempty" bson:"start_date,omitempty"`
	EndDate          *time.Time         `json:"endDate,omitempty" bson:"end_date,omitempty"`
	Budget           float64            `json:"budget" bson:"budget"`
	ProfitMargin     *float64           `json:"profitMargin,omitempty" bson:"profit_margin,omitempty"`
	UtilizationRate  *float64           `json:"utilizationRate,omitempty" bson:"utilization_rate,omitempty"`
	RequiredSkills   []string           `json:"requiredSkills,omitempty" bson:"required_skills,omitempty"`

	// Teams and EngineeringMetrics are stored either as structured
	// sub-documents or, in older records, as JSON-encoded strings. The
	// normalizer resolves both shapes into the typed fields.
	Teams              []TeamMember        `json:"teams,omitempty" bson:"teams,omitempty"`
	EngineeringMetrics *EngineeringMetrics `json:"engineeringMetrics,omitempty" bson:"engineering_metrics,omitempty"`
}

// EngineeringMetrics is the structured form of the project's
// engineering-metrics sub-document.
type EngineeringMetrics struct {
	Development map[string]interface{} `json:"development" bson:"development"`
	QA          map[string]interface{} `json:"qa" bson:"qa"`
	// Raw keeps the original string when the stored value was not valid
	// JSON, so nothing is lost on write-back.
	Raw string `json:"raw,omitempty" bson:"raw,omitempty"`
}

type TeamMember struct {
	ID         primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string              `json:"name" bson:"name"`
	Role       string              `json:"role" bson:"role"`
	Department string              `json:"department,omitempty" bson:"department,omitempty"`
	Location   string              `json:"location,omitempty" bson:"location,omitempty"`
	ProjectID  *primitive.ObjectID `json:"projectId,omitempty" bson:"project_id,omitempty"`
}
