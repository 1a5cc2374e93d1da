package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EscalationStatus string

const (
	EscalationOpen       EscalationStatus = "Open"
	EscalationInProgress EscalationStatus = "In Progress"
	EscalationResolved   EscalationStatus = "Resolved"
	EscalationClosed     EscalationStatus = "Closed"
)

type Escalation struct {
	ID               primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title            string              `json:"title" bson:"title"`
	Issue            string              `json:"issue" bson:"issue"`
	Description      string              `json:"description,omitempty" bson:"description,omitempty"`
	Customer         string              `json:"customer,omitempty" bson:"customer,omitempty"`
	Owner            string              `json:"owner" bson:"owner"`
	Priority         string              `json:"priority" bson:"priority"`
	Severity         string              `json:"severity,omitempty" bson:"severity,omitempty"`
	Status           EscalationStatus    `json:"status" bson:"status"`
	ProjectID        *primitive.ObjectID `json:"projectId,omitempty" bson:"project_id,omitempty"`
	DateRaised       *time.Time          `json:"dateRaised,omitempty" bson:"date_raised,omitempty"`
	ResolutionETA    *time.Time          `json:"resolutionEta,omitempty" bson:"resolution_eta,omitempty"`
	ResolutionDate   *time.Time          `json:"resolutionDate,omitempty" bson:"resolution_date,omitempty"`
	ResolutionStatus string              `json:"resolutionStatus,omitempty" bson:"resolution_status,omitempty"`
	RiskLevel        string              `json:"riskLevel,omitempty" bson:"risk_level,omitempty"`
	ActionsTaken     string              `json:"actionsTaken,omitempty" bson:"actions_taken,omitempty"`
	FollowUp         string              `json:"followUp,omitempty" bson:"follow_up,omitempty"`
}

// IsOpen reports whether the escalation still counts toward the
// open-escalations KPI card.
func (e *Escalation) IsOpen() bool {
	return e.Status != EscalationResolved && e.Status != EscalationClosed
}
