package analytics

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/logging"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
)

// The normalizer is the single boundary where older record shapes are
// folded into the canonical models: camelCase key drift, comma-joined
// skill strings, string-encoded dates, JSON-encoded sub-documents. It is a
// pure transform and never fails a request; a field that cannot be
// normalized degrades to its zero/nil value and is logged.

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts native date values, Mongo datetimes and ISO strings.
// Anything unparsable yields nil, never an error.
func ParseDate(v interface{}) *time.Time {
	switch d := v.(type) {
	case nil:
		return nil
	case time.Time:
		return &d
	case *time.Time:
		return d
	case primitive.DateTime:
		t := d.Time()
		return &t
	case string:
		if d == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return &t
			}
		}
		logging.Logger.Warnf("Event ID: NORMALIZE_DATE_FAILED, Description: Unparsable date value %q, treating as null", d)
		return nil
	default:
		return nil
	}
}

// SplitList turns a multi-valued string field into a clean list: split on
// comma, trim, drop empties. Array-shaped values pass through element-wise.
func SplitList(v interface{}) []string {
	var parts []string
	switch s := v.(type) {
	case nil:
		return nil
	case string:
		parts = strings.Split(s, ",")
	case []string:
		parts = s
	case primitive.A:
		for _, e := range s {
			parts = append(parts, asString(e))
		}
	case []interface{}:
		for _, e := range s {
			parts = append(parts, asString(e))
		}
	default:
		return nil
	}
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseSubDocument resolves a JSON-shaped field into a map. A structured
// sub-document passes through; a string is parsed as JSON; invalid JSON
// falls back to the raw string so nothing is lost.
func ParseSubDocument(v interface{}) (doc map[string]interface{}, raw string) {
	switch d := v.(type) {
	case nil:
		return nil, ""
	case bson.M:
		return d, ""
	case map[string]interface{}:
		return d, ""
	case bson.D:
		return d.Map(), ""
	case string:
		if d == "" {
			return nil, ""
		}
		var parsed map[string]interface{}
		if err := json.Unmarshal([]byte(d), &parsed); err != nil {
			logging.Logger.Warnf("Event ID: NORMALIZE_JSON_FAILED, Description: Invalid JSON sub-document, keeping raw string: %v", err)
			return nil, d
		}
		return parsed, ""
	default:
		return nil, ""
	}
}

// field returns the first alias present in the raw record. Alias tables
// keep schema drift out of every consumer: only the normalizer knows that
// monthly_cost was also written as monthlySalaryCost.
func field(doc bson.M, aliases ...string) interface{} {
	for _, a := range aliases {
		if v, ok := doc[a]; ok && v != nil {
			return v
		}
	}
	return nil
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int32:
		return strconv.Itoa(int(s))
	case int64:
		return strconv.FormatInt(s, 10)
	case primitive.ObjectID:
		return s.Hex()
	default:
		return ""
	}
}

func asFloat(v interface{}) *float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			logging.Logger.Warnf("Event ID: NORMALIZE_NUMBER_FAILED, Description: Unparsable numeric value %q, treating as null", n)
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

func asFloatOrZero(v interface{}) float64 {
	if f := asFloat(v); f != nil {
		return *f
	}
	return 0
}

func asInt(v interface{}) *int {
	f := asFloat(v)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

func asBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true") || b == "1"
	case float64:
		return b != 0
	case int32:
		return b != 0
	case int64:
		return b != 0
	default:
		return false
	}
}

func asObjectID(v interface{}) *primitive.ObjectID {
	switch id := v.(type) {
	case primitive.ObjectID:
		return &id
	case string:
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil
		}
		return &oid
	default:
		return nil
	}
}

// NormalizeResource converts a raw resource record into the canonical
// shape.
func NormalizeResource(doc bson.M) models.Resource {
	r := models.Resource{
		EmployeeID:       asString(field(doc, "employee_id", "employeeId", "resource_id", "resourceId")),
		FullName:         asString(field(doc, "full_name", "fullName", "name")),
		Email:            asString(field(doc, "email")),
		Phone:            asString(field(doc, "phone")),
		Designation:      asString(field(doc, "designation")),
		Department:       asString(field(doc, "department")),
		SeniorityLevel:   asString(field(doc, "seniority_level", "seniorityLevel", "experience_bucket")),
		Experience:       asFloat(field(doc, "experience")),
		Location:         asString(field(doc, "location")),
		JoiningDate:      ParseDate(field(doc, "joining_date", "joiningDate")),
		EmploymentType:   asString(field(doc, "employment_type", "employmentType")),
		ReportingManager: asString(field(doc, "reporting_manager", "reportingManager")),
		Status:           asString(field(doc, "status")),

		Skills: SplitList(field(doc, "skills", "primary_skills", "primarySkills")),

		BillableStatus:    asBool(field(doc, "billable_status", "billableStatus")),
		CurrentEngagement: asString(field(doc, "current_engagement", "currentEngagement")),
		ProjectID:         asObjectID(field(doc, "project_id", "projectId")),
		ProjectName:       asString(field(doc, "project_name", "projectName")),
		Client:            asString(field(doc, "client")),
		ReleaseDate:       ParseDate(field(doc, "release_date", "releaseDate")),

		CurrentBenchStatus:      asBool(field(doc, "current_bench_status", "currentBenchStatus")),
		BenchDays:               asInt(field(doc, "bench_days", "benchDays", "aging_in_non_billable", "agingInNonBillable")),
		BenchReason:             asString(field(doc, "bench_reason", "benchReason", "reason")),
		BenchStartDate:          ParseDate(field(doc, "bench_start_date", "benchStartDate")),
		ReallocationOpportunity: asBool(field(doc, "reallocation_opportunity", "reallocationOpportunity")),
		Suggestion:              asString(field(doc, "suggestion")),

		IsIntern:            asBool(field(doc, "is_intern", "isIntern")),
		InternshipStartDate: ParseDate(field(doc, "internship_start_date", "internshipStartDate")),
		InternshipEndDate:   ParseDate(field(doc, "internship_end_date", "internshipEndDate")),
		AssignedProject:     asString(field(doc, "assigned_project", "assignedProject")),
		MentorName:          asString(field(doc, "mentor_name", "mentorName")),
		LearningHours:       asFloatOrZero(field(doc, "learning_hours", "learningHours")),
		ProductiveHours:     asFloatOrZero(field(doc, "productive_hours", "productiveHours")),
		ConversionPotential: asString(field(doc, "conversion_potential", "conversionPotential")),
		PerformanceFeedback: asString(field(doc, "performance_feedback", "performanceFeedback")),

		MonthlyCost:             asFloatOrZero(field(doc, "monthly_cost", "monthlyCost", "monthly_salary_cost", "monthlySalaryCost")),
		BillingRate:             asFloatOrZero(field(doc, "billing_rate", "billingRate")),
		MonthlyRevenueGenerated: asFloatOrZero(field(doc, "monthly_revenue_generated", "monthlyRevenueGenerated")),
		UtilizationPercentage:   asFloat(field(doc, "utilization_percentage", "utilization_rate", "utilizationRate")),
		ProductivityScore:       asFloat(field(doc, "productivity_score", "productivityScore")),
		PerformanceRating:       asFloat(field(doc, "performance_rating", "performanceRating")),

		LastWorkingDay: ParseDate(field(doc, "last_working_day", "lastWorkingDay")),
	}
	if id, ok := doc["_id"].(primitive.ObjectID); ok {
		r.ID = id
	}
	return r
}

// NormalizeProject converts a raw project record into the canonical shape,
// resolving the JSON-shaped teams and engineering-metrics sub-documents.
func NormalizeProject(doc bson.M) models.Project {
	p := models.Project{
		Name:             asString(field(doc, "name")),
		Description:      asString(field(doc, "description")),
		Customer:         asString(field(doc, "customer", "client")),
		Status:           asString(field(doc, "status")),
		Priority:         asString(field(doc, "priority")),
		HealthStatus:     asString(field(doc, "health_status", "healthStatus")),
		Progress:         asFloat(field(doc, "progress")),
		TeamSize:         asInt(field(doc, "team_size", "teamSize")),
		OnTimePercentage: asFloat(field(doc, "on_time_percentage", "onTimePercentage")),
		StartDate:        ParseDate(field(doc, "start_date", "startDate")),
		EndDate:          ParseDate(field(doc, "end_date", "endDate")),
		Budget:           asFloatOrZero(field(doc, "budget")),
		ProfitMargin:     asFloat(field(doc, "profit_margin", "profitMargin")),
		UtilizationRate:  asFloat(field(doc, "utilization_rate", "utilizationRate")),
		RequiredSkills:   SplitList(field(doc, "required_skills", "requiredSkills")),
	}
	if id, ok := doc["_id"].(primitive.ObjectID); ok {
		p.ID = id
	}
	p.Teams = normalizeTeams(field(doc, "teams"))
	if v := field(doc, "engineering_metrics", "engineeringMetrics"); v != nil {
		parsed, raw := ParseSubDocument(v)
		em := &models.EngineeringMetrics{Raw: raw}
		if parsed != nil {
			if dev, _ := ParseSubDocument(parsed["development"]); dev != nil {
				em.Development = dev
			}
			if qa, _ := ParseSubDocument(parsed["qa"]); qa != nil {
				em.QA = qa
			}
		}
		p.EngineeringMetrics = em
	}
	return p
}

func normalizeTeams(v interface{}) []models.TeamMember {
	var rawMembers []interface{}
	switch t := v.(type) {
	case nil:
		return nil
	case primitive.A:
		rawMembers = t
	case []interface{}:
		rawMembers = t
	case string:
		if t == "" {
			return nil
		}
		var parsed []map[string]interface{}
		if err := json.Unmarshal([]byte(t), &parsed); err != nil {
			logging.Logger.Warnf("Event ID: NORMALIZE_TEAMS_FAILED, Description: Invalid teams JSON, treating as empty: %v", err)
			return nil
		}
		for _, m := range parsed {
			rawMembers = append(rawMembers, m)
		}
	default:
		return nil
	}

	var members []models.TeamMember
	for _, rm := range rawMembers {
		var m bson.M
		switch d := rm.(type) {
		case bson.M:
			m = d
		case map[string]interface{}:
			m = d
		case bson.D:
			m = d.Map()
		default:
			continue
		}
		members = append(members, models.TeamMember{
			Name:       asString(field(m, "name", "full_name", "fullName")),
			Role:       asString(field(m, "role", "designation")),
			Department: asString(field(m, "department")),
			Location:   asString(field(m, "location")),
			ProjectID:  asObjectID(field(m, "project_id", "projectId")),
		})
	}
	return members
}
