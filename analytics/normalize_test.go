package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseDateVariants(t *testing.T) {
	native := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, ParseDate(nil))
	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("not a date"))
	assert.Nil(t, ParseDate(42))

	got := ParseDate(native)
	require.NotNil(t, got)
	assert.Equal(t, native, *got)

	got = ParseDate("2025-02-01")
	require.NotNil(t, got)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.February, got.Month())

	got = ParseDate(primitive.NewDateTimeFromTime(native))
	require.NotNil(t, got)
	assert.True(t, got.Equal(native))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Go", "React", "SQL"}, SplitList("Go, React , SQL"))
	assert.Equal(t, []string{"Go"}, SplitList("Go,,  ,"))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(nil))
	assert.Equal(t, []string{"a", "b"}, SplitList(primitive.A{"a", " b "}))
}

func TestParseSubDocumentFallback(t *testing.T) {
	doc, raw := ParseSubDocument(`{"velocity": 32}`)
	require.NotNil(t, doc)
	assert.Equal(t, float64(32), doc["velocity"])
	assert.Empty(t, raw)

	doc, raw = ParseSubDocument("{broken json")
	assert.Nil(t, doc)
	assert.Equal(t, "{broken json", raw)

	doc, _ = ParseSubDocument(bson.M{"qa": 1})
	require.NotNil(t, doc)
}

func TestNormalizeResourceAliasDrift(t *testing.T) {
	// Legacy camelCase record with comma-joined skills and a string date.
	doc := bson.M{
		"employeeId":         "EMP-017",
		"fullName":           "Dana Petrov",
		"designation":        "Developer",
		"experience":         int32(4),
		"joiningDate":        "2024-11-05",
		"skills":             "Go,React, SQL",
		"billableStatus":     true,
		"monthlySalaryCost":  9000,
		"utilization_rate":   85.5,
		"agingInNonBillable": int64(12),
	}
	r := NormalizeResource(doc)

	assert.Equal(t, "EMP-017", r.EmployeeID)
	assert.Equal(t, "Dana Petrov", r.FullName)
	require.NotNil(t, r.Experience)
	assert.Equal(t, float64(4), *r.Experience)
	require.NotNil(t, r.JoiningDate)
	assert.Equal(t, time.November, r.JoiningDate.Month())
	assert.Equal(t, []string{"Go", "React", "SQL"}, r.Skills)
	assert.True(t, r.BillableStatus)
	assert.Equal(t, float64(9000), r.MonthlyCost)
	require.NotNil(t, r.UtilizationPercentage)
	assert.Equal(t, 85.5, *r.UtilizationPercentage)
	require.NotNil(t, r.BenchDays)
	assert.Equal(t, 12, *r.BenchDays)
}

func TestNormalizeResourceDegradesNeverPanics(t *testing.T) {
	doc := bson.M{
		"employee_id":  "EMP-001",
		"experience":   "lots",
		"joining_date": "yesterday-ish",
		"skills":       int32(7),
	}
	r := NormalizeResource(doc)
	assert.Equal(t, "EMP-001", r.EmployeeID)
	assert.Nil(t, r.Experience)
	assert.Nil(t, r.JoiningDate)
	assert.Nil(t, r.Skills)
}

func TestNormalizeProjectSubDocuments(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{
		"_id":                 oid,
		"name":                "Atlas Migration",
		"healthStatus":        "Amber",
		"team_size":           int32(8),
		"required_skills":     "Go, Terraform",
		"teams":               `[{"name":"Priya N","role":"Tech Lead"}]`,
		"engineering_metrics": `{"development":{"velocity":30},"qa":{"defectDensity":0.4}}`,
	}
	p := NormalizeProject(doc)

	assert.Equal(t, oid, p.ID)
	assert.Equal(t, "Amber", p.HealthStatus)
	require.NotNil(t, p.TeamSize)
	assert.Equal(t, 8, *p.TeamSize)
	assert.Equal(t, []string{"Go", "Terraform"}, p.RequiredSkills)

	require.Len(t, p.Teams, 1)
	assert.Equal(t, "Priya N", p.Teams[0].Name)
	assert.Equal(t, "Tech Lead", p.Teams[0].Role)

	require.NotNil(t, p.EngineeringMetrics)
	assert.Equal(t, float64(30), p.EngineeringMetrics.Development["velocity"])
	assert.Equal(t, 0.4, p.EngineeringMetrics.QA["defectDensity"])
}

func TestNormalizeProjectInvalidMetricsKeepsRaw(t *testing.T) {
	doc := bson.M{
		"name":                "Legacy",
		"engineering_metrics": "{not json",
	}
	p := NormalizeProject(doc)
	require.NotNil(t, p.EngineeringMetrics)
	assert.Equal(t, "{not json", p.EngineeringMetrics.Raw)
	assert.Nil(t, p.EngineeringMetrics.Development)
}
