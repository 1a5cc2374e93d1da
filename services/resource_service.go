package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/analytics"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/logging"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
)

// ResourceService owns CRUD over the resources collection. Raw records are
// pushed through the normalizer on every read so legacy shapes never leak
// past this layer.
type ResourceService struct {
	ResourcesCollection *mongo.Collection
}

func NewResourceService(client *mongo.Client, dbName string) *ResourceService {
	return &ResourceService{
		ResourcesCollection: client.Database(dbName).Collection("resources"),
	}
}

// ResourceFilters are the query arguments supported by the list endpoint.
type ResourceFilters struct {
	Seniority string
	Billable  *bool
}

func (s *ResourceService) ListResources(ctx context.Context, filters ResourceFilters) ([]models.Resource, error) {
	cursor, err := s.ResourcesCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve resources: %v", err)
	}
	defer cursor.Close(ctx)

	var resources []models.Resource
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode resource: %v", err)
		}
		r := analytics.NormalizeResource(doc)
		if filters.Seniority != "" && !strings.EqualFold(r.SeniorityLevel, filters.Seniority) {
			continue
		}
		if filters.Billable != nil && r.BillableStatus != *filters.Billable {
			continue
		}
		resources = append(resources, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return resources, nil
}

func (s *ResourceService) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Resource, error) {
	var doc bson.M
	err := s.ResourcesCollection.FindOne(ctx, employeeIDFilter(employeeID)).Decode(&doc)
	if err != nil {
		return nil, err
	}
	r := analytics.NormalizeResource(doc)
	return &r, nil
}

// CreateResource normalizes the incoming record before persisting it, so
// legacy camelCase payloads are accepted but only the canonical shape is
// ever stored. A missing employee id is backfilled.
func (s *ResourceService) CreateResource(ctx context.Context, raw bson.M) (*models.Resource, error) {
	r := analytics.NormalizeResource(raw)
	if r.EmployeeID == "" {
		r.EmployeeID = uuid.New().String()
		logging.Logger.Warnf("Event ID: RESOURCE_EMPLOYEE_ID_GENERATED, Description: Created resource without employeeId, generated %s", r.EmployeeID)
	}

	count, err := s.ResourcesCollection.CountDocuments(ctx, bson.M{"employee_id": r.EmployeeID})
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing resource: %v", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("a resource with employeeId %s already exists", r.EmployeeID)
	}

	result, err := s.ResourcesCollection.InsertOne(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %v", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		r.ID = oid
	}
	return &r, nil
}

// UpdateResource overlays the incoming fields on the stored raw record and
// re-normalizes, so partial legacy-shaped updates converge on the
// canonical shape instead of reintroducing drift.
func (s *ResourceService) UpdateResource(ctx context.Context, employeeID string, updates bson.M) (*models.Resource, error) {
	var existing bson.M
	if err := s.ResourcesCollection.FindOne(ctx, employeeIDFilter(employeeID)).Decode(&existing); err != nil {
		return nil, err
	}
	for k, v := range updates {
		if k == "_id" {
			continue
		}
		existing[k] = v
	}
	r := analytics.NormalizeResource(existing)
	if r.EmployeeID == "" {
		r.EmployeeID = employeeID
	}

	result, err := s.ResourcesCollection.ReplaceOne(ctx, employeeIDFilter(employeeID), r)
	if err != nil {
		return nil, fmt.Errorf("failed to update resource: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &r, nil
}

func (s *ResourceService) DeleteResource(ctx context.Context, employeeID string) error {
	result, err := s.ResourcesCollection.DeleteOne(ctx, employeeIDFilter(employeeID))
	if err != nil {
		return fmt.Errorf("failed to delete resource: %v", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Resignations lists resources whose last working day falls within the
// next two months.
func (s *ResourceService) Resignations(ctx context.Context) ([]models.Resource, error) {
	resources, err := s.ListResources(ctx, ResourceFilters{})
	if err != nil {
		return nil, err
	}
	today := time.Now().Truncate(24 * time.Hour)
	horizon := today.AddDate(0, 0, 60)

	var resignations []models.Resource
	for _, r := range resources {
		if r.LastWorkingDay == nil {
			continue
		}
		if !r.LastWorkingDay.Before(today) && !r.LastWorkingDay.After(horizon) {
			resignations = append(resignations, r)
		}
	}
	return resignations, nil
}

// employeeIDFilter matches both the canonical and the legacy key for the
// employee id.
func employeeIDFilter(employeeID string) bson.M {
	return bson.M{"$or": []bson.M{
		{"employee_id": employeeID},
		{"employeeId": employeeID},
	}}
}
