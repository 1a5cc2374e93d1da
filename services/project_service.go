package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/analytics"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
)

// ProjectService owns project CRUD plus the per-project detail joins:
// milestones, risks, kpis, sprints, team members and engineering metrics.
type ProjectService struct {
	ProjectsCollection    *mongo.Collection
	MilestonesCollection  *mongo.Collection
	RisksCollection       *mongo.Collection
	KPIsCollection        *mongo.Collection
	SprintsCollection     *mongo.Collection
	TeamMembersCollection *mongo.Collection
	FinanceCollection     *mongo.Collection
}

func NewProjectService(client *mongo.Client, dbName string) *ProjectService {
	db := client.Database(dbName)
	return &ProjectService{
		ProjectsCollection:    db.Collection("projects"),
		MilestonesCollection:  db.Collection("milestones"),
		RisksCollection:       db.Collection("risks"),
		KPIsCollection:        db.Collection("kpis"),
		SprintsCollection:     db.Collection("sprints"),
		TeamMembersCollection: db.Collection("team_members"),
		FinanceCollection:     db.Collection("finance"),
	}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	cursor, err := s.ProjectsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve projects: %v", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode project: %v", err)
		}
		projects = append(projects, analytics.NormalizeProject(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return projects, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var doc bson.M
	if err := s.ProjectsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	p := analytics.NormalizeProject(doc)
	return &p, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, raw bson.M) (*models.Project, error) {
	p := analytics.NormalizeProject(raw)
	if p.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	result, err := s.ProjectsCollection.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %v", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return &p, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Project, error) {
	var existing bson.M
	if err := s.ProjectsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing); err != nil {
		return nil, err
	}
	for k, v := range updates {
		if k == "_id" {
			continue
		}
		existing[k] = v
	}
	p := analytics.NormalizeProject(existing)
	p.ID = id

	result, err := s.ProjectsCollection.ReplaceOne(ctx, bson.M{"_id": id}, p)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.ProjectsCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project: %v", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// projectFilter joins a child collection on the typed project id. Matching
// on the project name is a deprecated compatibility path for records
// written before project_id existed.
func (s *ProjectService) projectFilter(ctx context.Context, id primitive.ObjectID) bson.M {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil || project.Name == "" {
		return bson.M{"project_id": id}
	}
	return bson.M{"$or": []bson.M{
		{"project_id": id},
		{"project_name": project.Name},
	}}
}

func (s *ProjectService) GetProjectMilestones(ctx context.Context, id primitive.ObjectID) ([]models.Milestone, error) {
	var milestones []models.Milestone
	if err := listInto(ctx, s.MilestonesCollection, s.projectFilter(ctx, id), &milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

func (s *ProjectService) GetProjectRisks(ctx context.Context, id primitive.ObjectID) ([]models.Risk, error) {
	var risks []models.Risk
	if err := listInto(ctx, s.RisksCollection, s.projectFilter(ctx, id), &risks); err != nil {
		return nil, err
	}
	return risks, nil
}

func (s *ProjectService) GetProjectKPIs(ctx context.Context, id primitive.ObjectID) ([]models.KPI, error) {
	var kpis []models.KPI
	if err := listInto(ctx, s.KPIsCollection, s.projectFilter(ctx, id), &kpis); err != nil {
		return nil, err
	}
	return kpis, nil
}

func (s *ProjectService) GetProjectSprints(ctx context.Context, id primitive.ObjectID) ([]models.Sprint, error) {
	var sprints []models.Sprint
	if err := listInto(ctx, s.SprintsCollection, s.projectFilter(ctx, id), &sprints); err != nil {
		return nil, err
	}
	return sprints, nil
}

// GetProjectTeamMembers prefers the team_members collection and falls back
// to the project's embedded teams sub-document.
func (s *ProjectService) GetProjectTeamMembers(ctx context.Context, id primitive.ObjectID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := listInto(ctx, s.TeamMembersCollection, s.projectFilter(ctx, id), &members); err != nil {
		return nil, err
	}
	if len(members) > 0 {
		return members, nil
	}
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return project.Teams, nil
}

func (s *ProjectService) GetProjectFinance(ctx context.Context, id primitive.ObjectID) ([]models.Finance, error) {
	var finance []models.Finance
	if err := listInto(ctx, s.FinanceCollection, s.projectFilter(ctx, id), &finance); err != nil {
		return nil, err
	}
	return finance, nil
}

// GetProjectEngineeringMetrics returns the parsed engineering-metrics
// sub-document, defaulting to empty sections when the project has none.
func (s *ProjectService) GetProjectEngineeringMetrics(ctx context.Context, id primitive.ObjectID) (*models.EngineeringMetrics, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.EngineeringMetrics == nil {
		return &models.EngineeringMetrics{
			Development: map[string]interface{}{},
			QA:          map[string]interface{}{},
		}, nil
	}
	metrics := *project.EngineeringMetrics
	if metrics.Development == nil {
		metrics.Development = map[string]interface{}{}
	}
	if metrics.QA == nil {
		metrics.QA = map[string]interface{}{}
	}
	return &metrics, nil
}

func listInto(ctx context.Context, collection *mongo.Collection, filter bson.M, results interface{}) error {
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to retrieve %s: %v", collection.Name(), err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("failed to decode %s: %v", collection.Name(), err)
	}
	return nil
}
