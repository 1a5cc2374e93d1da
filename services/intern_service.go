package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
)

type InternService struct {
	InternsCollection *mongo.Collection
}

func NewInternService(client *mongo.Client, dbName string) *InternService {
	return &InternService{
		InternsCollection: client.Database(dbName).Collection("interns"),
	}
}

func (s *InternService) ListInterns(ctx context.Context) ([]models.Intern, error) {
	var interns []models.Intern
	if err := listInto(ctx, s.InternsCollection, bson.M{}, &interns); err != nil {
		return nil, err
	}
	return interns, nil
}

func (s *InternService) CreateIntern(ctx context.Context, intern models.Intern) (*models.Intern, error) {
	if intern.Name == "" {
		return nil, fmt.Errorf("intern name is required")
	}
	result, err := s.InternsCollection.InsertOne(ctx, intern)
	if err != nil {
		return nil, fmt.Errorf("failed to create intern: %v", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		intern.ID = oid
	}
	return &intern, nil
}

func (s *InternService) DeleteIntern(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.InternsCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete intern: %v", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
