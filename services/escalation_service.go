package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
)

type EscalationService struct {
	EscalationsCollection *mongo.Collection
}

func NewEscalationService(client *mongo.Client, dbName string) *EscalationService {
	return &EscalationService{
		EscalationsCollection: client.Database(dbName).Collection("escalations"),
	}
}

func (s *EscalationService) ListEscalations(ctx context.Context) ([]models.Escalation, error) {
	var escalations []models.Escalation
	if err := listInto(ctx, s.EscalationsCollection, bson.M{}, &escalations); err != nil {
		return nil, err
	}
	return escalations, nil
}

func (s *EscalationService) CreateEscalation(ctx context.Context, escalation models.Escalation) (*models.Escalation, error) {
	if escalation.Status == "" {
		escalation.Status = models.EscalationOpen
	}
	result, err := s.EscalationsCollection.InsertOne(ctx, escalation)
	if err != nil {
		return nil, fmt.Errorf("failed to create escalation: %v", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		escalation.ID = oid
	}
	return &escalation, nil
}

func (s *EscalationService) UpdateEscalation(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Escalation, error) {
	delete(updates, "_id")
	result, err := s.EscalationsCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return nil, fmt.Errorf("failed to update escalation: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	var escalation models.Escalation
	if err := s.EscalationsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&escalation); err != nil {
		return nil, fmt.Errorf("failed to retrieve updated escalation: %v", err)
	}
	return &escalation, nil
}

func (s *EscalationService) DeleteEscalation(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.EscalationsCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete escalation: %v", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
