package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStoreUnavailable marks a failure of the record store itself. Unlike
// per-metric failures it is fatal to the request: no partial dashboard is
// served from an unreachable store.
var ErrStoreUnavailable = errors.New("record store unavailable")

// Store is the read side of the record store: list and get over entity
// collections. The aggregation engine only ever reads through it.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// ListRaw returns every document matching the filter as a raw record, in
// the store's natural order. Raw records go through the analytics
// normalizer before anything else touches them.
func (s *Store) ListRaw(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s record: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error on %s: %w", collection, err)
	}
	return docs, nil
}

// ListInto decodes every matching document of a canonical collection
// directly into results, which must be a pointer to a slice.
func (s *Store) ListInto(ctx context.Context, collection string, filter bson.M, results interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", collection, err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("failed to decode %s records: %w", collection, err)
	}
	return nil
}

// Get fetches a single record by id; mongo.ErrNoDocuments passes through
// so callers can map it to a 404.
func (s *Store) Get(ctx context.Context, collection string, id primitive.ObjectID, result interface{}) error {
	return s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(result)
}
