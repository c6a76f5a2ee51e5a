package repositories

import (
	"context"
	"fmt"

	"projectflow/backend/logging"
	"projectflow/backend/logistics-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoLogisticsRepository struct {
	routes    *mongo.Collection
	resources *mongo.Collection
}

func NewMongoLogisticsRepository(db *mongo.Database) *MongoLogisticsRepository {
	return &MongoLogisticsRepository{
		routes:    db.Collection("routes"),
		resources: db.Collection("resources"),
	}
}

func (r *MongoLogisticsRepository) SeedIfEmpty(ctx context.Context) error {
	if err := seedCollection(ctx, r.routes, SeedRoutes()); err != nil {
		return err
	}
	return seedCollection(ctx, r.resources, SeedResources())
}

func seedCollection[T any](ctx context.Context, collection *mongo.Collection, seed []T) error {
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", collection.Name(), err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(seed))
	for _, item := range seed {
		docs = append(docs, item)
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed %s: %w", collection.Name(), err)
	}
	logging.Logger.Infof("Event ID: DB_SEEDED, Description: Seeded %d documents into %s", len(docs), collection.Name())
	return nil
}

func (r *MongoLogisticsRepository) GetRoutes(ctx context.Context) ([]models.Route, error) {
	routes := []models.Route{}
	if err := findSorted(ctx, r.routes, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *MongoLogisticsRepository) GetResources(ctx context.Context) ([]models.Resource, error) {
	resources := []models.Resource{}
	if err := findSorted(ctx, r.resources, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func findSorted(ctx context.Context, collection *mongo.Collection, out interface{}) error {
	cursor, err := collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", collection.Name(), err)
	}
	return nil
}
