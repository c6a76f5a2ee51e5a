package repositories

import (
	"context"
	"errors"
	"fmt"

	"projectflow/backend/logging"
	"projectflow/backend/projects-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProjectRepository struct {
	collection *mongo.Collection
}

func NewMongoProjectRepository(collection *mongo.Collection) *MongoProjectRepository {
	return &MongoProjectRepository{collection: collection}
}

func (r *MongoProjectRepository) SeedIfEmpty(ctx context.Context, seed []models.Project) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(seed))
	for _, p := range seed {
		docs = append(docs, p)
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed projects: %w", err)
	}
	logging.Logger.Infof("Event ID: DB_SEEDED, Description: Seeded %d projects", len(docs))
	return nil
}

func (r *MongoProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

func (r *MongoProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project %s: %w", id, err)
	}
	return &project, nil
}

func (r *MongoProjectRepository) Create(ctx context.Context, project models.Project) (*models.Project, error) {
	project.ID = primitive.NewObjectID().Hex()
	if _, err := r.collection.InsertOne(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}
