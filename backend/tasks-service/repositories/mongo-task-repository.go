package repositories

import (
	"context"
	"errors"
	"fmt"

	"projectflow/backend/logging"
	"projectflow/backend/tasks-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTaskRepository struct {
	collection *mongo.Collection
}

func NewMongoTaskRepository(collection *mongo.Collection) *MongoTaskRepository {
	return &MongoTaskRepository{collection: collection}
}

// SeedIfEmpty loads the mock tasks into an empty collection.
func (r *MongoTaskRepository) SeedIfEmpty(ctx context.Context, seed []models.Task) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(seed))
	for _, t := range seed {
		docs = append(docs, t)
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}
	logging.Logger.Infof("Event ID: DB_SEEDED, Description: Seeded %d tasks", len(docs))
	return nil
}

func (r *MongoTaskRepository) GetAll(ctx context.Context) ([]models.Task, error) {
	// natural order keeps the seed order
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	for cursor.Next(ctx) {
		var task models.Task
		if err := cursor.Decode(&task); err != nil {
			return nil, fmt.Errorf("failed to decode task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return tasks, nil
}

func (r *MongoTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve task %s: %w", id, err)
	}
	return &task, nil
}

func (r *MongoTaskRepository) Create(ctx context.Context, task models.Task) (*models.Task, error) {
	task.ID = primitive.NewObjectID().Hex()
	if _, err := r.collection.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}
