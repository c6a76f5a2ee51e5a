package repositories

import (
	"context"
	"fmt"

	"projectflow/backend/analytics-service/models"
	"projectflow/backend/logging"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	timelineTasksCollection    = "timeline_tasks"
	timelineProjectsCollection = "timeline_projects"
	teamMembersCollection      = "team_members"
)

type MongoTimelineRepository struct {
	db *mongo.Database
}

func NewMongoTimelineRepository(db *mongo.Database) *MongoTimelineRepository {
	return &MongoTimelineRepository{db: db}
}

// SeedIfEmpty fills each empty collection with the mock data.
func (r *MongoTimelineRepository) SeedIfEmpty(ctx context.Context) error {
	seeds := map[string][]interface{}{
		timelineTasksCollection:    toDocs(SeedTimelineTasks()),
		timelineProjectsCollection: toDocs(SeedTimelineProjects()),
		teamMembersCollection:      toDocs(SeedTeamMembers()),
	}
	for name, docs := range seeds {
		collection := r.db.Collection(name)
		count, err := collection.CountDocuments(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", name, err)
		}
		if count > 0 {
			continue
		}
		if _, err := collection.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
		logging.Logger.Infof("Event ID: DB_SEEDED, Description: Seeded %d documents into %s", len(docs), name)
	}
	return nil
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}
	return docs
}

func findAll[T any](ctx context.Context, collection *mongo.Collection) ([]T, error) {
	cursor, err := collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection.Name(), err)
	}
	return items, nil
}

func (r *MongoTimelineRepository) GetTasks(ctx context.Context) ([]models.TimelineTask, error) {
	return findAll[models.TimelineTask](ctx, r.db.Collection(timelineTasksCollection))
}

func (r *MongoTimelineRepository) GetProjects(ctx context.Context) ([]models.TimelineProject, error) {
	return findAll[models.TimelineProject](ctx, r.db.Collection(timelineProjectsCollection))
}

func (r *MongoTimelineRepository) GetTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	return findAll[models.TeamMember](ctx, r.db.Collection(teamMembersCollection))
}
