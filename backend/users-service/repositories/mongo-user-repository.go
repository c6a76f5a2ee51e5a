package repositories

import (
	"context"
	"errors"
	"fmt"

	"projectflow/backend/users-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository also makes sure emails are unique at the database level.
func NewMongoUserRepository(ctx context.Context, collection *mongo.Collection) (*MongoUserRepository, error) {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create email index: %w", err)
	}
	return &MongoUserRepository{collection: collection}, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID().Hex()
	user.Email = normalizeEmail(user.Email)
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, nil
}
