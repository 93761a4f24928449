package repository

import (
	"context"

	"dancenavi/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepo interface {
	// ListActive returns the tenant's active result rows in evaluation
	// precedence: priority DESC, then sortOrder ASC.
	ListActive(ctx context.Context, schoolID string) ([]*model.Result, error)
	Create(ctx context.Context, result *model.Result) error
}

type resultRepo struct {
	collection *mongo.Collection
}

func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("results"),
	}
}

func (r *resultRepo) ListActive(ctx context.Context, schoolID string) ([]*model.Result, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "priority", Value: -1},
		{Key: "sortOrder", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, bson.M{
		"schoolId": schoolID,
		"isActive": true,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.Result
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepo) Create(ctx context.Context, result *model.Result) error {
	if result.ID == "" {
		result.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, result)
	return err
}
