package repository

import (
	"context"

	"dancenavi/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CampusRepo interface {
	// FindBySlug returns the active campus with the given slug for the
	// tenant, or nil when none exists.
	FindBySlug(ctx context.Context, schoolID, slug string) (*model.Campus, error)
	Create(ctx context.Context, campus *model.Campus) error
}

type campusRepo struct {
	collection *mongo.Collection
}

func NewCampusRepo(db *mongo.Database) CampusRepo {
	return &campusRepo{
		collection: db.Collection("campuses"),
	}
}

func (r *campusRepo) FindBySlug(ctx context.Context, schoolID, slug string) (*model.Campus, error) {
	var campus model.Campus
	err := r.collection.FindOne(ctx, bson.M{
		"schoolId": schoolID,
		"slug":     slug,
		"isActive": true,
	}).Decode(&campus)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &campus, nil
}

func (r *campusRepo) Create(ctx context.Context, campus *model.Campus) error {
	if campus.ID == "" {
		campus.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, campus)
	return err
}
