package repository

import (
	"context"

	"dancenavi/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type GenreRepo interface {
	// FindBySlug returns the active genre with the given slug for the
	// tenant, or nil when none exists.
	FindBySlug(ctx context.Context, schoolID, slug string) (*model.Genre, error)
	Create(ctx context.Context, genre *model.Genre) error
}

type genreRepo struct {
	collection *mongo.Collection
}

func NewGenreRepo(db *mongo.Database) GenreRepo {
	return &genreRepo{
		collection: db.Collection("genres"),
	}
}

func (r *genreRepo) FindBySlug(ctx context.Context, schoolID, slug string) (*model.Genre, error) {
	var genre model.Genre
	err := r.collection.FindOne(ctx, bson.M{
		"schoolId": schoolID,
		"slug":     slug,
		"isActive": true,
	}).Decode(&genre)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepo) Create(ctx context.Context, genre *model.Genre) error {
	if genre.ID == "" {
		genre.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, genre)
	return err
}
