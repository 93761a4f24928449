package repository

import (
	"context"

	"dancenavi/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LessonRepo interface {
	// ListByCampus returns the campus's active lessons, sortOrder ascending
	ListByCampus(ctx context.Context, schoolID, campusID string) ([]*model.Lesson, error)
	Create(ctx context.Context, lesson *model.Lesson) error
}

type lessonRepo struct {
	collection *mongo.Collection
}

func NewLessonRepo(db *mongo.Database) LessonRepo {
	return &lessonRepo{
		collection: db.Collection("lessons"),
	}
}

func (r *lessonRepo) ListByCampus(ctx context.Context, schoolID, campusID string) ([]*model.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{
		"schoolId": schoolID,
		"campusId": campusID,
		"isActive": true,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lessons []*model.Lesson
	if err = cursor.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *lessonRepo) Create(ctx context.Context, lesson *model.Lesson) error {
	if lesson.ID == "" {
		lesson.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, lesson)
	return err
}
