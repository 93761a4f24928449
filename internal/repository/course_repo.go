package repository

import (
	"context"

	"dancenavi/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CourseRepo interface {
	// FindByQ2Label returns the first active course (sortOrder ascending)
	// whose q2AnswerTags contain the given Q2 option label, or nil.
	FindByQ2Label(ctx context.Context, schoolID, label string) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
}

type courseRepo struct {
	collection *mongo.Collection
}

func NewCourseRepo(db *mongo.Database) CourseRepo {
	return &courseRepo{
		collection: db.Collection("courses"),
	}
}

func (r *courseRepo) FindByQ2Label(ctx context.Context, schoolID, label string) (*model.Course, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "sortOrder", Value: 1}})

	var course model.Course
	err := r.collection.FindOne(ctx, bson.M{
		"schoolId":     schoolID,
		"isActive":     true,
		"q2AnswerTags": label,
	}, opts).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	if course.ID == "" {
		course.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, course)
	return err
}
