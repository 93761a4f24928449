package repository

import (
	"context"

	"dancenavi/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InstructorCriteria narrows an instructor search. CampusID is always
// required; empty GenreID/CourseID means that dimension is not filtered.
type InstructorCriteria struct {
	CampusID string
	GenreID  string
	CourseID string
}

type InstructorRepo interface {
	// FindByCriteria returns active instructors matching every non-empty
	// criterion, sortOrder ascending.
	FindByCriteria(ctx context.Context, schoolID string, criteria InstructorCriteria) ([]*model.Instructor, error)
	GetByIDs(ctx context.Context, schoolID string, ids []string) ([]*model.Instructor, error)
	Create(ctx context.Context, instructor *model.Instructor) error
}

type instructorRepo struct {
	collection *mongo.Collection
}

func NewInstructorRepo(db *mongo.Database) InstructorRepo {
	return &instructorRepo{
		collection: db.Collection("instructors"),
	}
}

func (r *instructorRepo) FindByCriteria(ctx context.Context, schoolID string, criteria InstructorCriteria) ([]*model.Instructor, error) {
	filter := bson.M{
		"schoolId":  schoolID,
		"isActive":  true,
		"campusIds": criteria.CampusID,
	}
	if criteria.GenreID != "" {
		filter["genreIds"] = criteria.GenreID
	}
	if criteria.CourseID != "" {
		filter["courseIds"] = criteria.CourseID
	}

	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var instructors []*model.Instructor
	if err = cursor.All(ctx, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}

func (r *instructorRepo) GetByIDs(ctx context.Context, schoolID string, ids []string) ([]*model.Instructor, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{
		"schoolId": schoolID,
		"isActive": true,
		"_id":      bson.M{"$in": ids},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var instructors []*model.Instructor
	if err = cursor.All(ctx, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}

func (r *instructorRepo) Create(ctx context.Context, instructor *model.Instructor) error {
	if instructor.ID == "" {
		instructor.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, instructor)
	return err
}
