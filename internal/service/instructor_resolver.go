package service

import (
	"context"

	"dancenavi/internal/model"
	"dancenavi/internal/repository"
)

// Relaxation labels reported in the response debug block
const (
	MatchedByCampusGenreCourse = "campus+genre+course"
	MatchedByCampusGenre       = "campus+genre"
	MatchedByCampusCourse      = "campus+course"
	MatchedByCampus            = "campus"
	MatchedByNone              = "none"
)

// relaxationStep is one tier of the progressively loosened search. Campus is
// always a hard constraint; genre/course participate only where flagged.
type relaxationStep struct {
	label     string
	useGenre  bool
	useCourse bool
}

var relaxationSteps = []relaxationStep{
	{label: MatchedByCampusGenreCourse, useGenre: true, useCourse: true},
	{label: MatchedByCampusGenre, useGenre: true},
	{label: MatchedByCampusCourse, useCourse: true},
	{label: MatchedByCampus},
}

// InstructorResolver finds instructors at the resolved campus, relaxing the
// genre/course constraints step by step until something matches
type InstructorResolver struct {
	instructorRepo repository.InstructorRepo
}

func NewInstructorResolver(instructorRepo repository.InstructorRepo) *InstructorResolver {
	return &InstructorResolver{instructorRepo: instructorRepo}
}

// Resolve walks the relaxation ladder in order, skipping steps whose required
// entity was never resolved (empty genreID/courseID), and stops at the first
// non-empty result set. Returns the list and the label of the step that
// produced it; an exhausted ladder yields an empty list and "none".
func (r *InstructorResolver) Resolve(ctx context.Context, schoolID, campusID, genreID, courseID string) ([]*model.Instructor, string, error) {
	for _, step := range relaxationSteps {
		if step.useGenre && genreID == "" {
			continue
		}
		if step.useCourse && courseID == "" {
			continue
		}

		criteria := repository.InstructorCriteria{CampusID: campusID}
		if step.useGenre {
			criteria.GenreID = genreID
		}
		if step.useCourse {
			criteria.CourseID = courseID
		}

		instructors, err := r.instructorRepo.FindByCriteria(ctx, schoolID, criteria)
		if err != nil {
			return nil, "", err
		}
		if len(instructors) > 0 {
			return instructors, step.label, nil
		}
	}

	return nil, MatchedByNone, nil
}
