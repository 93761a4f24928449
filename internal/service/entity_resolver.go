package service

import (
	"context"

	"dancenavi/internal/model"
	"dancenavi/internal/repository"
)

// genreTagToSlug maps Q4 genre tags to genre slugs. Genre_All is deliberately
// absent: it means "no genre filter" and skips genre resolution entirely.
var genreTagToSlug = map[string]string{
	"Genre_KPOP":      "kpop",
	"Genre_HIPHOP":    "hiphop",
	"Genre_JAZZ":      "jazz",
	"Genre_ThemePark": "themepark",
}

// ResolvedEntities holds the tenant rows resolved from normalized answers.
// Campus is always set; Genre and Course may be nil.
type ResolvedEntities struct {
	Campus *model.Campus
	Genre  *model.Genre
	Course *model.Course
}

// EntityResolver turns normalized tags into concrete tenant rows
type EntityResolver struct {
	campusRepo repository.CampusRepo
	genreRepo  repository.GenreRepo
	courseRepo repository.CourseRepo
}

func NewEntityResolver(campusRepo repository.CampusRepo, genreRepo repository.GenreRepo, courseRepo repository.CourseRepo) *EntityResolver {
	return &EntityResolver{
		campusRepo: campusRepo,
		genreRepo:  genreRepo,
		courseRepo: courseRepo,
	}
}

// Resolve looks up campus (mandatory), genre (mandatory only when the tag
// maps to a slug) and the recommended course (optional, narrows matching).
func (r *EntityResolver) Resolve(ctx context.Context, schoolID string, na *model.NormalizedAnswers) (*ResolvedEntities, error) {
	resolved := &ResolvedEntities{}

	campus, err := r.campusRepo.FindBySlug(ctx, schoolID, na.CampusSlug)
	if err != nil {
		return nil, err
	}
	if campus == nil {
		return nil, errNoCampus(na.CampusSlug)
	}
	resolved.Campus = campus

	if slug, ok := genreTagToSlug[na.Match.UserGenre]; ok {
		genre, err := r.genreRepo.FindBySlug(ctx, schoolID, slug)
		if err != nil {
			return nil, err
		}
		if genre == nil {
			return nil, errNoGenre(slug)
		}
		resolved.Genre = genre
	}

	if na.Q2Label != "" {
		course, err := r.courseRepo.FindByQ2Label(ctx, schoolID, na.Q2Label)
		if err != nil {
			return nil, err
		}
		resolved.Course = course
	}

	return resolved, nil
}
