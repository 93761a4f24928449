// Package cache provides Redis read-through decorators over the reference
// entity repositories. Caching happens at the store boundary; the diagnosis
// engine itself stays cache-free.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"dancenavi/internal/model"
	"dancenavi/internal/repository"

	"github.com/redis/go-redis/v9"
)

const referenceTTL = 10 * time.Minute

// cachedCampusRepo wraps a CampusRepo with per-(tenant, slug) caching
type cachedCampusRepo struct {
	inner  repository.CampusRepo
	client *redis.Client
}

// NewCachedCampusRepo returns a CampusRepo that serves FindBySlug hits from
// Redis with a short TTL
func NewCachedCampusRepo(inner repository.CampusRepo, client *redis.Client) repository.CampusRepo {
	return &cachedCampusRepo{inner: inner, client: client}
}

func campusKey(schoolID, slug string) string {
	return "ref:campus:" + schoolID + ":" + slug
}

func (r *cachedCampusRepo) FindBySlug(ctx context.Context, schoolID, slug string) (*model.Campus, error) {
	if data, err := r.client.Get(ctx, campusKey(schoolID, slug)).Result(); err == nil {
		var campus model.Campus
		if err := json.Unmarshal([]byte(data), &campus); err == nil {
			return &campus, nil
		}
	}

	campus, err := r.inner.FindBySlug(ctx, schoolID, slug)
	if err != nil || campus == nil {
		return campus, err
	}

	if data, err := json.Marshal(campus); err == nil {
		// Best effort; a failed cache write never fails the lookup
		r.client.Set(ctx, campusKey(schoolID, slug), data, referenceTTL)
	}
	return campus, nil
}

func (r *cachedCampusRepo) Create(ctx context.Context, campus *model.Campus) error {
	if err := r.inner.Create(ctx, campus); err != nil {
		return err
	}
	r.client.Del(ctx, campusKey(campus.SchoolID, campus.Slug))
	return nil
}

// cachedGenreRepo wraps a GenreRepo with per-(tenant, slug) caching
type cachedGenreRepo struct {
	inner  repository.GenreRepo
	client *redis.Client
}

// NewCachedGenreRepo returns a GenreRepo that serves FindBySlug hits from
// Redis with a short TTL
func NewCachedGenreRepo(inner repository.GenreRepo, client *redis.Client) repository.GenreRepo {
	return &cachedGenreRepo{inner: inner, client: client}
}

func genreKey(schoolID, slug string) string {
	return "ref:genre:" + schoolID + ":" + slug
}

func (r *cachedGenreRepo) FindBySlug(ctx context.Context, schoolID, slug string) (*model.Genre, error) {
	if data, err := r.client.Get(ctx, genreKey(schoolID, slug)).Result(); err == nil {
		var genre model.Genre
		if err := json.Unmarshal([]byte(data), &genre); err == nil {
			return &genre, nil
		}
	}

	genre, err := r.inner.FindBySlug(ctx, schoolID, slug)
	if err != nil || genre == nil {
		return genre, err
	}

	if data, err := json.Marshal(genre); err == nil {
		r.client.Set(ctx, genreKey(schoolID, slug), data, referenceTTL)
	}
	return genre, nil
}

func (r *cachedGenreRepo) Create(ctx context.Context, genre *model.Genre) error {
	if err := r.inner.Create(ctx, genre); err != nil {
		return err
	}
	r.client.Del(ctx, genreKey(genre.SchoolID, genre.Slug))
	return nil
}
