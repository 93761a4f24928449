package service

import (
	"context"
	"testing"

	"dancenavi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityResolveFull(t *testing.T) {
	campuses := &fakeCampusRepo{campuses: []*model.Campus{
		{ID: "c1", SchoolID: "s1", Slug: "shibuya", IsActive: true},
	}}
	genres := &fakeGenreRepo{genres: []*model.Genre{
		{ID: "g1", SchoolID: "s1", Slug: "kpop", IsActive: true},
	}}
	courses := &fakeCourseRepo{courses: []*model.Course{
		{ID: "co1", SchoolID: "s1", Slug: "regular", Q2AnswerTags: []string{"基礎は一通りできる"}, IsActive: true},
	}}
	r := NewEntityResolver(campuses, genres, courses)

	resolved, err := r.Resolve(context.Background(), "s1", &model.NormalizedAnswers{
		CampusSlug: "shibuya",
		Q2Label:    "基礎は一通りできる",
		Match:      model.MatchContext{UserGenre: "Genre_KPOP"},
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", resolved.Campus.ID)
	require.NotNil(t, resolved.Genre)
	assert.Equal(t, "g1", resolved.Genre.ID)
	require.NotNil(t, resolved.Course)
	assert.Equal(t, "co1", resolved.Course.ID)
}

func TestEntityResolveUnknownCampus(t *testing.T) {
	r := NewEntityResolver(&fakeCampusRepo{}, &fakeGenreRepo{}, &fakeCourseRepo{})

	_, err := r.Resolve(context.Background(), "s1", &model.NormalizedAnswers{CampusSlug: "shibuya"})
	require.Error(t, err)
	assert.Equal(t, CodeNoCampus, AsError(err).Code)
}

// Genre_All means no genre filter: resolution skips the lookup entirely
// instead of failing on a missing row.
func TestEntityResolveGenreAllSkipsLookup(t *testing.T) {
	campuses := &fakeCampusRepo{campuses: []*model.Campus{
		{ID: "c1", SchoolID: "s1", Slug: "shibuya", IsActive: true},
	}}
	r := NewEntityResolver(campuses, &fakeGenreRepo{}, &fakeCourseRepo{})

	resolved, err := r.Resolve(context.Background(), "s1", &model.NormalizedAnswers{
		CampusSlug: "shibuya",
		Match:      model.MatchContext{UserGenre: "Genre_All"},
	})
	require.NoError(t, err)
	assert.Nil(t, resolved.Genre)
}

func TestEntityResolveMappedGenreMustExist(t *testing.T) {
	campuses := &fakeCampusRepo{campuses: []*model.Campus{
		{ID: "c1", SchoolID: "s1", Slug: "shibuya", IsActive: true},
	}}
	r := NewEntityResolver(campuses, &fakeGenreRepo{}, &fakeCourseRepo{})

	_, err := r.Resolve(context.Background(), "s1", &model.NormalizedAnswers{
		CampusSlug: "shibuya",
		Match:      model.MatchContext{UserGenre: "Genre_JAZZ"},
	})
	require.Error(t, err)
	assert.Equal(t, CodeNoGenre, AsError(err).Code)
}

// No course for the Q2 label is not an error, the course just stays nil
func TestEntityResolveCourseOptional(t *testing.T) {
	campuses := &fakeCampusRepo{campuses: []*model.Campus{
		{ID: "c1", SchoolID: "s1", Slug: "shibuya", IsActive: true},
	}}
	r := NewEntityResolver(campuses, &fakeGenreRepo{}, &fakeCourseRepo{})

	resolved, err := r.Resolve(context.Background(), "s1", &model.NormalizedAnswers{
		CampusSlug: "shibuya",
		Q2Label:    "基礎は一通りできる",
	})
	require.NoError(t, err)
	assert.Nil(t, resolved.Course)
}

func TestEntityResolveTenantIsolation(t *testing.T) {
	campuses := &fakeCampusRepo{campuses: []*model.Campus{
		{ID: "c1", SchoolID: "other-school", Slug: "shibuya", IsActive: true},
	}}
	r := NewEntityResolver(campuses, &fakeGenreRepo{}, &fakeCourseRepo{})

	_, err := r.Resolve(context.Background(), "s1", &model.NormalizedAnswers{CampusSlug: "shibuya"})
	require.Error(t, err)
	assert.Equal(t, CodeNoCampus, AsError(err).Code)
}
