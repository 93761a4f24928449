package service

import (
	"context"
	"testing"

	"dancenavi/internal/catalog"
	"dancenavi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type diagnosisFixture struct {
	campuses    *fakeCampusRepo
	genres      *fakeGenreRepo
	courses     *fakeCourseRepo
	lessons     *fakeLessonRepo
	instructors *fakeInstructorRepo
	results     *fakeResultRepo
}

func (f *diagnosisFixture) service() *DiagnosisService {
	return NewDiagnosisService(
		catalog.Default(),
		f.campuses, f.genres, f.courses, f.lessons, f.instructors, f.results,
		zap.NewNop(),
	)
}

// seededFixture models one fully configured tenant: a Shibuya campus with a
// K-POP class taught by an instructor whose profile matches the answer set
// from fullAnswers exactly.
func seededFixture() *diagnosisFixture {
	return &diagnosisFixture{
		campuses: &fakeCampusRepo{campuses: []*model.Campus{
			{ID: "c1", SchoolID: "s1", Slug: "shibuya", Label: "渋谷校", Address: "渋谷1-1-1", IsActive: true},
		}},
		genres: &fakeGenreRepo{genres: []*model.Genre{
			{ID: "g1", SchoolID: "s1", Slug: "kpop", Label: "K-POP", IsActive: true},
		}},
		courses: &fakeCourseRepo{courses: []*model.Course{
			{ID: "co1", SchoolID: "s1", Slug: "regular", Q2AnswerTags: []string{"基礎は一通りできる"}, IsActive: true},
		}},
		lessons: &fakeLessonRepo{lessons: []*model.Lesson{
			{
				ID: "l1", SchoolID: "s1", CampusID: "c1", Name: "K-POP初級",
				Genres:        []string{"kpop"},
				Levels:        []string{"Lv2_初級"},
				Targets:       []string{"Age_Adult_Work"},
				InstructorIDs: []string{"i1"},
				IsActive:      true,
			},
		}},
		instructors: &fakeInstructorRepo{instructors: []*model.Instructor{
			{
				ID: "i1", SchoolID: "s1", Label: "MIKI", Slug: "miki",
				Styles:    []string{"Style_Healing"},
				CampusIDs: []string{"c1"},
				GenreIDs:  []string{"g1"},
				CourseIDs: []string{"co1"},
				IsActive:  true,
			},
		}},
		results: &fakeResultRepo{results: []*model.Result{
			{
				ID: "r1", SchoolID: "s1", Title: "渋谷でK-POP", Priority: 100, IsActive: true,
				Conditions: model.ResultConditions{Campus: []string{"shibuya"}, Genre: []string{"kpop"}},
			},
			{ID: "r-fallback", SchoolID: "s1", Title: "体験へ", Priority: 0, IsActive: true, IsFallback: true},
		}},
	}
}

func fullAnswers() map[string]string {
	return map[string]string{
		model.QuestionIDArea:    "q1_shibuya",
		model.QuestionIDLevel:   "q2_basic",
		model.QuestionIDAge:     "q3_work",
		model.QuestionIDGenre:   "q4_kpop",
		model.QuestionIDTeacher: "q5_healing",
		model.QuestionIDConcern: "q6_beginner",
	}
}

func TestDiagnoseExactMatch(t *testing.T) {
	svc := seededFixture().service()

	resp, err := svc.Diagnose(context.Background(), &model.DiagnoseRequest{
		SchoolID: "s1",
		Answers:  fullAnswers(),
	})
	require.NoError(t, err)

	assert.Equal(t, PatternGood, resp.Pattern)
	assert.Equal(t, 100, resp.Score)
	require.NotNil(t, resp.BestMatch)
	assert.Equal(t, "K-POP初級", resp.BestMatch.ClassName)
	assert.Equal(t, "r1", resp.Result.ID)
	assert.Equal(t, "shibuya", resp.SelectedCampus.Slug)
	assert.Equal(t, "渋谷校", resp.SelectedCampus.Label)
	require.Len(t, resp.Instructors, 1)
	assert.Equal(t, "MIKI", resp.Instructors[0].Label)
	assert.Equal(t, MatchedByCampusGenreCourse, resp.Debug.InstructorMatchedBy)
	assert.Equal(t, 1, resp.Debug.InstructorsCount)
	assert.NotEmpty(t, resp.ConcernMessage)
}

func TestDiagnoseRelaxedInstructorSearch(t *testing.T) {
	fx := seededFixture()
	fx.instructors.instructors[0].CourseIDs = nil

	resp, err := fx.service().Diagnose(context.Background(), &model.DiagnoseRequest{
		SchoolID: "s1",
		Answers:  fullAnswers(),
	})
	require.NoError(t, err)
	assert.Equal(t, MatchedByCampusGenre, resp.Debug.InstructorMatchedBy)
}

func TestDiagnoseRequiresSchoolID(t *testing.T) {
	svc := seededFixture().service()

	_, err := svc.Diagnose(context.Background(), &model.DiagnoseRequest{Answers: fullAnswers()})
	require.Error(t, err)
	assert.Equal(t, CodeNoSchoolID, AsError(err).Code)
}

func TestDiagnoseRequiresAllAnswers(t *testing.T) {
	svc := seededFixture().service()

	answers := fullAnswers()
	delete(answers, model.QuestionIDGenre)
	delete(answers, model.QuestionIDConcern)

	_, err := svc.Diagnose(context.Background(), &model.DiagnoseRequest{SchoolID: "s1", Answers: answers})
	require.Error(t, err)

	serr := AsError(err)
	assert.Equal(t, CodeMissingAnswers, serr.Code)
	assert.Contains(t, serr.Message, model.QuestionIDGenre)
	assert.Contains(t, serr.Message, model.QuestionIDConcern)
}

func TestDiagnoseUnknownCampus(t *testing.T) {
	svc := seededFixture().service()

	answers := fullAnswers()
	answers[model.QuestionIDArea] = "q1_shinjuku" // not seeded

	_, err := svc.Diagnose(context.Background(), &model.DiagnoseRequest{SchoolID: "s1", Answers: answers})
	require.Error(t, err)
	assert.Equal(t, CodeNoCampus, AsError(err).Code)
}

func TestDiagnoseNoResultRows(t *testing.T) {
	fx := seededFixture()
	fx.results.results = nil

	_, err := fx.service().Diagnose(context.Background(), &model.DiagnoseRequest{
		SchoolID: "s1",
		Answers:  fullAnswers(),
	})
	require.Error(t, err)
	assert.Equal(t, CodeNoMatchedResult, AsError(err).Code)
}

// A campus with no classes degrades to a compromise outcome instead of
// failing: pattern "B", score 0, no best match, but result and instructors
// still resolve.
func TestDiagnoseNoLessonsDegradesGracefully(t *testing.T) {
	fx := seededFixture()
	fx.lessons.lessons = nil

	resp, err := fx.service().Diagnose(context.Background(), &model.DiagnoseRequest{
		SchoolID: "s1",
		Answers:  fullAnswers(),
	})
	require.NoError(t, err)

	assert.Equal(t, PatternCompromise, resp.Pattern)
	assert.Zero(t, resp.Score)
	assert.Nil(t, resp.BestMatch)
	assert.Equal(t, "r1", resp.Result.ID)
	require.Len(t, resp.Instructors, 1)
}

// Genre_All skips genre resolution and falls through to the genre wildcard
// result row.
func TestDiagnoseGenreAll(t *testing.T) {
	svc := seededFixture().service()

	answers := fullAnswers()
	answers[model.QuestionIDGenre] = "q4_all"

	resp, err := svc.Diagnose(context.Background(), &model.DiagnoseRequest{SchoolID: "s1", Answers: answers})
	require.NoError(t, err)

	// r1 requires genre "kpop" which is absent from the context now
	assert.Equal(t, "r-fallback", resp.Result.ID)
}

func TestDiagnoseTenantIsolation(t *testing.T) {
	_, err := seededFixture().service().Diagnose(context.Background(), &model.DiagnoseRequest{
		SchoolID: "someone-else",
		Answers:  fullAnswers(),
	})
	require.Error(t, err)
	assert.Equal(t, CodeNoCampus, AsError(err).Code)
}

// A class too far above the user's level is excluded from the best pick but
// the request still succeeds with the compromise pattern.
func TestDiagnoseLevelGapCompromise(t *testing.T) {
	fx := seededFixture()
	fx.lessons.lessons[0].Levels = []string{"Lv2_初級"}

	answers := fullAnswers()
	answers[model.QuestionIDLevel] = "q2_zero" // Lv0_超入門, two steps below the class

	resp, err := fx.service().Diagnose(context.Background(), &model.DiagnoseRequest{SchoolID: "s1", Answers: answers})
	require.NoError(t, err)
	assert.Equal(t, PatternCompromise, resp.Pattern)
	assert.Equal(t, 70, resp.Score)
	require.NotNil(t, resp.BestMatch)
}
