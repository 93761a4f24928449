package service

import (
	"context"
	"sort"

	"dancenavi/internal/model"
	"dancenavi/internal/repository"
)

// In-memory repository fakes. They mirror the Mongo implementations' filter
// and ordering behavior so service tests can pin tenant isolation and sort
// guarantees without a database.

type fakeCampusRepo struct {
	campuses []*model.Campus
}

func (f *fakeCampusRepo) FindBySlug(_ context.Context, schoolID, slug string) (*model.Campus, error) {
	for _, c := range f.campuses {
		if c.SchoolID == schoolID && c.Slug == slug && c.IsActive {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCampusRepo) Create(_ context.Context, campus *model.Campus) error {
	f.campuses = append(f.campuses, campus)
	return nil
}

type fakeGenreRepo struct {
	genres []*model.Genre
}

func (f *fakeGenreRepo) FindBySlug(_ context.Context, schoolID, slug string) (*model.Genre, error) {
	for _, g := range f.genres {
		if g.SchoolID == schoolID && g.Slug == slug && g.IsActive {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGenreRepo) Create(_ context.Context, genre *model.Genre) error {
	f.genres = append(f.genres, genre)
	return nil
}

type fakeCourseRepo struct {
	courses []*model.Course
}

func (f *fakeCourseRepo) FindByQ2Label(_ context.Context, schoolID, label string) (*model.Course, error) {
	var matched []*model.Course
	for _, c := range f.courses {
		if c.SchoolID != schoolID || !c.IsActive {
			continue
		}
		for _, tag := range c.Q2AnswerTags {
			if tag == label {
				matched = append(matched, c)
				break
			}
		}
	}
	if len(matched) == 0 {
		return nil, nil
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].SortOrder < matched[j].SortOrder })
	return matched[0], nil
}

func (f *fakeCourseRepo) Create(_ context.Context, course *model.Course) error {
	f.courses = append(f.courses, course)
	return nil
}

type fakeInstructorRepo struct {
	instructors []*model.Instructor
}

func (f *fakeInstructorRepo) FindByCriteria(_ context.Context, schoolID string, criteria repository.InstructorCriteria) ([]*model.Instructor, error) {
	var matched []*model.Instructor
	for _, inst := range f.instructors {
		if inst.SchoolID != schoolID || !inst.IsActive {
			continue
		}
		if !containsString(inst.CampusIDs, criteria.CampusID) {
			continue
		}
		if criteria.GenreID != "" && !containsString(inst.GenreIDs, criteria.GenreID) {
			continue
		}
		if criteria.CourseID != "" && !containsString(inst.CourseIDs, criteria.CourseID) {
			continue
		}
		matched = append(matched, inst)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].SortOrder < matched[j].SortOrder })
	return matched, nil
}

func (f *fakeInstructorRepo) GetByIDs(_ context.Context, schoolID string, ids []string) ([]*model.Instructor, error) {
	var matched []*model.Instructor
	for _, inst := range f.instructors {
		if inst.SchoolID != schoolID || !inst.IsActive {
			continue
		}
		if containsString(ids, inst.ID) {
			matched = append(matched, inst)
		}
	}
	return matched, nil
}

func (f *fakeInstructorRepo) Create(_ context.Context, instructor *model.Instructor) error {
	f.instructors = append(f.instructors, instructor)
	return nil
}

type fakeLessonRepo struct {
	lessons []*model.Lesson
}

func (f *fakeLessonRepo) ListByCampus(_ context.Context, schoolID, campusID string) ([]*model.Lesson, error) {
	var matched []*model.Lesson
	for _, l := range f.lessons {
		if l.SchoolID == schoolID && l.CampusID == campusID && l.IsActive {
			matched = append(matched, l)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].SortOrder < matched[j].SortOrder })
	return matched, nil
}

func (f *fakeLessonRepo) Create(_ context.Context, lesson *model.Lesson) error {
	f.lessons = append(f.lessons, lesson)
	return nil
}

type fakeResultRepo struct {
	results []*model.Result
}

func (f *fakeResultRepo) ListActive(_ context.Context, schoolID string) ([]*model.Result, error) {
	var matched []*model.Result
	for _, r := range f.results {
		if r.SchoolID == schoolID && r.IsActive {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Priority != matched[j].Priority {
			return matched[i].Priority > matched[j].Priority
		}
		return matched[i].SortOrder < matched[j].SortOrder
	})
	return matched, nil
}

func (f *fakeResultRepo) Create(_ context.Context, result *model.Result) error {
	f.results = append(f.results, result)
	return nil
}
