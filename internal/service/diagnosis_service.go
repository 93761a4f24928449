package service

import (
	"context"

	"dancenavi/internal/catalog"
	"dancenavi/internal/model"
	"dancenavi/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DiagnosisService runs the full resolution pipeline: normalize answers,
// resolve tenant entities, pick a result row, score candidate pairs and find
// instructors. All lookups are read-only; nothing is mutated or cached here.
type DiagnosisService struct {
	catalog        *catalog.Catalog
	normalizer     *AnswerNormalizer
	entities       *EntityResolver
	conditions     *ConditionMatcher
	instructors    *InstructorResolver
	lessonRepo     repository.LessonRepo
	instructorRepo repository.InstructorRepo
	logger         *zap.Logger
}

func NewDiagnosisService(
	cat *catalog.Catalog,
	campusRepo repository.CampusRepo,
	genreRepo repository.GenreRepo,
	courseRepo repository.CourseRepo,
	lessonRepo repository.LessonRepo,
	instructorRepo repository.InstructorRepo,
	resultRepo repository.ResultRepo,
	logger *zap.Logger,
) *DiagnosisService {
	return &DiagnosisService{
		catalog:        cat,
		normalizer:     NewAnswerNormalizer(cat),
		entities:       NewEntityResolver(campusRepo, genreRepo, courseRepo),
		conditions:     NewConditionMatcher(resultRepo),
		instructors:    NewInstructorResolver(instructorRepo),
		lessonRepo:     lessonRepo,
		instructorRepo: instructorRepo,
		logger:         logger,
	}
}

// Diagnose resolves one diagnosis request end to end
func (s *DiagnosisService) Diagnose(ctx context.Context, req *model.DiagnoseRequest) (*model.DiagnoseResponse, error) {
	requestID := uuid.New().String()

	if req.SchoolID == "" {
		return nil, errNoSchoolID()
	}
	if missing := missingAnswers(req.Answers); len(missing) > 0 {
		return nil, errMissingAnswers(missing)
	}

	na := s.normalizer.Normalize(req.Answers)

	resolved, err := s.entities.Resolve(ctx, req.SchoolID, na)
	if err != nil {
		return nil, err
	}

	result, err := s.conditions.Select(ctx, req.SchoolID, conditionContext(na, resolved))
	if err != nil {
		return nil, err
	}

	pattern, score, bestMatch, err := s.selectBestPair(ctx, req.SchoolID, resolved.Campus.ID, na.Match)
	if err != nil {
		return nil, err
	}

	genreID, courseID := "", ""
	if resolved.Genre != nil {
		genreID = resolved.Genre.ID
	}
	if resolved.Course != nil {
		courseID = resolved.Course.ID
	}
	instructors, matchedBy, err := s.instructors.Resolve(ctx, req.SchoolID, resolved.Campus.ID, genreID, courseID)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.InstructorSummary, 0, len(instructors))
	for _, inst := range instructors {
		summaries = append(summaries, model.InstructorSummary{
			ID:    inst.ID,
			Label: inst.Label,
			Slug:  inst.Slug,
		})
	}

	s.logger.Info("diagnosis resolved",
		zap.String("requestId", requestID),
		zap.String("schoolId", req.SchoolID),
		zap.String("campus", resolved.Campus.Slug),
		zap.String("pattern", pattern),
		zap.Int("score", score),
		zap.String("instructorMatchedBy", matchedBy),
		zap.Int("instructorsCount", len(summaries)),
	)

	return &model.DiagnoseResponse{
		Pattern:     pattern,
		Score:       score,
		BestMatch:   bestMatch,
		Instructors: summaries,
		Result: model.ResultContent{
			ID:       result.ID,
			Title:    result.Title,
			Body:     result.Body,
			CtaLabel: result.CtaLabel,
			CtaURL:   result.CtaURL,
		},
		SelectedCampus: model.CampusInfo{
			Label:        resolved.Campus.Label,
			Slug:         resolved.Campus.Slug,
			IsOnline:     resolved.Campus.IsOnline,
			Address:      resolved.Campus.Address,
			Access:       resolved.Campus.Access,
			GoogleMapURL: resolved.Campus.GoogleMapURL,
		},
		ConcernMessage: s.catalog.ConcernMessage(na.ConcernKey),
		Debug: model.DebugInfo{
			InstructorMatchedBy: matchedBy,
			InstructorsCount:    len(summaries),
		},
	}, nil
}

// selectBestPair builds (lesson, instructor) candidate pairs at the campus
// and runs the match selector. A campus with no scorable pair degrades to
// pattern "B" with a nil best match instead of failing the request.
func (s *DiagnosisService) selectBestPair(ctx context.Context, schoolID, campusID string, mctx model.MatchContext) (string, int, *model.BestMatch, error) {
	lessons, err := s.lessonRepo.ListByCampus(ctx, schoolID, campusID)
	if err != nil {
		return "", 0, nil, err
	}

	idSet := make(map[string]struct{})
	ids := make([]string, 0)
	for _, lesson := range lessons {
		for _, id := range lesson.InstructorIDs {
			if _, seen := idSet[id]; !seen {
				idSet[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	instructors, err := s.instructorRepo.GetByIDs(ctx, schoolID, ids)
	if err != nil {
		return "", 0, nil, err
	}
	byID := make(map[string]*model.Instructor, len(instructors))
	for _, inst := range instructors {
		byID[inst.ID] = inst
	}

	var pairs []model.CandidatePair
	for _, lesson := range lessons {
		for _, id := range lesson.InstructorIDs {
			if inst, ok := byID[id]; ok {
				pairs = append(pairs, model.CandidatePair{Lesson: lesson, Instructor: inst})
			}
		}
	}

	if len(pairs) == 0 {
		s.logger.Warn("no scorable candidate pairs at campus",
			zap.String("schoolId", schoolID),
			zap.String("campusId", campusID),
		)
		return PatternCompromise, 0, nil, nil
	}

	selection, err := SelectMatch(mctx, pairs)
	if err != nil {
		return "", 0, nil, err
	}

	lesson := selection.Best.Pair.Lesson
	return selection.Pattern, selection.Best.Score, &model.BestMatch{
		ClassName: lesson.Name,
		Genres:    lesson.Genres,
		Levels:    lesson.Levels,
		Targets:   lesson.Targets,
	}, nil
}

func conditionContext(na *model.NormalizedAnswers, resolved *ResolvedEntities) ConditionContext {
	cond := ConditionContext{
		CampusSlug: resolved.Campus.Slug,
		Q2Label:    na.Q2Label,
	}
	if resolved.Genre != nil {
		cond.GenreSlug = &resolved.Genre.Slug
	}
	if resolved.Course != nil {
		cond.CourseSlug = &resolved.Course.Slug
	}
	return cond
}

func missingAnswers(answers map[string]string) []string {
	var missing []string
	for _, id := range model.RequiredQuestionIDs {
		if answers[id] == "" {
			missing = append(missing, id)
		}
	}
	return missing
}
