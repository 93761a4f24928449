package service

import (
	"strings"

	"dancenavi/internal/catalog"
	"dancenavi/internal/model"
)

// Defaults applied when an answer is missing or its option carries no tag.
// They keep scoring total on partial data; validation of required answers
// happens before normalization.
const (
	DefaultLevelTag = "Lv1_入門"
	DefaultAgeTag   = "Age_Adult_Work"
	DefaultGenreTag = "Genre_All"
	DefaultStyleTag = "Style_Healing"
)

// AnswerNormalizer maps raw option selections to the semantic tags and labels
// the rest of the engine works from. No side effects.
type AnswerNormalizer struct {
	catalog *catalog.Catalog
}

func NewAnswerNormalizer(c *catalog.Catalog) *AnswerNormalizer {
	return &AnswerNormalizer{catalog: c}
}

// Normalize resolves each selected option against the static catalog. Unknown
// option ids leave the corresponding field unset (or defaulted) rather than
// failing.
func (n *AnswerNormalizer) Normalize(answers map[string]string) *model.NormalizedAnswers {
	na := &model.NormalizedAnswers{
		Match: model.MatchContext{
			UserLevel:        DefaultLevelTag,
			UserAge:          DefaultAgeTag,
			UserGenre:        DefaultGenreTag,
			UserTeacherStyle: DefaultStyleTag,
		},
	}

	if opt, ok := n.option(answers, model.QuestionIDArea); ok {
		na.CampusSlug = opt.Tag
		na.IsOnline = opt.IsOnline
	}
	if opt, ok := n.option(answers, model.QuestionIDLevel); ok {
		// Course matching keys off the display label, not the tag
		na.Q2Label = strings.TrimSpace(opt.Label)
		if opt.Tag != "" {
			na.Match.UserLevel = opt.Tag
		}
	}
	if opt, ok := n.option(answers, model.QuestionIDAge); ok && opt.Tag != "" {
		na.Match.UserAge = opt.Tag
	}
	if opt, ok := n.option(answers, model.QuestionIDGenre); ok && opt.Tag != "" {
		na.Match.UserGenre = opt.Tag
	}
	if opt, ok := n.option(answers, model.QuestionIDTeacher); ok && opt.Tag != "" {
		na.Match.UserTeacherStyle = opt.Tag
	}
	if opt, ok := n.option(answers, model.QuestionIDConcern); ok {
		na.ConcernKey = opt.MessageKey
	}

	return na
}

func (n *AnswerNormalizer) option(answers map[string]string, questionID string) (*model.Option, bool) {
	optionID, ok := answers[questionID]
	if !ok || optionID == "" {
		return nil, false
	}
	return n.catalog.Option(questionID, optionID)
}
