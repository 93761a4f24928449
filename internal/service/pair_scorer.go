package service

import "dancenavi/internal/model"

// levelScale is the fixed ordinal level ladder, easiest first
var levelScale = []string{
	"Lv0_超入門",
	"Lv1_入門",
	"Lv2_初級",
	"Lv3_初中級",
	"Lv4_中上級",
}

const (
	baseScore = 100

	// Worst-but-bounded distance used when the user's level tag is
	// unrecognized or the class declares no levels
	unknownLevelDistance = 2

	deductionKeyLevel   = "level"
	deductionKeyAge     = "age"
	deductionKeyTeacher = "teacher"

	levelNearDeduction = -10
	levelFarDeduction  = -30
	ageDeduction       = -15
	teacherDeduction   = -5

	levelNearNote = "slightly high/low level, still manageable"
	levelFarNote  = "large level gap, likely too difficult"
	ageNote       = "class target age differs from the user's age group"
	teacherNote   = "instructor style differs from the preferred style"
)

func levelIndex(tag string) int {
	for i, level := range levelScale {
		if level == tag {
			return i
		}
	}
	return -1
}

// LevelDistance is the minimum absolute index difference between the user's
// level and any of the class's levels on the fixed scale. Symmetric, zero iff
// equal, and always within [0, len(levelScale)-1].
func LevelDistance(userLevel string, classLevels []string) int {
	userIdx := levelIndex(userLevel)
	if userIdx < 0 {
		return unknownLevelDistance
	}

	best := -1
	for _, classLevel := range classLevels {
		idx := levelIndex(classLevel)
		if idx < 0 {
			continue
		}
		d := userIdx - idx
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return unknownLevelDistance
	}
	return best
}

// ScorePair computes the compatibility score for one (class, instructor)
// pair. Scoring starts at 100 and applies independent deductions in the fixed
// order (level, then age, then teacher); the score is not clamped at 0.
func ScorePair(mctx model.MatchContext, pair model.CandidatePair) model.ScoredPair {
	scored := model.ScoredPair{Pair: pair, Score: baseScore}

	switch d := LevelDistance(mctx.UserLevel, pair.Lesson.Levels); {
	case d == 0:
		// perfect level fit
	case d == 1:
		scored.ApplyDeduction(deductionKeyLevel, levelNearDeduction, levelNearNote)
	default:
		scored.ApplyDeduction(deductionKeyLevel, levelFarDeduction, levelFarNote)
	}

	if !containsString(pair.Lesson.Targets, mctx.UserAge) {
		scored.ApplyDeduction(deductionKeyAge, ageDeduction, ageNote)
	}

	if !containsString(pair.Instructor.Styles, mctx.UserTeacherStyle) {
		scored.ApplyDeduction(deductionKeyTeacher, teacherDeduction, teacherNote)
	}

	return scored
}
