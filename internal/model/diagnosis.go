package model

// DiagnoseRequest is the inbound body of POST /v1/diagnosis/result.
// Answers maps question id (Q1..Q6) to the selected option id.
type DiagnoseRequest struct {
	SchoolID string            `json:"schoolId"`
	Answers  map[string]string `json:"answers"`
}

// MatchContext is the user profile the Pair Scorer works from. Every field is
// pre-defaulted by the Answer Normalizer so scoring never fails on partial
// data.
type MatchContext struct {
	UserLevel        string `json:"userLevel"`
	UserAge          string `json:"userAge"`
	UserGenre        string `json:"userGenre"`
	UserTeacherStyle string `json:"userTeacherStyle"`
}

// NormalizedAnswers is the full output of the Answer Normalizer: the scoring
// context plus the slugs/labels the entity resolution needs. Empty string
// fields mean the answer carried no value.
type NormalizedAnswers struct {
	CampusSlug string
	IsOnline   bool
	Q2Label    string
	ConcernKey string
	Match      MatchContext
}

// CandidatePair is one scorable (class, instructor) combination
type CandidatePair struct {
	Lesson     *Lesson
	Instructor *Instructor
}

// ScoreBreakdownEntry records one deduction applied while scoring a pair
type ScoreBreakdownEntry struct {
	Key       string `json:"key"`
	ScoreDiff int    `json:"scoreDiff"`
	Note      string `json:"note"`
}

// ScoredPair wraps a candidate pair with its computed score. Ephemeral,
// never persisted.
type ScoredPair struct {
	Pair      CandidatePair
	Score     int
	Breakdown []ScoreBreakdownEntry
}

// ApplyDeduction lowers the score and records one breakdown entry
func (p *ScoredPair) ApplyDeduction(key string, diff int, note string) {
	p.Score += diff
	p.Breakdown = append(p.Breakdown, ScoreBreakdownEntry{Key: key, ScoreDiff: diff, Note: note})
}

// BestMatch describes the winning class in the response
type BestMatch struct {
	ClassName string   `json:"className"`
	Genres    []string `json:"genres"`
	Levels    []string `json:"levels"`
	Targets   []string `json:"targets"`
}

// InstructorSummary is the trimmed instructor view returned to clients
type InstructorSummary struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// CampusInfo is the selected campus view returned to clients
type CampusInfo struct {
	Label        string `json:"label"`
	Slug         string `json:"slug"`
	IsOnline     bool   `json:"isOnline"`
	Address      string `json:"address"`
	Access       string `json:"access"`
	GoogleMapURL string `json:"googleMapUrl"`
}

// ResultContent is the selected result row view returned to clients
type ResultContent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	CtaLabel string `json:"ctaLabel"`
	CtaURL   string `json:"ctaUrl"`
}

// DebugInfo reports which relaxation step produced the instructor list
type DebugInfo struct {
	InstructorMatchedBy string `json:"instructorMatchedBy"`
	InstructorsCount    int    `json:"instructorsCount"`
}

// DiagnoseResponse is the assembled diagnosis outcome
type DiagnoseResponse struct {
	Pattern        string              `json:"pattern"`
	Score          int                 `json:"score"`
	BestMatch      *BestMatch          `json:"bestMatch"`
	Instructors    []InstructorSummary `json:"instructors"`
	Result         ResultContent       `json:"result"`
	SelectedCampus CampusInfo          `json:"selectedCampus"`
	ConcernMessage string              `json:"concernMessage"`
	Debug          DebugInfo           `json:"debug"`
}
