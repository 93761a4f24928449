package model

// QuestionKey discriminates what a question's answer feeds downstream
type QuestionKey string

const (
	QuestionKeyArea    QuestionKey = "area"    // Campus selection, tag = campus slug
	QuestionKeyLevel   QuestionKey = "level"   // Experience level, tag on the ordinal scale
	QuestionKeyAge     QuestionKey = "age"     // Age bracket tag
	QuestionKeyGenre   QuestionKey = "genre"   // Preferred genre tag
	QuestionKeyTeacher QuestionKey = "teacher" // Preferred teaching style tag
	QuestionKeyConcern QuestionKey = "concern" // Concern, carries a messageKey instead of a tag
)

// Question ids as they appear in diagnosis requests
const (
	QuestionIDArea    = "Q1"
	QuestionIDLevel   = "Q2"
	QuestionIDAge     = "Q3"
	QuestionIDGenre   = "Q4"
	QuestionIDTeacher = "Q5"
	QuestionIDConcern = "Q6"
)

// RequiredQuestionIDs lists every question a diagnosis request must answer
var RequiredQuestionIDs = []string{
	QuestionIDArea,
	QuestionIDLevel,
	QuestionIDAge,
	QuestionIDGenre,
	QuestionIDTeacher,
	QuestionIDConcern,
}

// Question is one step of the fixed diagnosis quiz. Defined at build time,
// never mutated at runtime.
type Question struct {
	ID          string      `json:"id"`
	Key         QuestionKey `json:"key"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Options     []Option    `json:"options"`
}

// Option is a selectable answer. Tag carries the semantic value used for
// matching; MessageKey is set only on concern options, IsOnline only on
// area options.
type Option struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Tag        string `json:"tag,omitempty"`
	MessageKey string `json:"messageKey,omitempty"`
	IsOnline   bool   `json:"isOnline,omitempty"`
}
