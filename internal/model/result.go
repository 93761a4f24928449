package model

// ResultConditions is the authored rule attached to a Result row. An empty or
// absent array means the dimension matches anything; a non-empty array matches
// when the corresponding context value is present and contained in it.
type ResultConditions struct {
	Campus     []string `json:"campus,omitempty" bson:"campus,omitempty"`
	Genre      []string `json:"genre,omitempty" bson:"genre,omitempty"`
	Q2Tags     []string `json:"q2Tags,omitempty" bson:"q2Tags,omitempty"`
	CourseSlug []string `json:"courseSlug,omitempty" bson:"courseSlug,omitempty"`
}

// Result is a pre-authored diagnosis outcome. Candidates are evaluated in
// (priority DESC, sortOrder ASC) order; IsFallback marks the row to use when
// nothing matches on conditions.
type Result struct {
	ID         string           `json:"id" bson:"_id,omitempty"`
	SchoolID   string           `json:"schoolId" bson:"schoolId"`
	Title      string           `json:"title" bson:"title"`
	Body       string           `json:"body" bson:"body"`
	CtaLabel   string           `json:"ctaLabel" bson:"ctaLabel"`
	CtaURL     string           `json:"ctaUrl" bson:"ctaUrl"`
	Priority   int              `json:"priority" bson:"priority"`
	SortOrder  int              `json:"sortOrder" bson:"sortOrder"`
	IsFallback bool             `json:"isFallback" bson:"isFallback"`
	Conditions ResultConditions `json:"conditions" bson:"conditions"`
	IsActive   bool             `json:"isActive" bson:"isActive"`
}
