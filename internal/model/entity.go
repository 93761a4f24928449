package model

// Campus is a physical (or online) studio location
type Campus struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	SchoolID     string `json:"schoolId" bson:"schoolId"`
	Slug         string `json:"slug" bson:"slug"`
	Label        string `json:"label" bson:"label"`
	IsOnline     bool   `json:"isOnline" bson:"isOnline"`
	Address      string `json:"address,omitempty" bson:"address,omitempty"`
	Access       string `json:"access,omitempty" bson:"access,omitempty"`
	GoogleMapURL string `json:"googleMapUrl,omitempty" bson:"googleMapUrl,omitempty"`
	SortOrder    int    `json:"sortOrder" bson:"sortOrder"`
	IsActive     bool   `json:"isActive" bson:"isActive"`
}

// Genre is a dance genre offered by the school
type Genre struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	SchoolID  string `json:"schoolId" bson:"schoolId"`
	Slug      string `json:"slug" bson:"slug"`
	Label     string `json:"label" bson:"label"`
	SortOrder int    `json:"sortOrder" bson:"sortOrder"`
	IsActive  bool   `json:"isActive" bson:"isActive"`
}

// Course is a recommendable course. Q2AnswerTags holds the display labels of
// the level/experience options it accepts; matching is against the option
// label, not its tag.
type Course struct {
	ID           string   `json:"id" bson:"_id,omitempty"`
	SchoolID     string   `json:"schoolId" bson:"schoolId"`
	Slug         string   `json:"slug" bson:"slug"`
	Label        string   `json:"label" bson:"label"`
	Q2AnswerTags []string `json:"q2AnswerTags" bson:"q2AnswerTags"`
	SortOrder    int      `json:"sortOrder" bson:"sortOrder"`
	IsActive     bool     `json:"isActive" bson:"isActive"`
}

// Instructor teaches at one or more campuses. Styles holds teaching style
// tags matched against the user's Q5 preference.
type Instructor struct {
	ID        string   `json:"id" bson:"_id,omitempty"`
	SchoolID  string   `json:"schoolId" bson:"schoolId"`
	Slug      string   `json:"slug" bson:"slug"`
	Label     string   `json:"label" bson:"label"`
	Styles    []string `json:"styles" bson:"styles"`
	CampusIDs []string `json:"campusIds" bson:"campusIds"`
	GenreIDs  []string `json:"genreIds" bson:"genreIds"`
	CourseIDs []string `json:"courseIds" bson:"courseIds"`
	SortOrder int      `json:"sortOrder" bson:"sortOrder"`
	IsActive  bool     `json:"isActive" bson:"isActive"`
}

// Lesson is a scheduled class at a campus; the class-like half of a scored
// candidate pair. Levels and Targets hold quiz option tags, Genres genre slugs.
type Lesson struct {
	ID            string   `json:"id" bson:"_id,omitempty"`
	SchoolID      string   `json:"schoolId" bson:"schoolId"`
	CampusID      string   `json:"campusId" bson:"campusId"`
	Name          string   `json:"name" bson:"name"`
	Genres        []string `json:"genres" bson:"genres"`
	Levels        []string `json:"levels" bson:"levels"`
	Targets       []string `json:"targets" bson:"targets"`
	InstructorIDs []string `json:"instructorIds" bson:"instructorIds"`
	SortOrder     int      `json:"sortOrder" bson:"sortOrder"`
	IsActive      bool     `json:"isActive" bson:"isActive"`
}
