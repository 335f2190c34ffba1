package model

import "github.com/google/uuid"

// Go models matching the JSON content blob persisted with each resume.
// The blob is the source of truth for the editor; title/template/theme are
// duplicated at the top level of the record for cheap list display.

type Proficiency string

const (
	Beginner     Proficiency = "Beginner"
	Intermediate Proficiency = "Intermediate"
	Advanced     Proficiency = "Advanced"
	Expert       Proficiency = "Expert"
)

// Valid reports whether p is one of the four known levels. The persisted
// schema enforces the same set, so anything else must never reach a blob.
func (p Proficiency) Valid() bool {
	switch p {
	case Beginner, Intermediate, Advanced, Expert:
		return true
	}
	return false
}

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

type Education struct {
	ID           string `json:"id"`
	Degree       string `json:"degree"`
	Institution  string `json:"institution"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	GPA          string `json:"gpa,omitempty"`
}

type Experience struct {
	ID               string   `json:"id"`
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
}

type Skill struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

type Document struct {
	Title        string       `json:"title"`
	Template     string       `json:"template"`
	Theme        string       `json:"theme"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	Skills       []Skill      `json:"skills"`
}

// DefaultDocument returns the blank document a freshly created resume starts
// from: modern template, blue theme, empty sections.
func DefaultDocument() Document {
	return Document{
		Title:      "My Resume",
		Template:   "modern",
		Theme:      "blue",
		Education:  []Education{},
		Experience: []Experience{},
		Skills:     []Skill{},
	}
}

// Entry constructors assign a fresh unique id. Ids are never reused and never
// drive ordering; display order is list position.

func NewEducation() Education {
	return Education{ID: uuid.NewString()}
}

func NewExperience() Experience {
	return Experience{ID: uuid.NewString()}
}

func NewSkill(name string, proficiency Proficiency) Skill {
	if !proficiency.Valid() {
		proficiency = Intermediate
	}
	return Skill{ID: uuid.NewString(), Name: name, Proficiency: proficiency}
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the session's internal slices.
func (d Document) Clone() Document {
	out := d
	out.Education = append([]Education(nil), d.Education...)
	out.Experience = make([]Experience, len(d.Experience))
	for i, e := range d.Experience {
		c := e
		c.Responsibilities = append([]string(nil), e.Responsibilities...)
		c.Technologies = append([]string(nil), e.Technologies...)
		c.Achievements = append([]string(nil), e.Achievements...)
		out.Experience[i] = c
	}
	out.Skills = append([]Skill(nil), d.Skills...)
	return out
}
