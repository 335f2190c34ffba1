package render

// Style is the per-template descriptor that parameterizes the shared section
// pipeline. The five templates are five of these plus one structural switch
// (single column vs sidebar), not five independent renderers.
type Style struct {
	Sidebar bool

	// Section heading labels. An empty label renders the section body with
	// no heading (minimal/creative summary, professional summary-in-header).
	SummaryHeading    string
	ExperienceHeading string
	EducationHeading  string
	SkillsHeading     string

	UppercaseHeadings bool
	HeadingRule       string // "primary", "border" or ""
	HeadingAccentBar  bool   // creative: short accent bar before headings
	CenterHeader      bool
	HeaderRule        string // "primary", "border" or ""
	NameUsesSecondary bool
	SummaryBox        bool // creative: tinted summary panel
	SkillBars         bool // professional: 4-segment proficiency bars
	DateSep           string
}

var styles = map[string]Style{
	"modern": {
		SummaryHeading:    "Professional Summary",
		ExperienceHeading: "Experience",
		EducationHeading:  "Education",
		SkillsHeading:     "Skills",
		UppercaseHeadings: true,
		HeaderRule:        "primary",
		DateSep:           " - ",
	},
	"classic": {
		SummaryHeading:    "Summary",
		ExperienceHeading: "Professional Experience",
		EducationHeading:  "Education",
		SkillsHeading:     "Skills & Competencies",
		UppercaseHeadings: true,
		HeadingRule:       "border",
		CenterHeader:      true,
		HeaderRule:        "border",
		NameUsesSecondary: true,
		DateSep:           " - ",
	},
	"minimal": {
		ExperienceHeading: "Experience",
		EducationHeading:  "Education",
		SkillsHeading:     "Skills",
		UppercaseHeadings: true,
		DateSep:           " — ",
	},
	"professional": {
		Sidebar:           true,
		ExperienceHeading: "Experience",
		EducationHeading:  "Education",
		SkillsHeading:     "Skills",
		UppercaseHeadings: true,
		HeadingRule:       "primary",
		NameUsesSecondary: true,
		SkillBars:         true,
		DateSep:           " - ",
	},
	"creative": {
		ExperienceHeading: "Experience",
		EducationHeading:  "Education",
		SkillsHeading:     "Skills",
		HeadingAccentBar:  true,
		SummaryBox:        true,
		DateSep:           " - ",
	},
}
