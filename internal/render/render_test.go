package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func sampleDocument() model.Document {
	d := model.DefaultDocument()
	d.Title = "Backend CV"
	d.PersonalInfo = model.PersonalInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Location: "Berlin",
		Summary:  "Backend engineer with a focus on distributed systems.",
	}
	d.Experience = append(d.Experience, model.Experience{
		ID:               "e1",
		JobTitle:         "Engineer",
		Company:          "Acme",
		StartDate:        "2020-01",
		EndDate:          "",
		Description:      "Built the billing pipeline.",
		Responsibilities: []string{"Owned the invoicing service"},
		Technologies:     []string{"Go", "Postgres"},
	})
	d.Education = append(d.Education, model.Education{
		ID:           "ed1",
		Degree:       "BSc",
		Institution:  "TU Berlin",
		FieldOfStudy: "Computer Science",
		StartDate:    "2014-10",
		EndDate:      "2018-09",
		GPA:          "3.8",
	})
	d.Skills = append(d.Skills, model.Skill{ID: "s1", Name: "Go", Proficiency: model.Advanced})
	return d
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderModernEndToEnd(t *testing.T) {
	html, err := Render(sampleDocument())
	require.NoError(t, err)

	assert.Contains(t, html, "Engineer")
	assert.Contains(t, html, "Acme")
	assert.Contains(t, html, "Jan 2020 - Present")

	page := parse(t, html)
	assert.Equal(t, "Jane Doe", page.Find("h1").Text())
	assert.Contains(t, page.Find(".section.summary h2").Text(), "Professional Summary")
	assert.Equal(t, 1, page.Find(".section.experience .entry").Length())
	assert.Contains(t, page.Find(".section.education").Text(), "BSc in Computer Science")
	assert.Contains(t, page.Find(".section.education").Text(), "GPA: 3.8")
	assert.Contains(t, page.Find(".contact").Text(), "jane@example.com")
}

func TestRenderIsIdempotent(t *testing.T) {
	d := sampleDocument()
	first, err := Render(d)
	require.NoError(t, err)
	second, err := Render(d)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderDoesNotMutateDocument(t *testing.T) {
	d := sampleDocument()
	before := d.Clone()
	for id := range styles {
		d.Template = id
		before.Template = id
		_, err := Render(d)
		require.NoError(t, err)
		assert.Equal(t, before, d, "template %s", id)
	}
}

func TestTemplateSwitchKeepsContent(t *testing.T) {
	d := sampleDocument()
	for id := range styles {
		d.Template = id
		html, err := Render(d)
		require.NoError(t, err)
		for _, want := range []string{"Jane Doe", "Engineer", "Acme", "TU Berlin", "Go"} {
			assert.Contains(t, html, want, "template %s", id)
		}
	}
}

func TestEmptySectionsAreSuppressed(t *testing.T) {
	d := model.DefaultDocument()
	d.PersonalInfo.FullName = "Jane Doe"
	for id := range styles {
		d.Template = id
		html, err := Render(d)
		require.NoError(t, err)

		page := parse(t, html)
		assert.Equal(t, 0, page.Find(".section.experience").Length(), "template %s", id)
		assert.Equal(t, 0, page.Find(".section.education").Length(), "template %s", id)
		assert.Equal(t, 0, page.Find(".section.skills").Length(), "template %s", id)
		assert.Equal(t, 0, page.Find(".section.summary").Length(), "template %s", id)
	}
}

func TestUnknownTemplateRendersAsModern(t *testing.T) {
	d := sampleDocument()
	d.Template = "modern"
	want, err := Render(d)
	require.NoError(t, err)

	d.Template = "brutalist"
	got, err := Render(d)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUnknownThemeRendersAsBlue(t *testing.T) {
	d := sampleDocument()
	d.Theme = "blue"
	want, err := Render(d)
	require.NoError(t, err)

	d.Theme = "neon"
	got, err := Render(d)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfessionalSidebarSkillBars(t *testing.T) {
	d := sampleDocument()
	d.Template = "professional"
	d.Skills = []model.Skill{
		{ID: "s1", Name: "Go", Proficiency: model.Beginner},
		{ID: "s2", Name: "SQL", Proficiency: model.Expert},
	}
	html, err := Render(d)
	require.NoError(t, err)

	page := parse(t, html)
	assert.Equal(t, 1, page.Find(".sidebar").Length())
	bars := page.Find(".skill-bar")
	require.Equal(t, 2, bars.Length())
	assert.Equal(t, 4, bars.Eq(0).Find("span").Length())
	assert.Equal(t, 1, bars.Eq(0).Find("span.filled").Length())
	assert.Equal(t, 4, bars.Eq(1).Find("span.filled").Length())
}

func TestSingleColumnTemplatesShowProficiencyLabel(t *testing.T) {
	d := sampleDocument()
	d.Template = "modern"
	html, err := Render(d)
	require.NoError(t, err)

	page := parse(t, html)
	assert.Equal(t, 0, page.Find(".skill-bar").Length())
	assert.Contains(t, page.Find(".section.skills").Text(), "Advanced")
}

func TestStyleHeadings(t *testing.T) {
	d := sampleDocument()

	d.Template = "classic"
	html, err := Render(d)
	require.NoError(t, err)
	assert.Contains(t, html, "Professional Experience")
	assert.Contains(t, html, "Skills &amp; Competencies")

	d.Template = "minimal"
	html, err = Render(d)
	require.NoError(t, err)
	page := parse(t, html)
	assert.Equal(t, 0, page.Find(".section.summary h2").Length())
	assert.Contains(t, page.Find(".section.summary").Text(), "distributed systems")
}
