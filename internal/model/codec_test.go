package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := DefaultDocument()
	d.Title = "Backend CV"
	d.Template = "classic"
	d.Theme = "green"
	d.PersonalInfo.FullName = "Jane Doe"
	d.Experience = append(d.Experience, Experience{
		ID:        "e1",
		JobTitle:  "Engineer",
		Company:   "Acme",
		StartDate: "2020-01",
	})
	d.Skills = append(d.Skills, Skill{ID: "s1", Name: "Go", Proficiency: Expert})

	content, err := d.Encode()
	require.NoError(t, err)

	got := FromContent(content, "ignored when blob is valid")
	assert.Equal(t, d, got)
}

func TestFromContentFallback(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty blob", ""},
		{"malformed json", `{"title": `},
		{"wrong shape", `[1,2,3]`},
		{"schema invalid", `{"title":"x","template":"modern","theme":"blue","personalInfo":{},"skills":[{"id":"s1","name":"Go","proficiency":"Guru"}]}`},
		{"missing required fields", `{"title":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromContent(tt.content, "Persisted Title")
			want := DefaultDocument()
			want.Title = "Persisted Title"
			assert.Equal(t, want, got)
		})
	}
}

func TestFromContentEmptyTitleKeepsDefault(t *testing.T) {
	got := FromContent("", "")
	assert.Equal(t, "My Resume", got.Title)
}

func TestFromContentNormalizesNilSlices(t *testing.T) {
	got := FromContent(`{"title":"x","template":"modern","theme":"blue","personalInfo":{}}`, "")
	assert.Equal(t, "x", got.Title)
	assert.NotNil(t, got.Education)
	assert.NotNil(t, got.Experience)
	assert.NotNil(t, got.Skills)
}
