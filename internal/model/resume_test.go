package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDocument(t *testing.T) {
	d := DefaultDocument()
	assert.Equal(t, "My Resume", d.Title)
	assert.Equal(t, "modern", d.Template)
	assert.Equal(t, "blue", d.Theme)
	assert.NotNil(t, d.Education)
	assert.NotNil(t, d.Experience)
	assert.NotNil(t, d.Skills)
	assert.Empty(t, d.Education)
	assert.Empty(t, d.Experience)
	assert.Empty(t, d.Skills)
}

func TestConstructorsAssignUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		for _, id := range []string{
			NewEducation().ID,
			NewExperience().ID,
			NewSkill("Go", Advanced).ID,
		} {
			require.NotEmpty(t, id)
			require.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	}
}

func TestNewSkillDefaultsProficiency(t *testing.T) {
	assert.Equal(t, Intermediate, NewSkill("Go", "").Proficiency)
	assert.Equal(t, Expert, NewSkill("Go", Expert).Proficiency)
	// out-of-enum levels never reach a blob the schema would reject
	assert.Equal(t, Intermediate, NewSkill("Go", "Ninja").Proficiency)
}

func TestProficiencyValid(t *testing.T) {
	for _, p := range []Proficiency{Beginner, Intermediate, Advanced, Expert} {
		assert.True(t, p.Valid(), "%s", p)
	}
	for _, p := range []Proficiency{"", "Ninja", "beginner", "EXPERT"} {
		assert.False(t, p.Valid(), "%q", p)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := DefaultDocument()
	d.Experience = append(d.Experience, Experience{
		ID:           "e1",
		JobTitle:     "Engineer",
		Technologies: []string{"Go"},
	})
	d.Skills = append(d.Skills, Skill{ID: "s1", Name: "Go", Proficiency: Advanced})

	c := d.Clone()
	c.Title = "Changed"
	c.Experience[0].JobTitle = "Manager"
	c.Experience[0].Technologies[0] = "Rust"
	c.Skills[0].Name = "Rust"

	assert.Equal(t, "My Resume", d.Title)
	assert.Equal(t, "Engineer", d.Experience[0].JobTitle)
	assert.Equal(t, "Go", d.Experience[0].Technologies[0])
	assert.Equal(t, "Go", d.Skills[0].Name)
}
