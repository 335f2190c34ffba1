package model

import "encoding/json"

// Encode serializes the document to its persisted form, the opaque content
// string stored alongside the denormalized title/template/theme columns.
func (d Document) Encode() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FromContent decodes a persisted content blob. A missing, malformed or
// schema-invalid blob degrades to the default document carrying only the
// persisted title; that recovery is silent on purpose.
func FromContent(content, title string) Document {
	fallback := func() Document {
		d := DefaultDocument()
		if title != "" {
			d.Title = title
		}
		return d
	}
	if content == "" {
		return fallback()
	}
	if err := ValidateContent([]byte(content)); err != nil {
		return fallback()
	}
	var d Document
	if err := json.Unmarshal([]byte(content), &d); err != nil {
		return fallback()
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	return d
}
