package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2021-03", "Mar 2021"},
		{"2019-12", "Dec 2019"},
		{"2020-01", "Jan 2020"},
		{"", "Present"},
		{"soon", "soon"},
		{"2021-13", "2021-13"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in), "FormatDate(%q)", tt.in)
	}
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "Jan 2020 - Present", DateRange("2020-01", "", " - "))
	assert.Equal(t, "Mar 2021 — Dec 2021", DateRange("2021-03", "2021-12", " — "))
}
