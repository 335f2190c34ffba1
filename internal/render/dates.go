package render

import (
	"fmt"
	"time"
)

// FormatDate renders a YYYY-MM value as "Mon YYYY". An empty value means the
// entry is ongoing and renders as "Present". Values that do not parse are
// passed through untouched rather than breaking the layout.
func FormatDate(s string) string {
	if s == "" {
		return "Present"
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2006")
}

// DateRange joins two formatted dates with the template's separator.
func DateRange(start, end, sep string) string {
	return fmt.Sprintf("%s%s%s", FormatDate(start), sep, FormatDate(end))
}
