package catalog

// Static registry of color themes and template metadata. The renderer takes
// every color and font from here; it never hardcodes its own. Unknown ids
// resolve to the documented defaults instead of failing.

const (
	DefaultTemplate = "modern"
	DefaultTheme    = "blue"
)

type ColorTheme struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	TextLight  string
	Border     string
	Background string
}

type Spacing struct {
	Section    string
	Subsection string
	Line       string
}

type TemplateMeta struct {
	DisplayName string
	Description string
	FontFamily  string
	HeadingFont string
	Spacing     Spacing
}

var Themes = map[string]ColorTheme{
	"blue": {
		Primary:    "#2563eb",
		Secondary:  "#1e40af",
		Accent:     "#3b82f6",
		Text:       "#1f2937",
		TextLight:  "#6b7280",
		Border:     "#e5e7eb",
		Background: "#ffffff",
	},
	"green": {
		Primary:    "#059669",
		Secondary:  "#047857",
		Accent:     "#10b981",
		Text:       "#1f2937",
		TextLight:  "#6b7280",
		Border:     "#e5e7eb",
		Background: "#ffffff",
	},
	"purple": {
		Primary:    "#7c3aed",
		Secondary:  "#6d28d9",
		Accent:     "#8b5cf6",
		Text:       "#1f2937",
		TextLight:  "#6b7280",
		Border:     "#e5e7eb",
		Background: "#ffffff",
	},
	"red": {
		Primary:    "#dc2626",
		Secondary:  "#b91c1c",
		Accent:     "#ef4444",
		Text:       "#1f2937",
		TextLight:  "#6b7280",
		Border:     "#e5e7eb",
		Background: "#ffffff",
	},
	"orange": {
		Primary:    "#ea580c",
		Secondary:  "#c2410c",
		Accent:     "#f97316",
		Text:       "#1f2937",
		TextLight:  "#6b7280",
		Border:     "#e5e7eb",
		Background: "#ffffff",
	},
	"gray": {
		Primary:    "#374151",
		Secondary:  "#1f2937",
		Accent:     "#4b5563",
		Text:       "#1f2937",
		TextLight:  "#6b7280",
		Border:     "#e5e7eb",
		Background: "#ffffff",
	},
}

var Templates = map[string]TemplateMeta{
	"modern": {
		DisplayName: "Modern",
		Description: "Clean and contemporary design with bold headings",
		FontFamily:  "'Inter', -apple-system, sans-serif",
		HeadingFont: "'Inter', -apple-system, sans-serif",
		Spacing:     Spacing{Section: "1.5rem", Subsection: "1rem", Line: "1.6"},
	},
	"classic": {
		DisplayName: "Classic",
		Description: "Traditional resume format with serif fonts",
		FontFamily:  "'Georgia', 'Times New Roman', serif",
		HeadingFont: "'Georgia', 'Times New Roman', serif",
		Spacing:     Spacing{Section: "1.25rem", Subsection: "0.875rem", Line: "1.5"},
	},
	"minimal": {
		DisplayName: "Minimal",
		Description: "Simple and elegant with lots of whitespace",
		FontFamily:  "'Helvetica Neue', Arial, sans-serif",
		HeadingFont: "'Helvetica Neue', Arial, sans-serif",
		Spacing:     Spacing{Section: "2rem", Subsection: "1.25rem", Line: "1.7"},
	},
	"professional": {
		DisplayName: "Professional",
		Description: "Corporate-friendly format with structured layout",
		FontFamily:  "'Calibri', 'Segoe UI', sans-serif",
		HeadingFont: "'Calibri', 'Segoe UI', sans-serif",
		Spacing:     Spacing{Section: "1.5rem", Subsection: "1rem", Line: "1.5"},
	},
	"creative": {
		DisplayName: "Creative",
		Description: "Eye-catching design for creative professionals",
		FontFamily:  "'Poppins', 'Helvetica', sans-serif",
		HeadingFont: "'Poppins', 'Helvetica', sans-serif",
		Spacing:     Spacing{Section: "1.75rem", Subsection: "1.125rem", Line: "1.65"},
	},
}

// Theme resolves a theme id, falling back to the default palette.
func Theme(id string) ColorTheme {
	if t, ok := Themes[id]; ok {
		return t
	}
	return Themes[DefaultTheme]
}

// Template resolves a template id, falling back to the default template.
func Template(id string) TemplateMeta {
	if t, ok := Templates[id]; ok {
		return t
	}
	return Templates[DefaultTemplate]
}

// TemplateID normalizes a template id to a known member of the set.
func TemplateID(id string) string {
	if _, ok := Templates[id]; ok {
		return id
	}
	return DefaultTemplate
}
