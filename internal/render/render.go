package render

import (
	"bytes"
	"html/template"
	"strings"

	"resume-builder/internal/catalog"
	"resume-builder/internal/model"
)

// The renderer is a pure projection: document in, HTML out. All five
// templates run through one section pipeline; only the Style descriptor and
// the single-column/sidebar structural switch differ between them.

type expView struct {
	Title      string
	Company    string
	Range      string
	Desc       string
	Highlights []string
	TechLine   string
}

type eduView struct {
	DegreeLine  string
	Institution string
	Range       string
	GPA         string
}

type skillView struct {
	Name        string
	Proficiency string
	Segments    []bool
}

type view struct {
	Title   string
	Style   Style
	Name    string
	Contact []string
	Summary string

	Experience []expView
	Education  []eduView
	Skills     []skillView

	Font          template.CSS
	HeadingFont   template.CSS
	LineHeight    template.CSS
	SectionGap    template.CSS
	SubsectionGap template.CSS

	Primary    template.CSS
	Secondary  template.CSS
	Accent     template.CSS
	Text       template.CSS
	TextLight  template.CSS
	Border     template.CSS
	Background template.CSS

	NameColor      template.CSS
	HeadingColor   template.CSS
	HeaderRuleCSS  template.CSS
	HeadingRuleCSS template.CSS
}

// segmentsFor maps proficiency to filled bar segments out of four.
func segmentsFor(p model.Proficiency) []bool {
	filled := 0
	switch p {
	case model.Beginner:
		filled = 1
	case model.Intermediate:
		filled = 2
	case model.Advanced:
		filled = 3
	case model.Expert:
		filled = 4
	}
	segs := make([]bool, 4)
	for i := 0; i < filled; i++ {
		segs[i] = true
	}
	return segs
}

func ruleCSS(kind string, theme catalog.ColorTheme, width string) template.CSS {
	switch kind {
	case "primary":
		return template.CSS(width + " solid " + theme.Primary)
	case "border":
		return template.CSS(width + " solid " + theme.Border)
	}
	return "none"
}

func buildView(doc model.Document) view {
	id := catalog.TemplateID(doc.Template)
	meta := catalog.Template(id)
	theme := catalog.Theme(doc.Theme)
	style := styles[id]

	v := view{
		Title:   doc.Title,
		Style:   style,
		Name:    doc.PersonalInfo.FullName,
		Summary: doc.PersonalInfo.Summary,

		Font:          template.CSS(meta.FontFamily),
		HeadingFont:   template.CSS(meta.HeadingFont),
		LineHeight:    template.CSS(meta.Spacing.Line),
		SectionGap:    template.CSS(meta.Spacing.Section),
		SubsectionGap: template.CSS(meta.Spacing.Subsection),

		Primary:    template.CSS(theme.Primary),
		Secondary:  template.CSS(theme.Secondary),
		Accent:     template.CSS(theme.Accent),
		Text:       template.CSS(theme.Text),
		TextLight:  template.CSS(theme.TextLight),
		Border:     template.CSS(theme.Border),
		Background: template.CSS(theme.Background),
	}

	v.NameColor = v.Primary
	if style.NameUsesSecondary {
		v.NameColor = v.Secondary
	}
	v.HeadingColor = v.Primary
	if id == "classic" {
		v.HeadingColor = v.Secondary
	}
	if id == "minimal" {
		v.HeadingColor = v.TextLight
	}
	v.HeaderRuleCSS = ruleCSS(style.HeaderRule, theme, "3px")
	v.HeadingRuleCSS = ruleCSS(style.HeadingRule, theme, "2px")

	for _, c := range []string{doc.PersonalInfo.Email, doc.PersonalInfo.Phone, doc.PersonalInfo.Location} {
		if c != "" {
			v.Contact = append(v.Contact, c)
		}
	}

	for _, e := range doc.Experience {
		ev := expView{
			Title:   e.JobTitle,
			Company: e.Company,
			Range:   DateRange(e.StartDate, e.EndDate, style.DateSep),
			Desc:    e.Description,
		}
		ev.Highlights = append(ev.Highlights, e.Responsibilities...)
		ev.Highlights = append(ev.Highlights, e.Achievements...)
		if len(e.Technologies) > 0 {
			ev.TechLine = strings.Join(e.Technologies, " · ")
		}
		v.Experience = append(v.Experience, ev)
	}

	for _, e := range doc.Education {
		line := e.Degree
		if e.FieldOfStudy != "" {
			if line != "" {
				line += " in " + e.FieldOfStudy
			} else {
				line = e.FieldOfStudy
			}
		}
		v.Education = append(v.Education, eduView{
			DegreeLine:  line,
			Institution: e.Institution,
			Range:       DateRange(e.StartDate, e.EndDate, style.DateSep),
			GPA:         e.GPA,
		})
	}

	for _, s := range doc.Skills {
		v.Skills = append(v.Skills, skillView{
			Name:        s.Name,
			Proficiency: string(s.Proficiency),
			Segments:    segmentsFor(s.Proficiency),
		})
	}

	return v
}

// Render projects a document through its template into a standalone HTML
// page sized for an A4 sheet. It never mutates the document and renders the
// same output for the same input.
func Render(doc model.Document) (string, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, buildView(doc)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var page = template.Must(template.New("resume").Parse(pageTemplate))

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: {{.Font}}; color: {{.Text}}; background: {{.Background}}; line-height: {{.LineHeight}}; font-size: 10.5pt; }
h1, h2, h3 { font-family: {{.HeadingFont}}; }
h1 { font-size: 22pt; color: {{.NameColor}}; margin-bottom: 6px; }
h2 { font-size: 12pt; color: {{.HeadingColor}}; margin-bottom: 10px; padding-bottom: 3px; border-bottom: {{.HeadingRuleCSS}}; {{if .Style.UppercaseHeadings}}text-transform: uppercase; letter-spacing: 0.05em;{{end}} }
h3 { font-size: 11pt; color: {{.Secondary}}; }
.sheet { width: 210mm; min-height: 297mm; margin: 0 auto; background: {{.Background}}; {{if .Style.Sidebar}}display: flex;{{end}} }
.page { padding: 14mm 16mm; }
.header { margin-bottom: {{.SectionGap}}; padding-bottom: 12px; border-bottom: {{.HeaderRuleCSS}}; {{if .Style.CenterHeader}}text-align: center;{{end}} }
.contact { color: {{.TextLight}}; font-size: 9.5pt; }
.contact span + span::before { content: "\2022"; margin: 0 8px; color: {{.Border}}; }
.section { margin-bottom: {{.SectionGap}}; }
.summary p { color: {{.Text}}; }
.summary.boxed { background: {{.Primary}}14; border-radius: 8px; padding: 12px 14px; }
.bar-accent { display: inline-block; width: 32px; height: 4px; border-radius: 2px; background: {{.Accent}}; margin-right: 8px; vertical-align: middle; }
.entry { margin-bottom: {{.SubsectionGap}}; }
.entry-head { display: flex; justify-content: space-between; align-items: baseline; }
.entry-sub { color: {{.TextLight}}; font-weight: 600; font-size: 10pt; }
.entry-dates { color: {{.TextLight}}; font-size: 9pt; white-space: nowrap; }
.entry-body { margin-top: 4px; }
.entry-list { margin: 4px 0 0 18px; }
.entry-tech { margin-top: 4px; color: {{.TextLight}}; font-size: 9pt; }
.skill { margin-bottom: 8px; }
.skill-name { font-weight: 600; font-size: 10pt; }
.skill-level { color: {{.TextLight}}; font-size: 9pt; }
.skill-bar { display: flex; gap: 3px; margin-top: 3px; }
.skill-bar span { flex: 1; height: 5px; border-radius: 3px; background: {{.Border}}; }
.skill-bar span.filled { background: {{.Primary}}; }
.sidebar { width: 33%; padding: 14mm 8mm; background: {{.Primary}}10; }
.main { flex: 1; padding: 14mm 10mm; }
</style>
</head>
<body>
<div class="sheet">
{{if .Style.Sidebar}}
<aside class="sidebar">
{{if .Contact}}<section class="section contact-block">
<h2>Contact</h2>
{{range .Contact}}<p class="skill-level">{{.}}</p>
{{end}}</section>{{end}}
{{if .Skills}}<section class="section skills">
<h2>{{.Style.SkillsHeading}}</h2>
{{range .Skills}}<div class="skill">
<p class="skill-name">{{.Name}}</p>
{{if $.Style.SkillBars}}<div class="skill-bar">{{range .Segments}}<span{{if .}} class="filled"{{end}}></span>{{end}}</div>
{{else}}<span class="skill-level">{{.Proficiency}}</span>{{end}}
</div>
{{end}}</section>{{end}}
</aside>
<main class="main">
<header class="header">
{{if .Name}}<h1>{{.Name}}</h1>{{end}}
{{if .Summary}}<p class="summary-inline" style="color: {{.TextLight}}">{{.Summary}}</p>{{end}}
</header>
{{template "experience" .}}
{{template "education" .}}
</main>
{{else}}
<div class="page">
<header class="header">
{{if .Name}}<h1>{{.Name}}</h1>{{end}}
{{if .Contact}}<div class="contact">{{range .Contact}}<span>{{.}}</span>{{end}}</div>{{end}}
</header>
{{if .Summary}}<section class="section summary{{if .Style.SummaryBox}} boxed{{end}}">
{{if .Style.SummaryHeading}}<h2>{{if .Style.HeadingAccentBar}}<span class="bar-accent"></span>{{end}}{{.Style.SummaryHeading}}</h2>{{end}}
<p>{{.Summary}}</p>
</section>{{end}}
{{template "experience" .}}
{{template "education" .}}
{{if .Skills}}<section class="section skills">
<h2>{{if .Style.HeadingAccentBar}}<span class="bar-accent"></span>{{end}}{{.Style.SkillsHeading}}</h2>
{{range .Skills}}<div class="skill"><span class="skill-name">{{.Name}}</span> <span class="skill-level">{{.Proficiency}}</span></div>
{{end}}</section>{{end}}
</div>
{{end}}
</div>
</body>
</html>

{{define "experience"}}{{if .Experience}}<section class="section experience">
<h2>{{if .Style.HeadingAccentBar}}<span class="bar-accent"></span>{{end}}{{.Style.ExperienceHeading}}</h2>
{{range .Experience}}<div class="entry">
<div class="entry-head">
<div>
{{if .Title}}<h3>{{.Title}}</h3>{{end}}
{{if .Company}}<p class="entry-sub">{{.Company}}</p>{{end}}
</div>
<span class="entry-dates">{{.Range}}</span>
</div>
{{if .Desc}}<p class="entry-body">{{.Desc}}</p>{{end}}
{{if .Highlights}}<ul class="entry-list">{{range .Highlights}}<li>{{.}}</li>
{{end}}</ul>{{end}}
{{if .TechLine}}<p class="entry-tech">{{.TechLine}}</p>{{end}}
</div>
{{end}}</section>{{end}}{{end}}

{{define "education"}}{{if .Education}}<section class="section education">
<h2>{{if .Style.HeadingAccentBar}}<span class="bar-accent"></span>{{end}}{{.Style.EducationHeading}}</h2>
{{range .Education}}<div class="entry">
<div class="entry-head">
<div>
{{if .DegreeLine}}<h3>{{.DegreeLine}}</h3>{{end}}
{{if .Institution}}<p class="entry-sub">{{.Institution}}</p>{{end}}
</div>
<span class="entry-dates">{{.Range}}</span>
</div>
{{if .GPA}}<p class="entry-body">GPA: {{.GPA}}</p>{{end}}
</div>
{{end}}</section>{{end}}{{end}}
`
