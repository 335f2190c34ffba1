package editor

import (
	"context"
	"strings"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Session owns exactly one in-memory document for the lifetime of an editing
// session. Every mutation goes through it, every mutation re-arms the
// autosave scheduler, and observers only ever see full snapshots.

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusLoadError
)

type SaveState int

const (
	SaveIdle SaveState = iota
	SaveSaving
	SaveError
)

// Store is the persistence collaborator, narrowed to what the editor needs.
type Store interface {
	GetResume(ctx context.Context, id string) (*domain.Resume, error)
	UpdateResume(ctx context.Context, id string, up domain.ResumeUpdate) error
}

// Exporter turns a rendered preview into a downloadable file and returns
// its path.
type Exporter interface {
	Export(ctx context.Context, html, baseName string) (string, error)
}

const DefaultSaveDelay = 2 * time.Second

// The editing flow is split into five ordered stages.
var StepTitles = [...]string{
	"Title & Design",
	"Personal Info",
	"Experience",
	"Education",
	"Skills",
}

type Session struct {
	store    Store
	notifier Notifier
	exporter Exporter
	sched    *Scheduler

	mu        sync.Mutex
	id        string
	doc       model.Document
	status    Status
	saveState SaveState
	step      int
	lastSaved time.Time
}

type Option func(*Session)

func WithNotifier(n Notifier) Option { return func(s *Session) { s.notifier = n } }
func WithExporter(e Exporter) Option { return func(s *Session) { s.exporter = e } }
func WithSaveDelay(d time.Duration) Option {
	return func(s *Session) { s.sched = NewScheduler(d) }
}

func NewSession(store Store, opts ...Option) *Session {
	s := &Session{
		store:    store,
		notifier: LogNotifier{},
		sched:    NewScheduler(DefaultSaveDelay),
		status:   StatusLoading,
		doc:      model.DefaultDocument(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load fetches the persisted record. A fetch failure is fatal to the
// session; a content blob that does not parse is not - it degrades to a
// default document seeded with the persisted title.
func (s *Session) Load(ctx context.Context, id string) error {
	s.mu.Lock()
	s.id = id
	s.status = StatusLoading
	s.mu.Unlock()

	rec, err := s.store.GetResume(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusLoadError
		s.notifier.Error("Failed to load resume")
		return err
	}
	s.doc = model.FromContent(rec.Content, rec.Title)
	s.status = StatusReady
	return nil
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) SaveStatus() SaveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveState
}

func (s *Session) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// Document returns a snapshot; mutating it does not touch session state.
func (s *Session) Document() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// mutate applies one atomic edit to a fresh copy of the document and arms
// the autosave slot. Reports false without applying unless the session is
// ready.
func (s *Session) mutate(apply func(*model.Document)) bool {
	s.mu.Lock()
	if s.status != StatusReady {
		s.mu.Unlock()
		return false
	}
	doc := s.doc.Clone()
	apply(&doc)
	s.doc = doc
	s.mu.Unlock()
	s.sched.Schedule(s.autosave)
	return true
}

// UpdateField mutates a top-level or personal-info field by name.
func (s *Session) UpdateField(field, value string) {
	known := true
	s.mutate(func(d *model.Document) {
		switch field {
		case "title":
			d.Title = value
		case "template":
			d.Template = value
		case "theme":
			d.Theme = value
		case "fullName":
			d.PersonalInfo.FullName = value
		case "email":
			d.PersonalInfo.Email = value
		case "phone":
			d.PersonalInfo.Phone = value
		case "location":
			d.PersonalInfo.Location = value
		case "summary":
			d.PersonalInfo.Summary = value
		default:
			known = false
		}
	})
	if !known {
		s.notifier.Warn("Unknown field: " + field)
	}
}

func (s *Session) AddEducation() model.Education {
	entry := model.NewEducation()
	if !s.mutate(func(d *model.Document) {
		d.Education = append(d.Education, entry)
	}) {
		return model.Education{}
	}
	return entry
}

func (s *Session) UpdateEducation(id, field, value string) {
	s.mutate(func(d *model.Document) {
		for i := range d.Education {
			if d.Education[i].ID != id {
				continue
			}
			e := &d.Education[i]
			switch field {
			case "degree":
				e.Degree = value
			case "institution":
				e.Institution = value
			case "fieldOfStudy":
				e.FieldOfStudy = value
			case "startDate":
				e.StartDate = value
			case "endDate":
				e.EndDate = value
			case "gpa":
				e.GPA = value
			}
			return
		}
	})
}

func (s *Session) RemoveEducation(id string) {
	s.mutate(func(d *model.Document) {
		out := d.Education[:0]
		for _, e := range d.Education {
			if e.ID != id {
				out = append(out, e)
			}
		}
		d.Education = out
	})
}

func (s *Session) AddExperience() model.Experience {
	entry := model.NewExperience()
	if !s.mutate(func(d *model.Document) {
		d.Experience = append(d.Experience, entry)
	}) {
		return model.Experience{}
	}
	return entry
}

func (s *Session) UpdateExperience(id, field, value string) {
	s.mutate(func(d *model.Document) {
		for i := range d.Experience {
			if d.Experience[i].ID != id {
				continue
			}
			e := &d.Experience[i]
			switch field {
			case "jobTitle":
				e.JobTitle = value
			case "company":
				e.Company = value
			case "startDate":
				e.StartDate = value
			case "endDate":
				e.EndDate = value
			case "description":
				e.Description = value
			}
			return
		}
	})
}

func (s *Session) RemoveExperience(id string) {
	s.mutate(func(d *model.Document) {
		out := d.Experience[:0]
		for _, e := range d.Experience {
			if e.ID != id {
				out = append(out, e)
			}
		}
		d.Experience = out
	})
}

// AddSkill rejects blank names and unknown proficiency levels: nothing is
// appended and the user gets a warning instead of an error. An empty
// proficiency means the Intermediate default.
func (s *Session) AddSkill(name string, proficiency model.Proficiency) (model.Skill, bool) {
	if strings.TrimSpace(name) == "" {
		s.notifier.Warn("Skill name cannot be empty")
		return model.Skill{}, false
	}
	if proficiency != "" && !proficiency.Valid() {
		s.notifier.Warn("Unknown proficiency: " + string(proficiency))
		return model.Skill{}, false
	}
	entry := model.NewSkill(name, proficiency)
	if !s.mutate(func(d *model.Document) {
		d.Skills = append(d.Skills, entry)
	}) {
		return model.Skill{}, false
	}
	return entry, true
}

// UpdateSkill refuses a proficiency outside the known set; the stored blob
// must stay loadable by the schema that guards FromContent.
func (s *Session) UpdateSkill(id, field, value string) {
	if field == "proficiency" && !model.Proficiency(value).Valid() {
		s.notifier.Warn("Unknown proficiency: " + value)
		return
	}
	s.mutate(func(d *model.Document) {
		for i := range d.Skills {
			if d.Skills[i].ID != id {
				continue
			}
			switch field {
			case "name":
				d.Skills[i].Name = value
			case "proficiency":
				d.Skills[i].Proficiency = model.Proficiency(value)
			}
			return
		}
	})
}

func (s *Session) RemoveSkill(id string) {
	s.mutate(func(d *model.Document) {
		out := d.Skills[:0]
		for _, e := range d.Skills {
			if e.ID != id {
				out = append(out, e)
			}
		}
		d.Skills = out
	})
}

// Step navigation. Next and Previous saturate at the ends of the range.

func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) StepTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StepTitles[s.step]
}

func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step < len(StepTitles)-1 {
		s.step++
	}
}

func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step > 0 {
		s.step--
	}
}

// Finish forces an immediate save, bypassing the debounce. A failed write is
// reported but does not block completion; the snapshot is not lost, only
// the round-trip.
func (s *Session) Finish(ctx context.Context) error {
	s.sched.Cancel()
	if err := s.saveNow(ctx); err != nil {
		s.notifier.Error("Failed to save changes")
		s.ackSaveError()
		return err
	}
	return nil
}

// autosave runs on scheduler fire: one write of the snapshot as of now.
// A mutation during the write starts its own debounce cycle; the write in
// flight completes against its captured snapshot. Last write wins.
func (s *Session) autosave() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.saveNow(ctx); err != nil {
		s.notifier.Warn("Failed to save changes")
		s.ackSaveError()
	}
}

// ackSaveError returns the sub-status to idle once the failure has been
// reported. Editing stays possible while disconnected; the next mutation
// simply schedules another attempt.
func (s *Session) ackSaveError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveState == SaveError {
		s.saveState = SaveIdle
	}
}

func (s *Session) saveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.status != StatusReady {
		s.mu.Unlock()
		return nil
	}
	id := s.id
	snap := s.doc.Clone()
	s.saveState = SaveSaving
	s.mu.Unlock()

	content, err := snap.Encode()
	if err == nil {
		err = s.store.UpdateResume(ctx, id, domain.ResumeUpdate{
			Title:      snap.Title,
			Template:   snap.Template,
			ColorTheme: snap.Theme,
			Content:    content,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.saveState = SaveError
		return err
	}
	s.saveState = SaveIdle
	s.lastSaved = time.Now()
	return nil
}

// Preview renders the current document through its template.
func (s *Session) Preview() (string, error) {
	return render.Render(s.Document())
}

// ExportPDF renders the current preview and hands it to the export engine.
// Failures never touch the document and the export can simply be retried.
func (s *Session) ExportPDF(ctx context.Context) (string, error) {
	if s.exporter == nil {
		s.notifier.Error("PDF export is not available")
		return "", ErrNoExporter
	}
	doc := s.Document()
	html, err := render.Render(doc)
	if err != nil {
		s.notifier.Error("Failed to export PDF")
		return "", err
	}
	base := doc.PersonalInfo.FullName
	if base == "" {
		base = doc.Title
	}
	if base == "" {
		base = "resume"
	}
	s.notifier.Info("Generating PDF...")
	path, err := s.exporter.Export(ctx, html, base)
	if err != nil {
		s.notifier.Error("Failed to export PDF")
		return "", err
	}
	s.notifier.Info("PDF downloaded successfully!")
	return path, nil
}
