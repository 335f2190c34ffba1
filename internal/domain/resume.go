package domain

import "time"

// Resume is the persisted record. Content is the opaque JSON blob holding
// the full document; title/template/colorTheme are denormalized copies for
// list display. Ids are opaque strings on the client side.
type Resume struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId,omitempty"`
	Title      string    `json:"title"`
	Template   string    `json:"template"`
	ColorTheme string    `json:"colorTheme"`
	Content    string    `json:"content,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ResumeSummary is the projection served by list endpoints.
type ResumeSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Template  string    `json:"template,omitempty"`
}

// ResumeUpdate is the PUT payload. A title-only update is a rename; a full
// update carries the serialized document.
type ResumeUpdate struct {
	Title      string `json:"title"`
	Template   string `json:"template,omitempty"`
	ColorTheme string `json:"colorTheme,omitempty"`
	Content    string `json:"content,omitempty"`
}

func (r Resume) Summary() ResumeSummary {
	return ResumeSummary{
		ID:        r.ID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Template:  r.Template,
	}
}
