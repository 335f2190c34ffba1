package collection

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"resume-builder/internal/domain"
)

// Controller drives the dashboard: the user's resume list with client-side
// search and sort, plus create/rename/delete against the store.

type SortOrder int

const (
	SortRecent  SortOrder = iota // creation time, newest first
	SortUpdated                  // update time, newest first
	SortAlpha                    // title, ascending
)

type Store interface {
	ListResumes(ctx context.Context) ([]domain.ResumeSummary, error)
	CreateResume(ctx context.Context, title string) (*domain.ResumeSummary, error)
	UpdateResume(ctx context.Context, id string, up domain.ResumeUpdate) error
	DeleteResume(ctx context.Context, id string) error
}

type Controller struct {
	store Store

	mu      sync.Mutex
	resumes []domain.ResumeSummary
	search  string
	order   SortOrder
}

func NewController(store Store) *Controller {
	return &Controller{store: store}
}

// Refresh reloads the list from the store.
func (c *Controller) Refresh(ctx context.Context) error {
	list, err := c.store.ListResumes(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.resumes = list
	c.mu.Unlock()
	return nil
}

func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	c.search = term
	c.mu.Unlock()
}

func (c *Controller) SetSort(order SortOrder) {
	c.mu.Lock()
	c.order = order
	c.mu.Unlock()
}

// Resumes returns the filtered, sorted view of the list. Filtering is a
// case-insensitive substring match on the title.
func (c *Controller) Resumes() []domain.ResumeSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	term := strings.ToLower(c.search)
	out := make([]domain.ResumeSummary, 0, len(c.resumes))
	for _, r := range c.resumes {
		if term == "" || strings.Contains(strings.ToLower(r.Title), term) {
			out = append(out, r)
		}
	}

	switch c.order {
	case SortUpdated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	case SortAlpha:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// Create asks the store for a new blank resume and prepends it locally.
func (c *Controller) Create(ctx context.Context) (*domain.ResumeSummary, error) {
	created, err := c.store.CreateResume(ctx, "Untitled Resume")
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.resumes = append([]domain.ResumeSummary{*created}, c.resumes...)
	c.mu.Unlock()
	return created, nil
}

// Delete removes a resume after the confirm callback agrees. Deletion is
// irreversible, so a nil confirm means no.
func (c *Controller) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return nil
	}
	if err := c.store.DeleteResume(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	out := c.resumes[:0]
	for _, r := range c.resumes {
		if r.ID != id {
			out = append(out, r)
		}
	}
	c.resumes = out
	c.mu.Unlock()
	return nil
}

// Rename issues a title-only update and bumps the local updatedAt
// optimistically, before server confirmation.
func (c *Controller) Rename(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	c.mu.Lock()
	for i := range c.resumes {
		if c.resumes[i].ID == id {
			c.resumes[i].Title = title
			c.resumes[i].UpdatedAt = time.Now()
			break
		}
	}
	c.mu.Unlock()
	return c.store.UpdateResume(ctx, id, domain.ResumeUpdate{Title: title})
}
