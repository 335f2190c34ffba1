package editor

import (
	"sync"
	"time"
)

// Scheduler is the debounce policy behind autosave: a single pending timer
// slot, canceled and re-armed on every mutation. Only the last schedule
// within a quiet window fires.
type Scheduler struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewScheduler(delay time.Duration) *Scheduler {
	return &Scheduler{delay: delay}
}

// Schedule arms the slot, replacing any pending fire.
func (s *Scheduler) Schedule(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, fn)
}

// Cancel drops a pending fire, if any. An already started fn is not
// interrupted; in-flight work runs to completion.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
