package editor

import "log"

// Notifier carries user-facing notices (the toasts of the web UI). The
// editor reports through it and never fails hard on save or export errors.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// LogNotifier is the default sink when no UI is attached.
type LogNotifier struct{}

func (LogNotifier) Info(msg string)  { log.Printf("info: %s", msg) }
func (LogNotifier) Warn(msg string)  { log.Printf("warning: %s", msg) }
func (LogNotifier) Error(msg string) { log.Printf("error: %s", msg) }
