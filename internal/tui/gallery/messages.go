package gallery

import (
	"github.com/kiran-8287/tavla/internal/ui/components"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewTable ViewMode = iota
	ViewHelp
)

// Reload Messages

// reloadTickMsg advances the staged reload progress.
type reloadTickMsg struct{}

// rowsLoadedMsg carries the records read from the data source.
type rowsLoadedMsg struct {
	rows []components.Record
	err  error
}

// Clipboard Messages

// clipboardCopiedMsg reports the outcome of copying the selection.
type clipboardCopiedMsg struct {
	count int
	err   error
}

// Status Messages

// statusExpiredMsg clears the transient status line.
type statusExpiredMsg struct{}
