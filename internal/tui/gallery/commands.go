package gallery

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kiran-8287/tavla/internal/config"
	"github.com/kiran-8287/tavla/internal/ui/components"
)

const reloadStageDelay = 120 * time.Millisecond

// reloadTickCmd advances the staged reload after a short delay.
func reloadTickCmd() tea.Cmd {
	return tea.Tick(reloadStageDelay, func(time.Time) tea.Msg {
		return reloadTickMsg{}
	})
}

// loadRecordsCmd reads records from the data file, or falls back to the
// built-in sample set when no path is configured.
func loadRecordsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return rowsLoadedMsg{rows: SampleRecords()}
		}

		raw, err := config.LoadRecords(path)
		if err != nil {
			return rowsLoadedMsg{err: err}
		}

		rows := make([]components.Record, len(raw))
		for i, rec := range raw {
			rows[i] = components.Record(rec)
		}
		return rowsLoadedMsg{rows: rows}
	}
}

// copySelectionCmd writes the selection to the system clipboard as
// tab-separated values, one line per record in click order.
func copySelectionCmd(cols []components.Column, selection []components.Record) tea.Cmd {
	return func() tea.Msg {
		text := selectionTSV(cols, selection)
		if err := clipboard.WriteAll(text); err != nil {
			return clipboardCopiedMsg{err: err}
		}
		return clipboardCopiedMsg{count: len(selection)}
	}
}

func selectionTSV(cols []components.Column, selection []components.Record) string {
	var b strings.Builder

	titles := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.Title
	}
	b.WriteString(strings.Join(titles, "\t"))

	for _, rec := range selection {
		values := make([]string, len(cols))
		for i, col := range cols {
			field := col.Field
			if field == "" {
				field = col.Key
			}
			if v := rec[field]; v != nil {
				values[i] = fmt.Sprint(v)
			}
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(values, "\t"))
	}

	return b.String()
}

// expireStatusCmd clears the status line after a few seconds.
func expireStatusCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}
