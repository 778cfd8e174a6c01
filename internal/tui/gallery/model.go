package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/collate"

	"github.com/kiran-8287/tavla/internal/logger"
	"github.com/kiran-8287/tavla/internal/theme"
	"github.com/kiran-8287/tavla/internal/ui/components"
)

const (
	minWidth  = 60
	minHeight = 16

	reloadStages = 4
)

// Config carries the gallery dependencies and start-up state.
type Config struct {
	Themes   *theme.Manager
	Logger   *logger.Logger
	Records  []components.Record
	DataPath string
	Loading  bool
	Collator *collate.Collator
}

// Model is the main gallery model
type Model struct {
	// Widgets
	table  components.Table
	filter components.Input
	toggle components.ThemeToggle

	// Dependencies
	themes *theme.Manager
	log    *logger.Logger

	// Data state. data holds the unfiltered records; selection is owned
	// here and round-tripped into the table after every change. cols is
	// built once, closed over the theme manager so badge cells restyle
	// with the active theme.
	data      []components.Record
	selection []components.Record
	dataPath  string
	cols      []components.Column

	// UI state
	viewMode    ViewMode
	filtering   bool
	filterQuery string
	statusMsg   string
	statusIsErr bool

	// Reload state
	loading     bool
	reloadStage int
	spinner     spinner.Model
	progress    progress.Model

	// Dimensions
	width  int
	height int
}

// NewModel creates a gallery model around the given records.
func NewModel(cfg Config) *Model {
	m := &Model{
		themes:   cfg.Themes,
		log:      cfg.Logger,
		data:     cfg.Records,
		dataPath: cfg.DataPath,
		loading:  cfg.Loading,
		viewMode: ViewTable,
		width:    80,
		height:   24,
	}

	if m.themes == nil {
		m.themes = theme.NewManager(theme.Options{})
	}
	m.cols = galleryColumns(m.themes.Theme)

	s := spinner.New()
	s.Spinner = spinner.Dot
	m.spinner = s

	m.progress = progress.New(progress.WithDefaultGradient())
	m.progress.Width = 20

	tbl, err := components.NewTable(components.TableConfig{
		Columns:    m.cols,
		Selectable: true,
		OnSelect:   m.applySelection,
		Collator:   cfg.Collator,
	})
	if err != nil {
		// galleryColumns carries no duplicate keys; reaching this means a
		// programming error worth surfacing loudly.
		panic(err)
	}
	m.table = tbl
	m.table.Focus()
	m.table.SetLoading(m.loading)
	if err := m.table.SetRows(m.data); err != nil {
		m.setStatus(err.Error(), true)
	}

	m.filter = components.NewInput(components.InputConfig{
		Label:       "",
		Placeholder: "fuzzy filter",
		Width:       24,
	})

	m.toggle = components.NewThemeToggle(components.ThemeToggleConfig{
		Mode: m.themes.Mode(),
		Dark: m.themes.Dark(),
	})

	return m
}

// Init starts the spinner and, when the gallery opened in loading state,
// the staged reload.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.loading {
		cmds = append(cmds, reloadTickCmd())
	}
	return tea.Batch(cmds...)
}

// galleryColumns builds the crew columns. The status column renders as
// a badge, re-reading the theme through themeFn on every frame.
func galleryColumns(themeFn func() components.Theme) []components.Column {
	return []components.Column{
		{Key: "name", Title: "Name", Sortable: true},
		{Key: "role", Title: "Role", Sortable: true},
		{Key: "age", Title: "Age", Sortable: true},
		{Key: "status", Title: "Status", Renderer: statusCell(themeFn)},
	}
}

// statusCell renders a crew status as a badge in the matching tone.
func statusCell(themeFn func() components.Theme) func(any, components.Record, int) string {
	return func(value any, _ components.Record, _ int) string {
		if value == nil {
			return ""
		}

		status := fmt.Sprint(value)
		badge := components.NewBadge(status)
		switch status {
		case "aboard":
			badge.WithVariant(components.BadgeVariantSuccess)
		case "ashore":
			badge.WithVariant(components.BadgeVariantInfo)
		case "hiding":
			badge.WithVariant(components.BadgeVariantWarning)
		}

		return badge.ViewWithContext(components.DefaultContext().WithTheme(themeFn()))
	}
}

// SampleRecords returns the built-in demo data shown when no data file is
// given.
func SampleRecords() []components.Record {
	return []components.Record{
		{"id": 1, "name": "Dana", "role": "navigator", "age": 35, "status": "aboard"},
		{"id": 2, "name": "ana", "role": "engineer", "age": 28, "status": "aboard"},
		{"id": 3, "name": "Bob", "role": "captain", "age": 41, "status": "ashore"},
		{"id": 4, "name": "carl", "role": "stowaway", "age": 9, "status": "hiding"},
		{"id": 5, "name": "Erin", "role": "cook", "age": 33, "status": "aboard"},
		{"id": 6, "name": "Frida", "role": "lookout", "age": 26, "status": "ashore"},
	}
}

// Helper Methods

// applySelection is the table's OnSelect sink: the emitted sequence becomes
// the new host-owned selection. The table's Update runs on a copy, so the
// update loop feeds the selection back via SetSelected after Update returns
// rather than here.
func (m *Model) applySelection(rows []components.Record) {
	m.selection = rows
}

// applyFilter narrows the displayed rows to fuzzy matches of the query, in
// match rank order. An empty query restores the full data set.
func (m *Model) applyFilter() {
	m.filterQuery = m.filter.Value()

	rows := m.data
	if m.filterQuery != "" {
		haystack := make([]string, len(m.data))
		for i, rec := range m.data {
			haystack[i] = searchText(rec)
		}
		matches := fuzzy.Find(m.filterQuery, haystack)
		rows = make([]components.Record, 0, len(matches))
		for _, match := range matches {
			rows = append(rows, m.data[match.Index])
		}
	}

	if err := m.table.SetRows(rows); err != nil {
		m.setStatus(err.Error(), true)
	}
	m.table.SetSelected(m.selection)
}

func searchText(rec components.Record) string {
	parts := make([]string, 0, len(rec))
	for _, key := range []string{"name", "role", "status"} {
		if v, ok := rec[key]; ok && v != nil {
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(parts, " ")
}

// setStatus replaces the transient status line.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

func (m *Model) clearStatus() {
	m.statusMsg = ""
	m.statusIsErr = false
}

// Selection returns the host-owned selection.
func (m *Model) Selection() []components.Record {
	return m.selection
}

// Loading reports whether a staged reload is in flight.
func (m *Model) Loading() bool {
	return m.loading
}

// FilterQuery returns the active fuzzy filter text.
func (m *Model) FilterQuery() string {
	return m.filterQuery
}

// StatusLine returns the transient status message.
func (m *Model) StatusLine() string {
	return m.statusMsg
}
