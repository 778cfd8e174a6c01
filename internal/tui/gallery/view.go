package gallery

import (
	"fmt"
	"strings"

	"github.com/kiran-8287/tavla/internal/ui"
	"github.com/kiran-8287/tavla/internal/ui/components"
)

// View renders the current model state
func (m *Model) View() string {
	theme := m.themes.Theme()

	if m.width < minWidth || m.height < minHeight {
		alert := components.WarningAlert(fmt.Sprintf(
			"Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight,
		))
		return alert.ViewWithContext(components.DefaultContext().WithTheme(theme))
	}

	if m.viewMode == ViewHelp {
		return m.renderHelpView(theme)
	}
	return m.renderTableView(theme)
}

// renderTableView renders the main gallery screen
func (m *Model) renderTableView(theme components.Theme) string {
	ctx := components.DefaultContext().WithTheme(theme)

	var content strings.Builder

	content.WriteString(m.renderHeader(theme))
	content.WriteString("\n")
	content.WriteString(m.renderSummary(theme))
	content.WriteString("\n\n")

	if m.filtering || m.filterQuery != "" {
		content.WriteString(m.filter.ViewWithContext(ctx))
		content.WriteString("\n")
	}

	content.WriteString(m.table.ViewWithContext(ctx))
	content.WriteString("\n")

	if m.statusMsg != "" {
		content.WriteString(m.renderStatus(theme))
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter(theme))

	return content.String()
}

// renderHeader renders the title bar with the theme toggle on the right
func (m *Model) renderHeader(theme components.Theme) string {
	ctx := components.DefaultContext().WithTheme(theme)

	title := components.NewHeader("Tavla Gallery").WithSubtitle("widgets on deck")
	return components.HStack(title, &m.toggle).WithGap(2).ViewWithContext(ctx)
}

// renderSummary renders the record, selection, and sort summary line
func (m *Model) renderSummary(theme components.Theme) string {
	parts := []string{
		fmt.Sprintf("%d records", len(m.table.Rows())),
		fmt.Sprintf("%d selected", len(m.selection)),
	}

	if len(m.data) > 0 && !m.loading {
		coverage := float64(len(m.selection)) / float64(len(m.data))
		parts = append(parts, m.progress.ViewAs(coverage))
	}
	if sortState := m.table.SortState(); sortState.Order != components.SortNone {
		parts = append(parts, fmt.Sprintf("sort: %s %s", sortState.Column, sortState.Order))
	}
	if m.filterQuery != "" {
		parts = append(parts, fmt.Sprintf("filter: %q", m.filterQuery))
	}
	parts = append(parts, fmt.Sprintf("theme: %s", m.themes.Mode()))
	if m.loading {
		pct := float64(m.reloadStage) / float64(reloadStages)
		parts = append(parts, fmt.Sprintf("%s reloading %s", m.spinner.View(), m.progress.ViewAs(pct)))
	}

	return summaryStyle(theme).Render(strings.Join(parts, "  •  "))
}

// renderStatus renders the transient status line
func (m *Model) renderStatus(theme components.Theme) string {
	if m.statusIsErr {
		return statusErrorStyle(theme).Render(m.statusMsg)
	}
	return statusInfoStyle(theme).Render(m.statusMsg)
}

// renderFooter renders the keyboard hints
func (m *Model) renderFooter(theme components.Theme) string {
	hints := []string{
		"↑/↓: rows",
		"←/→: columns",
		"s: sort",
		"space: select",
		"a: all",
		"/: filter",
		"t: theme",
		"r: reload",
		"c: copy",
		"x: clear",
		"?: help",
		"q: quit",
	}
	return footerStyle(theme).Render(strings.Join(hints, "  "))
}

// renderHelpView renders the help overlay as a card
func (m *Model) renderHelpView(theme components.Theme) string {
	rows := [][2]string{
		{"↑/↓, j/k", "Move the row cursor"},
		{"←/→, h/l", "Move the header cursor across sortable columns"},
		{"s", "Cycle sort on the focused column"},
		{"space", "Toggle the cursor row's checkbox"},
		{"enter", "Activate the cursor row"},
		{"a", "Toggle all rows"},
		{"/", "Edit the fuzzy filter (enter keeps it, esc clears it)"},
		{"t", "Cycle theme mode: light, dark, auto"},
		{"r", "Reload records"},
		{"c", "Copy the selection as TSV"},
		{"x", "Clear the rows to show the empty state"},
		{"q", "Quit"},
	}

	keyStyle := helpKeyStyle(theme)
	entries := make([]ui.Renderable, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, components.HStack(
			components.NewText(row[0]).WithStyle(keyStyle),
			components.NewText(row[1]),
		).WithGap(1))
	}

	card := components.NewCard(components.VStack(entries...)).
		WithTitle("Gallery Keys").
		WithFooter(components.SubtitleText("Press ? or esc to close"))

	return card.ViewWithContext(components.DefaultContext().WithTheme(theme))
}
