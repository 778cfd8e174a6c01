package gallery

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reloadTickMsg:
		if !m.loading {
			return m, nil
		}
		m.reloadStage++
		if m.reloadStage < reloadStages {
			return m, reloadTickCmd()
		}
		return m, loadRecordsCmd(m.dataPath)

	case rowsLoadedMsg:
		m.loading = false
		m.reloadStage = 0
		m.table.SetLoading(false)

		if msg.err != nil {
			m.log.Error(msg.err, "data reload failed")
			m.setStatus(fmt.Sprintf("reload failed: %v", msg.err), true)
			return m, expireStatusCmd()
		}

		m.data = msg.rows
		m.applyFilter()
		m.setStatus(fmt.Sprintf("loaded %d records", len(msg.rows)), false)
		return m, expireStatusCmd()

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.log.Error(msg.err, "clipboard copy failed")
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("copied %d rows as TSV", msg.count), false)
		}
		return m, expireStatusCmd()

	case statusExpiredMsg:
		m.clearStatus()
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys by view mode and filter focus.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.viewMode == ViewHelp {
		return m.handleHelpKeys(msg)
	}
	if m.filtering {
		return m.handleFilterKeys(msg)
	}
	return m.handleTableKeys(msg)
}

// handleTableKeys handles keys in the main table view
func (m *Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.filtering = true
		m.table.Blur()
		return m, m.filter.Focus()

	case "t":
		if err := m.themes.Cycle(); err != nil {
			m.setStatus(fmt.Sprintf("theme not saved: %v", err), true)
		} else {
			m.setStatus(fmt.Sprintf("theme mode: %s", m.themes.Mode()), false)
		}
		m.toggle.SetMode(m.themes.Mode())
		m.toggle.SetResolvedDark(m.themes.Dark())
		return m, expireStatusCmd()

	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.reloadStage = 0
		m.table.SetLoading(true)
		return m, tea.Batch(m.spinner.Tick, reloadTickCmd())

	case "c":
		if len(m.selection) == 0 {
			m.setStatus("nothing selected to copy", true)
			return m, expireStatusCmd()
		}
		return m, copySelectionCmd(m.cols, m.selection)

	case "x":
		m.data = nil
		m.selection = nil
		m.applyFilter()
		m.clearStatus()
		return m, nil

	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}

	// Everything else belongs to the table: cursor movement, header
	// cursor, sorting, and the selection keys. The selection emitted
	// during Update is fed back afterwards to complete the round trip.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.table.SetSelected(m.selection)
	return m, cmd
}

// handleFilterKeys handles keys while the filter input is focused
func (m *Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filter.SetValue("")
		m.filter.Blur()
		m.filtering = false
		m.applyFilter()
		m.table.Focus()
		return m, nil

	case "enter":
		m.filter.Blur()
		m.filtering = false
		m.table.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// handleHelpKeys handles keys in the help view
func (m *Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.viewMode = ViewTable
		return m, nil
	}
	return m, nil
}
