package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiran-8287/tavla/internal/theme"
	"github.com/kiran-8287/tavla/internal/ui/components"
)

func newTestModel() *Model {
	return NewModel(Config{
		Themes:  theme.NewManager(theme.Options{Detector: func() bool { return false }}),
		Records: SampleRecords(),
	})
}

func recordNames(rows []components.Record) []string {
	names := make([]string, len(rows))
	for i, rec := range rows {
		names[i], _ = rec["name"].(string)
	}
	return names
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, ViewTable, m.viewMode)
	assert.False(t, m.Loading())
	assert.Empty(t, m.Selection())
	assert.Len(t, m.table.Rows(), 6)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
}

func TestNewModel_NilThemeManager(t *testing.T) {
	m := NewModel(Config{Records: SampleRecords()})

	require.NotNil(t, m.themes)
	assert.NotEmpty(t, m.View())
}

func TestNewModel_StartsLoading(t *testing.T) {
	m := NewModel(Config{
		Themes:  theme.NewManager(theme.Options{Detector: func() bool { return false }}),
		Loading: true,
	})

	assert.True(t, m.Loading())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading...")
}

func TestApplyFilter_NarrowsToFuzzyMatches(t *testing.T) {
	m := newTestModel()

	m.filter.SetValue("eng")
	m.applyFilter()

	rows := m.table.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "ana", rows[0]["name"])
	assert.Equal(t, "eng", m.FilterQuery())
}

func TestApplyFilter_RanksBestMatchFirst(t *testing.T) {
	m := newTestModel()

	// "ana" matches ana, Dana, and Bob (captain ashore); the exact
	// prefix match outranks the input order, which starts with Dana.
	m.filter.SetValue("ana")
	m.applyFilter()

	names := recordNames(m.table.Rows())
	require.Len(t, names, 3)
	assert.Equal(t, "ana", names[0])
	assert.ElementsMatch(t, []string{"ana", "Dana", "Bob"}, names)
}

func TestApplyFilter_EmptyQueryRestoresAll(t *testing.T) {
	m := newTestModel()

	m.filter.SetValue("eng")
	m.applyFilter()
	require.Len(t, m.table.Rows(), 1)

	m.filter.SetValue("")
	m.applyFilter()

	assert.Len(t, m.table.Rows(), 6)
	assert.Empty(t, m.FilterQuery())
}

func TestApplyFilter_SelectionSurvivesFiltering(t *testing.T) {
	m := newTestModel()

	m.applySelection([]components.Record{m.data[0]})
	m.table.SetSelected(m.selection)

	m.filter.SetValue("eng")
	m.applyFilter()

	// Dana is filtered out of view but stays selected.
	require.Len(t, m.table.Rows(), 1)
	require.Len(t, m.Selection(), 1)
	assert.Equal(t, "Dana", m.Selection()[0]["name"])

	m.filter.SetValue("")
	m.applyFilter()

	assert.Equal(t, components.CheckPartial, m.table.HeaderCheckState())
}

func TestSearchText_JoinsDisplayFields(t *testing.T) {
	rec := components.Record{"id": 1, "name": "Dana", "role": "navigator", "age": 35, "status": "aboard"}

	assert.Equal(t, "Dana navigator aboard", searchText(rec))
}

func TestStatusCellRendersBadges(t *testing.T) {
	cell := statusCell(components.DefaultTheme)

	// Chip padding survives even without a colour profile.
	assert.Equal(t, " aboard ", cell("aboard", nil, 0))
	assert.Equal(t, " hiding ", cell("hiding", nil, 0))
	assert.Empty(t, cell(nil, nil, 0))
}

func TestSetStatus_ClearStatus(t *testing.T) {
	m := newTestModel()

	m.setStatus("saved", false)
	assert.Equal(t, "saved", m.StatusLine())
	assert.False(t, m.statusIsErr)

	m.setStatus("broken", true)
	assert.True(t, m.statusIsErr)

	m.clearStatus()
	assert.Empty(t, m.StatusLine())
	assert.False(t, m.statusIsErr)
}
