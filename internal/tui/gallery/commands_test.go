package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiran-8287/tavla/internal/ui/components"
)

func TestLoadRecordsCmd_SampleFallback(t *testing.T) {
	cmd := loadRecordsCmd("")
	require.NotNil(t, cmd)

	// Execute command
	msg := cmd()
	loaded, ok := msg.(rowsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.Len(t, loaded.rows, 6)
	assert.Equal(t, "Dana", loaded.rows[0]["name"])
}

func TestLoadRecordsCmd_ReadsYamlFile(t *testing.T) {
	tmpDir := t.TempDir()
	dataPath := filepath.Join(tmpDir, "records.yaml")
	data := `- id: 1
  name: Ada
  role: analyst
- id: 2
  name: Lin
  role: pilot
`
	require.NoError(t, os.WriteFile(dataPath, []byte(data), 0644))

	cmd := loadRecordsCmd(dataPath)
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(rowsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	require.Len(t, loaded.rows, 2)
	assert.Equal(t, "Ada", loaded.rows[0]["name"])
	assert.Equal(t, "pilot", loaded.rows[1]["role"])
}

func TestLoadRecordsCmd_MissingFile(t *testing.T) {
	cmd := loadRecordsCmd("/nonexistent/records.yaml")
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(rowsLoadedMsg)
	require.True(t, ok)
	assert.Error(t, loaded.err)
	assert.Nil(t, loaded.rows)
}

func TestSelectionTSV(t *testing.T) {
	// TSV uses raw field values, not the badge renderer.
	cols := galleryColumns(components.DefaultTheme)
	selection := []components.Record{
		{"id": 3, "name": "Bob", "role": "captain", "age": 41, "status": "ashore"},
		{"id": 2, "name": "ana", "role": "engineer", "age": 28},
	}

	text := selectionTSV(cols, selection)

	assert.Equal(t,
		"Name\tRole\tAge\tStatus\n"+
			"Bob\tcaptain\t41\tashore\n"+
			"ana\tengineer\t28\t",
		text)
}

func TestSelectionTSV_EmptySelection(t *testing.T) {
	text := selectionTSV(galleryColumns(components.DefaultTheme), nil)

	// Header only.
	assert.Equal(t, "Name\tRole\tAge\tStatus", text)
}
