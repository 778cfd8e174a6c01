package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestThemeToggleCycleOrder(t *testing.T) {
	t.Parallel()

	toggle := NewThemeToggle(ThemeToggleConfig{Mode: ModeLight})
	require.Equal(t, ModeDark, toggle.NextMode())

	toggle.SetMode(ModeDark)
	require.Equal(t, ModeAuto, toggle.NextMode())

	toggle.SetMode(ModeAuto)
	require.Equal(t, ModeLight, toggle.NextMode())
}

func TestThemeToggleNormalizesUnknownModes(t *testing.T) {
	t.Parallel()

	toggle := NewThemeToggle(ThemeToggleConfig{Mode: "dusk"})
	require.Equal(t, ModeAuto, toggle.Mode())

	toggle.SetMode("midnight")
	require.Equal(t, ModeAuto, toggle.Mode())
}

func TestThemeToggleEmitsWithoutSelfMutating(t *testing.T) {
	t.Parallel()

	var emitted string
	toggle := NewThemeToggle(ThemeToggleConfig{
		Mode:     ModeLight,
		OnToggle: func(next string) { emitted = next },
	})

	toggle.Cycle()
	require.Equal(t, ModeDark, emitted)
	require.Equal(t, ModeLight, toggle.Mode())

	toggle.SetMode(emitted)
	require.Equal(t, ModeDark, toggle.Mode())
}

func TestThemeToggleKeysAdvanceTheCycle(t *testing.T) {
	t.Parallel()

	var emissions []string
	toggle := NewThemeToggle(ThemeToggleConfig{
		Mode:     ModeLight,
		OnToggle: func(next string) { emissions = append(emissions, next) },
	})

	// Blurred toggles ignore keys entirely.
	toggle, _ = toggle.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.Empty(t, emissions)

	toggle.Focus()
	toggle, _ = toggle.Update(tea.KeyMsg{Type: tea.KeySpace})
	toggle, _ = toggle.Update(tea.KeyMsg{Type: tea.KeyEnter})
	toggle, _ = toggle.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})

	require.Equal(t, []string{ModeDark, ModeDark, ModeDark}, emissions)
}

func TestThemeToggleViewShowsSlotsAndResolvedHint(t *testing.T) {
	t.Parallel()

	toggle := NewThemeToggle(ThemeToggleConfig{Mode: ModeAuto, Dark: true})
	view := toggle.View()
	require.Contains(t, view, ModeLight)
	require.Contains(t, view, ModeDark)
	require.Contains(t, view, ModeAuto)
	require.Contains(t, view, "→ dark")

	toggle.SetResolvedDark(false)
	require.Contains(t, toggle.View(), "→ light")
}
