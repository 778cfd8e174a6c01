package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestInputRoundTripsValue(t *testing.T) {
	t.Parallel()

	in := NewInput(InputConfig{Label: "Name", Value: "Dana"})
	require.Equal(t, "Dana", in.Value())

	in.SetValue("ana")
	require.Equal(t, "ana", in.Value())
}

func TestInputUpdateForwardsKeysWhenFocused(t *testing.T) {
	t.Parallel()

	in := NewInput(InputConfig{Placeholder: "type here"})

	// Blurred inputs swallow nothing and change nothing.
	in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Equal(t, "", in.Value())

	in.Focus()
	in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h', 'i'}})
	require.Equal(t, "hi", in.Value())
}

func TestInputErrorCaptionTogglesInView(t *testing.T) {
	t.Parallel()

	in := NewInput(InputConfig{Label: "Locale"})
	in.SetError("not a valid BCP 47 tag")

	view := in.View()
	require.Contains(t, view, "Locale")
	require.Contains(t, view, "not a valid BCP 47 tag")

	in.SetError("")
	require.NotContains(t, in.View(), "not a valid BCP 47 tag")
}

func TestInputCharLimitApplies(t *testing.T) {
	t.Parallel()

	in := NewInput(InputConfig{CharLimit: 3})
	in.SetValue("overflow")
	require.LessOrEqual(t, len(in.Value()), 3)
}

func TestInputFocusAndBlur(t *testing.T) {
	t.Parallel()

	in := NewInput(InputConfig{})
	require.False(t, in.Focused())

	_ = in.Focus()
	require.True(t, in.Focused())

	in.Blur()
	require.False(t, in.Focused())
}
