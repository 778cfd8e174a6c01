package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlertRendersIconAndMessage(t *testing.T) {
	t.Parallel()

	view := SuccessAlert("saved").View()
	require.True(t, strings.HasPrefix(view, "┌"))
	require.Contains(t, view, "✓ saved")
}

func TestAlertTitleLineComesFirst(t *testing.T) {
	t.Parallel()

	view := DangerAlert("disk full").WithTitle("Write failed").View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[1], "Write failed")
	require.Contains(t, lines[2], "✗ disk full")
}

func TestAlertCustomIconOverridesTone(t *testing.T) {
	t.Parallel()

	view := InfoAlert("new mail").WithIcon("✉").View()
	require.Contains(t, view, "✉ new mail")
	require.NotContains(t, view, "ℹ")
}

func TestAlertMessageUpdates(t *testing.T) {
	t.Parallel()

	alert := NewAlert("first")
	require.Equal(t, "first", alert.Message())

	alert.SetMessage("second")
	require.Contains(t, alert.View(), "second")
}

func TestAlertTonesFallBackToInfo(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	require.Equal(t, "⚠", theme.Alert.For(AlertVariantWarning).Icon)
	require.Equal(t, "✗", theme.Alert.For(AlertVariantDanger).Icon)
	require.Equal(t, "✓", theme.Alert.For(AlertVariantSuccess).Icon)
	require.Equal(t, "ℹ", theme.Alert.For(AlertVariant(42)).Icon)
}
