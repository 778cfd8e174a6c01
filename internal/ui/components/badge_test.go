package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestBadgeRendersPaddedChip(t *testing.T) {
	t.Parallel()

	// Colours drop without a TTY; the chip padding survives.
	require.Equal(t, " ok ", NewBadge("ok").View())
	require.Equal(t, 4, lipgloss.Width(SuccessBadge("ok").View()))
}

func TestBadgeVariantsPickPaletteSlots(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	require.Equal(t, theme.Palette.Success.Base, theme.Badge.For(BadgeVariantSuccess).GetBackground())
	require.Equal(t, theme.Palette.Warning.Base, theme.Badge.For(BadgeVariantWarning).GetBackground())
	require.Equal(t, theme.Palette.Danger.Base, theme.Badge.For(BadgeVariantDanger).GetBackground())
	require.Equal(t, theme.Palette.Neutral.Base, theme.Badge.For(BadgeVariantDefault).GetBackground())
}

func TestBadgeTextUpdates(t *testing.T) {
	t.Parallel()

	badge := InfoBadge("new")
	require.Equal(t, "new", badge.Text())

	badge.SetText("seen")
	require.Equal(t, "seen", badge.Text())
	require.Equal(t, " seen ", badge.View())
}

func TestBadgeAppliersLayerOverVariant(t *testing.T) {
	t.Parallel()

	badge := NewBadge("hi").WithAppliers(PaddingX(SpacingSizeSmall))
	require.Equal(t, "  hi  ", badge.View())
}
