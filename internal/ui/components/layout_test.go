package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/kiran-8287/tavla/internal/ui"
)

func TestStackJoinsVertically(t *testing.T) {
	t.Parallel()

	lines := strings.Split(VStack(NewText("alpha"), NewText("beta")).View(), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "alpha", strings.TrimRight(lines[0], " "))
	require.Equal(t, "beta", strings.TrimRight(lines[1], " "))
}

func TestStackGapInsertsBlankLines(t *testing.T) {
	t.Parallel()

	lines := strings.Split(VStack(NewText("a"), NewText("b")).WithGap(2).View(), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "a", lines[0])
	require.Empty(t, strings.TrimSpace(lines[1]))
	require.Empty(t, strings.TrimSpace(lines[2]))
	require.Equal(t, "b", lines[3])
}

func TestStackJoinsHorizontallyWithGap(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a  b", HStack(NewText("a"), NewText("b")).WithGap(2).View())
}

func TestStackAlignsOnCrossAxis(t *testing.T) {
	t.Parallel()

	tall := NewText("x\ny")
	lines := strings.Split(HStack(tall, NewText("z")).WithAlign(lipgloss.Bottom).View(), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "x", strings.TrimRight(lines[0], " "))
	require.Equal(t, "yz", lines[1])
}

func TestStackSkipsNilAndEmptyChildren(t *testing.T) {
	t.Parallel()

	require.Equal(t, "x", VStack(nil, NewText(""), NewText("x")).View())
}

func TestStackHandsContextToChildren(t *testing.T) {
	t.Parallel()

	// The divider has no pinned width, so it must pick up MaxWidth
	// through the stack.
	ctx := DefaultContext().WithMaxWidth(10)
	view := VStack(NewDivider()).ViewWithContext(ctx)
	require.Equal(t, 10, lipgloss.Width(view))
}

func TestStackChildManagement(t *testing.T) {
	t.Parallel()

	stack := NewStack()
	stack.Add(NewText("a"), NewText("b"))
	require.Len(t, stack.Children(), 2)

	stack.SetChildren([]ui.Renderable{NewText("c")})
	require.Equal(t, "c", stack.View())
}

func TestDividerWidthResolution(t *testing.T) {
	t.Parallel()

	require.Equal(t, "─────", NewDivider().WithWidth(5).View())

	ctx := DefaultContext().WithMaxWidth(8)
	require.Equal(t, 8, lipgloss.Width(NewDivider().ViewWithContext(ctx)))

	parent := RenderContext{Theme: DefaultTheme(), ParentWidth: 6}
	require.Equal(t, 6, lipgloss.Width(NewDivider().ViewWithContext(parent)))

	require.Equal(t, 40, lipgloss.Width(NewDivider().View()))
}

func TestDividerPresetCharacters(t *testing.T) {
	t.Parallel()

	require.Equal(t, "---", DashedDivider().WithWidth(3).View())
	require.Equal(t, "━━━", ThickDivider().WithWidth(3).View())
	require.Equal(t, "═══", DoubleDivider().WithWidth(3).View())

	// An empty char request keeps the current rule character.
	require.Equal(t, "··", DottedDivider().WithChar("").WithWidth(2).View())
}
