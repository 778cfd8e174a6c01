package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kiran-8287/tavla/internal/ui"
)

// Direction is a stack's layout axis.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack lays out children along one axis with an optional gap between
// them. Context-aware children receive the stack's render context, so a
// theme set at the top of a tree reaches every leaf.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack returns a vertical stack of children.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		align:         lipgloss.Left,
	}
}

// VStack returns a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack returns a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack under the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack under ctx. Nil children and children
// that render to nothing are skipped.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	if len(views) == 0 {
		return style.Render("")
	}

	if s.direction == DirectionHorizontal {
		return style.Render(s.joinHorizontal(views))
	}
	return style.Render(s.joinVertical(views))
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap <= 0 {
		return lipgloss.JoinVertical(s.align, views...)
	}

	// A spacer of gap-1 newlines splits into exactly gap blank lines.
	spacer := strings.Repeat("\n", s.gap-1)
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinVertical(s.align, parts...)
}

func (s *Stack) joinHorizontal(views []string) string {
	if s.gap <= 0 {
		return lipgloss.JoinHorizontal(s.align, views...)
	}

	spacer := strings.Repeat(" ", s.gap)
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinHorizontal(s.align, parts...)
}

// WithDirection sets the layout axis.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children, in lines for vertical
// stacks and columns for horizontal ones.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis position children are joined at. For a
// vertical stack this is Left/Center/Right; for a horizontal stack,
// Top/Center/Bottom.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// WithStyle sets the raw base style of the stack frame.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers appends theme-aware style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// SetChildren replaces all children.
func (s *Stack) SetChildren(children []ui.Renderable) *Stack {
	s.children = children
	return s
}
