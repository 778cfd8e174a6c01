package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kiran-8287/tavla/internal/ui"
)

// Container is a box around a stack of children: border, padding and
// margin on the outside, a Stack layout on the inside.
type Container struct {
	BaseComponent
	layout       *Stack
	border       lipgloss.Border
	borderColour lipgloss.TerminalColor
	padding      Spacing
	margin       Spacing
}

// NewContainer returns a borderless container stacking children
// vertically.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container under the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container under ctx. An empty container
// still renders its frame.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(ctx)
	}
	return c.frame(ctx.Theme).Render(content)
}

// frame resolves the outer style: base style and appliers first, then
// border, padding and margin.
func (c *Container) frame(theme Theme) lipgloss.Style {
	style := c.ComputeStyle(theme)

	if c.border.Top != "" {
		style = style.BorderStyle(c.border)
		if c.borderColour != nil {
			style = style.BorderForeground(c.borderColour)
		}
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}
	if !c.margin.IsZero() {
		style = style.Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left)
	}
	return style
}

// WithBorder sets the border drawn around the children.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithBorderForeground sets the border colour.
func (c *Container) WithBorderForeground(colour lipgloss.TerminalColor) *Container {
	c.borderColour = colour
	return c
}

// WithPadding sets the inner spacing.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the outer spacing.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithStyle sets the raw base style of the frame.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers appends theme-aware style modifiers to the frame.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithDirection sets the layout axis of the inner stack.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithAlign sets the cross-axis position of the inner stack.
func (c *Container) WithAlign(align lipgloss.Position) *Container {
	c.layout.WithAlign(align)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// SetChildren replaces all children.
func (c *Container) SetChildren(children []ui.Renderable) *Container {
	c.layout.SetChildren(children)
	return c
}
