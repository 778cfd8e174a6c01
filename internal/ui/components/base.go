package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kiran-8287/tavla/internal/ui"
)

// StyleFunc transforms a style using values from the active theme. Appliers
// are the unit of composition for theme-aware styling: a component holds a
// chain of them and runs the chain against the render theme, so the same
// component restyles itself when the theme changes.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent carries the styling state shared by every component: a raw
// base style plus the applier chain resolved at render time. Embed it and
// call ComputeStyle (or StyleOver) from the component's view method.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent returns an unstyled base.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle resolves the component's effective style against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return b.StyleOver(b.style, theme)
}

// StyleOver runs the applier chain over base instead of the component's raw
// style. Components with a theme-supplied starting style use this so user
// appliers still layer on top.
func (b *BaseComponent) StyleOver(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range b.appliers {
		base = fn(base, theme)
	}
	return base
}

// SetStyle replaces the raw base style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the applier chain.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = appliers
}

// AddAppliers appends to the applier chain.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	b.appliers = append(b.appliers, appliers...)
}

// Spacing is four-sided spacing in cells, clockwise from the top.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing returns equal spacing on all four sides.
func UniformSpacing(n int) Spacing {
	return Spacing{Top: n, Right: n, Bottom: n, Left: n}
}

// SymmetricSpacing returns spacing paired by axis.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether every side is zero.
func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

// RenderContext carries the theme and layout hints into a render call.
// The theme travels explicitly rather than through ambient package state,
// so two widgets on one screen can render under different themes and
// parallel tests cannot bleed into each other.
type RenderContext struct {
	Theme Theme

	// MaxWidth caps the rendered width in cells; 0 means unconstrained.
	MaxWidth int

	// ParentWidth is the width of the enclosing block, when the caller
	// knows it. Components that stretch (dividers) consult it.
	ParentWidth int
}

// DefaultContext returns a context carrying the default theme and no
// layout hints.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context with theme swapped in.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithMaxWidth returns a copy of the context capped at width cells.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

// ContextualRenderable is a Renderable that can consume a RenderContext.
// Containers hand their context down to children that implement it.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild renders child under ctx when it is context-aware, falling
// back to its plain View otherwise.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if c, ok := child.(ContextualRenderable); ok {
		return c.ViewWithContext(ctx)
	}
	return child.View()
}
