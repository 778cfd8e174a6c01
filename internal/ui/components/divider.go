package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const dividerFallbackWidth = 40

// Divider renders a horizontal rule in the theme's muted neutral colour.
// With no explicit width it stretches to the context's MaxWidth, then
// ParentWidth, then a fixed fallback.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider returns a single-line rule.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// DashedDivider returns a dashed rule.
func DashedDivider() *Divider {
	return NewDivider().WithChar("-")
}

// DottedDivider returns a dotted rule.
func DottedDivider() *Divider {
	return NewDivider().WithChar("·")
}

// DoubleDivider returns a double-line rule.
func DoubleDivider() *Divider {
	return NewDivider().WithChar("═")
}

// ThickDivider returns a thick rule.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}

// View renders the rule under the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the rule under ctx.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.MaxWidth
	}
	if width <= 0 {
		width = ctx.ParentWidth
	}
	if width <= 0 {
		width = dividerFallbackWidth
	}

	theme := ctx.Theme.Normalize()
	base := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted)
	return d.StyleOver(base, theme).Render(strings.Repeat(d.char, width))
}

// WithChar sets the rule character. Empty input keeps the current one.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth pins the rule to an explicit width in cells.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers appends theme-aware style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}

// Width returns the pinned width; 0 means the rule sizes from context.
func (d *Divider) Width() int {
	return d.width
}
