package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kiran-8287/tavla/internal/ui"
)

// Card is a surface-coloured rounded container with an optional title
// row above its children and an optional footer below them.
type Card struct {
	*Container
	title string
}

// NewCard returns a card wrapping children.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(UniformSpacing(1)).
		WithAppliers(
			Background(PaletteSurface),
			func(base lipgloss.Style, theme Theme) lipgloss.Style {
				return base.BorderForeground(theme.Palette.Neutral.Muted)
			},
		)

	return &Card{Container: container}
}

// View renders the card under the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card under ctx, placing the title row
// inside the frame above the children.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	if c.title == "" {
		return c.Container.ViewWithContext(ctx)
	}

	theme := ctx.Theme.Normalize()
	content := theme.Typography.Title.Render(c.title)
	if len(c.layout.Children()) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, content, c.layout.ViewWithContext(ctx))
	}
	return c.frame(theme).Render(content)
}

// WithTitle sets the title row.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter appends a rule and the footer below the children.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.Add(NewDivider(), footer)
	return c
}

// AsContainer exposes the underlying container for further styling.
func (c *Card) AsContainer() *Container {
	return c.Container
}
