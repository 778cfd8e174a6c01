package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header renders a title line with an optional subtitle beneath it,
// drawn with the theme's title and subtitle typography.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader returns a header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
}

// View renders the header under the default theme.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header under the context's theme.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme.Normalize()
	title := h.StyleOver(theme.Typography.Title, theme).Render(h.title)
	if h.subtitle == "" {
		return title
	}

	subtitle := theme.Typography.Subtitle.Render(h.subtitle)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// WithSubtitle sets the subtitle.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers appends theme-aware style modifiers for the title line.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}
