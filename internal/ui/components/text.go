package components

import "github.com/charmbracelet/lipgloss"

// Text renders a styled span of content.
type Text struct {
	BaseComponent
	content string
}

// NewText returns an unstyled text span.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the span under the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the span under the context's theme.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Content returns the current content.
func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the raw base style.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers appends theme-aware style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText renders content with the theme's title typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// SubtitleText renders content with the theme's subtitle typography.
func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantSubtitle))
}

// EmphasisText renders content with the theme's emphasis typography.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantEmphasis))
}

// CodeText renders content with the theme's code typography.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCode))
}

// FaintText renders content with the theme's light font weight.
func FaintText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantFontLight))
}
