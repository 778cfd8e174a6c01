package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kiran-8287/tavla/internal/ui"
)

// AlertVariant selects an alert's tone.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantDanger
)

// For returns the tone for variant.
func (s AlertStyles) For(variant AlertVariant) AlertTone {
	switch variant {
	case AlertVariantSuccess:
		return s.Success
	case AlertVariantWarning:
		return s.Warning
	case AlertVariantDanger:
		return s.Danger
	default:
		return s.Info
	}
}

// Alert is a bordered notification box. The variant picks the accent
// colour and default icon from the theme; WithIcon overrides the icon.
type Alert struct {
	BaseComponent
	message string
	title   string
	icon    string
	variant AlertVariant
}

// NewAlert returns an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// View renders the alert under the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert under the context's theme.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme.Normalize()
	tone := theme.Alert.For(a.variant)

	icon := a.icon
	if icon == "" {
		icon = tone.Icon
	}

	accent := lipgloss.NewStyle().Foreground(tone.Accent)

	children := make([]ui.Renderable, 0, 2)
	if a.title != "" {
		children = append(children, NewText(a.title).WithStyle(accent.Bold(true)))
	}
	children = append(children, NewText(icon+" "+a.message))

	box := NewContainer(children...).
		WithBorder(theme.Borders.Normal).
		WithBorderForeground(tone.Accent).
		WithPadding(SymmetricSpacing(0, 1))

	return a.ComputeStyle(theme).Render(box.ViewWithContext(ctx))
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithIcon overrides the tone's default icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title line above the message.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithAppliers appends theme-aware style modifiers wrapped around the
// rendered box.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// SetMessage replaces the alert message.
func (a *Alert) SetMessage(message string) *Alert {
	a.message = message
	return a
}

// SuccessAlert returns an alert in the success tone.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert returns an alert in the warning tone.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// DangerAlert returns an alert in the danger tone.
func DangerAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantDanger)
}

// InfoAlert returns an alert in the info tone.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}
