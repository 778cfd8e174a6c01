package components

import "github.com/charmbracelet/lipgloss"

// BadgeVariant selects the colour slot a badge is drawn with.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSecondary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantDanger
	BadgeVariantInfo
)

// For returns the chip style for variant.
func (s BadgeStyles) For(variant BadgeVariant) lipgloss.Style {
	switch variant {
	case BadgeVariantPrimary:
		return s.Primary
	case BadgeVariantSecondary:
		return s.Secondary
	case BadgeVariantSuccess:
		return s.Success
	case BadgeVariantWarning:
		return s.Warning
	case BadgeVariantDanger:
		return s.Danger
	case BadgeVariantInfo:
		return s.Info
	default:
		return s.Default
	}
}

// Badge is a compact inline status chip. The variant picks the colour
// slot; appliers layer further styling over it.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge returns a neutral badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge under the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge under the context's theme.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme.Normalize()
	return b.StyleOver(theme.Badge.For(b.variant), theme).Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers appends theme-aware style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SetText replaces the badge text.
func (b *Badge) SetText(text string) *Badge {
	b.text = text
	return b
}

// PrimaryBadge returns a badge drawn with the primary slot.
func PrimaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantPrimary)
}

// SecondaryBadge returns a badge drawn with the secondary slot.
func SecondaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSecondary)
}

// SuccessBadge returns a badge drawn with the success slot.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge returns a badge drawn with the warning slot.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// DangerBadge returns a badge drawn with the danger slot.
func DangerBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantDanger)
}

// InfoBadge returns a badge drawn with the info slot.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantInfo)
}
