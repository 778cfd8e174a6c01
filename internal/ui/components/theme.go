package components

import (
	"github.com/charmbracelet/lipgloss"
)

// SpacingSize is a spacing token resolved through the theme's spacing
// scale rather than a raw cell count.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig holds separate scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant is a typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis

	TypographyVariantFontLight
	TypographyVariantFontNormal
	TypographyVariantFontMedium
	TypographyVariantFontBold
)

// BorderVariant is a border token.
type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// InputState selects between the resting and focused input styles.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
)

// ColourSet is one semantic colour slot:
//
//   - Base: the slot's background or brand colour
//   - OnBase: content colour legible on Base
//   - Muted: a desaturated variant for subtle accents
//   - Contrast: an accent that pops against Base
//
// Every colour is adaptive, carrying light and dark terminal variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette names the semantic colour slots components draw from.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects a semantic colour slot from a Palette. The
// predefined slots below keep applier calls type-safe.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups the theme's border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale holds the semantic text presets and font weights.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style

	FontLight  lipgloss.Style
	FontNormal lipgloss.Style
	FontMedium lipgloss.Style
	FontBold   lipgloss.Style
}

// InputStyles holds the resting and focused styles for input controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
}

// TableStyles holds the style slots consumed by the tabular view.
type TableStyles struct {
	Header       lipgloss.Style
	HeaderActive lipgloss.Style
	Cell         lipgloss.Style
	RowCursor    lipgloss.Style
	Selected     lipgloss.Style
	Empty        lipgloss.Style
	Caption      lipgloss.Style
	Skeleton     lipgloss.Style
}

// ToggleStyles holds the style slots consumed by mode toggles.
type ToggleStyles struct {
	Frame      lipgloss.Style
	Slot       lipgloss.Style
	ActiveSlot lipgloss.Style
	Hint       lipgloss.Style
}

// BadgeStyles holds one chip style per badge variant.
type BadgeStyles struct {
	Default   lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style
	Info      lipgloss.Style
}

// AlertTone colours one alert variant.
type AlertTone struct {
	Icon   string
	Accent lipgloss.AdaptiveColor
}

// AlertStyles holds one tone per alert variant.
type AlertStyles struct {
	Success AlertTone
	Warning AlertTone
	Danger  AlertTone
	Info    AlertTone
}

// Theme is an immutable bundle of styling decisions. Build one once and
// pass it around; derive variations by copying, never by mutating a
// shared instance.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Table      TableStyles
	Toggle     ToggleStyles
	Badge      BadgeStyles
	Alert      AlertStyles
}

// Normalize fills in defaults for unset fields so partially specified
// themes still resolve spacing tokens.
func (t Theme) Normalize() Theme {
	t.Spacing = normalizeSpacingConfig(t.Spacing)
	return t
}

func normalizeSpacingConfig(cfg SpacingConfig) SpacingConfig {
	if spacingTableIsZero(cfg.Padding) {
		cfg.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(cfg.Margin) {
		cfg.Margin = defaultSpacingTable()
	}
	return cfg
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
		SpacingSizeExtraLarge: 6,
	}
}

// DefaultTheme returns the light-first theme.
func DefaultTheme() Theme {
	return buildTheme(lightPalette())
}

// LightTheme is DefaultTheme under its explicit name.
func LightTheme() Theme {
	return DefaultTheme()
}

// DarkTheme returns the dark variant. Brand slots stay identical to the
// light theme; only the surface and neutral slots shift.
func DarkTheme() Theme {
	return buildTheme(darkPalette())
}

// ThemeFromPalette derives a full theme from the given palette. Custom
// families go through here so every style slot is rebuilt; mutating an
// already-built Theme's palette leaves the derived slots stale.
func ThemeFromPalette(palette Palette) Theme {
	return buildTheme(palette)
}

func lightPalette() Palette {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}
}

func darkPalette() Palette {
	p := lightPalette()

	p.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}
	p.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}

	return p
}

// buildTheme derives every style slot from the palette, so light and
// dark themes stay structurally identical.
func buildTheme(palette Palette) Theme {
	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	theme := Theme{
		Palette:    palette,
		Borders:    borders,
		Typography: typographyScale(palette),
		Input:      inputStyles(palette, borders),
		Table:      tableStyles(palette),
		Toggle:     toggleStyles(palette, borders),
		Badge:      badgeStyles(palette),
		Alert:      alertStyles(palette),
	}

	return theme.Normalize()
}

func typographyScale(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code: base.
			Foreground(p.Secondary.Base).
			Background(p.Surface.Muted).
			Padding(0, 1),
		Emphasis: base.Bold(true),

		FontLight:  base.Faint(true),
		FontNormal: base,
		FontMedium: base.Bold(true),
		FontBold:   base.Bold(true).Italic(true),
	}
}

func inputStyles(p Palette, b BorderSet) InputStyles {
	return InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(b.Rounded).
			BorderForeground(p.Neutral.Muted).
			Padding(0, 1).
			Foreground(p.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(b.Thick).
			BorderForeground(p.Primary.Base).
			Padding(0, 1).
			Foreground(p.Surface.OnBase),
	}
}

func tableStyles(p Palette) TableStyles {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary.Base)

	return TableStyles{
		Header:       header,
		HeaderActive: header.Underline(true),
		Cell:         lipgloss.NewStyle().Foreground(p.Surface.OnBase),
		RowCursor: lipgloss.NewStyle().
			Background(p.Surface.Muted).
			Foreground(p.Surface.OnBase).
			Bold(true),
		Selected: lipgloss.NewStyle().Foreground(p.Primary.Base),
		Empty:    lipgloss.NewStyle().Foreground(p.Neutral.Base).Faint(true),
		Caption:  lipgloss.NewStyle().Foreground(p.Neutral.Base).Faint(true),
		Skeleton: lipgloss.NewStyle().Foreground(p.Surface.Muted),
	}
}

func toggleStyles(p Palette, b BorderSet) ToggleStyles {
	return ToggleStyles{
		Frame: lipgloss.NewStyle().
			BorderStyle(b.Rounded).
			BorderForeground(p.Neutral.Muted),
		Slot: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(p.Neutral.Base),
		ActiveSlot: lipgloss.NewStyle().
			Padding(0, 1).
			Background(p.Primary.Base).
			Foreground(p.Primary.OnBase).
			Bold(true),
		Hint: lipgloss.NewStyle().Foreground(p.Neutral.Base).Faint(true),
	}
}

func badgeStyles(p Palette) BadgeStyles {
	chip := func(cs ColourSet) lipgloss.Style {
		return lipgloss.NewStyle().
			Padding(0, 1).
			Background(cs.Base).
			Foreground(cs.OnBase).
			Bold(true)
	}

	return BadgeStyles{
		Default:   chip(p.Neutral),
		Primary:   chip(p.Primary),
		Secondary: chip(p.Secondary),
		Success:   chip(p.Success),
		Warning:   chip(p.Warning),
		Danger:    chip(p.Danger),
		Info:      chip(p.Info),
	}
}

func alertStyles(p Palette) AlertStyles {
	return AlertStyles{
		Success: AlertTone{Icon: "✓", Accent: p.Success.Base},
		Warning: AlertTone{Icon: "⚠", Accent: p.Warning.Base},
		Danger:  AlertTone{Icon: "✗", Accent: p.Danger.Base},
		Info:    AlertTone{Icon: "ℹ", Accent: p.Info.Base},
	}
}

// BorderForVariant resolves a border token against the theme.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue resolves a padding token against the theme's scale.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue resolves a margin token against the theme's scale.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle resolves a typography token against the theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantFontLight:
		return typo.FontLight
	case TypographyVariantFontNormal:
		return typo.FontNormal
	case TypographyVariantFontMedium:
		return typo.FontMedium
	case TypographyVariantFontBold:
		return typo.FontBold
	default:
		return typo.Base
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	if state == InputStateFocus {
		return theme.Input.Focus
	}
	return theme.Input.Default
}

// Background colours a style with a semantic slot, pairing the slot's
// background with its legible foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground colours only the text of a style with a semantic slot.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// Border applies a border token from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// Padding applies a padding token on all sides.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

// PaddingX applies a padding token horizontally.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies a padding token vertically.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Margin applies a margin token on all sides.
func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(spacingLookup(theme.Spacing.Margin, size))
	}
}

// MarginX applies a margin token horizontally.
func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// MarginY applies a margin token vertically.
func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography layers a typography token onto a style.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
