package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Theme mode slot names cycled by the toggle, in cycle order.
const (
	ModeLight = "light"
	ModeDark  = "dark"
	ModeAuto  = "auto"
)

var toggleModes = []string{ModeLight, ModeDark, ModeAuto}

// ThemeToggleConfig carries the construction parameters for a ThemeToggle.
type ThemeToggleConfig struct {
	Mode     string
	Dark     bool
	OnToggle func(next string)
}

// ThemeToggle is a three-slot mode switch (light, dark, auto). It holds no
// theme machinery of its own: the host passes in the current mode and the
// resolved dark flag, and every activation emits the next mode through
// OnToggle for the host to apply and feed back via SetMode.
type ThemeToggle struct {
	BaseComponent

	mode     string
	dark     bool
	onToggle func(string)
	focused  bool
}

// NewThemeToggle creates a mode toggle. Unknown modes normalize to auto.
func NewThemeToggle(cfg ThemeToggleConfig) ThemeToggle {
	t := ThemeToggle{
		BaseComponent: NewBaseComponent(),
		mode:          normalizeMode(cfg.Mode),
		dark:          cfg.Dark,
		onToggle:      cfg.OnToggle,
	}
	return t
}

func normalizeMode(mode string) string {
	for _, m := range toggleModes {
		if m == mode {
			return mode
		}
	}
	return ModeAuto
}

// Mode returns the currently displayed mode.
func (t *ThemeToggle) Mode() string {
	return t.mode
}

// SetMode replaces the displayed mode. Unknown modes normalize to auto.
func (t *ThemeToggle) SetMode(mode string) {
	t.mode = normalizeMode(mode)
}

// SetResolvedDark updates the dark flag shown in the hint. For light and
// dark modes the flag follows the mode; for auto it reflects the system
// preference the host detected.
func (t *ThemeToggle) SetResolvedDark(dark bool) {
	t.dark = dark
}

// Focus enables key handling.
func (t *ThemeToggle) Focus() {
	t.focused = true
}

// Blur disables key handling.
func (t *ThemeToggle) Blur() {
	t.focused = false
}

// Focused reports whether the toggle receives key events.
func (t *ThemeToggle) Focused() bool {
	return t.focused
}

// NextMode returns the slot after the current one in cycle order.
func (t *ThemeToggle) NextMode() string {
	for i, m := range toggleModes {
		if m == t.mode {
			return toggleModes[(i+1)%len(toggleModes)]
		}
	}
	return toggleModes[0]
}

// Cycle emits the next mode through OnToggle. The displayed mode does not
// change until the host calls SetMode with the accepted value.
func (t *ThemeToggle) Cycle() {
	if t.onToggle != nil {
		t.onToggle(t.NextMode())
	}
}

// Update handles key events while focused: space, enter, and t advance the
// cycle.
func (t ThemeToggle) Update(msg tea.Msg) (ThemeToggle, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused {
		return t, nil
	}

	switch keyMsg.String() {
	case " ", "enter", "t":
		t.Cycle()
	}

	return t, nil
}

// View renders the toggle with the default theme.
func (t *ThemeToggle) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the three slots in a frame with the active slot
// highlighted, followed by a hint naming the resolved appearance.
func (t *ThemeToggle) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme.Normalize()

	slots := make([]string, 0, len(toggleModes))
	for _, m := range toggleModes {
		style := theme.Toggle.Slot
		if m == t.mode {
			style = theme.Toggle.ActiveSlot
		}
		slots = append(slots, style.Render(m))
	}

	resolved := "light"
	if t.dark {
		resolved = "dark"
	}

	var b strings.Builder
	b.WriteString(theme.Toggle.Frame.Render(strings.Join(slots, " ")))
	b.WriteString(" ")
	b.WriteString(theme.Toggle.Hint.Render("→ " + resolved))

	return t.ComputeStyle(theme).Render(b.String())
}
