package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputConfig carries the construction parameters for an Input.
type InputConfig struct {
	Label       string
	Placeholder string
	Value       string
	CharLimit   int
	Width       int
}

// Input is a single-line text field with an optional label above and an
// error caption below. The field itself is a bubbles text input; the wrapper
// adds theming and the error state.
type Input struct {
	BaseComponent

	label   string
	errText string
	inner   textinput.Model
}

// NewInput creates a themed text input.
func NewInput(cfg InputConfig) Input {
	inner := textinput.New()
	inner.Placeholder = cfg.Placeholder
	if cfg.Value != "" {
		inner.SetValue(cfg.Value)
	}
	if cfg.CharLimit > 0 {
		inner.CharLimit = cfg.CharLimit
	}
	if cfg.Width > 0 {
		inner.Width = cfg.Width
	}

	return Input{
		BaseComponent: NewBaseComponent(),
		label:         cfg.Label,
		inner:         inner,
	}
}

// Init returns the cursor blink command.
func (in Input) Init() tea.Cmd {
	return textinput.Blink
}

// Focus moves keyboard input into the field.
func (in *Input) Focus() tea.Cmd {
	return in.inner.Focus()
}

// Blur releases keyboard input.
func (in *Input) Blur() {
	in.inner.Blur()
}

// Focused reports whether the field is receiving input.
func (in *Input) Focused() bool {
	return in.inner.Focused()
}

// Value returns the current text.
func (in *Input) Value() string {
	return in.inner.Value()
}

// SetValue replaces the current text.
func (in *Input) SetValue(value string) {
	in.inner.SetValue(value)
}

// SetError sets the caption shown below the field. An empty string clears it.
func (in *Input) SetError(msg string) {
	in.errText = msg
}

// ErrorText returns the current error caption.
func (in *Input) ErrorText() string {
	return in.errText
}

// Update forwards messages to the underlying text input.
func (in Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	var cmd tea.Cmd
	in.inner, cmd = in.inner.Update(msg)
	return in, cmd
}

// View renders the input with the default theme.
func (in *Input) View() string {
	return in.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, the framed field, and the error caption
// when one is set. Focus switches the frame style; an error recolours the
// frame in the danger tone regardless of focus.
func (in *Input) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme.Normalize()

	state := InputStateDefault
	if in.inner.Focused() {
		state = InputStateFocus
	}
	frame := InputStyle(theme, state)
	if in.errText != "" {
		frame = frame.BorderForeground(theme.Palette.Danger.Base)
	}

	var b strings.Builder
	if in.label != "" {
		b.WriteString(theme.Typography.FontMedium.Render(in.label))
		b.WriteString("\n")
	}
	b.WriteString(frame.Render(in.inner.View()))
	if in.errText != "" {
		errStyle := lipgloss.NewStyle().Foreground(theme.Palette.Danger.Base)
		b.WriteString("\n")
		b.WriteString(errStyle.Render(in.errText))
	}

	return in.ComputeStyle(theme).Render(b.String())
}
