package theme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/kiran-8287/tavla/internal/config"
	"github.com/kiran-8287/tavla/internal/logger"
	"github.com/kiran-8287/tavla/internal/ui/components"
	tavlaerrors "github.com/kiran-8287/tavla/pkg/errors"
)

// Detector reports whether the terminal prefers a dark appearance. It is
// consulted only while the mode is auto.
type Detector func() bool

// Store persists theme settings between sessions.
type Store interface {
	Save(settings *config.Settings) error
}

// StoreFunc adapts a plain function to the Store interface.
type StoreFunc func(settings *config.Settings) error

// Save calls f.
func (f StoreFunc) Save(settings *config.Settings) error {
	return f(settings)
}

// Change describes a theme transition delivered to subscribers.
type Change struct {
	Family string
	Mode   string
	Dark   bool
	Theme  components.Theme
}

type familyThemes struct {
	light func() components.Theme
	dark  func() components.Theme
}

var families = map[string]familyThemes{
	"default": {light: components.LightTheme, dark: components.DarkTheme},
	"mono":    {light: monoLightTheme, dark: monoDarkTheme},
}

// Families returns the registered family names in sorted order.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func monoLightTheme() components.Theme {
	return components.ThemeFromPalette(monoPalette(components.LightTheme().Palette))
}

func monoDarkTheme() components.Theme {
	return components.ThemeFromPalette(monoPalette(components.DarkTheme().Palette))
}

// monoPalette collapses the brand slots into the neutral one so the whole
// kit renders monochrome, including styles derived from the palette.
func monoPalette(p components.Palette) components.Palette {
	p.Primary = p.Neutral
	p.Secondary = p.Neutral
	return p
}

// Manager owns the active theme selection: a palette family plus a
// light/dark/auto mode. Widgets receive themes through explicit render
// contexts, so the manager is the single place that resolves what the
// current theme is; nothing reads it ambiently.
type Manager struct {
	mu        sync.RWMutex
	settings  *config.Settings
	store     Store
	detect    Detector
	log       *logger.Logger
	listeners []func(Change)
}

// Options configures a Manager. Zero fields fall back to defaults: fresh
// settings, no persistence, and background detection via lipgloss.
type Options struct {
	Settings *config.Settings
	Store    Store
	Detector Detector
	Logger   *logger.Logger
}

// NewManager creates a manager from the given options. Unknown persisted
// family or mode values are normalized to the defaults rather than rejected,
// so a stale settings file cannot wedge startup.
func NewManager(opts Options) *Manager {
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if _, ok := families[settings.Theme.Name]; !ok {
		settings.Theme.Name = config.DefaultThemeName
	}
	if !validMode(settings.Theme.Mode) {
		settings.Theme.Mode = config.DefaultThemeMode
	}

	detect := opts.Detector
	if detect == nil {
		detect = lipgloss.HasDarkBackground
	}

	return &Manager{
		settings: settings,
		store:    opts.Store,
		detect:   detect,
		log:      opts.Logger,
	}
}

func validMode(mode string) bool {
	switch mode {
	case components.ModeLight, components.ModeDark, components.ModeAuto:
		return true
	}
	return false
}

// Family returns the active palette family name.
func (m *Manager) Family() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.Theme.Name
}

// Mode returns the active mode: light, dark, or auto.
func (m *Manager) Mode() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.Theme.Mode
}

// Dark resolves the current appearance. Light and dark answer directly;
// auto asks the detector.
func (m *Manager) Dark() bool {
	m.mu.RLock()
	mode := m.settings.Theme.Mode
	m.mu.RUnlock()
	return m.resolveDark(mode)
}

func (m *Manager) resolveDark(mode string) bool {
	switch mode {
	case components.ModeDark:
		return true
	case components.ModeLight:
		return false
	default:
		return m.detect()
	}
}

// Theme returns the resolved theme for the active family and appearance.
func (m *Manager) Theme() components.Theme {
	m.mu.RLock()
	name := m.settings.Theme.Name
	mode := m.settings.Theme.Mode
	m.mu.RUnlock()

	return m.themeFor(name, mode)
}

func (m *Manager) themeFor(name, mode string) components.Theme {
	fam, ok := families[name]
	if !ok {
		fam = families[config.DefaultThemeName]
	}
	if m.resolveDark(mode) {
		return fam.dark()
	}
	return fam.light()
}

// Subscribe registers a listener invoked after every applied change.
func (m *Manager) Subscribe(fn func(Change)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// SetMode switches the light/dark/auto mode. The new mode is applied
// in-memory and announced to subscribers even when persisting it fails; the
// persistence error is returned so callers can surface it.
func (m *Manager) SetMode(mode string) error {
	if !validMode(mode) {
		return tavlaerrors.NewValidationError(
			"theme.mode",
			fmt.Sprintf("unknown theme mode %q", mode),
			nil,
		)
	}

	m.mu.Lock()
	m.settings.Theme.Mode = mode
	m.mu.Unlock()

	return m.finishChange()
}

// Cycle advances the mode in light, dark, auto order and applies it.
func (m *Manager) Cycle() error {
	return m.SetMode(nextMode(m.Mode()))
}

func nextMode(mode string) string {
	switch mode {
	case components.ModeLight:
		return components.ModeDark
	case components.ModeDark:
		return components.ModeAuto
	default:
		return components.ModeLight
	}
}

// SetFamily switches the palette family. Unknown names are rejected with a
// ValidationError and leave the current family in place.
func (m *Manager) SetFamily(name string) error {
	if _, ok := families[name]; !ok {
		return tavlaerrors.NewValidationError(
			"theme.name",
			fmt.Sprintf("unknown theme family %q", name),
			nil,
		)
	}

	m.mu.Lock()
	m.settings.Theme.Name = name
	m.mu.Unlock()

	return m.finishChange()
}

// finishChange persists the applied settings and notifies subscribers. The
// notification always happens: listeners must re-render the state that is
// already in effect, whether or not it reached disk.
func (m *Manager) finishChange() error {
	err := m.persist()
	m.notify()
	return err
}

func (m *Manager) persist() error {
	m.mu.RLock()
	store := m.store
	snapshot := *m.settings
	m.mu.RUnlock()

	if store == nil {
		return nil
	}
	if err := store.Save(&snapshot); err != nil {
		m.log.Error(err, "theme settings not persisted")
		return err
	}
	return nil
}

func (m *Manager) notify() {
	m.mu.RLock()
	listeners := make([]func(Change), len(m.listeners))
	copy(listeners, m.listeners)
	name := m.settings.Theme.Name
	mode := m.settings.Theme.Mode
	m.mu.RUnlock()

	change := Change{
		Family: name,
		Mode:   mode,
		Dark:   m.resolveDark(mode),
		Theme:  m.themeFor(name, mode),
	}

	for _, fn := range listeners {
		fn(change)
	}
}
