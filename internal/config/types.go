package config

// Default values applied to unset settings fields.
const (
	DefaultThemeName = "default"
	DefaultThemeMode = "auto"
	DefaultLogLevel  = "info"
)

// Settings represents the persisted application configuration document.
type Settings struct {
	Theme    ThemeSettings `yaml:"theme,omitempty"`
	Locale   string        `yaml:"locale,omitempty" validate:"omitempty,bcp47"`
	LogLevel string        `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error fatal panic"`
}

// ThemeSettings selects the palette family and the light/dark mode.
type ThemeSettings struct {
	Name string `yaml:"name,omitempty" validate:"omitempty,theme_name"`
	Mode string `yaml:"mode,omitempty" validate:"omitempty,oneof=light dark auto"`
}

// DefaultSettings returns the document used when no settings file exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:    ThemeSettings{Name: DefaultThemeName, Mode: DefaultThemeMode},
		LogLevel: DefaultLogLevel,
	}
}

// applyDefaults refills fields an explicit document left empty. Locale stays
// empty by default; an empty locale means undetermined-language collation.
func (s *Settings) applyDefaults() {
	if s.Theme.Name == "" {
		s.Theme.Name = DefaultThemeName
	}
	if s.Theme.Mode == "" {
		s.Theme.Mode = DefaultThemeMode
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
}
