package theme

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kiran-8287/tavla/internal/config"
	"github.com/kiran-8287/tavla/internal/ui/components"
	tavlaerrors "github.com/kiran-8287/tavla/pkg/errors"
)

type recordingStore struct {
	saved []config.Settings
	err   error
}

func (s *recordingStore) Save(settings *config.Settings) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, *settings)
	return nil
}

func alwaysDark() bool  { return true }
func alwaysLight() bool { return false }

func TestManagerResolvesDarkByMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mode     string
		detector Detector
		want     bool
	}{
		{"explicit dark ignores detector", components.ModeDark, alwaysLight, true},
		{"explicit light ignores detector", components.ModeLight, alwaysDark, false},
		{"auto asks detector dark", components.ModeAuto, alwaysDark, true},
		{"auto asks detector light", components.ModeAuto, alwaysLight, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			settings := config.DefaultSettings()
			settings.Theme.Mode = tt.mode
			mgr := NewManager(Options{Settings: settings, Detector: tt.detector})

			require.Equal(t, tt.want, mgr.Dark())
		})
	}
}

func TestManagerThemeFollowsResolvedAppearance(t *testing.T) {
	t.Parallel()

	settings := config.DefaultSettings()
	settings.Theme.Mode = components.ModeDark
	mgr := NewManager(Options{Settings: settings})

	require.Equal(t, components.DarkTheme().Palette.Surface, mgr.Theme().Palette.Surface)

	require.NoError(t, mgr.SetMode(components.ModeLight))
	require.Equal(t, components.LightTheme().Palette.Surface, mgr.Theme().Palette.Surface)
}

func TestManagerNormalizesStaleSettings(t *testing.T) {
	t.Parallel()

	mgr := NewManager(Options{Settings: &config.Settings{
		Theme: config.ThemeSettings{Name: "vaporwave", Mode: "dusk"},
	}})

	require.Equal(t, config.DefaultThemeName, mgr.Family())
	require.Equal(t, config.DefaultThemeMode, mgr.Mode())
}

func TestSetModePersistsAndNotifies(t *testing.T) {
	t.Parallel()

	store := &recordingStore{}
	mgr := NewManager(Options{
		Settings: config.DefaultSettings(),
		Store:    store,
		Detector: alwaysLight,
	})

	var got Change
	mgr.Subscribe(func(c Change) { got = c })

	require.NoError(t, mgr.SetMode(components.ModeDark))

	require.Equal(t, components.ModeDark, mgr.Mode())
	require.Len(t, store.saved, 1)
	require.Equal(t, components.ModeDark, store.saved[0].Theme.Mode)
	require.Equal(t, components.ModeDark, got.Mode)
	require.True(t, got.Dark)
}

func TestSetModeRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	store := &recordingStore{}
	mgr := NewManager(Options{Settings: config.DefaultSettings(), Store: store})

	notified := false
	mgr.Subscribe(func(Change) { notified = true })

	err := mgr.SetMode("dusk")

	var vErr *tavlaerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "theme.mode", vErr.Field)
	require.Empty(t, store.saved)
	require.False(t, notified)
	require.Equal(t, config.DefaultThemeMode, mgr.Mode())
}

func TestSetModeKeepsStateWhenPersistFails(t *testing.T) {
	t.Parallel()

	store := &recordingStore{err: fmt.Errorf("disk full")}
	mgr := NewManager(Options{
		Settings: config.DefaultSettings(),
		Store:    store,
		Detector: alwaysLight,
	})

	notified := false
	mgr.Subscribe(func(Change) { notified = true })

	err := mgr.SetMode(components.ModeDark)

	require.ErrorContains(t, err, "disk full")
	require.Equal(t, components.ModeDark, mgr.Mode())
	require.True(t, notified)
}

func TestCycleWalksLightDarkAuto(t *testing.T) {
	t.Parallel()

	settings := config.DefaultSettings()
	settings.Theme.Mode = components.ModeLight
	mgr := NewManager(Options{Settings: settings, Detector: alwaysLight})

	require.NoError(t, mgr.Cycle())
	require.Equal(t, components.ModeDark, mgr.Mode())

	require.NoError(t, mgr.Cycle())
	require.Equal(t, components.ModeAuto, mgr.Mode())

	require.NoError(t, mgr.Cycle())
	require.Equal(t, components.ModeLight, mgr.Mode())
}

func TestSetFamilySwitchesPalettes(t *testing.T) {
	t.Parallel()

	settings := config.DefaultSettings()
	settings.Theme.Mode = components.ModeLight
	mgr := NewManager(Options{Settings: settings, Detector: alwaysLight})

	require.NoError(t, mgr.SetFamily("mono"))
	require.Equal(t, "mono", mgr.Family())
	require.Equal(t, mgr.Theme().Palette.Neutral, mgr.Theme().Palette.Primary)

	err := mgr.SetFamily("vaporwave")
	var vErr *tavlaerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "mono", mgr.Family())
}

func TestFamiliesAreSorted(t *testing.T) {
	t.Parallel()

	names := Families()
	require.Contains(t, names, "default")
	require.Contains(t, names, "mono")
	require.IsIncreasing(t, names)
}
