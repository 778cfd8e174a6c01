package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	tavlaerrors "github.com/kiran-8287/tavla/pkg/errors"
)

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		settings  *Settings
		wantField string
	}{
		{
			name:     "defaults are valid",
			settings: DefaultSettings(),
		},
		{
			name: "explicit document is valid",
			settings: &Settings{
				Theme:    ThemeSettings{Name: "default", Mode: "light"},
				Locale:   "pt-BR",
				LogLevel: "error",
			},
		},
		{
			name:      "nil settings are rejected",
			settings:  nil,
			wantField: "settings",
		},
		{
			name:      "mode outside the enum is rejected",
			settings:  &Settings{Theme: ThemeSettings{Mode: "dusk"}},
			wantField: "mode",
		},
		{
			name:      "theme name with invalid characters is rejected",
			settings:  &Settings{Theme: ThemeSettings{Name: "Solar Flare!"}},
			wantField: "name",
		},
		{
			name:      "locale must parse as a language tag",
			settings:  &Settings{Locale: "???"},
			wantField: "locale",
		},
		{
			name:      "unknown log level is rejected",
			settings:  &Settings{LogLevel: "loud"},
			wantField: "loglevel",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateSettings(tc.settings)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *tavlaerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, validationErr.Field, tc.wantField)
		})
	}
}

func TestGetValidatorRegistersCustomRules(t *testing.T) {
	t.Parallel()

	v := GetValidator()
	require.NotNil(t, v)

	require.NoError(t, v.Var("nord-aurora", "theme_name"))
	require.Error(t, v.Var("Nord Aurora", "theme_name"))
	require.NoError(t, v.Var("zh-Hant", "bcp47"))
	require.Error(t, v.Var("!!", "bcp47"))
}
