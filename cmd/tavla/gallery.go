package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kiran-8287/tavla/internal/config"
	"github.com/kiran-8287/tavla/internal/theme"
	"github.com/kiran-8287/tavla/internal/tui/gallery"
	"github.com/kiran-8287/tavla/internal/ui/components"
	tavlaerrors "github.com/kiran-8287/tavla/pkg/errors"
)

type galleryOptions struct {
	dataPath string
	loading  bool
	locale   string
}

func newGalleryCmd(app *appContext) *cobra.Command {
	opts := galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive widget gallery",
		Long:  `Launch the widget gallery: a sortable, selectable data table with fuzzy filtering, a themed text input, and a live theme toggle.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dataPath, "data", "", "Path to a yaml list of records to display")
	cmd.Flags().BoolVar(&opts.loading, "loading", false, "Open the table in its loading state")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "BCP 47 tag used for sorting (overrides the settings file)")

	return cmd
}

func runGallery(app *appContext, opts galleryOptions) error {
	mgr, settings, err := newThemeManager(app)
	if err != nil {
		return err
	}
	app.applyLogLevel(settings)

	locale := opts.locale
	if locale == "" {
		locale = settings.Locale
	}
	collator, err := collatorFor(locale)
	if err != nil {
		return err
	}

	records, err := galleryRecords(opts.dataPath)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the gallery needs an interactive terminal")
	}

	app.log.Info("launching gallery")
	m := gallery.NewModel(gallery.Config{
		Themes:   mgr,
		Logger:   app.log,
		Records:  records,
		DataPath: opts.dataPath,
		Loading:  opts.loading,
		Collator: collator,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	return nil
}

// newThemeManager builds the theme manager around the settings file; changes
// made in the TUI or by theme subcommands persist back to the same path.
func newThemeManager(app *appContext) (*theme.Manager, *config.Settings, error) {
	settings, path, err := app.loadSettings()
	if err != nil {
		return nil, nil, err
	}

	mgr := theme.NewManager(theme.Options{
		Settings: settings,
		Store: theme.StoreFunc(func(s *config.Settings) error {
			return config.Save(path, s)
		}),
		Logger: app.log,
	})
	return mgr, settings, nil
}

func galleryRecords(path string) ([]components.Record, error) {
	if path == "" {
		return gallery.SampleRecords(), nil
	}

	raw, err := config.LoadRecords(path)
	if err != nil {
		return nil, err
	}

	rows := make([]components.Record, len(raw))
	for i, rec := range raw {
		rows[i] = components.Record(rec)
	}
	return rows, nil
}

func collatorFor(locale string) (*collate.Collator, error) {
	if locale == "" {
		return nil, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, tavlaerrors.NewValidationError(
			"locale",
			fmt.Sprintf("unrecognized locale %q", locale),
			err,
		)
	}
	return collate.New(tag), nil
}
