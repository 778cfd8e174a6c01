package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kiran-8287/tavla/internal/config"
	"github.com/kiran-8287/tavla/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

// appContext bundles the services shared by every command.
type appContext struct {
	flags *rootFlags
	log   *logger.Logger
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{flags: flags, log: log}

	cmd := &cobra.Command{
		Use:           "tavla",
		Short:         "Tavla showcases themeable terminal widgets around a sortable, selectable table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.verbose {
				return nil
			}
			verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
			if err != nil {
				return err
			}
			app.log = verbose
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// A bare invocation launches the gallery when attached to a
			// terminal.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return runGallery(app, galleryOptions{})
			}
			return fmt.Errorf("no interactive terminal detected; run 'tavla --help' for commands")
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the settings file (default: TAVLA_CONFIG or the user config dir)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadSettings reads the settings file selected by --config, the TAVLA_CONFIG
// environment variable, or the per-user default, in that order.
func (app *appContext) loadSettings() (*config.Settings, string, error) {
	path := app.flags.configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return settings, path, nil
}

// applyLogLevel rebuilds the logger at the level the settings file asks for.
// The --verbose flag wins over the file.
func (app *appContext) applyLogLevel(settings *config.Settings) {
	if app.flags.verbose || settings.LogLevel == "" {
		return
	}
	log, err := logger.New(logger.Options{Level: settings.LogLevel, HumanReadable: true})
	if err != nil {
		return
	}
	app.log = log
}
