package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kiran-8287/tavla/internal/theme"
	"github.com/kiran-8287/tavla/internal/ui/components"
)

func newThemeCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect or change the persisted theme settings",
	}

	cmd.AddCommand(newThemeShowCmd(app))
	cmd.AddCommand(newThemeSetCmd(app))
	cmd.AddCommand(newThemeToggleCmd(app))

	return cmd
}

func newThemeShowCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the active theme family and mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := newThemeManager(app)
			if err != nil {
				return err
			}

			printThemeState(cmd, mgr)
			fmt.Fprintf(cmd.OutOrStdout(), "families: %s\n", strings.Join(theme.Families(), ", "))
			return nil
		},
	}
}

func newThemeSetCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <light|dark|auto|family>",
		Short: "Set the theme mode or switch the palette family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := newThemeManager(app)
			if err != nil {
				return err
			}

			target := args[0]
			switch target {
			case components.ModeLight, components.ModeDark, components.ModeAuto:
				err = mgr.SetMode(target)
			default:
				err = mgr.SetFamily(target)
			}
			if err != nil {
				return err
			}

			printThemeState(cmd, mgr)
			return nil
		},
	}
}

func newThemeToggleCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Cycle the theme mode through light, dark, auto",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := newThemeManager(app)
			if err != nil {
				return err
			}

			if err := mgr.Cycle(); err != nil {
				return err
			}

			printThemeState(cmd, mgr)
			return nil
		},
	}
}

func printThemeState(cmd *cobra.Command, mgr *theme.Manager) {
	fmt.Fprintf(cmd.OutOrStdout(), "family: %s\nmode: %s\ndark: %t\n", mgr.Family(), mgr.Mode(), mgr.Dark())
}
