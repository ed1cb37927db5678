package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnsense/internal/settings"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the saved color theme",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the active theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openThemeService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()
		fmt.Fprintln(cmd.OutOrStdout(), svc.Current())
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Save a theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(settings.ThemeLight), string(settings.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := settings.ParseTheme(args[0])
		if err != nil {
			return err
		}
		svc, closeFn, err := openThemeService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()
		if err := svc.Set(cmd.Context(), t); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openThemeService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()
		t, err := svc.Toggle(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

func openThemeService(cmd *cobra.Command) (*settings.ThemeService, func(), error) {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	svc, err := settings.NewThemeService(cmd.Context(), st.SettingsRepo(), settings.PlatformThemeOr(cfg.ThemeDefault))
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return svc, func() { st.Close() }, nil
}

func init() {
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeToggleCmd)
}
