package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mdpad/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(app))
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigPathCmd(app))
	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config.yaml with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.ConfigPath
			if _, err := os.Stat(path); err == nil && !force {
				return writeErr(cmd, fmt.Errorf("%s already exists (use --force to overwrite)", path))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return writeErr(cmd, err)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"path": path}})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (file, env and flags applied)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{"data": configView(app.cfg)})
		},
	}
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.ConfigPath)
			return err
		},
	}
}

func configView(c *config.Config) map[string]any {
	return map[string]any{
		"database": c.Database,
		"autosave": map[string]any{"delay": c.Autosave.Delay.String()},
		"render": map[string]any{
			"hard_wraps":      c.Render.HardWraps,
			"unsafe_html":     c.Render.UnsafeHTML,
			"emoji":           c.Render.Emoji,
			"highlight_style": c.Render.HighlightStyle,
		},
		"export": map[string]any{
			"dir":        c.Export.Dir,
			"base_name":  c.Export.BaseName,
			"extension":  c.Export.Extension,
			"media_type": c.Export.MediaType,
			"standalone": c.Export.Standalone,
			"title":      c.Export.Title,
		},
		"preview": map[string]any{
			"addr":          c.Preview.Addr,
			"poll_interval": c.Preview.PollInterval.String(),
		},
		"log":    map[string]any{"level": c.Log.Level, "format": c.Log.Format, "file": c.Log.File},
		"editor": map[string]any{"command": c.Editor.Command},
	}
}
