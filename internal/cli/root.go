package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mdpad/internal/config"
	"mdpad/internal/editor"
	"mdpad/internal/format"
	"mdpad/internal/logging"
	"mdpad/internal/render"
	"mdpad/internal/store"
)

// App carries the resolved flags and configuration for every command.
type App struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	Format     string
	PrettyJSON bool

	cfg  *config.Config
	logs logging.Provider
}

func NewRootCmd() *cobra.Command {
	app := &App{}
	var serveAddr string

	cmd := &cobra.Command{
		Use:          "mdpad",
		Short:        "Terminal markdown editor with live HTML preview",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the editor
  mdpad

  # Edit with a browser preview on localhost:7070
  mdpad --serve 127.0.0.1:7070

  # Write the stored document as HTML
  mdpad export --out ./site --standalone
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app, serveAddr)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.load()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("MDPAD_CONFIG", ""), "Path to config.yaml (default: <config dir>/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.DBPath, "db", "", "Path to the SQLite preference database (overrides config)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("MDPAD_FORMAT", "json"), "Output format (json|yaml|text)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&serveAddr, "serve", "", "Also serve the live preview on this address while editing")

	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newResetCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}

// load resolves configuration once per invocation: file, env, then flags.
func (app *App) load() error {
	path := strings.TrimSpace(app.ConfigPath)
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	app.ConfigPath = path

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(app.DBPath); v != "" {
		cfg.Database = v
	}
	if v := strings.TrimSpace(app.LogLevel); v != "" {
		cfg.Log.Level = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.cfg = cfg

	logs, err := logging.NewGoLogger(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	app.logs = logs
	return nil
}

func (app *App) logger(module string) logging.Logger {
	if app.logs == nil {
		return logging.NoOp()
	}
	return logging.ModuleLogger(app.logs, module)
}

// openStore opens the SQLite store. When it cannot be opened the editor
// still runs on an in-memory store and nothing persists.
func (app *App) openStore(ctx context.Context, log logging.Logger) store.Store {
	db, err := store.OpenSQLite(ctx, app.cfg.Database)
	if err != nil {
		log.Warn("preference store unavailable, using memory", "path", app.cfg.Database, "error", err)
		return store.NewMemory()
	}
	return db
}

// openStoreStrict is for commands whose only job is the stored data.
func (app *App) openStoreStrict(ctx context.Context) (*store.SQLite, error) {
	db, err := store.OpenSQLite(ctx, app.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", app.cfg.Database, err)
	}
	return db, nil
}

func newPipeline(cfg *config.Config) *render.Pipeline {
	return render.NewPipeline(
		render.WithHardWraps(cfg.Render.HardWraps),
		render.WithUnsafeHTML(cfg.Render.UnsafeHTML),
		render.WithEmoji(cfg.Render.Emoji),
		render.WithHighlighter(render.NewHighlighter(cfg.Render.HighlightStyle).Highlight),
	)
}

// storedDocument is the document the editor would open with.
func storedDocument(p store.Preferences) string {
	if v, ok := p.Load(store.KeyDocument); ok {
		return v
	}
	return editor.DefaultDocument
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
