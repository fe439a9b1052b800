package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mdpad/internal/editor"
	"mdpad/internal/logging"
	"mdpad/internal/preview"
	"mdpad/internal/tui"
)

func runTUI(cmd *cobra.Command, app *App, serveAddr string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	logs, closeLog, err := tuiLogs(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closeLog()
	log := logging.ModuleLogger(logs, "tui")

	prefs := app.openStore(ctx, log)
	defer func() { _ = prefs.Close() }()

	var publisher editor.Publisher
	if addr := strings.TrimSpace(serveAddr); addr != "" {
		hub := preview.NewHub()
		srv, err := preview.NewServer(preview.ServerConfig{
			Addr:   addr,
			Hub:    hub,
			Export: app.cfg.ExportOptions(),
			Logger: logging.ModuleLogger(logs, "preview"),
		})
		if err != nil {
			return writeErr(cmd, err)
		}
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := srv.ListenAndServe(ctx); err != nil {
				log.Error("preview server stopped", "error", err)
			}
		}()
		defer func() {
			cancel()
			<-done
		}()
		publisher = hub
	}

	return tui.Run(tui.Options{
		Store:         prefs,
		Renderer:      newPipeline(app.cfg),
		HardWraps:     app.cfg.Render.HardWraps,
		AutosaveDelay: app.cfg.Autosave.Delay,
		Export:        app.cfg.ExportOptions(),
		EditorCommand: app.cfg.Editor.Command,
		Publisher:     publisher,
		Logger:        log,
		Title:         app.cfg.Database,
	})
}

// tuiLogs routes logs to log.file while the terminal belongs to the editor.
// Without a file, logs are dropped.
func tuiLogs(app *App) (logging.Provider, func(), error) {
	path := strings.TrimSpace(app.cfg.Log.File)
	if path == "" {
		return logging.NoOpProvider(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := tea.LogToFile(path, "mdpad")
	if err != nil {
		return nil, nil, err
	}
	return logging.NewWriter(f, logging.ParseLevel(app.cfg.Log.Level)), func() { _ = f.Close() }, nil
}
