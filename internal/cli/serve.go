package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"mdpad/internal/preview"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	var open bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live HTML preview of the stored document",
		Long: strings.TrimSpace(`
Serve the stored document as HTML and push a fresh render to open browsers
whenever an editor (in another terminal) saves it.
`),
		Example: strings.TrimSpace(`
mdpad serve
mdpad serve --addr 127.0.0.1:8080 --open
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, app, addr, open)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: preview.addr)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the preview in the default browser")
	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, app *App, addr string, open bool) error {
	log := app.logger("preview")
	if strings.TrimSpace(addr) == "" {
		addr = app.cfg.Preview.Addr
	}

	prefs, err := app.openStoreStrict(ctx)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer func() { _ = prefs.Close() }()

	hub := preview.NewHub()
	srv, err := preview.NewServer(preview.ServerConfig{
		Addr:   addr,
		Hub:    hub,
		Export: app.cfg.ExportOptions(),
		Logger: log,
	})
	if err != nil {
		return writeErr(cmd, err)
	}

	go preview.Watch(ctx, prefs, newPipeline(app.cfg), hub, app.cfg.Preview.PollInterval, log)

	url := "http://" + addr + "/"
	hints := []string{}
	if open {
		if err := openPath(url); err != nil {
			log.Warn("open browser failed", "error", err)
			hints = append(hints, "open "+url)
		}
	} else {
		hints = append(hints, "open "+url)
	}
	_ = writeOut(cmd, app, map[string]any{
		"data":   map[string]any{"url": url, "database": app.cfg.Database},
		"_hints": hints,
	})

	return srv.ListenAndServe(ctx)
}
