package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mdpad/internal/export"
)

type exportResult struct {
	Path      string `json:"path"`
	Bytes     int    `json:"bytes"`
	MediaType string `json:"mediaType"`
}

func (r exportResult) Text() string { return r.Path }

func newExportCmd(app *App) *cobra.Command {
	var out, name, ext, title string
	var standalone, stdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the stored document to an HTML file",
		Example: strings.TrimSpace(`
# Write ./document.html
mdpad export

# Full page with a title into ./site/notes.html
mdpad export --out site --name notes --standalone --title "My notes"

# Pipe the rendered fragment somewhere else
mdpad export --stdout | wc -c
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := app.logger("export")
			prefs, err := app.openStoreStrict(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer func() { _ = prefs.Close() }()

			opts := app.cfg.ExportOptions()
			if cmd.Flags().Changed("out") {
				opts.Dir = out
			}
			if cmd.Flags().Changed("name") {
				opts.BaseName = name
			}
			if cmd.Flags().Changed("ext") {
				opts.Extension = ext
			}
			if cmd.Flags().Changed("standalone") {
				opts.Standalone = standalone
			}
			if cmd.Flags().Changed("title") {
				opts.Title = title
			}
			opts = opts.Normalize()

			html := newPipeline(app.cfg).HTML(storedDocument(prefs))
			if stdout {
				_, err := cmd.OutOrStdout().Write(export.Render(html, opts))
				return err
			}

			path, err := export.Write(html, opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			log.Debug("exported", "path", path)
			return writeOut(cmd, app, map[string]any{
				"data": exportResult{
					Path:      path,
					Bytes:     len(export.Render(html, opts)),
					MediaType: opts.MediaType,
				},
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output directory (default: export.dir, else the working directory)")
	cmd.Flags().StringVar(&name, "name", "", fmt.Sprintf("Base file name (default %q)", export.DefaultBaseName))
	cmd.Flags().StringVar(&ext, "ext", "", fmt.Sprintf("File extension (default %q)", export.DefaultExtension))
	cmd.Flags().StringVar(&title, "title", "", "Page title for --standalone")
	cmd.Flags().BoolVar(&standalone, "standalone", false, "Wrap the fragment in a complete HTML page")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the rendered bytes to stdout instead of a file")
	return cmd
}
