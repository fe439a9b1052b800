package cli

import (
	"github.com/spf13/cobra"

	"mdpad/internal/store"
)

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the stored document and theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.openStoreStrict(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer func() { _ = prefs.Close() }()

			if err := prefs.Clear(); err != nil {
				return writeErr(cmd, err)
			}
			app.logger("store").Debug("preferences cleared", "path", prefs.Path())
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"cleared":  []string{store.KeyDocument, store.KeyDarkMode},
					"database": prefs.Path(),
				},
			})
		},
	}
}
