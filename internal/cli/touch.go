package cli

import (
	"github.com/spf13/cobra"
)

func newTouchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "touch <folder-id> [item-id]",
		Short: "Record that a folder or item was just used",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return app.Store.TouchItem(cmd.Context(), args[0], args[1])
			}
			return app.Store.TouchFolder(cmd.Context(), args[0])
		},
	}
}
