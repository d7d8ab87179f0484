package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/hierarchy"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report structural problems in the collection",
		Long: `Check the collection against its structural rules: unique folder ids,
no dangling folder references, at most one parent per folder, and no
reference cycles. Read-only; nothing is repaired.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}

			problems := hierarchy.Validate(folders)
			if len(problems) == 0 {
				fmt.Fprintf(app.Out, "Collection OK: %d folder(s), no problems.\n", len(folders))
				return nil
			}

			for _, p := range problems {
				fmt.Fprintf(app.Out, "%s\n", warnStyle.Render(fmt.Sprintf("[%s] %s", p.Kind, p.Detail)))
			}
			return fmt.Errorf("%d structural problem(s) found", len(problems))
		},
	}
}
