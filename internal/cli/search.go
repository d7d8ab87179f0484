package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/search"
)

func newSearchCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Fuzzy-search items across every folder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			folders, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}

			results := search.Items(folders, query)
			if len(results) == 0 {
				fmt.Fprintf(app.Out, "No matches for %q.\n", query)
				return nil
			}
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			for _, r := range results {
				fmt.Fprintf(app.Out, "%s  %s\n", renderItem(r.Item), detailStyle.Render("in "+r.Folder.Name))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum results to show")
	return cmd
}
