package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/hierarchy"
	"github.com/shelftools/shelf/internal/model"
)

func newNestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nest <parent-id> [child-id]",
		Short: "Nest a folder inside another",
		Long: `Nest a folder inside another by adding a folder-reference item.

With only a parent id, the legal nesting candidates are listed: folders
that are not the parent itself, not one of its ancestors, and not already
nested elsewhere.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}

			parent := model.FindFolder(folders, args[0])
			if parent == nil {
				return fmt.Errorf("folder %s not found", args[0])
			}

			if len(args) == 1 {
				candidates := hierarchy.NestCandidates(folders, parent.ID)
				if len(candidates) == 0 {
					fmt.Fprintf(app.Out, "Nothing can be nested under %s.\n", parent.Name)
					return nil
				}
				fmt.Fprintf(app.Out, "Folders that can be nested under %s:\n", renderFolderName(*parent))
				for _, c := range candidates {
					fmt.Fprintf(app.Out, "  %s  %s\n", renderFolderName(c), detailStyle.Render(c.ID))
				}
				return nil
			}

			child := model.FindFolder(folders, args[1])
			if child == nil {
				return fmt.Errorf("folder %s not found", args[1])
			}

			if _, err := app.Store.AddItem(cmd.Context(), parent.ID, model.NewFolderRefItem(child.Name, child.ID)); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Nested %s under %s\n", renderFolderName(*child), renderFolderName(*parent))
			return nil
		},
	}

	return cmd
}
