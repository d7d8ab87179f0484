package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/model"
	"github.com/shelftools/shelf/internal/sorting"
)

func newListCmd(app *App) *cobra.Command {
	var folderID string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List folders and their items",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}

			prefs := app.Cfg.Preferences
			chain, err := sorting.ParseChain(prefs.SortPrimary, prefs.SortSecondary, prefs.SortTertiary)
			if err != nil {
				return err
			}
			sorter := sorting.New(chain, app.Cfg.Locale)

			if folderID != "" {
				folder := model.FindFolder(folders, folderID)
				if folder == nil {
					return fmt.Errorf("folder %s not found", folderID)
				}
				printFolder(app, *folder, sorter)
				return nil
			}

			if len(folders) == 0 {
				fmt.Fprintln(app.Out, "No folders yet. Create one with: shelf folder add <name>")
				return nil
			}

			for _, f := range sorter.Folders(folders) {
				printFolder(app, f, sorter)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&folderID, "folder", "f", "", "list a single folder by id")
	return cmd
}

func printFolder(app *App, f model.Folder, sorter *sorting.Sorter) {
	fmt.Fprintf(app.Out, "%s  %s\n", renderFolderName(f), detailStyle.Render(f.ID))
	for _, it := range sorter.Items(f.Items) {
		fmt.Fprintf(app.Out, "  %s\n", renderItem(it))
	}
}
