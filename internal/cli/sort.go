package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/collection"
	"github.com/shelftools/shelf/internal/model"
	"github.com/shelftools/shelf/internal/sorting"
)

func newSortCmd(app *App) *cobra.Command {
	var primary, secondary, tertiary string

	cmd := &cobra.Command{
		Use:   "sort <folder-id>",
		Short: "Sort a folder's items and store the new order",
		Long: `Sort a folder's items with a three-level comparator chain and write
the result back. Levels are "method" or "method:direction", where method
is one of none, alphabetical, length, recency. Unset levels come from
the configured preferences.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := app.Cfg.Preferences
			if primary == "" {
				primary = prefs.SortPrimary
			}
			if secondary == "" {
				secondary = prefs.SortSecondary
			}
			if tertiary == "" {
				tertiary = prefs.SortTertiary
			}

			chain, err := sorting.ParseChain(primary, secondary, tertiary)
			if err != nil {
				return err
			}
			if chain.IsNoop() {
				fmt.Fprintln(app.Out, "All sort levels are none; stored order kept.")
				return nil
			}

			folders, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}
			folder := model.FindFolder(folders, args[0])
			if folder == nil {
				return fmt.Errorf("folder %s not found", args[0])
			}

			sorted := sorting.New(chain, app.Cfg.Locale).Items(folder.Items)
			if err := app.Store.UpdateFolder(cmd.Context(), folder.ID, collection.FolderUpdate{Items: &sorted}); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Sorted %d items in %s\n", len(sorted), renderFolderName(*folder))
			return nil
		},
	}

	cmd.Flags().StringVar(&primary, "primary", "", "primary sort level")
	cmd.Flags().StringVar(&secondary, "secondary", "", "secondary sort level")
	cmd.Flags().StringVar(&tertiary, "tertiary", "", "tertiary sort level")
	return cmd
}
