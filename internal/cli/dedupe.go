package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/collection"
	"github.com/shelftools/shelf/internal/dedupe"
	"github.com/shelftools/shelf/internal/model"
)

func newDedupeCmd(app *App) *cobra.Command {
	var assumeYes, dryRun bool

	cmd := &cobra.Command{
		Use:   "dedupe <folder-id>",
		Short: "Remove duplicate items from a folder",
		Long: `Scan a folder for items pointing at the same thing (same normalized
URL, same application path, same nested folder) and remove every
occurrence after the first. Removal asks for confirmation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}
			folder := model.FindFolder(folders, args[0])
			if folder == nil {
				return fmt.Errorf("folder %s not found", args[0])
			}

			report := dedupe.Scan(folder.Items)
			if report.DuplicateCount == 0 {
				fmt.Fprintf(app.Out, "No duplicates in %s.\n", renderFolderName(*folder))
				return nil
			}

			fmt.Fprintf(app.Out, "%s\n", warnStyle.Render(fmt.Sprintf("%d duplicate(s) in %s:", report.DuplicateCount, folder.Name)))
			for _, it := range report.Duplicates {
				fmt.Fprintf(app.Out, "  %s\n", renderItem(it))
			}
			if dryRun {
				return nil
			}

			ok, err := app.confirmer(assumeYes).Confirm(fmt.Sprintf("Remove %d duplicate(s)?", report.DuplicateCount))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(app.Out, "Aborted.")
				return nil
			}

			if err := app.Store.UpdateFolder(cmd.Context(), folder.ID, collection.FolderUpdate{Items: &report.Unique}); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Removed %d duplicate(s).\n", report.DuplicateCount)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report duplicates without removing them")
	return cmd
}
