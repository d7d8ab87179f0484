package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/backup"
)

func newImportCmd(app *App) *cobra.Command {
	var mode string
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a backup document",
		Long: `Import a backup document. In merge mode only folders with new ids are
added; existing folders stay as they are. In replace mode the current
collection is discarded and the document is adopted wholesale, after an
explicit confirmation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			doc, err := backup.Decode(data)
			if err != nil {
				return err
			}

			switch mode {
			case "merge":
				existing, err := app.Store.Load(cmd.Context())
				if err != nil {
					return err
				}

				merged, added := backup.Merge(existing, doc.Folders)
				if added == 0 {
					fmt.Fprintln(app.Out, "Nothing to import; every folder id is already present.")
					return nil
				}
				if err := app.Store.Save(cmd.Context(), merged); err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "Imported %d folder(s); %d already present.\n", added, len(doc.Folders)-added)

			case "replace":
				prompt := fmt.Sprintf("Replace the entire collection with %d imported folder(s)?", len(doc.Folders))
				ok, err := app.confirmer(assumeYes).Confirm(prompt)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(app.Out, "Aborted; collection unchanged.")
					return nil
				}

				if err := app.Store.ReplaceAll(cmd.Context(), doc.Folders); err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "Replaced collection with %d folder(s).\n", len(doc.Folders))
				if doc.Preferences != nil {
					fmt.Fprintln(app.Out, "The document carries display preferences; update your config to adopt them.")
				}

			default:
				return fmt.Errorf("unknown import mode %q (want merge or replace)", mode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "merge", "import mode: merge or replace")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation")
	return cmd
}
