package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/backup"
)

func newExportCmd(app *App) *cobra.Command {
	var folderID, outPath string
	var copyOut bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collection as a backup document",
		Long: `Export the whole collection, or one folder plus every folder it
nests, as a versioned JSON document. The document carries a snapshot of
the current preferences.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}

			prefs := app.Cfg.Preferences
			var doc backup.Document
			if folderID != "" {
				doc, err = backup.ExportFolder(folderID, folders, &prefs, time.Now())
				if err != nil {
					return err
				}
			} else {
				doc = backup.Export(folders, &prefs, time.Now())
			}

			data, err := backup.Encode(doc)
			if err != nil {
				return err
			}

			switch {
			case copyOut:
				if err := clipboard.WriteAll(string(data)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintf(app.Out, "Copied %d folder(s) to clipboard.\n", len(doc.Folders))
			case outPath != "":
				if err := os.WriteFile(outPath, data, 0644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(app.Out, "Exported %d folder(s) to %s\n", len(doc.Folders), outPath)
			default:
				fmt.Fprintln(app.Out, string(data))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&folderID, "folder", "f", "", "export one folder and its nested closure")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to a file instead of stdout")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy to the clipboard instead of printing")
	return cmd
}
