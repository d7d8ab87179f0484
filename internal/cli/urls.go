package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/model"
	"github.com/shelftools/shelf/internal/urls"
)

func newURLsCmd(app *App) *cobra.Command {
	var format string
	var copyOut bool

	cmd := &cobra.Command{
		Use:   "urls <folder-id>",
		Short: "Collect every website URL in a folder tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}
			folder := model.FindFolder(folders, args[0])
			if folder == nil {
				return fmt.Errorf("folder %s not found", args[0])
			}

			var text string
			switch format {
			case "markdown":
				text = urls.Markdown(*folder, folders)
			case "flat":
				text = strings.Join(urls.Flat(urls.Collect(*folder, folders)), "\n")
			default:
				return fmt.Errorf("unknown format %q (want markdown or flat)", format)
			}

			if text == "" {
				fmt.Fprintf(app.Out, "No URLs in %s.\n", renderFolderName(*folder))
				return nil
			}

			if copyOut {
				if err := clipboard.WriteAll(text); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(app.Out, "Copied to clipboard.")
				return nil
			}

			fmt.Fprintln(app.Out, text)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "markdown", "output format: markdown or flat")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy to the clipboard instead of printing")
	return cmd
}
