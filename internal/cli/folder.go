package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/collection"
	"github.com/shelftools/shelf/internal/model"
)

func newFolderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Create, edit, and delete folders",
	}

	cmd.AddCommand(newFolderAddCmd(app))
	cmd.AddCommand(newFolderRenameCmd(app))
	cmd.AddCommand(newFolderIconCmd(app))
	cmd.AddCommand(newFolderColorCmd(app))
	cmd.AddCommand(newFolderRmCmd(app))
	return cmd
}

func newFolderAddCmd(app *App) *cobra.Command {
	var icon, color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if color == "" {
				color = app.Cfg.Preferences.DefaultColor
			}

			folder, err := app.Store.CreateFolder(cmd.Context(), model.NewFolderParams{
				Name:  args[0],
				Icon:  icon,
				Color: color,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Created %s  %s\n", renderFolderName(folder), detailStyle.Render(folder.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "folder icon")
	cmd.Flags().StringVar(&color, "color", "", "folder color")
	return cmd
}

func newFolderRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[1]
			return app.Store.UpdateFolder(cmd.Context(), args[0], collection.FolderUpdate{Name: &name})
		},
	}
}

func newFolderIconCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "icon <id> <icon>",
		Short: "Set a folder's icon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			icon := args[1]
			return app.Store.UpdateFolder(cmd.Context(), args[0], collection.FolderUpdate{Icon: &icon})
		},
	}
}

func newFolderColorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "color <id> <color>",
		Short: "Set a folder's color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			color := args[1]
			return app.Store.UpdateFolder(cmd.Context(), args[0], collection.FolderUpdate{Color: &color})
		},
	}
}

func newFolderRmCmd(app *App) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a folder and every reference to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := app.confirmer(assumeYes).Confirm(fmt.Sprintf("Delete folder %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(app.Out, "Aborted.")
				return nil
			}

			if err := app.Store.DeleteFolder(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Deleted folder %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation")
	return cmd
}
