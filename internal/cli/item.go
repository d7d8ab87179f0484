package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/model"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Add, move, duplicate, and remove items",
	}

	cmd.AddCommand(newItemAddAppCmd(app))
	cmd.AddCommand(newItemAddSiteCmd(app))
	cmd.AddCommand(newItemRmCmd(app))
	cmd.AddCommand(newItemMoveCmd(app))
	cmd.AddCommand(newItemDupCmd(app))
	return cmd
}

func newItemAddAppCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add-app <folder-id> <path>",
		Short: "Add an application item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[1]
			if name == "" {
				name = app.Catalog.DisplayName(path)
			}

			item, err := app.Store.AddItem(cmd.Context(), args[0], model.NewAppItem(name, path))
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Added %s\n", renderItem(item))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the application's name)")
	return cmd
}

func newItemAddSiteCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add-site <folder-id> <url>",
		Short: "Add a website item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[1]
			if name == "" {
				name = url
			}

			item, err := app.Store.AddItem(cmd.Context(), args[0], model.NewSiteItem(name, url))
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Added %s\n", renderItem(item))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the url)")
	return cmd
}

func newItemRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <folder-id> <item-id>",
		Short: "Remove an item from a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Store.RemoveItem(cmd.Context(), args[0], args[1])
		},
	}
}

func newItemMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <src-folder-id> <item-id> <dst-folder-id>",
		Short: "Move an item to another folder",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			moved, err := app.Store.MoveItem(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Moved %s\n", renderItem(moved))
			return nil
		},
	}
}

func newItemDupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dup <folder-id> <item-id>",
		Short: "Duplicate an item within its folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dup, err := app.Store.DuplicateItem(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Duplicated as %s\n", renderItem(dup))
			return nil
		},
	}
}
