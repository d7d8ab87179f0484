// Package cli wires the collection store, collaborators, and rendering
// into the shelf command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/appcat"
	"github.com/shelftools/shelf/internal/collection"
	"github.com/shelftools/shelf/internal/config"
	"github.com/shelftools/shelf/internal/logger"
	"github.com/shelftools/shelf/internal/storage"
)

// App carries everything a command needs. It is assembled once in the
// root command's PersistentPreRunE, after flags are parsed.
type App struct {
	Cfg     *config.Config
	Log     logger.Logger
	Blobs   storage.BlobStore
	Store   *collection.Store
	Catalog *appcat.Catalog

	Out io.Writer
	In  io.Reader
}

// NewRootCmd builds the shelf command tree.
func NewRootCmd() *cobra.Command {
	app := &App{Out: os.Stdout, In: os.Stdin}
	var configPath string

	root := &cobra.Command{
		Use:           "shelf",
		Short:         "Organize applications, websites, and folders into collections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			blobs, err := storage.Open(cfg.Storage)
			if err != nil {
				return err
			}

			app.Cfg = cfg
			app.Log = logger.New(cfg.Log.Level, cfg.Log.Pretty)
			app.Blobs = blobs
			app.Store = collection.New(blobs, app.Log)
			app.Catalog = appcat.New(cfg.AppDirs)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Blobs != nil {
				_ = app.Blobs.Close()
			}
			if app.Log != nil {
				_ = app.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/shelf/config.yaml)")

	root.AddCommand(newListCmd(app))
	root.AddCommand(newFolderCmd(app))
	root.AddCommand(newItemCmd(app))
	root.AddCommand(newNestCmd(app))
	root.AddCommand(newTouchCmd(app))
	root.AddCommand(newSortCmd(app))
	root.AddCommand(newDedupeCmd(app))
	root.AddCommand(newURLsCmd(app))
	root.AddCommand(newExportCmd(app))
	root.AddCommand(newImportCmd(app))
	root.AddCommand(newIconsCmd(app))
	root.AddCommand(newSearchCmd(app))
	root.AddCommand(newCheckCmd(app))

	return root
}

// Execute runs the command tree, printing the failure the way a CLI
// should: one line on stderr, exit code 1.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
