package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/shelftools/shelf/internal/favicon"
	"github.com/shelftools/shelf/internal/model"
)

func newIconsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Manage cached website icons",
	}

	cmd.AddCommand(newIconsRefreshCmd(app))
	return cmd
}

func newIconsRefreshCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch favicons for website items",
		Long: `Fetch favicons for every website item missing one (or for all of them
with --force) and store the local paths as icon hints. Fetch failures
are reported and leave the affected items untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := app.Store.Load(cmd.Context())
			if err != nil {
				return err
			}

			pending := map[string]bool{}
			for _, f := range folders {
				for _, it := range f.Items {
					site, ok := it.Target.(model.SiteTarget)
					if !ok {
						continue
					}
					if site.IconHint == "" || force {
						pending[site.URL] = true
					}
				}
			}
			if len(pending) == 0 {
				fmt.Fprintln(app.Out, "Every website item already has an icon.")
				return nil
			}

			fetchURLs := make([]string, 0, len(pending))
			for u := range pending {
				fetchURLs = append(fetchURLs, u)
			}

			bar := progressbar.NewOptions(len(fetchURLs),
				progressbar.OptionSetDescription("fetching icons"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetWidth(40),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprint(os.Stderr, "\n")
				}),
			)

			fetcher := favicon.New(app.Cfg.Favicon, app.Log)
			results := fetcher.FetchAll(cmd.Context(), fetchURLs, func(completed, total int) {
				_ = bar.Set(completed)
			})

			icons := map[string]string{}
			failed := 0
			for _, r := range results {
				if r.Err != "" {
					failed++
					fmt.Fprintf(app.Out, "%s\n", warnStyle.Render(fmt.Sprintf("%s: %s", r.URL, r.Err)))
					continue
				}
				icons[r.URL] = r.IconPath
			}

			updated := 0
			for fi := range folders {
				for ii, it := range folders[fi].Items {
					site, ok := it.Target.(model.SiteTarget)
					if !ok {
						continue
					}
					path, fetched := icons[site.URL]
					if !fetched || site.IconHint == path {
						continue
					}
					site.IconHint = path
					folders[fi].Items[ii].Target = site
					updated++
				}
			}

			if updated > 0 {
				if err := app.Store.Save(cmd.Context(), folders); err != nil {
					return err
				}
			}

			fmt.Fprintf(app.Out, "Updated %d item(s); %d fetch(es) failed.\n", updated, failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "refetch icons for every website item")
	return cmd
}
