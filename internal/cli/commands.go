package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/stash/internal/app"
	"github.com/MrSnakeDoc/stash/internal/domain"
	"github.com/MrSnakeDoc/stash/internal/notify"
	"github.com/MrSnakeDoc/stash/internal/sources/homepage"
	"github.com/MrSnakeDoc/stash/internal/version"
)

func serveCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the bookmark API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig(false)
			if err != nil {
				return err
			}

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}
}

func addCmd(f *globalFlags) *cobra.Command {
	var tags string
	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Add a bookmark",
		Long: `Adds a bookmark. The URL is stored as typed (trimmed); its hostname becomes the title.

Example:
  stash add https://go.dev/doc/ --tags go,docs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, f)
			if err != nil {
				return err
			}
			defer s.close()

			rawURL := ""
			if len(args) == 1 {
				rawURL = args[0]
			}
			b, err := s.store.Add(cmd.Context(), rawURL, domain.ParseTags(tags))
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", b.ID, b.URL)
			}
			return s.report(notify.ForAdd(err), err)
		},
	}
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "comma separated tags")
	return cmd
}

func rmCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a bookmark by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be an integer, got %q", args[0])
			}

			s, err := openSession(cmd, f)
			if err != nil {
				return err
			}
			defer s.close()

			_, err = s.store.Remove(cmd.Context(), id)
			return s.report(notify.ForRemove(err), err)
		},
	}
}

func lsCmd(f *globalFlags) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List every bookmark",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, f)
			if err != nil {
				return err
			}
			defer s.close()

			return printBookmarks(cmd.OutOrStdout(), s.store.List(), jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func searchCmd(f *globalFlags) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find bookmarks whose URL or tags contain query (case-insensitive)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, f)
			if err != nil {
				return err
			}
			defer s.close()

			return printBookmarks(cmd.OutOrStdout(), s.store.Search(strings.Join(args, " ")), jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func clearCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every bookmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, f)
			if err != nil {
				return err
			}
			defer s.close()

			n, err := s.store.Clear(cmd.Context())
			note, ok := notify.ForClear(n, err)
			if !ok {
				return nil
			}
			return s.report(note, err)
		},
	}
}

func importCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <bookmarks.yaml>",
		Short: "Import bookmarks from a Homepage bookmarks.yaml",
		Long: `Adds every entry of a gethomepage.dev bookmarks.yaml, tagged with its category
and abbreviation. URLs already saved are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, f)
			if err != nil {
				return err
			}
			defer s.close()

			res, err := homepage.Import(cmd.Context(), homepage.NewLoader(args[0]), s.store)
			return s.report(notify.ForImport(res.Added, res.Skipped, err), err)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
