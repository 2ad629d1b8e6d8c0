package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cinegrip/internal/domain"
	"cinegrip/internal/logging"
	"cinegrip/internal/tmdb"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var (
		limit int
		page  int
	)

	cmd := &cobra.Command{
		Use:   "search <terms...>",
		Short: "Print movie, TV and people suggestions for a query",
		Example: `  cinegrip search batman
  cinegrip search --page 2 star wars`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := opts.loadValid()
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			if limit <= 0 {
				limit = cfg.Search.MaxSuggestions
			}
			client := tmdb.NewClient(cfg.TMDB,
				tmdb.WithLogger(logging.For(logger, "tmdb")),
				tmdb.WithMaxSuggestions(limit),
			)

			query := strings.Join(args, " ")
			var suggestions []domain.Suggestion
			if page > 1 {
				suggestions, err = client.SearchAll(cmd.Context(), query, page)
			} else {
				suggestions, err = client.Lookup(cmd.Context(), query)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				fmt.Fprintf(out, "No results for %q\n", query)
				return nil
			}
			return printSuggestions(cmd, suggestions)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum suggestions to print (default search.max_suggestions)")
	cmd.Flags().IntVar(&page, "page", 1, "result page; pages after the first are printed in full")
	return cmd
}

func printSuggestions(cmd *cobra.Command, suggestions []domain.Suggestion) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tID\tNAME\tYEAR\tLABEL")
	for _, s := range suggestions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Kind.Label(), s.ID, s.DisplayName, s.Year(), s.ClassificationLabel)
	}
	return w.Flush()
}
