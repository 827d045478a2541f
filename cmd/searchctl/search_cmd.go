package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-tfidf-search/engine"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/pagination"
)

func newSearchCmd(v *viper.Viper, logger *zap.Logger) *cobra.Command {
	var (
		status   string
		parallel bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run FindTopDocuments against the corpus and print the ranked hits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(v, logger)
			if err != nil {
				return err
			}

			opts := []engine.SearchOption{engine.WithParallel(parallel)}
			if status != "" {
				s, err := parseStatus(status)
				if err != nil {
					return err
				}
				opts = append(opts, engine.WithStatus(s))
			}

			results, err := eng.FindTopDocuments(args[0], opts...)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "search error: %v\n", err)
				return err
			}

			if pageSize < 1 {
				printResults(cmd, results)
				return nil
			}

			p, err := pagination.New(results, pageSize)
			if err != nil {
				return err
			}
			for i, page := range p.Pages() {
				fmt.Fprintf(cmd.OutOrStdout(), "--- page %d ---\n", i+1)
				fmt.Fprint(cmd.OutOrStdout(), page.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "restrict results to this status (default: ACTUAL)")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "use the parallel scorer")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "paginate output at this many results per page (0 disables pagination)")
	return cmd
}

func printResults(cmd *cobra.Command, results []engine.Result) {
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "{ document_id = %d, relevance = %v, rating = %d }\n", r.ID, r.Relevance, r.Rating)
	}
}

func parseStatus(raw string) (model.DocumentStatus, error) {
	switch raw {
	case "ACTUAL":
		return model.ACTUAL, nil
	case "IRRELEVANT":
		return model.IRRELEVANT, nil
	case "BANNED":
		return model.BANNED, nil
	case "REMOVED":
		return model.REMOVED, nil
	default:
		return 0, fmt.Errorf("unknown status %q", raw)
	}
}
