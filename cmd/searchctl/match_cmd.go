package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-tfidf-search/engine"
)

func newMatchCmd(v *viper.Viper, logger *zap.Logger) *cobra.Command {
	var parallel bool

	cmd := &cobra.Command{
		Use:   "match <document-id> <query>",
		Short: "Run MatchDocument and print the matched plus-terms and status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("document id must be an integer: %w", err)
			}

			eng, err := buildEngine(v, logger)
			if err != nil {
				return err
			}

			terms, status, err := eng.MatchDocument(args[1], id, engine.WithParallel(parallel))
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "match error: %v\n", err)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "{ document_id = %d, status = %s, words =", id, status)
			for _, term := range terms {
				fmt.Fprintf(cmd.OutOrStdout(), " %s", term)
			}
			fmt.Fprintln(cmd.OutOrStdout(), " }")
			return nil
		},
	}

	cmd.Flags().BoolVar(&parallel, "parallel", false, "use the parallel intersection scan")
	return cmd
}
