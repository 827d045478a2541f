package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-tfidf-search/dedupe"
)

func newDedupeCmd(v *viper.Viper, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe",
		Short: "Find and remove documents whose word set duplicates a lower-id document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(v, logger)
			if err != nil {
				return err
			}

			removed, err := dedupe.Run(eng, logger)
			if err != nil {
				return err
			}

			for _, id := range removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Found duplicate document id %d\n", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d duplicate document(s) removed, %d remaining\n", len(removed), eng.DocumentCount())
			return nil
		},
	}
}
