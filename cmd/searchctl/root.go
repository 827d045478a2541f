package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-tfidf-search/cmd/searchctl/internal/corpus"
	"github.com/gcbaptista/go-tfidf-search/config"
	"github.com/gcbaptista/go-tfidf-search/engine"
)

// newRootCmd builds the searchctl command tree. Persistent flags are
// bound through viper (env prefix SEARCHCTL) so every subcommand shares
// the --docs and --stop-words settings.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("searchctl")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "searchctl",
		Short: "Drive the in-memory TF-IDF search engine core from the command line",
		Long: "searchctl loads a newline-delimited JSON document corpus into a fresh\n" +
			"engine.Engine and runs a single operation against it. It has no\n" +
			"persistence of its own: every invocation starts from an empty engine.",
	}

	root.PersistentFlags().String("docs", "", "path to a newline-delimited JSON document corpus")
	root.PersistentFlags().String("stop-words", "", "space-separated stop-words")
	if err := v.BindPFlag("docs", root.PersistentFlags().Lookup("docs")); err != nil {
		panic(err)
	}
	if err := v.BindPFlag("stop-words", root.PersistentFlags().Lookup("stop-words")); err != nil {
		panic(err)
	}

	root.AddCommand(newSearchCmd(v, logger))
	root.AddCommand(newMatchCmd(v, logger))
	root.AddCommand(newDedupeCmd(v, logger))
	return root
}

// buildEngine loads the corpus file named by the "docs" setting and
// ingests every document into a fresh engine, skipping (and logging)
// any document that fails to ingest rather than aborting the whole run.
func buildEngine(v *viper.Viper, logger *zap.Logger) (*engine.Engine, error) {
	docsPath := v.GetString("docs")
	if docsPath == "" {
		return nil, fmt.Errorf("--docs is required")
	}

	f, err := os.Open(docsPath)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	docs, err := corpus.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	var stopWords []string
	if raw := v.GetString("stop-words"); raw != "" {
		stopWords = strings.Fields(raw)
	}

	eng, err := engine.New(config.EngineOptions{StopWords: stopWords}, engine.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("building engine: %w", err)
	}

	for _, d := range docs {
		status, err := d.Status()
		if err != nil {
			logger.Warn("skipping document with unknown status", zap.Int("document_id", d.ID), zap.Error(err))
			continue
		}
		if err := eng.AddDocument(d.ID, d.Text, status, d.Ratings); err != nil {
			logger.Warn("skipping document", zap.Int("document_id", d.ID), zap.Error(err))
			continue
		}
	}

	return eng, nil
}
