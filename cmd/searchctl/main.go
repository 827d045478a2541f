// Command searchctl drives the search engine core from the command
// line: it loads a small newline-delimited document corpus into a
// fresh, in-process engine.Engine and runs one operation against it
// (search, match, or dedupe), printing each hit on its own line.
// Nothing it does is persisted across invocations: the core has no
// on-disk index.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "searchctl: failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	cmd := newRootCmd(logger)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
