// Package corpus loads a small newline-delimited document corpus for
// searchctl's subcommands, since the core has no on-disk index of its
// own to load from.
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gcbaptista/go-tfidf-search/model"
)

// Document is one line of a corpus file: a JSON object with the same
// shape engine.Engine.AddDocument's parameters take.
type Document struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	StatusRaw string `json:"status"`
	Ratings   []int  `json:"ratings"`
}

// Status parses the document's status field against model's enum,
// defaulting to ACTUAL for an empty field.
func (d Document) Status() (model.DocumentStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(d.StatusRaw)) {
	case "", "ACTUAL":
		return model.ACTUAL, nil
	case "IRRELEVANT":
		return model.IRRELEVANT, nil
	case "BANNED":
		return model.BANNED, nil
	case "REMOVED":
		return model.REMOVED, nil
	default:
		return 0, fmt.Errorf("unknown document status %q", d.StatusRaw)
	}
}

// Load reads one JSON-encoded Document per line from r, skipping blank
// lines.
func Load(r io.Reader) ([]Document, error) {
	var docs []Document
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var d Document
		if err := json.Unmarshal([]byte(line), &d); err != nil {
			return nil, fmt.Errorf("corpus.Load: %w", err)
		}
		docs = append(docs, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus.Load: %w", err)
	}
	return docs, nil
}
