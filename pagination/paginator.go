// Package pagination splits an already-ranked result slice into
// fixed-size pages. It is an external collaborator: it depends only on
// engine.Result and never reaches into the engine's internal state.
package pagination

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/go-tfidf-search/engine"
	internalErrors "github.com/gcbaptista/go-tfidf-search/internal/errors"
)

// Page is one fixed-size slice of a Paginator's underlying results. It
// never copies its backing array.
type Page struct {
	results []engine.Result
}

// Results returns the page's slice of results. The caller must not
// mutate it.
func (p Page) Results() []engine.Result {
	return p.results
}

// String renders the page as one
// "{ document_id = .., relevance = .., rating = .. }" line per result.
func (p Page) String() string {
	var b strings.Builder
	for _, r := range p.results {
		fmt.Fprintf(&b, "{ document_id = %d, relevance = %v, rating = %d }\n", r.ID, r.Relevance, r.Rating)
	}
	return b.String()
}

// Paginator splits results into consecutive pages of pageSize, the last
// page holding the remainder.
type Paginator struct {
	pages []Page
}

// New builds a Paginator over results. pageSize must be at least 1.
func New(results []engine.Result, pageSize int) (*Paginator, error) {
	if pageSize < 1 {
		return nil, internalErrors.NewInvalidArgumentError(fmt.Sprintf("page size %d must be at least 1", pageSize))
	}

	p := &Paginator{}
	for i := 0; i < len(results); i += pageSize {
		end := i + pageSize
		if end > len(results) {
			end = len(results)
		}
		p.pages = append(p.pages, Page{results: results[i:end]})
	}
	return p, nil
}

// Pages returns every page, in order.
func (p *Paginator) Pages() []Page {
	return p.pages
}

// PageCount returns the number of pages.
func (p *Paginator) PageCount() int {
	return len(p.pages)
}

// Page returns the page at index i. Fails with ErrOutOfRange if i is
// not a valid page index.
func (p *Paginator) Page(i int) (Page, error) {
	if i < 0 || i >= len(p.pages) {
		return Page{}, internalErrors.NewOutOfRangeError(i, len(p.pages))
	}
	return p.pages[i], nil
}
