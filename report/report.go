/*
   Renders rank mappings for human consumption.
*/
package report

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/Ahmed-Sermani/go-pagerank/rank"
	"golang.org/x/xerrors"
)

// Writer renders rank mappings to an io.Writer, one page per line in sorted
// page order. It implements the Reporter interface expected by the ranker
// service and is safe for use by concurrent goroutines.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Writer that renders rank mappings to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Report writes the title followed by the score of each page.
func (r *Writer) Report(title string, ranks rank.Distribution) error {
	pages := make([]string, 0, len(ranks))
	for page := range ranks {
		pages = append(pages, page)
	}
	sort.Strings(pages)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintln(r.w, title); err != nil {
		return xerrors.Errorf("write report: %w", err)
	}
	for _, page := range pages {
		if _, err := fmt.Fprintf(r.w, "  %s: %.4f\n", page, ranks[page]); err != nil {
			return xerrors.Errorf("write report: %w", err)
		}
	}
	return nil
}
