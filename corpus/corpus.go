/*
   Loads a corpus of HTML pages from disk and assembles the link graph
   connecting them.
*/
package corpus

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/net/html"
	"golang.org/x/xerrors"
)

// Loader reads the HTML pages of a flat directory and builds the link graph
// connecting them. It implements the GraphLoader interface expected by the
// ranker service.
type Loader struct {
	dir string
}

// NewLoader returns a Loader for the corpus stored in dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load parses every HTML file in the corpus directory and returns the link
// graph for it. Pages are keyed by filename; anchor targets that do not name
// another page of the corpus and self-links are discarded by the graph
// constructor.
func (l *Loader) Load() (*graph.Graph, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, xerrors.Errorf("load corpus: %w", err)
	}

	links := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		f, err := os.Open(filepath.Join(l.dir, entry.Name()))
		if err != nil {
			return nil, xerrors.Errorf("load corpus: %w", err)
		}
		pageLinks, err := extractLinks(f)
		_ = f.Close()
		if err != nil {
			return nil, xerrors.Errorf("load corpus: parse %q: %w", entry.Name(), err)
		}
		links[entry.Name()] = pageLinks
	}
	return graph.New(links), nil
}

// extractLinks scans an HTML document and returns the href target of every
// anchor element.
func extractLinks(r io.Reader) ([]string, error) {
	var links []string
	tokenizer := html.NewTokenizer(r)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); err != io.EOF {
				return nil, err
			}
			return links, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key == "href" {
					links = append(links, attr.Val)
					break
				}
			}
		}
	}
}
