// Package driver orchestrates the front-end phases for the CLI: loading
// sources, running the lexer, collecting diagnostics and retaining results
// in the compilation arena.
package driver

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"slopcc/internal/arena"
	"slopcc/internal/diag"
	"slopcc/internal/lexer"
	"slopcc/internal/source"
	"slopcc/internal/token"
)

// Options configures a tokenize run.
type Options struct {
	// MaxDiagnostics caps the per-file diagnostic bag.
	MaxDiagnostics int
	// Arena, when set, retains every token slice for the lifetime of the
	// compilation instead of the transient lexer buffers.
	Arena *arena.Arena
	// Cache, when set, skips lexing files whose content hash has a clean
	// cached token stream.
	Cache *TokenCache
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// Result holds the outcome of tokenizing one file.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads one file from disk and tokenizes it.
func Tokenize(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, id, opts), nil
}

// TokenizeBytes tokenizes content already in memory. An empty name
// registers the content as standard input.
func TokenizeBytes(name string, content []byte, opts Options) *Result {
	fs := source.NewFileSet()
	var id source.FileID
	if name == "" {
		id = fs.AddStdin(content)
	} else {
		id = fs.AddVirtual(name, content)
	}
	return tokenizeFile(fs, id, opts)
}

// TokenizeAll loads every path into one FileSet, then tokenizes the files
// concurrently. The FileSet is single-threaded, so registration happens
// up front; the lexers then only read. Results come back in input order
// with per-file bags.
func TokenizeAll(paths []string, opts Options) ([]*Result, error) {
	fs := source.NewFileSet()
	ids := make([]source.FileID, 0, len(paths))
	for _, path := range paths {
		id, err := fs.Load(path)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	results := make([]*Result, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			results[i] = tokenizeFile(fs, id, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return results, nil
}

// MergeBags folds every result's bag into one, preserving input order.
// Useful for a single exit-status or summary check over a batch.
func MergeBags(results []*Result) *diag.Bag {
	merged := diag.NewBag(0)
	for _, res := range results {
		merged.Merge(res.Bag)
	}
	return merged
}

func tokenizeFile(fs *source.FileSet, id source.FileID, opts Options) *Result {
	file := fs.Get(id)
	bag := diag.NewBag(opts.maxDiagnostics())

	if opts.Cache != nil {
		if tokens, ok := opts.Cache.Load(file.Hash, id); ok {
			return &Result{FileSet: fs, File: file, Tokens: tokens, Bag: bag}
		}
	}

	tokens := lexer.Tokenize(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	if opts.Arena != nil {
		tokens = arena.AllocSlice(opts.Arena, tokens)
	}

	// Only clean files are cached: a hit must not hide diagnostics.
	if opts.Cache != nil && bag.Empty() {
		opts.Cache.Store(file.Hash, tokens)
	}

	return &Result{FileSet: fs, File: file, Tokens: tokens, Bag: bag}
}
