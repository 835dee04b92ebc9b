// Package local discovers and parses the Python sources of a project tree.
//
// [Walk] lists the "*.py" files under a root in lexical order, pruning
// excluded directories and following each symlinked directory at most once
// per real path. [Scan] then reads and parses those files in a bounded
// worker pool whose results merge through a single collector.
package local

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pydepsync/pkg/deps/python"
	"github.com/matzehuels/pydepsync/pkg/diag"
	"github.com/matzehuels/pydepsync/pkg/errors"
)

// DefaultWorkers bounds concurrent file reads when Options.Workers is unset.
const DefaultWorkers = 8

// DefaultExcludes are directory names never descended into.
var DefaultExcludes = []string{
	".venv", ".git", "target", "venv", "__pycache__",
	"node_modules", ".tox", ".mypy_cache", "build", "dist",
}

// SourceFile is one Python file found under the project root.
type SourceFile struct {
	Path string // Absolute path
	Rel  string // Root-relative, slash separated
	Data []byte // Contents; nil until read
}

// Parsed pairs a source file with the imports it contains.
type Parsed struct {
	File    SourceFile
	Imports []python.RawImport
}

// Options configures a scan.
type Options struct {
	// Exclude lists directory or file names, or root-relative paths when the
	// entry contains a "/", to skip. Callers merge DefaultExcludes themselves.
	Exclude []string

	// Workers bounds concurrent reads. Zero means DefaultWorkers.
	Workers int

	// Diagnostics receives skipped files and parse failures.
	Diagnostics diag.Sink
}

// WithDefaults returns a copy of o with zero values replaced.
func (o Options) WithDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Diagnostics == nil {
		o.Diagnostics = diag.Discard{}
	}
	return o
}

// excluder matches directories and files against the exclusion list.
type excluder struct {
	names map[string]bool
	paths map[string]bool
}

func newExcluder(entries []string) excluder {
	ex := excluder{names: map[string]bool{}, paths: map[string]bool{}}
	for _, e := range entries {
		e = strings.Trim(filepath.ToSlash(strings.TrimSpace(e)), "/")
		switch {
		case e == "":
		case strings.Contains(e, "/"):
			ex.paths[strings.TrimPrefix(e, "./")] = true
		default:
			ex.names[e] = true
		}
	}
	return ex
}

func (ex excluder) match(name, rel string) bool {
	return ex.names[name] || ex.paths[rel]
}

// Walk returns the Python files under root in lexical order.
//
// An unreadable root is an error; unreadable subdirectories and dangling
// links are reported to sink and skipped.
func Walk(ctx context.Context, root string, exclude []string, sink diag.Sink) ([]SourceFile, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve project root %s", root)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read project root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "project root %s is not a directory", root)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve project root %s", root)
	}
	if sink == nil {
		sink = diag.Discard{}
	}

	w := &walker{
		ctx:     ctx,
		ex:      newExcluder(exclude),
		sink:    sink,
		visited: map[string]bool{resolved: true},
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read project root %s", root)
	}
	if err := w.dir(abs, ""); err != nil {
		return nil, err
	}
	return w.files, nil
}

type walker struct {
	ctx     context.Context
	ex      excluder
	sink    diag.Sink
	visited map[string]bool // real paths of directories already entered
	files   []SourceFile
}

func (w *walker) dir(path, rel string) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		diag.Emitf(w.sink, diag.Warning, diag.StageScan, rel, "skipping unreadable directory: %v", err)
		return nil
	}
	// os.ReadDir sorts by file name.
	for _, e := range entries {
		name := e.Name()
		full := filepath.Join(path, name)
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}

		mode := e.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := os.Stat(full)
			if err != nil {
				if strings.HasSuffix(name, ".py") {
					diag.Emitf(w.sink, diag.Warning, diag.StageScan, childRel, "skipping unreadable file: %v", err)
				}
				continue
			}
			mode = info.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if w.ex.match(name, childRel) {
				continue
			}
			resolved, err := filepath.EvalSymlinks(full)
			if err != nil {
				diag.Emitf(w.sink, diag.Warning, diag.StageScan, childRel, "skipping directory: %v", err)
				continue
			}
			if w.visited[resolved] {
				diag.Emitf(w.sink, diag.Debug, diag.StageScan, childRel, "already visited as %s", resolved)
				continue
			}
			w.visited[resolved] = true
			if err := w.dir(full, childRel); err != nil {
				return err
			}
		case mode.IsRegular() && strings.HasSuffix(name, ".py"):
			if w.ex.match(name, childRel) {
				continue
			}
			w.files = append(w.files, SourceFile{Path: full, Rel: childRel})
		}
	}
	return nil
}

// Scan walks root and parses every Python file it finds. Files that cannot
// be read or tokenized are reported to opts.Diagnostics and left out; the
// result keeps walk order.
func Scan(ctx context.Context, root string, opts Options) ([]Parsed, error) {
	opts = opts.WithDefaults()
	files, err := Walk(ctx, root, opts.Exclude, opts.Diagnostics)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, files, opts)
}

type parseResult struct {
	idx    int
	parsed Parsed
}

// Parse reads and parses files concurrently.
func Parse(ctx context.Context, files []SourceFile, opts Options) ([]Parsed, error) {
	opts = opts.WithDefaults()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	results := make(chan parseResult, opts.Workers)
	slots := make([]*Parsed, len(files))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range results {
			slots[r.idx] = &r.parsed
		}
	}()

	for i, f := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			p, ok := parseFile(f, opts.Diagnostics)
			if !ok {
				return nil
			}
			select {
			case results <- parseResult{idx: i, parsed: p}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	err := g.Wait()
	close(results)
	<-done

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}

	out := make([]Parsed, 0, len(files))
	for _, p := range slots {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func parseFile(f SourceFile, sink diag.Sink) (Parsed, bool) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		diag.Emitf(sink, diag.Warning, diag.StageScan, f.Rel, "skipping unreadable file: %v", err)
		return Parsed{}, false
	}
	f.Data = data
	imports, err := python.ExtractImports(data)
	if err != nil {
		diag.Emitf(sink, diag.Warning, diag.StageParse, f.Rel, "skipping file: %v", err)
		imports = nil
	}
	return Parsed{File: f, Imports: imports}, true
}
