package deps

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/pydepsync/pkg/diag"
	"github.com/matzehuels/pydepsync/pkg/integrations"
)

// ErrUnresolved is returned when no index has a usable release.
var ErrUnresolved = errors.New("not found on any index")

// Fetcher retrieves release information from one index.
type Fetcher interface {
	// Index returns the index base URL.
	Index() string
	// Fetch retrieves the releases of a distribution. If refresh is true,
	// cached data is bypassed. Returns an error wrapping
	// [integrations.ErrNotFound] when the index does not know the name.
	Fetch(ctx context.Context, name string, refresh bool) (*Release, error)
}

// Selector picks a version from raw version strings and renders its
// specifier. ok is false when no version is usable.
type Selector func(versions []string) (version, specifier string, ok bool)

// Registry resolves distribution names against an ordered list of indexes.
//
// Results are memoized per normalized name for the Registry's lifetime, and
// concurrent lookups of the same name share one in-flight query. A Registry
// is safe for concurrent use.
type Registry struct {
	indexes []Fetcher
	sel     Selector

	group singleflight.Group
	mu    sync.Mutex
	memo  map[string]*ResolvedPackage // nil value: unresolved
}

// NewRegistry creates a Registry querying indexes in order.
func NewRegistry(indexes []Fetcher, sel Selector) *Registry {
	return &Registry{
		indexes: indexes,
		sel:     sel,
		memo:    make(map[string]*ResolvedPackage),
	}
}

// Name returns the registry name.
func (r *Registry) Name() string { return "simple" }

// Indexes returns the index base URLs in query order.
func (r *Registry) Indexes() []string {
	out := make([]string, len(r.indexes))
	for i, f := range r.indexes {
		out[i] = f.Index()
	}
	return out
}

// Lookup resolves one distribution name. The returned package has no
// ImportName; callers fill it in. Returns [ErrUnresolved] when every index
// was exhausted, or the context error if ctx was cancelled.
func (r *Registry) Lookup(ctx context.Context, dist string, opts Options) (*ResolvedPackage, error) {
	key := integrations.NormalizePkgName(dist)

	r.mu.Lock()
	pkg, ok := r.memo[key]
	r.mu.Unlock()
	if ok {
		return found(pkg, dist)
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		r.mu.Lock()
		pkg, ok := r.memo[key]
		r.mu.Unlock()
		if ok {
			return pkg, nil
		}

		pkg, err := r.query(ctx, dist, opts)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.memo[key] = pkg
		r.mu.Unlock()
		return pkg, nil
	})
	if err != nil {
		return nil, err
	}
	return found(v.(*ResolvedPackage), dist)
}

// found copies a memoized result, keeping the caller's spelling of the name.
func found(pkg *ResolvedPackage, dist string) (*ResolvedPackage, error) {
	if pkg == nil {
		return nil, ErrUnresolved
	}
	cp := *pkg
	cp.Name = dist
	return &cp, nil
}

// query walks the indexes in order. A nil package with a nil error means
// every index was exhausted.
func (r *Registry) query(ctx context.Context, dist string, opts Options) (*ResolvedPackage, error) {
	sink := opts.Diagnostics
	for _, idx := range r.indexes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel, err := idx.Fetch(ctx, dist, opts.Refresh)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil, ctx.Err()
		case errors.Is(err, integrations.ErrNotFound):
			diag.Emitf(sink, diag.Debug, diag.StageResolve, dist, "not found on %s", idx.Index())
			continue
		case err != nil:
			diag.Emitf(sink, diag.Warning, diag.StageResolve, dist, "index %s failed: %v", idx.Index(), err)
			continue
		}

		version, spec, ok := r.sel(rel.Versions)
		if !ok {
			diag.Emitf(sink, diag.Debug, diag.StageResolve, dist, "no usable versions on %s", idx.Index())
			continue
		}
		return &ResolvedPackage{
			Name:      dist,
			Version:   version,
			Specifier: spec,
			Index:     rel.Index,
		}, nil
	}
	diag.Emitf(sink, diag.Warning, diag.StageResolve, dist, "not found on any index; skipped")
	return nil, nil
}
