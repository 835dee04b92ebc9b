package python

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/pydepsync/pkg/cache"
	"github.com/matzehuels/pydepsync/pkg/deps"
	"github.com/matzehuels/pydepsync/pkg/integrations/pypi"
)

// IndexList returns the indexes to query, in order: the preferred index
// (or the public index when none is set), then the extra indexes. Trailing
// slashes are ignored and duplicates keep their first position.
func IndexList(preferred string, extras []string) []string {
	first := strings.TrimSpace(preferred)
	if first == "" {
		first = pypi.DefaultIndexURL
	}

	var out []string
	seen := make(map[string]bool)
	for _, u := range append([]string{first}, extras...) {
		u = strings.TrimRight(strings.TrimSpace(u), "/")
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

// NewResolver creates a registry that queries the given indexes in order.
// httpClient and backend may be nil for defaults and no caching.
func NewResolver(indexes []string, httpClient *http.Client, backend cache.Cache, ttl time.Duration) *deps.Registry {
	fetchers := make([]deps.Fetcher, len(indexes))
	for i, u := range indexes {
		fetchers[i] = fetcher{pypi.NewClient(u, httpClient, backend, ttl)}
	}
	return deps.NewRegistry(fetchers, Select)
}

// Select implements [deps.Selector] with PEP 440 ordering and a
// compatible-release specifier.
func Select(versions []string) (version, specifier string, ok bool) {
	v, ok := SelectVersion(versions)
	if !ok {
		return "", "", false
	}
	return v.String(), CompatibleSpecifier(v), true
}

type fetcher struct{ *pypi.Client }

func (f fetcher) Index() string { return f.BaseURL() }

func (f fetcher) Fetch(ctx context.Context, name string, refresh bool) (*deps.Release, error) {
	p, err := f.FetchProject(ctx, name, refresh)
	if err != nil {
		return nil, err
	}
	return &deps.Release{
		Name:     name,
		Versions: p.Versions,
		Index:    p.Index,
	}, nil
}
