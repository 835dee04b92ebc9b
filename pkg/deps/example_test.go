package deps_test

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/pydepsync/pkg/deps"
	"github.com/matzehuels/pydepsync/pkg/integrations"
)

func ExampleOptions_WithDefaults() {
	// Create options with some custom values
	opts := deps.Options{
		Workers: 4,
		// CacheTTL left as zero - will get the default
	}

	opts = opts.WithDefaults()

	fmt.Println("Workers:", opts.Workers)
	fmt.Println("CacheTTL:", opts.CacheTTL)
	// Output:
	// Workers: 4
	// CacheTTL: 1h0m0s
}

func ExampleResolvedPackage_Requirement() {
	pkg := deps.ResolvedPackage{
		Name:      "PyYAML",
		Version:   "6.0.2",
		Specifier: "~=6.0.2",
	}

	fmt.Println(pkg.Requirement())
	fmt.Println(pkg.Normalized())
	// Output:
	// PyYAML~=6.0.2
	// pyyaml
}

// staticIndex serves a fixed set of releases.
type staticIndex struct {
	url      string
	releases map[string][]string
}

func (s staticIndex) Index() string { return s.url }

func (s staticIndex) Fetch(_ context.Context, name string, _ bool) (*deps.Release, error) {
	v, ok := s.releases[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, integrations.ErrNotFound)
	}
	return &deps.Release{Name: name, Versions: v, Index: s.url}, nil
}

func ExampleRegistry_Resolve() {
	primary := staticIndex{url: "https://primary.example/simple", releases: map[string][]string{
		"requests": {"2.31.0"},
	}}
	mirror := staticIndex{url: "https://mirror.example/simple", releases: map[string][]string{
		"requests":       {"2.30.0"},
		"internal-tools": {"1.4"},
	}}
	latest := func(v []string) (string, string, bool) {
		if len(v) == 0 {
			return "", "", false
		}
		return v[len(v)-1], "==" + v[len(v)-1], true
	}

	reg := deps.NewRegistry([]deps.Fetcher{primary, mirror}, latest)
	res, _ := reg.Resolve(context.Background(), []deps.Candidate{
		{ImportName: "requests", Dist: "requests"},
		{ImportName: "tools", Dist: "internal-tools"},
		{ImportName: "missing", Dist: "missing"},
	}, deps.Options{Workers: 2, CacheTTL: time.Minute})

	for _, p := range res.Resolved {
		fmt.Println(p.ImportName, p.Requirement(), p.Index)
	}
	fmt.Println("unresolved:", len(res.Unresolved))
	// Output:
	// requests requests==2.31.0 https://primary.example/simple
	// tools internal-tools==1.4 https://mirror.example/simple
	// unresolved: 1
}
