// Package deps resolves candidate distributions against package indexes.
//
// # Overview
//
// After the scanner and filters have reduced a project's imports to a set
// of third-party names, each name becomes a [Candidate]: the import name
// plus a guess at the distribution that provides it. This package binds
// candidates to concrete versions.
//
// # Architecture
//
// Resolution has three layers:
//
//  1. Integrations ([integrations]): HTTP clients for one index each
//  2. Registry (this package): ordered fallback across indexes, memoized
//  3. Language ([python]): index list construction and version selection
//
// # Resolving Candidates
//
//	reg := python.NewResolver(python.IndexList("", nil), nil, nil, time.Hour)
//	res, _ := reg.Resolve(ctx, []deps.Candidate{
//	    {ImportName: "yaml", Dist: "PyYAML"},
//	}, deps.Options{Workers: 8})
//
// The resolver:
//
//  1. Fans candidates out to a bounded worker pool
//  2. Queries each candidate's indexes strictly in order, moving on when an
//     index does not know the name, has no usable versions, or fails
//  3. Selects a version with the registry's [Selector]
//  4. Collects results through a single collector, sorted by import name
//
// Lookups of the same normalized name share one in-flight query and are
// memoized for the Registry's lifetime, so two imports provided by one
// distribution cost one request per index.
//
// # Diagnostics
//
// Misses and index failures never abort resolution. They are reported to
// [Options.Diagnostics] and the candidate lands in [Resolution.Unresolved].
// The only error Resolve returns is context cancellation.
//
// [integrations]: github.com/matzehuels/pydepsync/pkg/integrations
// [python]: github.com/matzehuels/pydepsync/pkg/deps/python
package deps
