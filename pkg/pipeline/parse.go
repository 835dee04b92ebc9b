package pipeline

import (
	"context"
	"sort"

	"github.com/matzehuels/pydepsync/pkg/deps"
	"github.com/matzehuels/pydepsync/pkg/deps/python"
	"github.com/matzehuels/pydepsync/pkg/diag"
	"github.com/matzehuels/pydepsync/pkg/source/local"
)

// Scan walks the project and returns the parsed source files.
func Scan(ctx context.Context, opts Options, sink diag.Sink) ([]local.Parsed, error) {
	return local.Scan(ctx, opts.Root, local.Options{
		Exclude:     opts.Settings.ExcludeDirs,
		Workers:     opts.Settings.Workers,
		Diagnostics: sink,
	})
}

// Filter reduces parsed files to the sorted set of third-party import
// identifiers. Relative imports never survive. A root that is a local module
// is dropped before the standard library is consulted, so a project module
// shadowing a stdlib name is still reported as local. Third-party imports
// contribute the identifiers r derives for them, which are dotted under
// namespace roots such as google or azure.
func Filter(files []local.Parsed, localMods, stdlib map[string]bool, r *python.Remapper, sink diag.Sink) []string {
	roots := make(map[string]bool) // root -> third-party
	idents := make(map[string]bool)
	for _, f := range files {
		for _, imp := range f.Imports {
			if imp.Relative || imp.Name == "" {
				continue
			}
			thirdParty, seen := roots[imp.Name]
			if !seen {
				switch {
				case localMods[imp.Name]:
					diag.Emitf(sink, diag.Debug, diag.StageFilter, imp.Name, "local module (first seen %s:%d)", f.File.Rel, imp.Line)
				case stdlib[imp.Name]:
				default:
					thirdParty = true
				}
				roots[imp.Name] = thirdParty
			}
			if thirdParty {
				for _, id := range r.Identifiers(imp) {
					idents[id] = true
				}
			}
		}
	}

	out := make([]string, 0, len(idents))
	for id := range idents {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Remap turns import names into resolution candidates.
func Remap(names []string, r *python.Remapper, sink diag.Sink) []deps.Candidate {
	out := make([]deps.Candidate, 0, len(names))
	for _, name := range names {
		dist, src := r.Resolve(name)
		if src != python.RemapIdentity {
			diag.Emitf(sink, diag.Debug, diag.StageFilter, name, "remapped to %s (%s)", dist, src)
		}
		out = append(out, deps.Candidate{ImportName: name, Dist: dist})
	}
	return out
}
