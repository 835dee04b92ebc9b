package python

import (
	"regexp"
	"strings"
)

// RemapSource records which layer produced a distribution name.
type RemapSource string

const (
	RemapUser     RemapSource = "user"
	RemapBuiltin  RemapSource = "builtin"
	RemapIdentity RemapSource = "identity"
)

// Remapper maps import identifiers to distribution names.
//
// An identifier is usually the root module of an import. Under a namespace
// root shared by many distributions (google, azure, opentelemetry, ...) it is
// the dotted prefix that names one distribution, see [Remapper.Identifiers].
//
// Lookup order: user rules (exact, case-sensitive), then the built-in table,
// then the naming convention of the namespace, then the identifier itself.
// A Remapper is immutable and safe for concurrent use.
type Remapper struct {
	user       map[string]string
	namespaces map[string]bool // roots with dotted user rules
}

// NewRemapper creates a Remapper with the given user rules. The map is copied.
func NewRemapper(user map[string]string) *Remapper {
	r := &Remapper{
		user:       make(map[string]string, len(user)),
		namespaces: make(map[string]bool),
	}
	for k, v := range user {
		r.user[k] = v
		if root, _, dotted := strings.Cut(k, "."); dotted {
			r.namespaces[root] = true
		}
	}
	return r
}

// Resolve returns the distribution name guess for an identifier.
func (r *Remapper) Resolve(ident string) (string, RemapSource) {
	if r != nil {
		if dist, ok := r.user[ident]; ok {
			return dist, RemapUser
		}
	}
	if dist, ok := builtinRemap[ident]; ok {
		return dist, RemapBuiltin
	}
	if f, ok := familyOf(ident); ok && segments(ident) == f.depth {
		return f.dist(ident), RemapBuiltin
	}
	return ident, RemapIdentity
}

// Identifiers returns the identifiers an import contributes. Outside
// namespace roots that is just the root module. Under one, each imported
// path ("from google.cloud import storage, bigquery" has two) maps to the
// longest known prefix, or to the root when nothing matches. A user rule for
// the root itself turns namespace handling off for that root.
func (r *Remapper) Identifiers(imp RawImport) []string {
	if imp.Path == "" || !r.isNamespace(imp.Name) {
		return []string{imp.Name}
	}
	if r != nil {
		if _, ok := r.user[imp.Name]; ok {
			return []string{imp.Name}
		}
	}

	paths := []string{imp.Path}
	if len(imp.Members) > 0 {
		paths = paths[:0]
		for _, m := range imp.Members {
			paths = append(paths, imp.Path+"."+m)
		}
	}

	var out []string
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		id := r.identifier(p)
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (r *Remapper) isNamespace(root string) bool {
	if namespaceRoots[root] {
		return true
	}
	return r != nil && r.namespaces[root]
}

func (r *Remapper) known(key string) bool {
	if r != nil {
		if _, ok := r.user[key]; ok {
			return true
		}
	}
	_, ok := builtinRemap[key]
	return ok
}

// identifier picks the identifier for one dotted path: the longer of the
// longest explicit rule and the namespace convention, preferring the rule
// on a tie.
func (r *Remapper) identifier(path string) string {
	segs := strings.Split(path, ".")

	explicit := 0
	for n := len(segs); n >= 2; n-- {
		if r.known(strings.Join(segs[:n], ".")) {
			explicit = n
			break
		}
	}
	convention := 0
	if f, ok := familyOf(path); ok {
		convention = f.depth
	}

	switch {
	case explicit > 0 && explicit >= convention:
		return strings.Join(segs[:explicit], ".")
	case convention > 0:
		return strings.Join(segs[:convention], ".")
	default:
		return segs[0]
	}
}

// BuiltinRemap looks up an import name in the built-in table.
func BuiltinRemap(importName string) (string, bool) {
	dist, ok := builtinRemap[importName]
	return dist, ok
}

// =============================================================================
// Namespace packages
// =============================================================================

// namespaceFamily is a namespace whose distributions follow a naming
// convention: the first depth segments of the import path, joined with sep.
type namespaceFamily struct {
	prefix string
	depth  int
	sep    string
}

// namespaceFamilies is ordered so that a longer prefix comes before any
// shorter prefix it extends.
var namespaceFamilies = []namespaceFamily{
	{"google.cloud", 3, "-"},
	{"google", 2, "-"},
	{"azure.ai", 3, "-"},
	{"azure.cognitiveservices", 3, "-"},
	{"azure.communication", 3, "-"},
	{"azure.data", 3, "-"},
	{"azure.digitaltwins", 3, "-"},
	{"azure.iot", 3, "-"},
	{"azure.keyvault", 3, "-"},
	{"azure.kusto", 3, "-"},
	{"azure.mgmt", 3, "-"},
	{"azure.monitor", 3, "-"},
	{"azure.search", 3, "-"},
	{"azure.storage", 3, "-"},
	{"azure.synapse", 3, "-"},
	{"azure", 2, "-"},
	{"opentelemetry.exporter", 3, "-"},
	{"opentelemetry.instrumentation", 3, "-"},
	{"opentelemetry", 2, "-"},
	{"sphinxcontrib", 2, "-"},
	{"backports", 2, "."},
	{"flufl", 2, "."},
	{"jaraco", 2, "."},
	{"oslo", 2, "."},
	{"plone", 2, "."},
	{"zope", 2, "."},
}

// namespaceRoots holds every root that needs dotted identifiers.
var namespaceRoots = func() map[string]bool {
	m := make(map[string]bool)
	for _, f := range namespaceFamilies {
		root, _, _ := strings.Cut(f.prefix, ".")
		m[root] = true
	}
	for k := range builtinRemap {
		if root, _, dotted := strings.Cut(k, "."); dotted {
			m[root] = true
		}
	}
	return m
}()

// apiVersion matches the version suffix of generated client modules
// ("pubsub_v1", "vision_v1p3beta1").
var apiVersion = regexp.MustCompile(`_v\d+(?:p\d+)?(?:alpha\d*|beta\d*)?$`)

// familyOf returns the first family whose prefix path falls under and which
// path is deep enough for.
func familyOf(path string) (namespaceFamily, bool) {
	n := segments(path)
	for _, f := range namespaceFamilies {
		if (path == f.prefix || strings.HasPrefix(path, f.prefix+".")) && n >= f.depth {
			return f, true
		}
	}
	return namespaceFamily{}, false
}

// dist builds the conventional distribution name for an identifier of
// exactly f.depth segments.
func (f namespaceFamily) dist(ident string) string {
	if f.sep == "." {
		return ident
	}
	ident = apiVersion.ReplaceAllString(ident, "")
	return strings.NewReplacer(".", "-", "_", "-").Replace(ident)
}

func segments(path string) int {
	return strings.Count(path, ".") + 1
}
