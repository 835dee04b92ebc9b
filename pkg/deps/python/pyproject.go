package python

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pydepsync/pkg/deps"
	"github.com/matzehuels/pydepsync/pkg/errors"
	"github.com/matzehuels/pydepsync/pkg/integrations"
)

// ManifestName is the manifest file pydepsync maintains.
const ManifestName = "pyproject.toml"

// Pyproject is a parsed pyproject.toml that keeps its original bytes.
type Pyproject struct {
	raw []byte
	doc map[string]any
}

// ParsePyproject decodes data. A document that is not valid TOML returns an
// INVALID_MANIFEST error.
func ParsePyproject(data []byte) (*Pyproject, error) {
	return parsePyproject(data, ManifestName)
}

func parsePyproject(data []byte, name string) (*Pyproject, error) {
	doc := make(map[string]any)
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", name)
	}
	return &Pyproject{raw: data, doc: doc}, nil
}

// LoadPyproject reads and parses the manifest at path.
func LoadPyproject(path string) (*Pyproject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "no %s at %s", ManifestName, filepath.Dir(path))
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	return parsePyproject(data, path)
}

// Raw returns the document bytes as read.
func (p *Pyproject) Raw() []byte { return p.raw }

func (p *Pyproject) project() (map[string]any, bool) {
	t, ok := p.doc["project"].(map[string]any)
	return t, ok
}

// HasProject reports whether the document has a [project] table.
func (p *Pyproject) HasProject() bool {
	_, ok := p.project()
	return ok
}

// ProjectName returns [project].name, or [tool.poetry].name for Poetry
// projects without PEP 621 metadata.
func (p *Pyproject) ProjectName() string {
	if proj, ok := p.project(); ok {
		if name, ok := proj["name"].(string); ok && name != "" {
			return name
		}
	}
	return poetryName(p.doc)
}

// Dependencies returns the string entries of [project].dependencies.
func (p *Pyproject) Dependencies() []string {
	proj, _ := p.project()
	return stringItems(proj["dependencies"])
}

// DeclaredNames returns the normalized names of every dependency declared
// anywhere in the document: the main array, every optional-dependencies
// group, every dependency group (string entries only) and Poetry tables.
func (p *Pyproject) DeclaredNames() map[string]bool {
	names := make(map[string]bool)
	add := func(entries []string) {
		for _, e := range entries {
			if n, ok := RequirementName(e); ok {
				names[integrations.NormalizePkgName(n)] = true
			}
		}
	}

	proj, _ := p.project()
	add(stringItems(proj["dependencies"]))
	if groups, ok := proj["optional-dependencies"].(map[string]any); ok {
		for _, g := range groups {
			add(stringItems(g))
		}
	}
	if groups, ok := p.doc["dependency-groups"].(map[string]any); ok {
		for _, g := range groups {
			add(stringItems(g))
		}
	}
	for _, n := range poetryDependencyNames(p.doc) {
		names[integrations.NormalizePkgName(n)] = true
	}
	return names
}

// stringItems returns the string elements of an array value, skipping
// tables such as {include-group = "..."}.
func stringItems(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// =============================================================================
// Planning
// =============================================================================

// PatchPlan lists the dependencies to append, sorted by normalized name.
type PatchPlan struct {
	Entries []deps.ResolvedPackage `json:"entries" yaml:"entries"`
}

// Empty reports whether the plan adds nothing.
func (pl PatchPlan) Empty() bool { return len(pl.Entries) == 0 }

// Requirements returns the dependency strings the plan appends.
func (pl PatchPlan) Requirements() []string {
	out := make([]string, len(pl.Entries))
	for i, e := range pl.Entries {
		out[i] = e.Requirement()
	}
	return out
}

// Plan selects the resolved packages whose normalized name is not declared
// anywhere in the document. Each distribution appears at most once.
func (p *Pyproject) Plan(resolved []deps.ResolvedPackage) PatchPlan {
	declared := p.DeclaredNames()
	seen := make(map[string]bool)
	var plan PatchPlan
	for _, r := range resolved {
		key := r.Normalized()
		if declared[key] || seen[key] {
			continue
		}
		seen[key] = true
		plan.Entries = append(plan.Entries, r)
	}
	sort.Slice(plan.Entries, func(i, j int) bool {
		return plan.Entries[i].Normalized() < plan.Entries[j].Normalized()
	})
	return plan
}

// =============================================================================
// Patching
// =============================================================================

const newArrayIndent = "    "

// lineBreak returns the document's line ending.
func lineBreak(src []byte) string {
	if bytes.Contains(src, []byte("\r\n")) {
		return "\r\n"
	}
	return "\n"
}

// Apply returns the document with the plan appended to
// [project].dependencies. The surrounding text is left untouched: the new
// entries follow the array's existing layout and quote style. The result is
// re-parsed and checked against the original before it is returned.
//
// An empty plan returns the original bytes.
func (p *Pyproject) Apply(plan PatchPlan) ([]byte, error) {
	if plan.Empty() {
		return p.raw, nil
	}
	proj, ok := p.project()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "%s has no [project] table", ManifestName)
	}
	for _, d := range stringItems(proj["dynamic"]) {
		if d == "dependencies" {
			return nil, errors.New(errors.ErrCodeUnsupported, "[project].dependencies is declared dynamic")
		}
	}
	if v, ok := proj["dependencies"]; ok {
		if _, isArray := v.([]any); !isArray {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "[project].dependencies is not an array")
		}
	}

	layout, err := scanTOML(p.raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "scan %s", ManifestName)
	}
	for _, pair := range layout.pairsIn(-1) {
		if pair.key[0] == "project" {
			return nil, errors.New(errors.ErrCodeUnsupported, "[project] defined with dotted or inline keys cannot be patched")
		}
	}
	tbl := layout.findTable("project")
	if tbl < 0 {
		return nil, errors.New(errors.ErrCodeUnsupported, "[project] defined only through sub-tables cannot be patched")
	}

	reqs := plan.Requirements()
	var out []byte
	if pair, ok := findPair(layout.pairsIn(tbl), "dependencies"); ok {
		out, err = spliceArray(p.raw, pair, reqs)
	} else {
		out, err = insertKey(p.raw, layout, tbl, reqs)
	}
	if err != nil {
		return nil, err
	}

	if err := verify(p, out, reqs); err != nil {
		return nil, err
	}
	return out, nil
}

func findPair(pairs []tomlPair, key ...string) (tomlPair, bool) {
	for _, pr := range pairs {
		if equalPath(pr.key, key) {
			return pr, true
		}
	}
	return tomlPair{}, false
}

func quoteAll(reqs []string, q byte) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = string(q) + r + string(q)
	}
	return out
}

// spliceArray appends reqs to the array value of pair.
func spliceArray(src []byte, pair tomlPair, reqs []string) ([]byte, error) {
	arr, err := scanArrayAt(src, pair.valStart)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "scan [project].dependencies")
	}

	if len(arr.elems) == 0 {
		return spliceEmpty(src, arr, reqs), nil
	}

	last := arr.elems[len(arr.elems)-1]
	q := byte('"')
	if src[last.start] == '\'' {
		q = '\''
	}
	items := quoteAll(reqs, q)
	trailing := arr.trailing >= 0

	var b bytes.Buffer
	if !arr.multiline {
		// ["a", "b"] -> ["a", "b", "x"]; ["a",] -> ["a", "x",]
		if trailing {
			b.Write(src[:arr.trailing])
			b.WriteString(" " + strings.Join(items, ", ") + ",")
			b.Write(src[arr.trailing:])
		} else {
			b.Write(src[:last.end])
			b.WriteString(", " + strings.Join(items, ", "))
			b.Write(src[last.end:])
		}
		return b.Bytes(), nil
	}

	// Multi-line: one entry per line at the last element's indentation,
	// inserted after the last element's line (and any comment on it).
	ls := lineStartOf(src, last.start)
	indent := leadingSpace(src[ls:last.start])
	after := last.end
	if trailing {
		after = arr.trailing
	}
	at := lineEndOrClose(src, after, arr.close)

	nl := lineBreak(src)
	var ins strings.Builder
	for i, it := range items {
		ins.WriteString(nl + indent + it)
		if trailing || i < len(items)-1 {
			ins.WriteString(",")
		}
	}

	if !trailing {
		b.Write(src[:last.end])
		b.WriteString(",")
		b.Write(src[last.end:at])
	} else {
		b.Write(src[:at])
	}
	b.WriteString(ins.String())
	b.Write(src[at:])
	return b.Bytes(), nil
}

// spliceEmpty fills an array with no elements as a multi-line array.
func spliceEmpty(src []byte, arr tomlArray, reqs []string) []byte {
	nl := lineBreak(src)
	var lines strings.Builder
	for _, it := range quoteAll(reqs, '"') {
		lines.WriteString(newArrayIndent + it + "," + nl)
	}

	var b bytes.Buffer
	if !arr.comments {
		b.Write(src[:arr.open])
		b.WriteString("[" + nl + lines.String() + "]")
		b.Write(src[arr.close+1:])
		return b.Bytes()
	}

	// Keep comments: add the entries on their own lines before "]".
	cls := lineStartOf(src, arr.close)
	if strings.TrimSpace(string(src[cls:arr.close])) == "" && cls > arr.open {
		b.Write(src[:cls])
		b.WriteString(lines.String())
		b.Write(src[cls:])
		return b.Bytes()
	}
	b.Write(src[:arr.close])
	b.WriteString(nl + lines.String())
	b.Write(src[arr.close:])
	return b.Bytes()
}

// insertKey adds a dependencies key after the last pair of the table.
func insertKey(src []byte, layout *tomlLayout, tbl int, reqs []string) ([]byte, error) {
	at := layout.tables[tbl].bodyStart
	if pairs := layout.pairsIn(tbl); len(pairs) > 0 {
		at = pairs[len(pairs)-1].lineEnd
	}

	nl := lineBreak(src)
	var text strings.Builder
	if at > 0 && src[at-1] != '\n' {
		text.WriteString(nl)
	}
	text.WriteString("dependencies = [" + nl)
	for _, it := range quoteAll(reqs, '"') {
		text.WriteString(newArrayIndent + it + "," + nl)
	}
	text.WriteString("]" + nl)

	var b bytes.Buffer
	b.Write(src[:at])
	b.WriteString(text.String())
	b.Write(src[at:])
	return b.Bytes(), nil
}

func lineStartOf(src []byte, i int) int {
	for i > 0 && src[i-1] != '\n' {
		i--
	}
	return i
}

func leadingSpace(b []byte) string {
	n := 0
	for n < len(b) && (b[n] == ' ' || b[n] == '\t') {
		n++
	}
	return string(b[:n])
}

// lineEndOrClose returns the offset of the newline ending the line that
// contains i, skipping a trailing comment, or the offset of the closing
// bracket if it comes first.
func lineEndOrClose(src []byte, i, closeAt int) int {
	for i < len(src) && i < closeAt {
		switch src[i] {
		case '\n':
			if i > 0 && src[i-1] == '\r' {
				return i - 1
			}
			return i
		case '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			continue
		}
		i++
	}
	return min(i, closeAt)
}

// verify re-parses out and checks that only the main dependency array
// changed, and that it changed by exactly the appended entries.
func verify(orig *Pyproject, out []byte, reqs []string) error {
	patched, err := ParsePyproject(out)
	if err != nil {
		return errors.Wrap(errors.ErrCodeVerifyFailed, err, "patched manifest does not parse")
	}

	want := append(orig.Dependencies(), reqs...)
	if got := patched.Dependencies(); !reflect.DeepEqual(got, want) {
		return errors.New(errors.ErrCodeVerifyFailed, "dependencies = %q, want %q", got, want)
	}
	if !reflect.DeepEqual(withoutDependencies(orig.doc), withoutDependencies(patched.doc)) {
		return errors.New(errors.ErrCodeVerifyFailed, "patch changed keys other than [project].dependencies")
	}
	return nil
}

func withoutDependencies(doc map[string]any) map[string]any {
	cp := make(map[string]any, len(doc))
	for k, v := range doc {
		cp[k] = v
	}
	if proj, ok := doc["project"].(map[string]any); ok {
		p := make(map[string]any, len(proj))
		for k, v := range proj {
			if k != "dependencies" {
				p[k] = v
			}
		}
		cp["project"] = p
	}
	return cp
}

// =============================================================================
// Writing
// =============================================================================

// WriteFileAtomic replaces path with data: it writes a temporary file in the
// same directory, syncs it, copies the original file mode and renames it
// over path.
func WriteFileAtomic(path string, data []byte) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeManifestWrite, err, "create temp file for %s", path)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(errors.ErrCodeManifestWrite, err, "write %s", tmp.Name())
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(errors.ErrCodeManifestWrite, err, "sync %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeManifestWrite, err, "close %s", tmp.Name())
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return errors.Wrap(errors.ErrCodeManifestWrite, err, "chmod %s", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeManifestWrite, err, "replace %s", path)
	}
	return nil
}

// String renders a short summary, used in debug output.
func (pl PatchPlan) String() string {
	return fmt.Sprintf("%d entries: %s", len(pl.Entries), strings.Join(pl.Requirements(), ", "))
}
