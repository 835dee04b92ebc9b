package python

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// DefaultSourceRoots are the directories, besides the project root, whose
// top-level modules count as local.
var DefaultSourceRoots = []string{"src"}

// LocalModules returns the names importable from the project itself: every
// "*.py" stem and every identifier-named directory holding Python code
// ("__init__.py" or any other "*.py" file), at the project root and at each
// source root (relative to root), plus the project's own name converted to an
// identifier.
//
// Entries matching exclude are skipped. A bare name matches at any level, a
// name containing "/" matches that path relative to root.
//
// A missing source root is ignored; an unreadable project root is an error.
func LocalModules(root string, sourceRoots, exclude []string, projectName string) (map[string]bool, error) {
	local := make(map[string]bool)
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[strings.TrimPrefix(strings.Trim(filepath.ToSlash(e), "/"), "./")] = true
	}

	if err := addModulesIn(root, "", skip, local); err != nil {
		return nil, err
	}
	for _, sr := range sourceRoots {
		err := addModulesIn(filepath.Join(root, filepath.FromSlash(sr)), path.Clean(sr), skip, local)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	for _, name := range projectIdentifiers(projectName) {
		local[name] = true
	}
	return local, nil
}

// addModulesIn adds the modules found directly in dir, whose slash path
// relative to the project root is rel.
func addModulesIn(dir, rel string, skip, local map[string]bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		name := e.Name()
		if skip[name] || skip[path.Join(rel, name)] {
			continue
		}
		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, name)); err == nil {
				isDir = info.IsDir()
			}
		}
		switch {
		case isDir:
			if isIdentifier(name) && hasPython(filepath.Join(dir, name)) {
				local[name] = true
			}
		case strings.HasSuffix(name, ".py"):
			if stem := strings.TrimSuffix(name, ".py"); isIdentifier(stem) {
				local[stem] = true
			}
		}
	}
	return nil
}

// hasPython reports whether dir directly contains a "*.py" file, which
// includes "__init__.py".
func hasPython(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".py") {
			return true
		}
	}
	return false
}

var nonIdentRE = regexp.MustCompile(`[-_.]+`)

// projectIdentifiers converts a distribution name to the import names it
// most likely provides: "My-Project" yields "My_Project" and "my_project".
func projectIdentifiers(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	ident := nonIdentRE.ReplaceAllString(name, "_")
	set := map[string]bool{ident: true, strings.ToLower(ident): true}

	var out []string
	for n := range set {
		if isIdentifier(n) {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
