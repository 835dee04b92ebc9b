package integrations

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrNotFound is returned when a project doesn't exist on an index.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures that survived retries
	// (timeouts, connection errors and non-2xx responses other than 404/410).
	ErrNetwork = errors.New("network error")
)

var normalizeRE = regexp.MustCompile(`[-_.]+`)

// NormalizePkgName converts a distribution name to its PEP 503 canonical form:
// runs of "-", "_" and "." collapse to a single "-" and the result is lowercased.
func NormalizePkgName(name string) string {
	return strings.ToLower(normalizeRE.ReplaceAllString(strings.TrimSpace(name), "-"))
}

// JoinURL joins an index base URL and a normalized project name into the
// project page URL, always with exactly one slash between parts and a
// trailing slash (PEP 503 requires it).
func JoinURL(base, project string) string {
	return strings.TrimRight(base, "/") + "/" + project + "/"
}
