package python

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/matzehuels/pydepsync/pkg/integrations"
)

// Requirement is a parsed PEP 508 dependency specifier.
type Requirement struct {
	Name      string   // As written
	Extras    []string // Sorted, lowercased
	Specifier string   // "" when unconstrained; whitespace removed
	URL       string   // Direct reference after "@"
	Marker    string   // Environment marker after ";"
}

// Normalized returns the PEP 503 normalized distribution name.
func (r Requirement) Normalized() string {
	return integrations.NormalizePkgName(r.Name)
}

var (
	reqNameRE   = regexp.MustCompile(`^\s*([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*`)
	extraNameRE = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	specClause  = regexp.MustCompile(`^(~=|===|==|!=|<=|>=|<|>)\s*[A-Za-z0-9*+!._-]+$`)
)

// ParseRequirement parses a dependency string such as
// `requests[socks]>=2.28; python_version >= "3.8"`.
func ParseRequirement(s string) (Requirement, error) {
	body, marker, _ := strings.Cut(s, ";")
	req := Requirement{Marker: strings.TrimSpace(marker)}

	m := reqNameRE.FindStringSubmatchIndex(body)
	if m == nil {
		return Requirement{}, fmt.Errorf("invalid requirement %q: missing name", s)
	}
	req.Name = body[m[2]:m[3]]
	rest := body[m[1]:]

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return Requirement{}, fmt.Errorf("invalid requirement %q: unclosed extras", s)
		}
		for _, e := range strings.Split(rest[1:end], ",") {
			e = strings.TrimSpace(e)
			if e == "" {
				continue
			}
			if !extraNameRE.MatchString(e) {
				return Requirement{}, fmt.Errorf("invalid requirement %q: bad extra %q", s, e)
			}
			req.Extras = append(req.Extras, strings.ToLower(e))
		}
		sort.Strings(req.Extras)
		rest = strings.TrimSpace(rest[end+1:])
	}

	if strings.HasPrefix(rest, "@") {
		req.URL = strings.TrimSpace(rest[1:])
		if req.URL == "" {
			return Requirement{}, fmt.Errorf("invalid requirement %q: empty URL", s)
		}
		return req, nil
	}

	spec := strings.TrimSpace(rest)
	if strings.HasPrefix(spec, "(") && strings.HasSuffix(spec, ")") {
		spec = strings.TrimSpace(spec[1 : len(spec)-1])
	}
	if spec != "" {
		var clauses []string
		for _, c := range strings.Split(spec, ",") {
			c = strings.TrimSpace(c)
			if !specClause.MatchString(c) {
				return Requirement{}, fmt.Errorf("invalid requirement %q: bad version clause %q", s, c)
			}
			clauses = append(clauses, strings.Join(strings.Fields(c), ""))
		}
		req.Specifier = strings.Join(clauses, ",")
	}
	return req, nil
}

// RequirementName extracts the distribution name from a dependency string,
// falling back to the leading name token when the full string does not parse.
func RequirementName(s string) (string, bool) {
	if r, err := ParseRequirement(s); err == nil {
		return r.Name, true
	}
	if m := reqNameRE.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	return "", false
}
