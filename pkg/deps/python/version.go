package python

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a parsed PEP 440 version.
type Version struct {
	Epoch   int
	Release []int
	Pre     *PreRelease // nil when not a prerelease
	Post    *int        // nil when not a post release
	Dev     *int        // nil when not a dev release
	Local   string      // local label without the leading "+"
	raw     string
}

// PreRelease is the "aN", "bN" or "rcN" segment.
type PreRelease struct {
	Label string // "a", "b" or "rc"
	N     int
}

var versionRE = regexp.MustCompile(`(?i)^\s*v?` +
	`(?:(?P<epoch>[0-9]+)!)?` +
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
	`(?P<pre>[-_.]?(?P<pre_l>alpha|beta|preview|pre|rc|a|b|c)[-_.]?(?P<pre_n>[0-9]+)?)?` +
	`(?P<post>(?:-(?P<post_n1>[0-9]+))|(?:[-_.]?(?P<post_l>post|rev|r)[-_.]?(?P<post_n2>[0-9]+)?))?` +
	`(?P<dev>[-_.]?(?P<dev_l>dev)[-_.]?(?P<dev_n>[0-9]+)?)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_.][a-z0-9]+)*))?\s*$`)

// ParseVersion parses a PEP 440 version string.
func ParseVersion(s string) (Version, error) {
	m := versionRE.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}
	group := func(name string) string { return m[versionRE.SubexpIndex(name)] }

	v := Version{raw: s}
	var err error
	if e := group("epoch"); e != "" {
		if v.Epoch, err = strconv.Atoi(e); err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
	}
	for _, part := range strings.Split(group("release"), ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		v.Release = append(v.Release, n)
	}

	if group("pre") != "" {
		n, err := atoiOrZero(group("pre_n"))
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		v.Pre = &PreRelease{Label: canonicalPreLabel(group("pre_l")), N: n}
	}
	if group("post") != "" {
		nStr := group("post_n1")
		if nStr == "" {
			nStr = group("post_n2")
		}
		n, err := atoiOrZero(nStr)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		v.Post = &n
	}
	if group("dev") != "" {
		n, err := atoiOrZero(group("dev_n"))
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		v.Dev = &n
	}
	v.Local = strings.ToLower(group("local"))
	return v, nil
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func canonicalPreLabel(l string) string {
	switch strings.ToLower(l) {
	case "a", "alpha":
		return "a"
	case "b", "beta":
		return "b"
	default: // rc, c, pre, preview
		return "rc"
	}
}

// IsPrerelease reports whether v is a pre or dev release.
// Post releases of a final version are stable.
func (v Version) IsPrerelease() bool {
	return v.Pre != nil || v.Dev != nil
}

// String returns the normalized form of v.
func (v Version) String() string {
	var b strings.Builder
	if v.Epoch != 0 {
		fmt.Fprintf(&b, "%d!", v.Epoch)
	}
	b.WriteString(joinInts(v.Release))
	if v.Pre != nil {
		fmt.Fprintf(&b, "%s%d", v.Pre.Label, v.Pre.N)
	}
	if v.Post != nil {
		fmt.Fprintf(&b, ".post%d", *v.Post)
	}
	if v.Dev != nil {
		fmt.Fprintf(&b, ".dev%d", *v.Dev)
	}
	if v.Local != "" {
		b.WriteString("+" + v.Local)
	}
	return b.String()
}

// Raw returns the string v was parsed from.
func (v Version) Raw() string { return v.raw }

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ".")
}

// Compare orders versions per PEP 440. It returns -1, 0 or +1.
func (v Version) Compare(o Version) int {
	if c := cmpInt(v.Epoch, o.Epoch); c != 0 {
		return c
	}
	if c := cmpRelease(v.Release, o.Release); c != 0 {
		return c
	}
	if c := cmpInt(v.preKey(), o.preKey()); c != 0 {
		return c
	}
	if v.Pre != nil && o.Pre != nil {
		if c := cmpInt(v.Pre.N, o.Pre.N); c != 0 {
			return c
		}
	}
	if c := cmpOptional(v.Post, o.Post, -1); c != 0 {
		return c
	}
	if c := cmpOptional(v.Dev, o.Dev, +1); c != 0 {
		return c
	}
	return cmpLocal(v.Local, o.Local)
}

// preKey ranks the prerelease phase. A dev release of a final version
// ("1.0.dev1") sorts before any prerelease of it.
func (v Version) preKey() int {
	switch {
	case v.Pre == nil && v.Post == nil && v.Dev != nil:
		return -1
	case v.Pre == nil:
		return 4
	case v.Pre.Label == "a":
		return 1
	case v.Pre.Label == "b":
		return 2
	default:
		return 3
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// cmpRelease compares release tuples ignoring trailing zeros.
func cmpRelease(a, b []int) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if c := cmpInt(x, y); c != 0 {
			return c
		}
	}
	return 0
}

// cmpOptional compares optional numbers; absent sorts as missing (-1 puts
// absent first, +1 puts absent last).
func cmpOptional(a, b *int, missing int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return missing
	case b == nil:
		return -missing
	}
	return cmpInt(*a, *b)
}

// cmpLocal compares local labels: absent sorts first, numeric segments sort
// after alphanumeric ones, and a shorter label that is a prefix sorts first.
func cmpLocal(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}
	split := func(s string) []string {
		return strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == '-' || r == '_' })
	}
	as, bs := split(a), split(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aErr := strconv.Atoi(as[i])
		bn, bErr := strconv.Atoi(bs[i])
		switch {
		case aErr == nil && bErr == nil:
			if c := cmpInt(an, bn); c != 0 {
				return c
			}
		case aErr == nil:
			return 1
		case bErr == nil:
			return -1
		default:
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
		}
	}
	return cmpInt(len(as), len(bs))
}

// SelectVersion picks the newest stable version, or the newest prerelease
// when no stable version exists. Strings that are not valid PEP 440
// versions are skipped. ok is false when nothing valid remains.
func SelectVersion(versions []string) (best Version, ok bool) {
	var stable, pre *Version
	for _, s := range versions {
		v, err := ParseVersion(s)
		if err != nil {
			continue
		}
		target := &stable
		if v.IsPrerelease() {
			target = &pre
		}
		if *target == nil || v.Compare(**target) > 0 {
			vv := v
			*target = &vv
		}
	}
	switch {
	case stable != nil:
		return *stable, true
	case pre != nil:
		return *pre, true
	}
	return Version{}, false
}

// CompatibleSpecifier builds the "~=" specifier for a selected version.
//
// Stable versions anchor to the release segment padded or truncated to three
// components (2.0 → ~=2.0.0, 2024.8.30.1 → ~=2024.8.30); post and local
// labels are dropped. Prereleases keep their full version (~=3.0.0rc1),
// with the release padded to at least two components. Epochs are preserved.
func CompatibleSpecifier(v Version) string {
	var b strings.Builder
	b.WriteString("~=")
	if v.Epoch != 0 {
		fmt.Fprintf(&b, "%d!", v.Epoch)
	}

	if !v.IsPrerelease() {
		release := make([]int, 3)
		copy(release, v.Release)
		b.WriteString(joinInts(release))
		return b.String()
	}

	release := v.Release
	if len(release) < 2 {
		release = append(append([]int(nil), release...), 0)
	}
	b.WriteString(joinInts(release))
	if v.Pre != nil {
		fmt.Fprintf(&b, "%s%d", v.Pre.Label, v.Pre.N)
	}
	if v.Post != nil {
		fmt.Fprintf(&b, ".post%d", *v.Post)
	}
	if v.Dev != nil {
		fmt.Fprintf(&b, ".dev%d", *v.Dev)
	}
	return b.String()
}
