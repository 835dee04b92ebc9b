package pypi

import (
	"bytes"
	"errors"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	"github.com/matzehuels/pydepsync/pkg/integrations"
)

// sdistExts are source distribution suffixes, longest first.
var sdistExts = []string{".tar.gz", ".tar.bz2", ".tar.xz", ".tgz", ".zip"}

// versionSet keeps first-seen order and tracks yanked-only versions.
type versionSet struct {
	order  []string
	seen   map[string]bool
	live   map[string]bool
	yanked map[string]bool
}

func newVersionSet() *versionSet {
	return &versionSet{seen: map[string]bool{}, live: map[string]bool{}, yanked: map[string]bool{}}
}

func (s *versionSet) add(v string, yanked bool) {
	if v == "" {
		return
	}
	if !s.seen[v] {
		s.seen[v] = true
		s.order = append(s.order, v)
	}
	if yanked {
		if !s.live[v] {
			s.yanked[v] = true
		}
		return
	}
	s.live[v] = true
	delete(s.yanked, v)
}

// liveVersions returns versions with at least one non-yanked file.
func (s *versionSet) liveVersions() []string {
	out := make([]string, 0, len(s.order))
	for _, v := range s.order {
		if s.live[v] {
			out = append(out, v)
		}
	}
	return out
}

// parseJSON reads a PEP 691 project page.
func parseJSON(body []byte, project string) (*ProjectInfo, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(body)

	info := &ProjectInfo{Name: project}
	if name := doc.Get("name").String(); name != "" {
		info.Name = name
	}

	files := newVersionSet()
	doc.Get("files").ForEach(func(_, f gjson.Result) bool {
		yanked := isYanked(f.Get("yanked"))
		files.add(versionFromFilename(f.Get("filename").String(), project), yanked)
		return true
	})

	versions := doc.Get("versions")
	if !versions.Exists() {
		info.Versions = files.liveVersions()
		return info, nil
	}

	// PEP 700: versions is authoritative, minus versions whose every file is yanked.
	seen := map[string]bool{}
	versions.ForEach(func(_, v gjson.Result) bool {
		s := v.String()
		if s == "" || seen[s] || files.yanked[s] {
			return true
		}
		seen[s] = true
		info.Versions = append(info.Versions, s)
		return true
	})
	return info, nil
}

// isYanked interprets the PEP 691 "yanked" field: false or absent means live,
// true or any string (the reason) means yanked.
func isYanked(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.String:
		return true
	default:
		return false
	}
}

// parseHTML reads a PEP 503 project page.
func parseHTML(body []byte, project string) (*ProjectInfo, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	files := newVersionSet()
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		_, yanked := a.Attr("data-yanked")
		href, _ := a.Attr("href")
		filename := linkFilename(strings.TrimSpace(a.Text()), href)
		files.add(versionFromFilename(filename, project), yanked)
	})

	return &ProjectInfo{Name: project, Versions: files.liveVersions()}, nil
}

// linkFilename prefers the anchor text and falls back to the href basename.
func linkFilename(text, href string) string {
	if isDistribution(text) {
		return text
	}
	u, err := url.Parse(href)
	if err != nil {
		return text
	}
	base := path.Base(u.Path)
	if unescaped, err := url.PathUnescape(base); err == nil {
		return unescaped
	}
	return base
}

func isDistribution(filename string) bool {
	if strings.HasSuffix(filename, ".whl") {
		return true
	}
	for _, ext := range sdistExts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

// versionFromFilename extracts the version from a wheel or sdist filename.
// Other files (eggs, installers, signatures) yield "".
func versionFromFilename(filename, project string) string {
	if strings.HasSuffix(filename, ".whl") {
		// {name}-{version}(-{build})?-{python}-{abi}-{platform}.whl
		parts := strings.Split(strings.TrimSuffix(filename, ".whl"), "-")
		if len(parts) < 5 {
			return ""
		}
		return parts[1]
	}

	var stem string
	for _, ext := range sdistExts {
		if strings.HasSuffix(filename, ext) {
			stem = strings.TrimSuffix(filename, ext)
			break
		}
	}
	if stem == "" {
		return ""
	}

	// The name part may itself contain dashes; find the split whose prefix
	// normalizes to the project name.
	for i := 0; i < len(stem); i++ {
		if stem[i] == '-' && integrations.NormalizePkgName(stem[:i]) == project {
			return stem[i+1:]
		}
	}
	if i := strings.LastIndexByte(stem, '-'); i > 0 {
		return stem[i+1:]
	}
	return ""
}
