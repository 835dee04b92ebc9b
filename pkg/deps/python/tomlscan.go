package python

import (
	"fmt"
	"strings"
)

// tomlLayout locates tables and key/value pairs in TOML text by byte offset.
// It understands enough TOML lexing (strings, comments, arrays, inline
// tables) to tell headers from content, but does not interpret values;
// decoding is left to a real TOML parser.
type tomlLayout struct {
	tables []tomlTable
	pairs  []tomlPair
}

type tomlTable struct {
	path      []string
	array     bool // [[array-of-tables]]
	lineStart int
	bodyStart int // first byte after the header line
}

type tomlPair struct {
	table     int      // index into tables, -1 for the root table
	key       []string // dotted key segments
	lineStart int
	valStart  int
	valEnd    int
	lineEnd   int // first byte after the pair's line (after "\n", or len(src))
}

// tomlArray describes the elements of an array value.
type tomlArray struct {
	open, close int // offsets of "[" and "]"
	elems       []byteRange
	trailing    int // offset just past a comma after the last element, or -1
	multiline   bool
	comments    bool
}

type byteRange struct{ start, end int }

type tomlScanner struct {
	src []byte
	pos int
}

func scanTOML(src []byte) (*tomlLayout, error) {
	s := &tomlScanner{src: src}
	l := &tomlLayout{}
	current := -1

	for {
		s.skipBlank(true)
		if s.eof() {
			return l, nil
		}
		lineStart := s.lineStart(s.pos)
		if s.peek() == '[' {
			t, err := s.header()
			if err != nil {
				return nil, err
			}
			t.lineStart = lineStart
			if err := s.endOfLine(); err != nil {
				return nil, err
			}
			t.bodyStart = s.pos
			l.tables = append(l.tables, t)
			current = len(l.tables) - 1
			continue
		}

		key, err := s.key()
		if err != nil {
			return nil, err
		}
		s.skipBlank(false)
		if s.peek() != '=' {
			return nil, s.errorf("expected '=' after key")
		}
		s.pos++
		s.skipBlank(false)
		valStart := s.pos
		if err := s.value(); err != nil {
			return nil, err
		}
		p := tomlPair{table: current, key: key, lineStart: lineStart, valStart: valStart, valEnd: s.pos}
		if err := s.endOfLine(); err != nil {
			return nil, err
		}
		p.lineEnd = s.pos
		l.pairs = append(l.pairs, p)
	}
}

// findTable returns the index of the standard table with the given path.
func (l *tomlLayout) findTable(path ...string) int {
	for i, t := range l.tables {
		if !t.array && equalPath(t.path, path) {
			return i
		}
	}
	return -1
}

// pairsIn returns the pairs that belong directly to table idx.
func (l *tomlLayout) pairsIn(idx int) []tomlPair {
	var out []tomlPair
	for _, p := range l.pairs {
		if p.table == idx {
			out = append(out, p)
		}
	}
	return out
}

func equalPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s *tomlScanner) eof() bool  { return s.pos >= len(s.src) }
func (s *tomlScanner) peek() byte { return s.at(s.pos) }

func (s *tomlScanner) at(i int) byte {
	if i < len(s.src) {
		return s.src[i]
	}
	return 0
}

func (s *tomlScanner) errorf(format string, args ...any) error {
	line := 1 + strings.Count(string(s.src[:min(s.pos, len(s.src))]), "\n")
	return fmt.Errorf("toml line %d: %s", line, fmt.Sprintf(format, args...))
}

func (s *tomlScanner) lineStart(i int) int {
	for i > 0 && s.src[i-1] != '\n' {
		i--
	}
	return i
}

// skipBlank skips spaces and tabs; with newlines set it also skips line
// breaks and comments.
func (s *tomlScanner) skipBlank(newlines bool) {
	for !s.eof() {
		switch c := s.peek(); {
		case c == ' ' || c == '\t':
			s.pos++
		case newlines && (c == '\n' || c == '\r'):
			s.pos++
		case newlines && c == '#':
			s.skipComment()
		default:
			return
		}
	}
}

func (s *tomlScanner) skipComment() {
	for !s.eof() && s.peek() != '\n' {
		s.pos++
	}
}

// endOfLine consumes trailing whitespace, an optional comment and the newline.
func (s *tomlScanner) endOfLine() error {
	s.skipBlank(false)
	if s.peek() == '#' {
		s.skipComment()
	}
	if s.peek() == '\r' {
		s.pos++
	}
	switch {
	case s.eof():
		return nil
	case s.peek() == '\n':
		s.pos++
		return nil
	}
	return s.errorf("unexpected %q after value", s.peek())
}

func (s *tomlScanner) header() (tomlTable, error) {
	var t tomlTable
	s.pos++ // [
	if s.peek() == '[' {
		t.array = true
		s.pos++
	}
	s.skipBlank(false)
	key, err := s.key()
	if err != nil {
		return t, err
	}
	t.path = key
	s.skipBlank(false)
	if s.peek() != ']' {
		return t, s.errorf("unterminated table header")
	}
	s.pos++
	if t.array {
		if s.peek() != ']' {
			return t, s.errorf("unterminated array table header")
		}
		s.pos++
	}
	return t, nil
}

func (s *tomlScanner) key() ([]string, error) {
	var parts []string
	for {
		s.skipBlank(false)
		switch c := s.peek(); {
		case c == '"' || c == '\'':
			start := s.pos
			if err := s.str(); err != nil {
				return nil, err
			}
			parts = append(parts, unquoteKey(string(s.src[start:s.pos])))
		case isBareKeyChar(c):
			start := s.pos
			for isBareKeyChar(s.peek()) {
				s.pos++
			}
			parts = append(parts, string(s.src[start:s.pos]))
		default:
			return nil, s.errorf("invalid key")
		}
		s.skipBlank(false)
		if s.peek() != '.' {
			return parts, nil
		}
		s.pos++
	}
}

func isBareKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

// unquoteKey handles the common case of quoted keys without escapes.
func unquoteKey(q string) string {
	if len(q) >= 2 {
		return q[1 : len(q)-1]
	}
	return q
}

// value consumes one TOML value of any kind.
func (s *tomlScanner) value() error {
	switch c := s.peek(); {
	case c == '"' || c == '\'':
		return s.str()
	case c == '[':
		_, err := s.array()
		return err
	case c == '{':
		return s.inlineTable()
	case c == 0:
		return s.errorf("missing value")
	}
	start := s.pos
	for !s.eof() {
		c := s.peek()
		if c == ',' || c == ']' || c == '}' || c == '#' || c == '\n' || c == '\r' {
			break
		}
		// Dates may contain one space between date and time.
		if (c == ' ' || c == '\t') && !(c == ' ' && isDigit(s.at(s.pos+1)) && s.pos > start && isDigit(s.at(s.pos-1))) {
			break
		}
		s.pos++
	}
	if s.pos == start {
		return s.errorf("missing value")
	}
	return nil
}

func (s *tomlScanner) str() error {
	q := s.peek()
	multi := s.at(s.pos+1) == q && s.at(s.pos+2) == q
	if multi {
		s.pos += 3
		for !s.eof() {
			c := s.peek()
			if c == '\\' && q == '"' {
				s.pos += 2
				continue
			}
			if c == q && s.at(s.pos+1) == q && s.at(s.pos+2) == q {
				s.pos += 3
				// Up to two extra quotes may close the string.
				for i := 0; i < 2 && s.peek() == q; i++ {
					s.pos++
				}
				return nil
			}
			s.pos++
		}
		return s.errorf("unterminated multi-line string")
	}

	s.pos++
	for !s.eof() {
		c := s.peek()
		switch {
		case c == '\\' && q == '"':
			s.pos += 2
			continue
		case c == q:
			s.pos++
			return nil
		case c == '\n':
			return s.errorf("unterminated string")
		}
		s.pos++
	}
	return s.errorf("unterminated string")
}

func (s *tomlScanner) array() (tomlArray, error) {
	a := tomlArray{open: s.pos, trailing: -1}
	s.pos++
	for {
		s.skipArrayBlank(&a)
		if s.eof() {
			return a, s.errorf("unterminated array")
		}
		if s.peek() == ']' {
			a.close = s.pos
			s.pos++
			return a, nil
		}
		if s.peek() == ',' {
			return a, s.errorf("unexpected ',' in array")
		}
		start := s.pos
		if err := s.value(); err != nil {
			return a, err
		}
		a.elems = append(a.elems, byteRange{start, s.pos})
		a.trailing = -1
		s.skipArrayBlank(&a)
		switch s.peek() {
		case ',':
			s.pos++
			a.trailing = s.pos
		case ']':
		default:
			return a, s.errorf("expected ',' or ']' in array")
		}
	}
}

// skipArrayBlank skips whitespace, newlines and comments inside an array.
func (s *tomlScanner) skipArrayBlank(a *tomlArray) {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.pos++
		case '\n':
			a.multiline = true
			s.pos++
		case '#':
			a.comments = true
			s.skipComment()
		default:
			return
		}
	}
}

func (s *tomlScanner) inlineTable() error {
	s.pos++ // {
	s.skipBlank(false)
	if s.peek() == '}' {
		s.pos++
		return nil
	}
	for {
		s.skipBlank(true)
		if _, err := s.key(); err != nil {
			return err
		}
		s.skipBlank(false)
		if s.peek() != '=' {
			return s.errorf("expected '=' in inline table")
		}
		s.pos++
		s.skipBlank(false)
		if err := s.value(); err != nil {
			return err
		}
		s.skipBlank(true)
		switch s.peek() {
		case ',':
			s.pos++
		case '}':
			s.pos++
			return nil
		default:
			return s.errorf("expected ',' or '}' in inline table")
		}
	}
}

// scanArrayAt re-scans the array value starting at offset open.
func scanArrayAt(src []byte, open int) (tomlArray, error) {
	s := &tomlScanner{src: src, pos: open}
	if s.peek() != '[' {
		return tomlArray{}, s.errorf("value is not an array")
	}
	return s.array()
}
