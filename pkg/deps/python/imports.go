package python

import (
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// RawImport is one imported root module as written in source.
type RawImport struct {
	Name     string // First dotted segment ("google" for "import google.cloud.storage")
	Path     string // Full dotted module path; empty for relative imports
	Members  []string
	Line     int  // 1-based line of the import keyword
	Relative bool // "from . import x" or "from ..pkg import y"
}

// ExtractImports returns the imports found in a Python source file.
//
// Recognized forms: "import a.b as c, d", "from a.b import x",
// parenthesized and backslash-continued import lists, ";"-separated
// statements and imports after a compound-statement colon ("try: import x").
// Imports inside strings and comments are ignored. Relative imports are
// returned with Relative set; for "from . import x" Name is empty.
// Members lists the names of a "from a.b import x, y" statement, without
// aliases; it is empty for "import" statements and star imports.
//
// A source that cannot be tokenized (invalid UTF-8, unterminated string,
// unbalanced brackets) returns an error and no imports.
func ExtractImports(src []byte) ([]RawImport, error) {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("invalid UTF-8")
	}

	lx := &lexer{src: src, line: 1}
	if err := lx.run(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lx.line, err)
	}

	var out []RawImport
	start := 0
	for i, t := range lx.toks {
		if t.kind == tokNewline {
			out = parseLogicalLine(lx.toks[start:i], out)
			start = i + 1
		}
	}
	return parseLogicalLine(lx.toks[start:], out), nil
}

// =============================================================================
// Tokenizer
// =============================================================================

type tokKind int

const (
	tokName tokKind = iota
	tokOp
	tokNewline
	tokOther // numbers and strings; their content is irrelevant
)

type token struct {
	kind  tokKind
	text  string
	line  int
	depth int // bracket depth before the token
}

type lexer struct {
	src   []byte
	pos   int
	line  int
	depth int
	toks  []token
}

func (lx *lexer) emit(kind tokKind, text string) {
	lx.toks = append(lx.toks, token{kind: kind, text: text, line: lx.line, depth: lx.depth})
}

func (lx *lexer) peek(off int) byte {
	if lx.pos+off < len(lx.src) {
		return lx.src[lx.pos+off]
	}
	return 0
}

func (lx *lexer) run() error {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case c == '\n':
			if lx.depth == 0 {
				lx.emit(tokNewline, "")
			}
			lx.line++
			lx.pos++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f':
			lx.pos++
		case c == '#':
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.pos++
			}
		case c == '\\':
			lx.pos++
			if lx.peek(0) == '\r' {
				lx.pos++
			}
			if lx.peek(0) == '\n' {
				lx.pos++
				lx.line++
			}
		case c == '"' || c == '\'':
			if err := lx.scanString("", lx.depth); err != nil {
				return err
			}
		case c >= '0' && c <= '9' || (c == '.' && isDigit(lx.peek(1))):
			lx.scanNumber()
		case c == '(' || c == '[' || c == '{':
			lx.emit(tokOp, string(c))
			lx.depth++
			lx.pos++
		case c == ')' || c == ']' || c == '}':
			if lx.depth == 0 {
				return fmt.Errorf("unbalanced %q", c)
			}
			lx.depth--
			lx.emit(tokOp, string(c))
			lx.pos++
		default:
			r, size := utf8.DecodeRune(lx.src[lx.pos:])
			if isIdentStart(r) {
				name := lx.scanIdent()
				if isStringPrefix(name) && (lx.peek(0) == '"' || lx.peek(0) == '\'') {
					if err := lx.scanString(name, lx.depth); err != nil {
						return err
					}
					continue
				}
				lx.emit(tokName, name)
				continue
			}
			lx.emit(tokOp, string(lx.src[lx.pos:lx.pos+size]))
			lx.pos += size
		}
	}
	if lx.depth != 0 {
		return fmt.Errorf("unclosed bracket at end of file")
	}
	return nil
}

func (lx *lexer) scanIdent() string {
	start := lx.pos
	for lx.pos < len(lx.src) {
		r, size := utf8.DecodeRune(lx.src[lx.pos:])
		if !isIdentStart(r) && !unicode.IsDigit(r) {
			break
		}
		lx.pos += size
	}
	return string(lx.src[start:lx.pos])
}

func (lx *lexer) scanNumber() {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if !(isDigit(c) || c == '.' || c == '_' || (c|0x20 >= 'a' && c|0x20 <= 'z')) {
			break
		}
		lx.pos++
	}
	lx.emit(tokOther, "")
}

// scanString consumes a string literal starting at the opening quote.
// f-strings are scanned with their replacement fields so nested quotes
// (allowed since Python 3.12) do not end the literal early.
func (lx *lexer) scanString(prefix string, depth int) error {
	startLine := lx.line
	isF := false
	for _, r := range prefix {
		if r == 'f' || r == 'F' || r == 't' || r == 'T' {
			isF = true
		}
	}

	q := lx.src[lx.pos]
	triple := lx.peek(1) == q && lx.peek(2) == q
	if triple {
		lx.pos += 3
	} else {
		lx.pos++
	}

	for {
		if lx.pos >= len(lx.src) {
			lx.line = startLine
			return fmt.Errorf("unterminated string")
		}
		c := lx.src[lx.pos]
		switch {
		case c == '\\':
			if lx.peek(1) == '\n' {
				lx.line++
			}
			lx.pos += 2
			continue
		case c == '\n':
			if !triple {
				lx.line = startLine
				return fmt.Errorf("unterminated string")
			}
			lx.line++
		case c == q:
			if !triple {
				lx.pos++
				lx.toks = append(lx.toks, token{kind: tokOther, line: startLine, depth: depth})
				return nil
			}
			if lx.peek(1) == q && lx.peek(2) == q {
				lx.pos += 3
				lx.toks = append(lx.toks, token{kind: tokOther, line: startLine, depth: depth})
				return nil
			}
		case isF && c == '{':
			if lx.peek(1) == '{' {
				lx.pos += 2
				continue
			}
			lx.pos++
			if err := lx.scanFieldExpr(); err != nil {
				return err
			}
			continue
		}
		lx.pos++
	}
}

// scanFieldExpr consumes an f-string replacement field up to its closing brace.
func (lx *lexer) scanFieldExpr() error {
	depth := 0
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == '}':
			if depth == 0 {
				lx.pos++
				return nil
			}
			depth--
		case c == '\n':
			lx.line++
		case c == '"' || c == '\'':
			saved := len(lx.toks)
			if err := lx.scanString("", 0); err != nil {
				return err
			}
			lx.toks = lx.toks[:saved]
			continue
		default:
			r, size := utf8.DecodeRune(lx.src[lx.pos:])
			if isIdentStart(r) {
				name := lx.scanIdent()
				if isStringPrefix(name) && (lx.peek(0) == '"' || lx.peek(0) == '\'') {
					saved := len(lx.toks)
					if err := lx.scanString(name, 0); err != nil {
						return err
					}
					lx.toks = lx.toks[:saved]
				}
				continue
			}
			lx.pos += size
			continue
		}
		lx.pos++
	}
	return fmt.Errorf("unterminated f-string replacement field")
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isStringPrefix(s string) bool {
	if len(s) > 2 {
		return false
	}
	switch toLowerASCII(s) {
	case "r", "u", "b", "f", "t", "br", "rb", "fr", "rf", "tr", "rt":
		return true
	}
	return false
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// =============================================================================
// Statement parsing
// =============================================================================

// parseLogicalLine scans one logical line for import statements. A statement
// starts at the beginning of the line, after ";" and after a top-level ":"
// (the body of a one-line compound statement).
func parseLogicalLine(toks []token, out []RawImport) []RawImport {
	atStart := true
	for i := 0; i < len(toks); {
		t := toks[i]
		if atStart && t.kind == tokName && t.depth == 0 {
			switch t.text {
			case "import":
				var next int
				out, next = parseImport(toks, i+1, out)
				i, atStart = next, false
				continue
			case "from":
				var next int
				out, next = parseFrom(toks, i+1, out)
				i, atStart = next, false
				continue
			}
		}
		atStart = t.kind == tokOp && t.depth == 0 && (t.text == ";" || t.text == ":")
		i++
	}
	return out
}

// parseImport handles "import a.b as c, d" starting after the keyword.
func parseImport(toks []token, i int, out []RawImport) ([]RawImport, int) {
	for i < len(toks) {
		if toks[i].kind != tokName {
			return out, i
		}
		imp := RawImport{Name: toks[i].text, Path: toks[i].text, Line: toks[i].line}
		i++
		for i+1 < len(toks) && isOp(toks[i], ".") && toks[i+1].kind == tokName {
			imp.Path += "." + toks[i+1].text
			i += 2
		}
		out = append(out, imp)
		if i+1 < len(toks) && toks[i].kind == tokName && toks[i].text == "as" {
			i += 2
		}
		if i < len(toks) && isOp(toks[i], ",") {
			i++
			continue
		}
		return out, i
	}
	return out, i
}

// parseFrom handles "from [dots]module import names" starting after the keyword.
func parseFrom(toks []token, i int, out []RawImport) ([]RawImport, int) {
	line := toks[i-1].line
	dots := 0
	for i < len(toks) && isOp(toks[i], ".") {
		dots++
		i++
	}

	name, path := "", ""
	if i < len(toks) && toks[i].kind == tokName && toks[i].text != "import" {
		name, path = toks[i].text, toks[i].text
		i++
		for i+1 < len(toks) && isOp(toks[i], ".") && toks[i+1].kind == tokName {
			path += "." + toks[i+1].text
			i += 2
		}
	}

	// The rest of the statement is "import" and the name list.
	var members []string
	alias := false
	for i < len(toks) {
		t := toks[i]
		if t.depth == 0 && t.kind == tokOp && t.text == ";" {
			break
		}
		i++
		if t.kind != tokName {
			continue
		}
		switch {
		case t.text == "import":
		case t.text == "as":
			alias = true
		case alias:
			alias = false
		default:
			members = append(members, t.text)
		}
	}

	switch {
	case dots > 0:
		out = append(out, RawImport{Name: name, Line: line, Relative: true})
	case name != "":
		out = append(out, RawImport{Name: name, Path: path, Members: members, Line: line})
	}
	return out, i
}

func isOp(t token, text string) bool {
	return t.kind == tokOp && t.text == text
}
