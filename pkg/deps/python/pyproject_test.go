package python

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/matzehuels/pydepsync/pkg/deps"
	"github.com/matzehuels/pydepsync/pkg/errors"
)

func resolved(name, spec string) deps.ResolvedPackage {
	return deps.ResolvedPackage{Name: name, ImportName: strings.ToLower(name), Specifier: spec}
}

func patch(t *testing.T, doc string, pkgs ...deps.ResolvedPackage) (string, error) {
	t.Helper()
	p, err := ParsePyproject([]byte(doc))
	if err != nil {
		t.Fatalf("ParsePyproject() error = %v", err)
	}
	out, err := p.Apply(p.Plan(pkgs))
	return string(out), err
}

func TestApply_ScenarioA(t *testing.T) {
	doc := `[project]
name = "demo"
version = "0.1.0"
dependencies = [
    "requests>=2.0",
]
`
	want := `[project]
name = "demo"
version = "0.1.0"
dependencies = [
    "requests>=2.0",
    "Django~=5.1.6",
    "djangorestframework~=3.15.2",
]
`
	got, err := patch(t, doc,
		resolved("djangorestframework", "~=3.15.2"),
		resolved("Django", "~=5.1.6"),
	)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got != want {
		t.Errorf("Apply() =\n%s\nwant\n%s", got, want)
	}
}

func TestApply_ScenarioB(t *testing.T) {
	doc := "[project]\nname = \"demo\"\ndependencies = [\"requests>=2.0\"]  # keep\n"
	got, err := patch(t, doc, resolved("requests", "~=2.32.3"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got != doc {
		t.Errorf("Apply() changed a manifest that already declares everything:\n%s", got)
	}
}

func TestApply_Styles(t *testing.T) {
	x := resolved("xpkg", "~=1.0.0")
	y := resolved("ypkg", "~=2.0.0")

	tests := []struct {
		name string
		deps string // value of [project].dependencies
		want string
	}{
		{
			name: "single-line",
			deps: `["a>=1", "b"]`,
			want: `["a>=1", "b", "xpkg~=1.0.0", "ypkg~=2.0.0"]`,
		},
		{
			name: "single-line trailing comma",
			deps: `["a",]`,
			want: `["a", "xpkg~=1.0.0", "ypkg~=2.0.0",]`,
		},
		{
			name: "single quotes",
			deps: `['a']`,
			want: `['a', 'xpkg~=1.0.0', 'ypkg~=2.0.0']`,
		},
		{
			name: "empty",
			deps: `[]`,
			want: "[\n    \"xpkg~=1.0.0\",\n    \"ypkg~=2.0.0\",\n]",
		},
		{
			name: "empty with spaces",
			deps: `[ ]`,
			want: "[\n    \"xpkg~=1.0.0\",\n    \"ypkg~=2.0.0\",\n]",
		},
		{
			name: "empty with comment",
			deps: "[\n    # none yet\n]",
			want: "[\n    # none yet\n    \"xpkg~=1.0.0\",\n    \"ypkg~=2.0.0\",\n]",
		},
		{
			name: "multi-line without trailing comma",
			deps: "[\n  \"a\",\n  \"b\"\n]",
			want: "[\n  \"a\",\n  \"b\",\n  \"xpkg~=1.0.0\",\n  \"ypkg~=2.0.0\"\n]",
		},
		{
			name: "multi-line with comment on last line",
			deps: "[\n\t\"a\",  # pinned by hand\n]",
			want: "[\n\t\"a\",  # pinned by hand\n\t\"xpkg~=1.0.0\",\n\t\"ypkg~=2.0.0\",\n]",
		},
		{
			name: "closing bracket on last element line",
			deps: "[\n    \"a\",\n    \"b\"]",
			want: "[\n    \"a\",\n    \"b\",\n    \"xpkg~=1.0.0\",\n    \"ypkg~=2.0.0\"]",
		},
		{
			name: "two elements per line",
			deps: "[\n    \"a\", \"b\",\n]",
			want: "[\n    \"a\", \"b\",\n    \"xpkg~=1.0.0\",\n    \"ypkg~=2.0.0\",\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head := "[project]\nname = \"demo\"\ndependencies = "
			tail := "\n\n[tool.other]\nkey = 1\n"
			got, err := patch(t, head+tt.deps+tail, y, x)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if want := head + tt.want + tail; got != want {
				t.Errorf("Apply() =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestApply_MissingKey(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "before next table",
			doc:  "[project]\nname = \"demo\"\nversion = \"0.1\"\n\n[tool.black]\nline-length = 100\n",
			want: "[project]\nname = \"demo\"\nversion = \"0.1\"\ndependencies = [\n    \"xpkg~=1.0.0\",\n]\n\n[tool.black]\nline-length = 100\n",
		},
		{
			name: "end of file without newline",
			doc:  "[project]\nname = \"demo\"",
			want: "[project]\nname = \"demo\"\ndependencies = [\n    \"xpkg~=1.0.0\",\n]\n",
		},
		{
			name: "empty table",
			doc:  "[project]\n[project.urls]\nhome = \"https://example.com\"\n",
			want: "[project]\ndependencies = [\n    \"xpkg~=1.0.0\",\n]\n[project.urls]\nhome = \"https://example.com\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := patch(t, tt.doc, resolved("xpkg", "~=1.0.0"))
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestApply_NonDestructive(t *testing.T) {
	doc := `# Project manifest
[build-system]
requires = ["hatchling"]  # build backend
build-backend = "hatchling.build"

[project]
name = "acme-tools"
description = """
Not a table:
[project]
dependencies = ["fake"]
"""
dependencies = [
    # web
    "Flask>=3.0",
    'click',
]
authors = [{ name = "A. Person", email = "a@example.com" }]

[project.optional-dependencies]
dev = ["pytest>=8", "ruff"]

[dependency-groups]
docs = ["sphinx", { include-group = "dev" }]

[tool.poetry.dependencies]
python = "^3.10"
httpx = "*"

[tool.ruff]
line-length = 100 # comment
`
	got, err := patch(t, doc,
		resolved("flask", "~=3.0.3"),           // declared as Flask
		resolved("pytest", "~=8.3.0"),          // optional group
		resolved("Sphinx", "~=8.0.0"),          // dependency group
		resolved("HTTPX", "~=0.27.0"),          // poetry table
		resolved("PyYAML", "~=6.0.2"),          // new
		resolved("python_dateutil", "~=2.9.0"), // new
	)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	added := "    'python_dateutil~=2.9.0',\n    'PyYAML~=6.0.2',\n"
	want := strings.Replace(doc, "    'click',\n", "    'click',\n"+added, 1)
	if got != want {
		t.Errorf("Apply() =\n%s\nwant\n%s", got, want)
	}
}

func TestApply_Idempotent(t *testing.T) {
	doc := "[project]\nname = \"demo\"\ndependencies = []\n"
	pkgs := []deps.ResolvedPackage{resolved("Django", "~=5.1.6"), resolved("requests", "~=2.32.3")}

	first, err := patch(t, doc, pkgs...)
	if err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	second, err := patch(t, first, pkgs...)
	if err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if first != second {
		t.Errorf("second run changed the manifest:\n%s\n---\n%s", first, second)
	}
}

func TestApply_CRLF(t *testing.T) {
	doc := "[project]\r\nname = \"demo\"\r\ndependencies = [\r\n    \"a\",\r\n]\r\n"
	want := "[project]\r\nname = \"demo\"\r\ndependencies = [\r\n    \"a\",\r\n    \"xpkg~=1.0.0\",\r\n]\r\n"
	got, err := patch(t, doc, resolved("xpkg", "~=1.0.0"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{"no project table", "[tool.poetry]\nname = \"demo\"\n", errors.ErrCodeInvalidManifest},
		{"dotted project keys", "project.name = \"demo\"\n", errors.ErrCodeUnsupported},
		{"inline project table", "project = { name = \"demo\" }\n", errors.ErrCodeUnsupported},
		{"only sub-tables", "[project.urls]\nhome = \"https://example.com\"\n", errors.ErrCodeUnsupported},
		{"dynamic dependencies", "[project]\nname = \"demo\"\ndynamic = [\"dependencies\"]\n", errors.ErrCodeUnsupported},
		{"dependencies not an array", "[project]\ndependencies = \"requests\"\n", errors.ErrCodeInvalidManifest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := patch(t, tt.doc, resolved("xpkg", "~=1.0.0"))
			if !errors.Is(err, tt.code) {
				t.Fatalf("Apply() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestParsePyproject_Invalid(t *testing.T) {
	_, err := ParsePyproject([]byte("[project\nname = "))
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Fatalf("ParsePyproject() error = %v, want INVALID_MANIFEST", err)
	}
}

func TestVerify_DetectsCollateralChange(t *testing.T) {
	orig, err := ParsePyproject([]byte("[project]\nname = \"demo\"\ndependencies = []\n"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		out  string
	}{
		{"other key changed", "[project]\nname = \"other\"\ndependencies = [\"x\"]\n"},
		{"wrong entries", "[project]\nname = \"demo\"\ndependencies = [\"y\"]\n"},
		{"unparseable", "[project\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verify(orig, []byte(tt.out), []string{"x"})
			if !errors.Is(err, errors.ErrCodeVerifyFailed) {
				t.Fatalf("verify() error = %v, want VERIFY_FAILED", err)
			}
		})
	}
}

func TestPlan(t *testing.T) {
	p, err := ParsePyproject([]byte(`[project]
name = "demo"
dependencies = ["Requests[socks]>=2; python_version >= '3.8'"]
[project.optional-dependencies]
test = ["pytest-cov"]
`))
	if err != nil {
		t.Fatal(err)
	}

	plan := p.Plan([]deps.ResolvedPackage{
		resolved("requests", "~=2.32.3"),
		resolved("pytest_cov", "~=5.0.0"),
		resolved("zope.interface", "~=7.0.0"),
		resolved("attrs", "~=24.2.0"),
		resolved("Attrs", "~=24.2.0"),
	})
	want := []string{"attrs~=24.2.0", "zope.interface~=7.0.0"}
	if got := plan.Requirements(); !reflect.DeepEqual(got, want) {
		t.Errorf("Plan() = %v, want %v", got, want)
	}
}

func TestDeclaredNames(t *testing.T) {
	p, err := ParsePyproject([]byte(`[project]
name = "demo"
dependencies = ["Flask_Login>=0.6", "not a valid requirement !!"]

[project.optional-dependencies]
a = ["ruff"]
b = ["Black[jupyter]"]

[dependency-groups]
dev = ["pytest", { include-group = "lint" }]
lint = ["mypy==1.11"]

[tool.poetry.group.docs.dependencies]
mkdocs = "^1.6"
`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"black", "flask-login", "mkdocs", "mypy", "not", "pytest", "ruff"}
	if got := keys(p.DeclaredNames()); !reflect.DeepEqual(got, want) {
		t.Errorf("DeclaredNames() = %v, want %v", got, want)
	}
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{"[project]\nname = \"pep621\"\n[tool.poetry]\nname = \"poetry\"\n", "pep621"},
		{"[tool.poetry]\nname = \"poetry-only\"\n", "poetry-only"},
		{"[project]\nversion = \"1\"\n", ""},
	}
	for _, tt := range tests {
		p, err := ParsePyproject([]byte(tt.doc))
		if err != nil {
			t.Fatal(err)
		}
		if got := p.ProjectName(); got != tt.want {
			t.Errorf("ProjectName() = %q, want %q", got, tt.want)
		}
	}
}

func TestLoadPyproject(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadPyproject(filepath.Join(dir, ManifestName)); !errors.Is(err, errors.ErrCodeManifestNotFound) {
		t.Errorf("LoadPyproject(missing) error = %v, want MANIFEST_NOT_FOUND", err)
	}

	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte("[project]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPyproject(path)
	if err != nil {
		t.Fatalf("LoadPyproject() error = %v", err)
	}
	if !p.HasProject() || p.ProjectName() != "demo" {
		t.Errorf("unexpected document: %+v", p)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileAtomic(path, []byte("new")); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("content = %q, want new", data)
	}
	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("mode = %v, want 0600", info.Mode().Perm())
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the manifest", len(entries))
	}
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", ManifestName), []byte("x"))
	if !errors.Is(err, errors.ErrCodeManifestWrite) {
		t.Fatalf("WriteFileAtomic() error = %v, want MANIFEST_WRITE", err)
	}
}
