package python

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

// writeTree creates files (paths ending in "/" are directories) under root.
func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestLocalModules(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"main.py",
		"settings.py",
		"my-script.py", // not an identifier
		"README.md",
		"utils/",                  // no Python code
		"docker/redis/redis.conf", // no Python code
		"tests/test_app.py",
		".git/",
		"src/mypkg/__init__.py",
		"src/helpers.py",
		"lib/vendored.py",
	)

	got, err := LocalModules(root, DefaultSourceRoots, nil, "Acme-Tools")
	if err != nil {
		t.Fatalf("LocalModules() error = %v", err)
	}
	want := []string{"Acme_Tools", "acme_tools", "helpers", "lib", "main", "mypkg", "settings", "src", "tests"}
	if g := keys(got); !reflect.DeepEqual(g, want) {
		t.Errorf("LocalModules() = %v, want %v", g, want)
	}
}

func TestLocalModules_MissingSourceRoot(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "app.py")

	got, err := LocalModules(root, []string{"src", "does/not/exist"}, nil, "")
	if err != nil {
		t.Fatalf("LocalModules() error = %v", err)
	}
	if g := keys(got); !reflect.DeepEqual(g, []string{"app"}) {
		t.Errorf("LocalModules() = %v, want [app]", g)
	}
}

func TestLocalModules_UnreadableRoot(t *testing.T) {
	if _, err := LocalModules(filepath.Join(t.TempDir(), "missing"), nil, nil, ""); err == nil {
		t.Fatal("LocalModules() on missing root succeeded")
	}
}

func TestLocalModules_Excluded(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"app.py",
		"build/lib/app.py",
		"venv/activate_this.py",
		"redis/__init__.py",
		"scripts/release.py",
		"src/legacy/__init__.py",
		"src/core/__init__.py",
		"tools/gen.py",
		"setup_helpers.py",
	)

	exclude := []string{"build", "venv", "redis", "src/legacy", "setup_helpers.py"}
	got, err := LocalModules(root, DefaultSourceRoots, exclude, "")
	if err != nil {
		t.Fatalf("LocalModules() error = %v", err)
	}
	want := []string{"app", "core", "scripts", "tools"}
	if g := keys(got); !reflect.DeepEqual(g, want) {
		t.Errorf("LocalModules() = %v, want %v", g, want)
	}
}

func TestLocalModules_PythonDirectories(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  bool
	}{
		{"init file", []string{"pkg/__init__.py"}, true},
		{"module only", []string{"pkg/helpers.py"}, true},
		{"empty", []string{"pkg/"}, false},
		{"config only", []string{"pkg/redis.conf", "pkg/Dockerfile"}, false},
		{"nested only", []string{"pkg/sub/mod.py"}, false},
		{"py directory", []string{"pkg/odd.py/"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.paths...)
			got, err := LocalModules(root, nil, nil, "")
			if err != nil {
				t.Fatalf("LocalModules() error = %v", err)
			}
			if got["pkg"] != tt.want {
				t.Errorf("pkg local = %v, want %v", got["pkg"], tt.want)
			}
		})
	}
}

func TestProjectIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"requests", []string{"requests"}},
		{"My.Project-name", []string{"My_Project_name", "my_project_name"}},
		{"zope__interface", []string{"zope_interface"}},
		{"123start", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := projectIdentifiers(tt.name); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("projectIdentifiers(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
