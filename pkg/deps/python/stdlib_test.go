package python

import "testing"

func TestStdlibModules(t *testing.T) {
	tests := []struct {
		version string
		module  string
		want    bool
	}{
		{"3.12", "os", true},
		{"3.12", "asyncio", true},
		{"3.12", "__future__", true},
		{"3.12", "requests", false},
		{"3.8", "zoneinfo", false},
		{"3.9", "zoneinfo", true},
		{"3.10", "tomllib", false},
		{"3.11", "tomllib", true},
		{"3.11", "distutils", true},
		{"3.12", "distutils", false},
		{"3.12", "imp", false},
		{"3.12", "telnetlib", true},
		{"3.13", "telnetlib", false},
		{"3.13", "cgi", false},
		{"3.8", "parser", true},
		{"3.10", "parser", false},
	}
	for _, tt := range tests {
		t.Run(tt.version+"/"+tt.module, func(t *testing.T) {
			mods, err := StdlibModules(tt.version)
			if err != nil {
				t.Fatalf("StdlibModules(%q) error = %v", tt.version, err)
			}
			if got := mods[tt.module]; got != tt.want {
				t.Errorf("%s in %s = %v, want %v", tt.module, tt.version, got, tt.want)
			}
		})
	}
}

func TestStdlibModules_Unsupported(t *testing.T) {
	for _, v := range []string{"2.7", "3.7", "3.14", "3", "three.twelve", ""} {
		if _, err := StdlibModules(v); err == nil {
			t.Errorf("StdlibModules(%q) succeeded, want error", v)
		}
		if IsSupportedPythonVersion(v) {
			t.Errorf("IsSupportedPythonVersion(%q) = true", v)
		}
	}
}

func TestSupportedPythonVersions(t *testing.T) {
	for _, v := range SupportedPythonVersions {
		if !IsSupportedPythonVersion(v) {
			t.Errorf("listed version %q is not supported", v)
		}
	}
	if !IsSupportedPythonVersion(DefaultPythonVersion) {
		t.Errorf("default version %q is not supported", DefaultPythonVersion)
	}
}
