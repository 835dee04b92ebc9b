package python

import (
	"reflect"
	"testing"
)

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		in   string
		want Requirement
	}{
		{"requests", Requirement{Name: "requests"}},
		{"requests>=2.28.0", Requirement{Name: "requests", Specifier: ">=2.28.0"}},
		{"requests >= 2.0, < 3", Requirement{Name: "requests", Specifier: ">=2.0,<3"}},
		{"Django~=5.1.6", Requirement{Name: "Django", Specifier: "~=5.1.6"}},
		{"uvicorn[standard]>=0.30", Requirement{Name: "uvicorn", Extras: []string{"standard"}, Specifier: ">=0.30"}},
		{"requests[socks, Security]", Requirement{Name: "requests", Extras: []string{"security", "socks"}}},
		{"pywin32>=306; sys_platform == 'win32'", Requirement{Name: "pywin32", Specifier: ">=306", Marker: "sys_platform == 'win32'"}},
		{"tomli; python_version < \"3.11\"", Requirement{Name: "tomli", Marker: "python_version < \"3.11\""}},
		{"pkg @ https://example.com/pkg-1.0.tar.gz", Requirement{Name: "pkg", URL: "https://example.com/pkg-1.0.tar.gz"}},
		{"zope.interface (>=5.0)", Requirement{Name: "zope.interface", Specifier: ">=5.0"}},
		{"numpy==1.*", Requirement{Name: "numpy", Specifier: "==1.*"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRequirement(tt.in)
			if err != nil {
				t.Fatalf("ParseRequirement(%q) error = %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRequirement(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRequirement_Invalid(t *testing.T) {
	for _, in := range []string{"", ">=1.0", "pkg[extra", "pkg @ ", "pkg >= 1.0 garbage", "-e ./local"} {
		if r, err := ParseRequirement(in); err == nil {
			t.Errorf("ParseRequirement(%q) = %+v, want error", in, r)
		}
	}
}

func TestRequirementName(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Flask-Login>=0.6", "Flask-Login", true},
		{"weird-pkg >>> 1", "weird-pkg", true},
		{"   ", "", false},
	}
	for _, tt := range tests {
		got, ok := RequirementName(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("RequirementName(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRequirementNormalized(t *testing.T) {
	r, err := ParseRequirement("Flask_SQLAlchemy.Ext>=3")
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Normalized(); got != "flask-sqlalchemy-ext" {
		t.Errorf("Normalized() = %q", got)
	}
}
