package pypi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/pydepsync/pkg/httputil"
	"github.com/matzehuels/pydepsync/pkg/integrations"
)

const djangoHTML = `<!DOCTYPE html>
<html>
  <head><meta name="pypi:repository-version" content="1.1"><title>Links for django</title></head>
  <body>
    <h1>Links for django</h1>
    <a href="https://files.example/Django-4.2.0.tar.gz#sha256=abc">Django-4.2.0.tar.gz</a><br/>
    <a href="https://files.example/Django-4.2.0-py3-none-any.whl#sha256=def">Django-4.2.0-py3-none-any.whl</a><br/>
    <a href="https://files.example/Django-5.0a1.tar.gz">Django-5.0a1.tar.gz</a><br/>
    <a href="https://files.example/Django-5.1.6-py3-none-any.whl" data-requires-python="&gt;=3.10">Django-5.1.6-py3-none-any.whl</a><br/>
    <a href="https://files.example/Django-5.1.7.tar.gz" data-yanked="broken">Django-5.1.7.tar.gz</a><br/>
    <a href="https://files.example/Django-1.0-py2.7.egg">Django-1.0-py2.7.egg</a><br/>
  </body>
</html>`

const requestsJSON = `{
  "meta": {"api-version": "1.1"},
  "name": "requests",
  "versions": ["2.31.0", "2.32.0", "2.32.1", "2.32.3"],
  "files": [
    {"filename": "requests-2.31.0.tar.gz", "url": "x", "hashes": {}},
    {"filename": "requests-2.32.0-py3-none-any.whl", "url": "x", "hashes": {}, "yanked": "bad release"},
    {"filename": "requests-2.32.0.tar.gz", "url": "x", "hashes": {}, "yanked": true},
    {"filename": "requests-2.32.1.tar.gz", "url": "x", "hashes": {}, "yanked": false},
    {"filename": "requests-2.32.3-py3-none-any.whl", "url": "x", "hashes": {}}
  ]
}`

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	hc := httputil.NewClient(httputil.Options{
		Timeout:      2 * time.Second,
		Retries:      1,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: time.Millisecond,
	})
	return NewClient(baseURL, hc, nil, time.Hour)
}

func TestClient_FetchProjectHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simple/django/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(djangoHTML))
	}))
	defer server.Close()

	c := testClient(t, server.URL+"/simple/")
	info, err := c.FetchProject(context.Background(), "Django", false)
	if err != nil {
		t.Fatalf("FetchProject failed: %v", err)
	}

	want := []string{"4.2.0", "5.0a1", "5.1.6"}
	if !reflect.DeepEqual(info.Versions, want) {
		t.Errorf("Versions = %v, want %v", info.Versions, want)
	}
	if info.Index != server.URL+"/simple" {
		t.Errorf("Index = %q", info.Index)
	}
}

func TestClient_FetchProjectJSON(t *testing.T) {
	var accept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", MediaTypeJSON)
		w.Write([]byte(requestsJSON))
	}))
	defer server.Close()

	info, err := testClient(t, server.URL).FetchProject(context.Background(), "Requests", false)
	if err != nil {
		t.Fatalf("FetchProject failed: %v", err)
	}

	if !strings.HasPrefix(accept, MediaTypeJSON) {
		t.Errorf("Accept = %q, want JSON preferred", accept)
	}
	if info.Name != "requests" {
		t.Errorf("Name = %q", info.Name)
	}
	// 2.32.0 has only yanked files.
	want := []string{"2.31.0", "2.32.1", "2.32.3"}
	if !reflect.DeepEqual(info.Versions, want) {
		t.Errorf("Versions = %v, want %v", info.Versions, want)
	}
}

func TestClient_FetchProjectJSONWithoutVersionsKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", MediaTypeJSON)
		w.Write([]byte(`{"meta":{"api-version":"1.0"},"name":"six","files":[
			{"filename":"six-1.16.0.tar.gz"},
			{"filename":"six-1.17.0-py2.py3-none-any.whl"},
			{"filename":"six-1.17.0.tar.gz"}
		]}`))
	}))
	defer server.Close()

	info, err := testClient(t, server.URL).FetchProject(context.Background(), "six", false)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1.16.0", "1.17.0"}
	if !reflect.DeepEqual(info.Versions, want) {
		t.Errorf("Versions = %v, want %v", info.Versions, want)
	}
}

func TestClient_FetchProjectNormalizesURL(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	info, err := testClient(t, server.URL).FetchProject(context.Background(), "Zope.Interface", false)
	if err != nil {
		t.Fatal(err)
	}
	if path != "/zope-interface/" {
		t.Errorf("path = %q, want /zope-interface/", path)
	}
	if len(info.Versions) != 0 {
		t.Errorf("empty page should have no versions, got %v", info.Versions)
	}
}

func TestClient_FetchProject_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := testClient(t, server.URL).FetchProject(context.Background(), "missing-pkg", false)
	if err == nil {
		t.Fatal("expected error for missing package")
	}
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchProject_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", MediaTypeJSON)
		w.Write([]byte(`{"name": "broken", "files": [`))
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).FetchProject(context.Background(), "broken", false)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, integrations.ErrNotFound) || errors.Is(err, integrations.ErrNetwork) {
		t.Errorf("parse error should not be classified as not-found or network: %v", err)
	}
}

func TestVersionFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		project  string
		want     string
	}{
		{"requests-2.32.3.tar.gz", "requests", "2.32.3"},
		{"requests-2.32.3-py3-none-any.whl", "requests", "2.32.3"},
		{"django_rest_framework-3.15.2-1-py3-none-any.whl", "django-rest-framework", "3.15.2"},
		{"djangorestframework-3.15.2.zip", "djangorestframework", "3.15.2"},
		{"zope.interface-6.0.tar.gz", "zope-interface", "6.0"},
		{"python-dateutil-2.9.0.post0.tar.gz", "python-dateutil", "2.9.0.post0"},
		{"foo-1!2.0.tar.bz2", "foo", "1!2.0"},
		{"Foo-1.0.tgz", "foo", "1.0"},
		{"other-name-3.1.tar.gz", "foo", "3.1"},

		{"Django-1.0-py2.7.egg", "django", ""},
		{"pkg-1.0.win32.exe", "pkg", ""},
		{"pkg-1.0.tar.gz.asc", "pkg", ""},
		{"bad.whl", "bad", ""},
		{"", "x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := versionFromFilename(tt.filename, tt.project); got != tt.want {
				t.Errorf("versionFromFilename(%q, %q) = %q, want %q", tt.filename, tt.project, got, tt.want)
			}
		})
	}
}

func TestLinkFilename(t *testing.T) {
	tests := []struct {
		text, href, want string
	}{
		{"pkg-1.0.tar.gz", "../../packages/pkg-1.0.tar.gz#sha256=x", "pkg-1.0.tar.gz"},
		{"download", "https://files.example/pkg-1.0-py3-none-any.whl#md5=y", "pkg-1.0-py3-none-any.whl"},
		{"", "/files/my%2Bpkg-2.0.zip", "my+pkg-2.0.zip"},
	}
	for _, tt := range tests {
		if got := linkFilename(tt.text, tt.href); got != tt.want {
			t.Errorf("linkFilename(%q, %q) = %q, want %q", tt.text, tt.href, got, tt.want)
		}
	}
}

func TestIsJSON(t *testing.T) {
	tests := []struct {
		contentType string
		body        string
		want        bool
	}{
		{MediaTypeJSON, "{}", true},
		{"application/json; charset=utf-8", "{}", true},
		{"text/html", "{}", false},
		{MediaTypeHTML, "<html>", false},
		{"", "  {\"name\": \"x\"}", true},
		{"", "<html>", false},
	}
	for _, tt := range tests {
		if got := isJSON(tt.contentType, []byte(tt.body)); got != tt.want {
			t.Errorf("isJSON(%q, %q) = %v, want %v", tt.contentType, tt.body, got, tt.want)
		}
	}
}
