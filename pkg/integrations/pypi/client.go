package pypi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/pydepsync/pkg/cache"
	"github.com/matzehuels/pydepsync/pkg/integrations"
)

// DefaultIndexURL is the public Python Package Index simple API.
const DefaultIndexURL = "https://pypi.org/simple"

// Media types for simple API content negotiation.
const (
	MediaTypeJSON = "application/vnd.pypi.simple.v1+json"
	MediaTypeHTML = "application/vnd.pypi.simple.v1+html"

	acceptHeader = MediaTypeJSON + ", " + MediaTypeHTML + ";q=0.2, text/html;q=0.01"
)

// ProjectInfo holds what one index knows about one project.
//
// Versions are raw version strings in the order the index listed them,
// deduplicated. They are not validated; the caller parses and orders them.
// An empty Versions slice means the project exists but has no usable files.
type ProjectInfo struct {
	Name     string   // Project name as reported by the index, or the normalized query name
	Versions []string // Non-yanked versions
	Index    string   // Base URL of the index that answered
}

// Client queries a single simple-API index.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a client for the index at baseURL.
//
// httpClient may be nil for defaults; backend may be nil to disable caching.
// Cache keys are scoped by the base URL so indexes never share entries.
func NewClient(baseURL string, httpClient *http.Client, backend cache.Cache, cacheTTL time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	return &Client{
		Client:  integrations.NewClient(httpClient, backend, "simple:"+baseURL, cacheTTL, map[string]string{"Accept": acceptHeader}),
		baseURL: baseURL,
	}
}

// BaseURL returns the index base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchProject retrieves the project page for name.
//
// The name is normalized per PEP 503 before building the URL.
//
// Returns:
//   - ProjectInfo on success (possibly with zero versions)
//   - [integrations.ErrNotFound] if the index has no such project
//   - [integrations.ErrNetwork] for failures that survived retries
//   - a parse error for a malformed project page
func (c *Client) FetchProject(ctx context.Context, name string, refresh bool) (*ProjectInfo, error) {
	project := integrations.NormalizePkgName(name)
	if project == "" {
		return nil, fmt.Errorf("%w: empty project name", integrations.ErrNotFound)
	}

	resp, err := c.Fetch(ctx, integrations.JoinURL(c.baseURL, project), nil, refresh)
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w", project, c.baseURL, err)
	}

	var info *ProjectInfo
	if isJSON(resp.ContentType, resp.Body) {
		info, err = parseJSON(resp.Body, project)
	} else {
		info, err = parseHTML(resp.Body, project)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s page on %s: %w", project, c.baseURL, err)
	}
	info.Index = c.baseURL
	return info, nil
}

func isJSON(contentType string, body []byte) bool {
	if strings.HasPrefix(contentType, MediaTypeJSON) || strings.HasPrefix(contentType, "application/json") {
		return true
	}
	if contentType == "" {
		trimmed := strings.TrimSpace(string(body[:min(len(body), 64)]))
		return strings.HasPrefix(trimmed, "{")
	}
	return false
}
