package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/matzehuels/pydepsync/pkg/cache"
	"github.com/matzehuels/pydepsync/pkg/errors"
	"github.com/matzehuels/pydepsync/pkg/httputil"
	"github.com/matzehuels/pydepsync/pkg/observability"
)

// maxBodySize caps how much of an index response is read.
const maxBodySize = 64 << 20

// Client provides shared HTTP functionality for index clients.
// It handles response caching, status classification, and common request headers.
// Retries happen inside the *http.Client built by [httputil.NewClient].
type Client struct {
	http      *http.Client
	cache     cache.Cache
	namespace string
	ttl       time.Duration
	headers   map[string]string
}

// Response is a successful (2xx) index response.
type Response struct {
	Body        []byte
	ContentType string
	Cached      bool // served from the cache
}

type cachedResponse struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// NewClient creates a Client.
//
// A nil httpClient gets [httputil.NewClient] defaults; a nil backend disables
// caching. namespace prefixes every cache key. Headers are applied to all
// requests made through this client; pass nil if none are needed.
func NewClient(httpClient *http.Client, backend cache.Cache, namespace string, ttl time.Duration, headers map[string]string) *Client {
	if httpClient == nil {
		httpClient = httputil.NewClient(httputil.Options{})
	}
	if backend == nil {
		backend = cache.NewNullCache()
	}
	return &Client{
		http:      httpClient,
		cache:     backend,
		namespace: namespace,
		ttl:       ttl,
		headers:   headers,
	}
}

// Fetch performs a GET and returns the response body.
//
// Successful responses are cached under (url, Accept header). If refresh is
// true the cache is not read, but the fresh response is still stored.
//
// Errors wrap [ErrNotFound] for 404 and 410, and [ErrNetwork] for transport
// failures and every other non-2xx status that survived retries. An
// exhausted 429 also carries an [errors.RateLimitedError]; a timeout carries
// the TIMEOUT code.
func (c *Client) Fetch(ctx context.Context, url string, headers map[string]string, refresh bool) (*Response, error) {
	key := cache.Key(c.namespace, url, c.header("Accept", headers))

	if !refresh {
		if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			var cr cachedResponse
			if json.Unmarshal(data, &cr) == nil {
				observability.Cache().OnCacheHit(ctx, c.namespace)
				return &Response{Body: cr.Body, ContentType: cr.ContentType, Cached: true}, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, c.namespace)
	}

	resp, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(cachedResponse{ContentType: resp.ContentType, Body: resp.Body}); err == nil {
		if c.cache.Set(ctx, key, data, c.ttl) == nil {
			observability.Cache().OnCacheSet(ctx, c.namespace, len(data))
		}
	}
	return resp, nil
}

func (c *Client) header(name string, overrides map[string]string) string {
	if v, ok := overrides[name]; ok {
		return v
	}
	return c.headers[name]
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if os.IsTimeout(err) {
			return nil, fmt.Errorf("%w: %w", ErrNetwork, errors.Wrap(errors.ErrCodeTimeout, err, "GET %s", url))
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	return &Response{Body: body, ContentType: resp.Header.Get("Content-Type")}, nil
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound || code == http.StatusGone:
		return fmt.Errorf("%w: status %d", ErrNotFound, code)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrNetwork, &errors.RateLimitedError{
			RetryAfter: retryAfter(resp.Header.Get("Retry-After")),
		})
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP date.
func retryAfter(v string) int {
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return n
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return int(d.Round(time.Second) / time.Second)
		}
	}
	return 0
}
