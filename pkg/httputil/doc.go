// Package httputil builds the HTTP client used to talk to package indexes.
//
// [NewClient] returns a standard *http.Client whose transport is a
// go-retryablehttp client configured with [RetryPolicy]:
//
//   - transport errors and non-2xx responses are retried
//   - 404 and 410 are final and returned to the caller untouched
//   - Retry-After headers are honored by the default backoff
//
// When retries are exhausted the last response (or transport error) is
// passed through, so callers classify final statuses themselves.
//
// Usage:
//
//	client := httputil.NewClient(httputil.Options{
//	    Timeout: 10 * time.Second,
//	    Retries: 3,
//	})
//	resp, err := client.Get("https://pypi.org/simple/requests/")
package httputil
