package httputil

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/matzehuels/pydepsync/pkg/observability"
)

// Defaults applied by [Options.WithDefaults].
const (
	DefaultTimeout      = 10 * time.Second
	DefaultRetries      = 3
	DefaultRetryWaitMin = 500 * time.Millisecond
	DefaultRetryWaitMax = 8 * time.Second
)

// Options configures [NewClient].
type Options struct {
	// Timeout bounds a single attempt, including reading the body.
	Timeout time.Duration
	// Retries is the number of additional attempts after the first.
	// Negative disables retries.
	Retries int
	// RetryWaitMin and RetryWaitMax bound the exponential backoff.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// Logger receives retry diagnostics at debug level. Nil disables them.
	Logger *log.Logger
}

// WithDefaults returns a copy of o with zero fields set to defaults.
func (o Options) WithDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Retries == 0 {
		o.Retries = DefaultRetries
	}
	if o.Retries < 0 {
		o.Retries = 0
	}
	if o.RetryWaitMin <= 0 {
		o.RetryWaitMin = DefaultRetryWaitMin
	}
	if o.RetryWaitMax <= 0 {
		o.RetryWaitMax = DefaultRetryWaitMax
	}
	if o.RetryWaitMax < o.RetryWaitMin {
		o.RetryWaitMax = o.RetryWaitMin
	}
	return o
}

// NewClient returns an *http.Client that retries transient failures.
func NewClient(opts Options) *http.Client {
	opts = opts.WithDefaults()

	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = opts.Timeout
	rc.RetryMax = opts.Retries
	rc.RetryWaitMin = opts.RetryWaitMin
	rc.RetryWaitMax = opts.RetryWaitMax
	rc.CheckRetry = RetryPolicy
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if opts.Logger != nil {
		rc.Logger = leveledLogger{opts.Logger}
	} else {
		rc.Logger = nil
	}
	rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			observability.HTTP().OnRetry(req.Context(), req.Method, req.URL.Host, req.URL.Path, attempt)
		}
	}

	return rc.StandardClient()
}

// RetryPolicy retries transport errors and every non-2xx response except
// 404 and 410. It stops as soon as the request context is done.
func RetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	return IsRetryableStatus(resp.StatusCode), nil
}

// IsRetryableStatus reports whether an HTTP status is worth retrying.
// Only a definite "no such project" (404, 410) and success are final.
func IsRetryableStatus(code int) bool {
	if code >= 200 && code < 300 {
		return false
	}
	return code != http.StatusNotFound && code != http.StatusGone
}

// leveledLogger adapts a charmbracelet logger to retryablehttp.LeveledLogger.
type leveledLogger struct{ l *log.Logger }

func (a leveledLogger) Error(msg string, kv ...interface{}) { a.l.Debug(msg, kv...) }
func (a leveledLogger) Info(msg string, kv ...interface{})  { a.l.Debug(msg, kv...) }
func (a leveledLogger) Debug(msg string, kv ...interface{}) { a.l.Debug(msg, kv...) }
func (a leveledLogger) Warn(msg string, kv ...interface{})  { a.l.Debug(msg, kv...) }

var _ retryablehttp.LeveledLogger = leveledLogger{}
