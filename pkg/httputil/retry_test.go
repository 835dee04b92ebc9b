package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func fastOptions(retries int) Options {
	return Options{
		Timeout:      2 * time.Second,
		Retries:      retries,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 2 * time.Millisecond,
	}
}

func TestNewClientRetriesTransientStatus(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	resp, err := NewClient(fastOptions(3)).Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("hits = %d, want 3", got)
	}
}

func TestNewClientDoesNotRetryNotFound(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	resp, err := NewClient(fastOptions(3)).Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("hits = %d, want 1", got)
	}
}

func TestNewClientPassesThroughExhaustedStatus(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	resp, err := NewClient(fastOptions(2)).Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", resp.StatusCode)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("hits = %d, want 3 (1 + 2 retries)", got)
	}
}

func TestNewClientRetriesClientErrors(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden} {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(code)
		}))

		resp, err := NewClient(fastOptions(3)).Get(srv.URL)
		if err != nil {
			t.Fatalf("status %d: Get: %v", code, err)
		}
		resp.Body.Close()
		srv.Close()

		if resp.StatusCode != code {
			t.Errorf("status = %d, want %d", resp.StatusCode, code)
		}
		if got := hits.Load(); got != 4 {
			t.Errorf("status %d: hits = %d, want 4 (1 + 3 retries)", code, got)
		}
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	o := Options{}.WithDefaults()
	if o.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v", o.Timeout)
	}
	if o.Retries != DefaultRetries {
		t.Errorf("Retries = %d", o.Retries)
	}

	o = Options{Retries: -1, RetryWaitMin: time.Second, RetryWaitMax: time.Millisecond}.WithDefaults()
	if o.Retries != 0 {
		t.Errorf("negative Retries should disable retries, got %d", o.Retries)
	}
	if o.RetryWaitMax != time.Second {
		t.Errorf("RetryWaitMax should be raised to RetryWaitMin, got %v", o.RetryWaitMax)
	}
}

func TestRetryPolicy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		want   bool
	}{
		{"ok", 200, nil, false},
		{"not found", 404, nil, false},
		{"gone", 410, nil, false},
		{"no content", 204, nil, false},
		{"bad request", 400, nil, true},
		{"unauthorized", 401, nil, true},
		{"forbidden", 403, nil, true},
		{"rate limited", 429, nil, true},
		{"server error", 500, nil, true},
		{"bad gateway", 502, nil, true},
		{"transport", 0, errors.New("connection reset"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp *http.Response
			if tt.err == nil {
				resp = &http.Response{StatusCode: tt.status}
			}
			got, err := RetryPolicy(context.Background(), resp, tt.err)
			if err != nil {
				t.Fatalf("RetryPolicy error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RetryPolicy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetryPolicyStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	retry, err := RetryPolicy(ctx, nil, errors.New("boom"))
	if retry {
		t.Error("should not retry a cancelled request")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
