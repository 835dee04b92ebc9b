package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pydepsync/pkg/observability"
)

// logHooks logs observability events at debug level. It is registered for
// --verbose runs.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
	_ observability.HTTPHooks     = (*logHooks)(nil)
)

func (h *logHooks) OnScanStart(_ context.Context, root string) {
	h.logger.Debug("scan started", "root", root)
}

func (h *logHooks) OnScanComplete(_ context.Context, root string, files, imports int, d time.Duration, err error) {
	h.done("scan", d, err, "files", files, "imports", imports)
}

func (h *logHooks) OnResolveStart(_ context.Context, candidates int) {
	h.logger.Debug("resolve started", "candidates", candidates)
}

func (h *logHooks) OnResolveComplete(_ context.Context, resolved, unresolved int, d time.Duration, err error) {
	h.done("resolve", d, err, "resolved", resolved, "unresolved", unresolved)
}

func (h *logHooks) OnPatchStart(_ context.Context, manifest string) {
	h.logger.Debug("patch started", "manifest", manifest)
}

func (h *logHooks) OnPatchComplete(_ context.Context, manifest string, added int, d time.Duration, err error) {
	h.done("patch", d, err, "added", added)
}

func (h *logHooks) done(stage string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "took", d.Round(time.Millisecond))
	if err != nil {
		h.logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(stage+" complete", kv...)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "key", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "key", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "key", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnRetry(_ context.Context, method, host, path string, attempt int) {
	h.logger.Debug("retry", "method", method, "host", host, "path", path, "attempt", attempt)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "method", method, "host", host, "path", path, "err", err)
}
