// Package integrations provides HTTP clients for package index APIs.
//
// # Overview
//
// The [pypi] subpackage speaks the PEP 503 simple repository API (with PEP
// 691 JSON negotiation) against any compatible index: pypi.org, a private
// devpi, Artifactory or a plain static file server.
//
// # Shared Infrastructure
//
// [Client] provides the shared HTTP layer used by index clients:
//
//   - response caching via [cache.Cache], keyed by URL and Accept header
//   - classification of statuses into [ErrNotFound] and [ErrNetwork]
//   - observability hooks for requests, responses and cache hits
//
// Retries are handled by the transport built with [httputil.NewClient].
//
// [pypi]: github.com/matzehuels/pydepsync/pkg/integrations/pypi
// [cache.Cache]: github.com/matzehuels/pydepsync/pkg/cache.Cache
// [httputil.NewClient]: github.com/matzehuels/pydepsync/pkg/httputil.NewClient
package integrations
