// Package pkg provides the libraries behind pydepsync.
//
// # Overview
//
// pydepsync keeps a Python project's pyproject.toml in step with what its
// code actually imports. The pkg directory is organized into these areas:
//
//  1. [source/local] - Walk a project and extract imports in parallel
//  2. [deps] and [deps/python] - Filtering, remapping, resolution and manifest patching
//  3. [integrations] - Simple-index clients (PyPI and PEP 503/691 mirrors)
//  4. [pipeline] - Orchestration (scan → filter → remap → resolve → patch)
//  5. [config] - .pydepsync.toml loading and flag merging
//  6. Infrastructure: [cache], [httputil], [diag], [errors], [observability]
//
// # Architecture
//
// The typical data flow through pydepsync:
//
//	Project sources
//	         ↓
//	    [source/local] (walk + import extraction)
//	         ↓
//	    [pipeline] filter (drop relative, local and stdlib imports)
//	         ↓
//	    [deps/python] remap + resolve across indexes
//	         ↓
//	    [deps/python] patch pyproject.toml
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/pydepsync/pkg/config"
//	    "github.com/matzehuels/pydepsync/pkg/pipeline"
//	)
//
//	settings, _ := config.Merge(nil, config.Overrides{})
//	runner := pipeline.NewRunner(nil, nil)
//	defer runner.Close()
//	report, err := runner.Execute(context.Background(), pipeline.Options{
//	    Root:     ".",
//	    Settings: settings,
//	    Mode:     pipeline.ModeDryRun,
//	})
//
// [source/local]: github.com/matzehuels/pydepsync/pkg/source/local
// [deps]: github.com/matzehuels/pydepsync/pkg/deps
// [deps/python]: github.com/matzehuels/pydepsync/pkg/deps/python
// [integrations]: github.com/matzehuels/pydepsync/pkg/integrations
// [pipeline]: github.com/matzehuels/pydepsync/pkg/pipeline
// [config]: github.com/matzehuels/pydepsync/pkg/config
// [cache]: github.com/matzehuels/pydepsync/pkg/cache
// [httputil]: github.com/matzehuels/pydepsync/pkg/httputil
// [diag]: github.com/matzehuels/pydepsync/pkg/diag
// [errors]: github.com/matzehuels/pydepsync/pkg/errors
// [observability]: github.com/matzehuels/pydepsync/pkg/observability
package pkg
