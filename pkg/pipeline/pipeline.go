// Package pipeline wires the sync stages together.
//
// This package implements the complete scan → filter → remap → resolve →
// patch pipeline that the CLI runs. Centralizing it keeps the CLI a thin
// layer over flags and output.
//
// # Architecture
//
//  1. Scan: walk the project and extract imports from every Python file
//  2. Filter: drop relative imports, local modules, then the standard library
//  3. Remap: guess a distribution name for every surviving import
//  4. Resolve: look every distribution up across the configured indexes
//  5. Patch: append missing packages to pyproject.toml and write it atomically
//
// Stages never log. Non-fatal events go to a [diag.Sink] and end up in the
// [Report]; fatal conditions return a *errors.Error.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, httpClient)
//	defer runner.Close()
//	report, err := runner.Execute(ctx, pipeline.Options{
//	    Root:     ".",
//	    Settings: settings,
//	})
package pipeline

import (
	"path/filepath"
	"time"

	"github.com/matzehuels/pydepsync/pkg/config"
	"github.com/matzehuels/pydepsync/pkg/deps"
	"github.com/matzehuels/pydepsync/pkg/deps/python"
	"github.com/matzehuels/pydepsync/pkg/diag"
	"github.com/matzehuels/pydepsync/pkg/errors"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Mode selects what happens once the patch plan is known.
type Mode string

const (
	ModeWrite  Mode = "write"   // Apply the plan and write the manifest
	ModeDryRun Mode = "dry-run" // Compute and verify the patched manifest, write nothing
	ModeCheck  Mode = "check"   // Like dry-run; the caller fails when the plan is non-empty
)

// Options contains all configuration for one sync run.
type Options struct {
	// Root is the project directory to scan.
	Root string
	// Manifest is the pyproject.toml path. Empty means Root/pyproject.toml.
	Manifest string
	// Settings are the merged config file and flag values.
	Settings config.Settings
	// Mode defaults to ModeWrite.
	Mode Mode
	// Refresh bypasses cached index responses.
	Refresh bool
	// Diagnostics, if set, also receives every diagnostic as it happens.
	Diagnostics diag.Sink
}

// ValidateAndSetDefaults checks required fields and fills defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Root == "" {
		o.Root = "."
	}
	if o.Manifest == "" {
		o.Manifest = filepath.Join(o.Root, python.ManifestName)
	}
	switch o.Mode {
	case "":
		o.Mode = ModeWrite
	case ModeWrite, ModeDryRun, ModeCheck:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "invalid mode %q", o.Mode)
	}
	if o.Settings.PythonVersion == "" {
		o.Settings = config.Defaults()
	}
	return o.Settings.Validate()
}

// Writes reports whether the run may modify the manifest.
func (o Options) Writes() bool { return o.Mode == ModeWrite }

// =============================================================================
// Report - Run Outcome
// =============================================================================

// Report describes one sync run. It is rendered by the CLI as text, JSON or
// YAML.
type Report struct {
	RunID         string   `json:"run_id" yaml:"run_id"`
	Root          string   `json:"root" yaml:"root"`
	Manifest      string   `json:"manifest" yaml:"manifest"`
	Mode          Mode     `json:"mode" yaml:"mode"`
	PythonVersion string   `json:"python_version" yaml:"python_version"`
	Indexes       []string `json:"indexes" yaml:"indexes"`

	Files      int              `json:"files" yaml:"files"`
	Imports    []string         `json:"imports" yaml:"imports"`       // Third-party import names, sorted
	Candidates []deps.Candidate `json:"candidates" yaml:"candidates"` // After remapping

	Resolved   []deps.ResolvedPackage `json:"resolved" yaml:"resolved"`
	Unresolved []deps.Candidate       `json:"unresolved" yaml:"unresolved"`
	Added      []string               `json:"added" yaml:"added"` // Requirement strings in plan order
	Written    bool                   `json:"written" yaml:"written"`

	Diagnostics []diag.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	Stats       Stats             `json:"stats" yaml:"stats"`

	// Patched is the manifest content after applying the plan; nil when the
	// plan is empty.
	Patched []byte `json:"-" yaml:"-"`
}

// Pending reports whether the manifest is missing dependencies.
func (r *Report) Pending() bool { return len(r.Added) > 0 }

// Stats contains pipeline execution statistics.
type Stats struct {
	ScanTime    time.Duration `json:"scan_time" yaml:"scan_time"`
	ResolveTime time.Duration `json:"resolve_time" yaml:"resolve_time"`
	PatchTime   time.Duration `json:"patch_time" yaml:"patch_time"`
}
