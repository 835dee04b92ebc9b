package deps

import (
	"time"

	"github.com/matzehuels/pydepsync/pkg/diag"
	"github.com/matzehuels/pydepsync/pkg/integrations"
)

const (
	DefaultWorkers  = 8         // Default concurrent candidate resolutions
	DefaultCacheTTL = time.Hour // Default HTTP cache duration
)

// Options configures resolution behavior.
type Options struct {
	Workers     int           // Concurrent resolutions (default: 8)
	CacheTTL    time.Duration // HTTP cache duration (default: 1h)
	Refresh     bool          // Bypass cache for fresh data
	Diagnostics diag.Sink     // Receives resolution diagnostics (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = diag.Discard{}
	}
	return opts
}

// Candidate is an import name that survived filtering, with its
// distribution name guess.
type Candidate struct {
	ImportName string `json:"import" yaml:"import"` // Root module as imported, e.g. "yaml"
	Dist       string `json:"dist" yaml:"dist"`     // Distribution name guess, e.g. "PyYAML"
}

// Release is what one index knows about one distribution.
type Release struct {
	Name     string   // Distribution name as queried
	Versions []string // Raw, non-yanked version strings
	Index    string   // Base URL of the answering index
}

// ResolvedPackage is a candidate bound to a concrete distribution version.
type ResolvedPackage struct {
	Name       string `json:"name" yaml:"name"`           // Distribution name used in the manifest
	ImportName string `json:"import" yaml:"import"`       // Import that led to it
	Version    string `json:"version" yaml:"version"`     // Selected version
	Specifier  string `json:"specifier" yaml:"specifier"` // e.g. "~=2.31.0"
	Index      string `json:"index" yaml:"index"`         // Base URL of the index that answered
}

// Requirement returns the dependency string written to the manifest.
func (p ResolvedPackage) Requirement() string {
	return p.Name + p.Specifier
}

// Normalized returns the PEP 503 normalized distribution name.
func (p ResolvedPackage) Normalized() string {
	return integrations.NormalizePkgName(p.Name)
}
