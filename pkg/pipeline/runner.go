package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/pydepsync/pkg/cache"
	"github.com/matzehuels/pydepsync/pkg/config"
	"github.com/matzehuels/pydepsync/pkg/deps"
	"github.com/matzehuels/pydepsync/pkg/deps/python"
	"github.com/matzehuels/pydepsync/pkg/diag"
	"github.com/matzehuels/pydepsync/pkg/errors"
	"github.com/matzehuels/pydepsync/pkg/httputil"
	"github.com/matzehuels/pydepsync/pkg/observability"
)

// Runner executes sync runs against a shared response cache.
//
// The Runner holds no per-run state; multiple goroutines may call Execute
// with different options.
type Runner struct {
	Cache cache.Cache
	HTTP  *http.Client // nil builds a retrying client from each run's settings
}

// NewRunner creates a runner. A nil cache disables response caching.
func NewRunner(c cache.Cache, httpClient *http.Client) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Runner{Cache: c, HTTP: httpClient}
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// Execute runs the complete pipeline. Fatal conditions return an error and
// leave the manifest untouched; everything else lands in the report.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	s := opts.Settings

	collector := &diag.Collector{}
	sink := tee{collector, opts.Diagnostics}

	report := &Report{
		RunID:         uuid.NewString(),
		Root:          opts.Root,
		Manifest:      opts.Manifest,
		Mode:          opts.Mode,
		PythonVersion: s.PythonVersion,
		Indexes:       s.Indexes(),
	}
	if abs, err := filepath.Abs(opts.Root); err == nil {
		report.Root = abs
	}
	defer func() { report.Diagnostics = collector.All() }()

	doc, err := python.LoadPyproject(opts.Manifest)
	if err != nil {
		return nil, err
	}
	if !doc.HasProject() {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "%s has no [project] table", opts.Manifest)
	}

	// Stage 1: Scan + filter + remap
	scanStart := time.Now()
	observability.Pipeline().OnScanStart(ctx, report.Root)
	cands, err := r.candidates(ctx, opts, doc, report, sink)
	report.Stats.ScanTime = time.Since(scanStart)
	observability.Pipeline().OnScanComplete(ctx, report.Root, report.Files, len(report.Imports), report.Stats.ScanTime, err)
	if err != nil {
		return nil, err
	}
	report.Candidates = cands

	// Stage 2: Resolve
	resolveStart := time.Now()
	observability.Pipeline().OnResolveStart(ctx, len(cands))
	res, err := r.resolve(ctx, opts, cands, sink)
	report.Stats.ResolveTime = time.Since(resolveStart)
	if err != nil {
		observability.Pipeline().OnResolveComplete(ctx, 0, 0, report.Stats.ResolveTime, err)
		return nil, err
	}
	observability.Pipeline().OnResolveComplete(ctx, len(res.Resolved), len(res.Unresolved), report.Stats.ResolveTime, nil)
	report.Resolved = res.Resolved
	report.Unresolved = res.Unresolved

	// Stage 3: Patch
	patchStart := time.Now()
	observability.Pipeline().OnPatchStart(ctx, opts.Manifest)
	err = r.patch(ctx, opts, doc, res.Resolved, report, sink)
	report.Stats.PatchTime = time.Since(patchStart)
	observability.Pipeline().OnPatchComplete(ctx, opts.Manifest, len(report.Added), report.Stats.PatchTime, err)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *Runner) candidates(ctx context.Context, opts Options, doc *python.Pyproject, report *Report, sink diag.Sink) ([]deps.Candidate, error) {
	s := opts.Settings

	files, err := Scan(ctx, opts, sink)
	if err != nil {
		return nil, err
	}
	report.Files = len(files)

	localMods, err := python.LocalModules(opts.Root, s.SourceRoots, s.ExcludeDirs, doc.ProjectName())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "list local modules")
	}
	stdlib, err := python.StdlibModules(s.PythonVersion)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "python version")
	}

	remapper := python.NewRemapper(s.Remap)
	report.Imports = Filter(files, localMods, stdlib, remapper, sink)
	return Remap(report.Imports, remapper, sink), nil
}

func (r *Runner) resolve(ctx context.Context, opts Options, cands []deps.Candidate, sink diag.Sink) (*deps.Resolution, error) {
	if len(cands) == 0 {
		return &deps.Resolution{}, nil
	}
	s := opts.Settings
	reg := python.NewResolver(s.Indexes(), r.httpClient(s), r.Cache, s.Cache.TTL)
	return reg.Resolve(ctx, cands, deps.Options{
		Workers:     s.Workers,
		CacheTTL:    s.Cache.TTL,
		Refresh:     opts.Refresh,
		Diagnostics: sink,
	})
}

func (r *Runner) patch(ctx context.Context, opts Options, doc *python.Pyproject, resolved []deps.ResolvedPackage, report *Report, sink diag.Sink) error {
	plan := doc.Plan(resolved)
	report.Added = plan.Requirements()
	if plan.Empty() {
		diag.Emitf(sink, diag.Info, diag.StagePatch, opts.Manifest, "no missing dependencies")
		return nil
	}

	out, err := doc.Apply(plan)
	if err != nil {
		return err
	}
	report.Patched = out
	if !opts.Writes() {
		return nil
	}
	// A cancelled run never writes.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := python.WriteFileAtomic(opts.Manifest, out); err != nil {
		return err
	}
	report.Written = true
	return nil
}

func (r *Runner) httpClient(s config.Settings) *http.Client {
	if r.HTTP != nil {
		return r.HTTP
	}
	retries := s.Retries
	if retries == 0 {
		retries = -1 // zero means "use the default" to httputil
	}
	return httputil.NewClient(httputil.Options{Timeout: s.Timeout, Retries: retries})
}

// tee fans diagnostics out to the run's collector and an optional live sink.
type tee struct {
	collector *diag.Collector
	live      diag.Sink
}

func (t tee) Emit(d diag.Diagnostic) {
	t.collector.Emit(d)
	if t.live != nil {
		t.live.Emit(d)
	}
}

// String summarizes the report in one line.
func (r *Report) String() string {
	return fmt.Sprintf("%d files, %d imports, %d resolved, %d unresolved, %d added",
		r.Files, len(r.Imports), len(r.Resolved), len(r.Unresolved), len(r.Added))
}
