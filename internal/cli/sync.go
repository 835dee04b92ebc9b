package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pydepsync/pkg/config"
	"github.com/matzehuels/pydepsync/pkg/errors"
	"github.com/matzehuels/pydepsync/pkg/httputil"
	"github.com/matzehuels/pydepsync/pkg/pipeline"
)

// syncFlags holds the flags of the root command.
type syncFlags struct {
	excludeDirs    []string
	extraIndexes   []string
	preferredIndex string
	remap          []string
	pythonVersion  string
	sourceRoots    []string
	workers        int
	timeout        time.Duration
	retries        int
	manifest       string
	format         string
	dryRun         bool
	check          bool
	noCache        bool
	refresh        bool
}

// syncCommand creates the root command, which runs a sync.
func (c *CLI) syncCommand() *cobra.Command {
	var f syncFlags

	cmd := &cobra.Command{
		Use:   "pydepsync [path]",
		Short: "Add missing third-party imports to pyproject.toml",
		Long: `pydepsync scans a Python project for imports, drops standard library and
local modules, resolves the rest against PyPI (or any PEP 503 simple index)
and appends the missing packages to [project].dependencies with a
compatible-release specifier.

The manifest is patched in place: comments, formatting and every other
table are preserved. Settings are read from .pydepsync.toml in the project
root; flags take precedence.`,
		Example: `  pydepsync
  pydepsync ./service --dry-run
  pydepsync --check --format json
  pydepsync -r yaml=PyYAML -r cv2=opencv-python-headless
  pydepsync --extra-indexes https://pypi.internal.example/simple`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return c.runSync(cmd, root, f)
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVar(&f.excludeDirs, "exclude-dirs", nil, "directory names or root-relative paths to skip (added to the defaults)")
	fl.StringSliceVar(&f.extraIndexes, "extra-indexes", nil, "additional simple index URLs, tried in order after the preferred one")
	fl.StringVar(&f.preferredIndex, "preferred-index", "", "index URL tried first (default https://pypi.org/simple)")
	fl.StringArrayVarP(&f.remap, "remap", "r", nil, "import-to-distribution mapping as KEY=VALUE (repeatable)")
	fl.StringVar(&f.pythonVersion, "python-version", "", "target Python version for the standard library list")
	fl.StringSliceVar(&f.sourceRoots, "source-root", nil, "extra directories holding top-level local packages")
	fl.IntVar(&f.workers, "workers", 0, "concurrent scan and resolve workers")
	fl.DurationVar(&f.timeout, "timeout", 0, "per-request timeout")
	fl.IntVar(&f.retries, "retries", 0, "retries for transient index failures")
	fl.StringVar(&f.manifest, "manifest", "", "pyproject.toml to patch (default: <path>/pyproject.toml)")
	fl.StringVar(&f.format, "format", pipeline.FormatText, "output format: text, json or yaml")
	fl.BoolVar(&f.dryRun, "dry-run", false, "print the plan without writing")
	fl.BoolVar(&f.check, "check", false, "exit non-zero when dependencies are missing; never writes")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable the index response cache")
	fl.BoolVar(&f.refresh, "refresh", false, "ignore cached index responses and fetch fresh ones")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "check")

	return cmd
}

// runSync executes one sync run and prints its report.
func (c *CLI) runSync(cmd *cobra.Command, root string, f syncFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := pipeline.ValidateFormat(f.format); err != nil {
		return err
	}
	o, err := f.overrides(cmd)
	if err != nil {
		return err
	}
	settings, err := c.loadSettings(cmd, root, o)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Root:        root,
		Manifest:    f.manifest,
		Settings:    settings,
		Mode:        f.mode(),
		Refresh:     f.refresh,
		Diagnostics: newLogSink(logger),
	}

	runner := pipeline.NewRunner(newCache(ctx, settings.Cache), httputil.NewClient(httputil.Options{
		Timeout: settings.Timeout,
		Retries: retryCount(settings.Retries),
		Logger:  logger,
	}))
	defer runner.Close()

	report, err := c.execute(ctx, runner, opts, f.format == pipeline.FormatText && !c.verbose)
	if err != nil {
		return err
	}

	if f.format == pipeline.FormatText {
		renderReport(c.Out, report)
	} else {
		data, err := pipeline.Marshal(report, f.format)
		if err != nil {
			return err
		}
		if _, err := c.Out.Write(data); err != nil {
			return err
		}
	}

	if opts.Mode == pipeline.ModeCheck && report.Pending() {
		return errors.New(errors.ErrCodeChangesFound, "%s is missing %d %s",
			report.Manifest, len(report.Added), plural(len(report.Added), "dependency", "dependencies"))
	}
	return nil
}

// execute runs the pipeline behind a spinner.
func (c *CLI) execute(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, spin bool) (*pipeline.Report, error) {
	prog := newProgress(loggerFromContext(ctx))
	if spin {
		s := newSpinnerWithContext(ctx, "Syncing "+displayPath(opts.Root)+"...")
		s.Start()
		defer s.Stop()
	}

	report, err := runner.Execute(ctx, opts)
	if err != nil {
		return nil, err
	}
	prog.done("Synced " + displayPath(report.Root))
	return report, nil
}

// overrides converts the flags the user actually set into config overrides.
func (f syncFlags) overrides(cmd *cobra.Command) (config.Overrides, error) {
	flags := cmd.Flags()
	o := config.Overrides{
		ExcludeDirs:  f.excludeDirs,
		ExtraIndexes: f.extraIndexes,
		SourceRoots:  f.sourceRoots,
		NoCache:      f.noCache,
	}
	if len(f.remap) > 0 {
		m, err := parseRemap(f.remap)
		if err != nil {
			return o, err
		}
		o.Remap = m
	}
	if flags.Changed("preferred-index") {
		o.PreferredIndex = &f.preferredIndex
	}
	if flags.Changed("python-version") {
		o.PythonVersion = &f.pythonVersion
	}
	if flags.Changed("workers") {
		o.Workers = &f.workers
	}
	if flags.Changed("timeout") {
		o.Timeout = &f.timeout
	}
	if flags.Changed("retries") {
		o.Retries = &f.retries
	}
	return o, nil
}

func (f syncFlags) mode() pipeline.Mode {
	switch {
	case f.check:
		return pipeline.ModeCheck
	case f.dryRun:
		return pipeline.ModeDryRun
	default:
		return pipeline.ModeWrite
	}
}

// parseRemap parses repeated KEY=VALUE flags. Later entries win.
func parseRemap(entries []string) (map[string]string, error) {
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		k, v, ok := strings.Cut(e, "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" || v == "" {
			return nil, errors.New(errors.ErrCodeInvalidRemap, "invalid remap %q: expected KEY=VALUE", e)
		}
		out[k] = v
	}
	return out, nil
}

// retryCount maps the configured retry count onto httputil, where zero
// selects the default.
func retryCount(n int) int {
	if n == 0 {
		return -1
	}
	return n
}

// displayPath shows p relative to the working directory when it lies below
// it, and absolute otherwise.
func displayPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return abs
	}
	if rel, err := filepath.Rel(wd, abs); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return abs
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
