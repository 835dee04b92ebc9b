// Package config loads .pydepsync.toml and merges it with command-line
// overrides into the [Settings] a sync run uses.
//
// Precedence, lowest first: built-in defaults, the config file, flags.
// List-valued settings (excluded directories, extra indexes, source roots)
// are unions in that order; remap tables merge key by key with flags
// winning; scalars take the highest-precedence value that was set.
package config

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/matzehuels/pydepsync/pkg/cache"
	"github.com/matzehuels/pydepsync/pkg/deps"
	"github.com/matzehuels/pydepsync/pkg/deps/python"
	"github.com/matzehuels/pydepsync/pkg/diag"
	"github.com/matzehuels/pydepsync/pkg/errors"
	"github.com/matzehuels/pydepsync/pkg/httputil"
	"github.com/matzehuels/pydepsync/pkg/source/local"
)

// FileName is the config file looked up at the project root.
const FileName = ".pydepsync.toml"

// File mirrors the config file. Every field is optional.
type File struct {
	ExcludeDirs    []string          `toml:"exclude_dirs"`
	ExtraIndexes   []string          `toml:"extra_indexes"`
	PreferredIndex string            `toml:"preferred_index"`
	Remap          map[string]string `toml:"remap"`
	PythonVersion  string            `toml:"python_version"`
	SourceRoots    []string          `toml:"source_roots"`
	Workers        int               `toml:"workers"`
	Timeout        string            `toml:"timeout"` // Go duration, e.g. "10s"
	Retries        *int              `toml:"retries"`
	Cache          CacheFile         `toml:"cache"`
}

// CacheFile is the [cache] table.
type CacheFile struct {
	Backend  string `toml:"backend"`
	TTL      string `toml:"ttl"`
	RedisURL string `toml:"redis_url"`
	Path     string `toml:"path"`
}

// Overrides carries values given on the command line. Nil pointers and
// empty slices mean "not given".
type Overrides struct {
	ExcludeDirs    []string
	ExtraIndexes   []string
	PreferredIndex *string
	Remap          map[string]string
	PythonVersion  *string
	SourceRoots    []string
	Workers        *int
	Timeout        *time.Duration
	Retries        *int

	CacheBackend *string
	CacheTTL     *time.Duration
	RedisURL     *string
	NoCache      bool
}

// Settings is the merged, validated configuration.
type Settings struct {
	ExcludeDirs    []string
	PreferredIndex string
	ExtraIndexes   []string
	Remap          map[string]string
	PythonVersion  string
	SourceRoots    []string
	Workers        int
	Timeout        time.Duration
	Retries        int
	Cache          CacheSettings
}

// CacheSettings selects and configures the response cache.
type CacheSettings struct {
	Disabled bool
	Backend  string
	TTL      time.Duration
	RedisURL string
	Path     string // Directory (file) or database file (sqlite); empty for the default
}

// Indexes returns the ordered index list for s.
func (s Settings) Indexes() []string {
	return python.IndexList(s.PreferredIndex, s.ExtraIndexes)
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		ExcludeDirs:   append([]string(nil), local.DefaultExcludes...),
		Remap:         map[string]string{},
		PythonVersion: python.DefaultPythonVersion,
		SourceRoots:   append([]string(nil), python.DefaultSourceRoots...),
		Workers:       deps.DefaultWorkers,
		Timeout:       httputil.DefaultTimeout,
		Retries:       httputil.DefaultRetries,
		Cache: CacheSettings{
			Backend: cache.BackendFile,
			TTL:     deps.DefaultCacheTTL,
		},
	}
}

// Load reads and strictly decodes the config file at path. A leading "~"
// expands to the home directory.
func Load(path string) (*File, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "expand %s", path)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Decode(data, path)
}

// Decode parses config file contents. Unknown keys are an error.
func Decode(data []byte, name string) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if stderrors.As(err, &strict) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: unknown key\n%s", name, strict.String())
		}
		var de *toml.DecodeError
		if stderrors.As(err, &de) {
			row, col := de.Position()
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s:%d:%d", name, row, col)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", name)
	}
	return &f, nil
}

// Discover loads the config for a run. An explicit path must load
// cleanly. Otherwise FileName under root is tried; a missing file yields an
// empty config and an invalid one is reported to sink and ignored.
func Discover(root, explicit string, sink diag.Sink) (*File, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path := filepath.Join(root, FileName)
	f, err := Load(path)
	switch {
	case err == nil:
		return f, nil
	case errors.Is(err, errors.ErrCodeFileNotFound):
		return &File{}, nil
	default:
		diag.Emitf(sink, diag.Warning, diag.StageConfig, path, "ignoring config file: %v", err)
		return &File{}, nil
	}
}

// Merge combines defaults, the config file and flags into validated
// settings. f may be nil.
func Merge(f *File, o Overrides) (Settings, error) {
	if f == nil {
		f = &File{}
	}
	s := Defaults()

	s.ExcludeDirs = union(s.ExcludeDirs, f.ExcludeDirs, o.ExcludeDirs)
	s.ExtraIndexes = union(nil, f.ExtraIndexes, o.ExtraIndexes)
	s.SourceRoots = union(s.SourceRoots, f.SourceRoots, o.SourceRoots)

	for k, v := range f.Remap {
		s.Remap[k] = v
	}
	for k, v := range o.Remap {
		s.Remap[k] = v
	}

	s.PreferredIndex = pick(s.PreferredIndex, f.PreferredIndex, o.PreferredIndex)
	s.PythonVersion = pick(s.PythonVersion, f.PythonVersion, o.PythonVersion)

	if f.Workers != 0 {
		s.Workers = f.Workers
	}
	if o.Workers != nil {
		s.Workers = *o.Workers
	}

	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return Settings{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "timeout %q", f.Timeout)
		}
		s.Timeout = d
	}
	if o.Timeout != nil {
		s.Timeout = *o.Timeout
	}

	if f.Retries != nil {
		s.Retries = *f.Retries
	}
	if o.Retries != nil {
		s.Retries = *o.Retries
	}

	s.Cache.Backend = pick(s.Cache.Backend, f.Cache.Backend, o.CacheBackend)
	s.Cache.RedisURL = pick(s.Cache.RedisURL, f.Cache.RedisURL, o.RedisURL)
	s.Cache.Path = f.Cache.Path
	if f.Cache.TTL != "" {
		d, err := time.ParseDuration(f.Cache.TTL)
		if err != nil {
			return Settings{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache.ttl %q", f.Cache.TTL)
		}
		s.Cache.TTL = d
	}
	if o.CacheTTL != nil {
		s.Cache.TTL = *o.CacheTTL
	}
	s.Cache.Disabled = o.NoCache

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks every setting.
func (s Settings) Validate() error {
	for _, d := range s.ExcludeDirs {
		if err := errors.ValidatePath(d); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "exclude_dirs entry %q", d)
		}
	}
	for _, d := range s.SourceRoots {
		if err := errors.ValidatePath(d); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "source_roots entry %q", d)
		}
	}
	if s.PreferredIndex != "" {
		if err := errors.ValidateURL(s.PreferredIndex); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "preferred_index")
		}
	}
	for _, u := range s.ExtraIndexes {
		if err := errors.ValidateURL(u); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "extra_indexes entry %q", u)
		}
	}
	for _, k := range sortedKeys(s.Remap) {
		if err := errors.ValidateImportName(k); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRemap, err, "remap key %q", k)
		}
		if err := errors.ValidatePythonPackageName(s.Remap[k]); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRemap, err, "remap value for %q", k)
		}
	}
	if !python.IsSupportedPythonVersion(s.PythonVersion) {
		return errors.New(errors.ErrCodeInvalidConfig, "python_version %q not supported (want one of %s)",
			s.PythonVersion, strings.Join(python.SupportedPythonVersions, ", "))
	}
	if s.Workers < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be at least 1, got %d", s.Workers)
	}
	if s.Timeout <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout must be positive, got %s", s.Timeout)
	}
	if s.Retries < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "retries must not be negative, got %d", s.Retries)
	}
	if s.Cache.Disabled {
		return nil
	}
	switch s.Cache.Backend {
	case cache.BackendFile, cache.BackendSQLite:
	case cache.BackendRedis:
		if s.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "redis cache backend requires a redis URL")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (want file, sqlite or redis)", s.Cache.Backend)
	}
	if s.Cache.TTL <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must be positive, got %s", s.Cache.TTL)
	}
	return nil
}

// union appends each list in order, dropping blanks and repeats.
func union(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range lists {
		for _, v := range l {
			v = strings.TrimSpace(v)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func pick(def, file string, flag *string) string {
	if flag != nil {
		return *flag
	}
	if file != "" {
		return file
	}
	return def
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
