package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pydepsync/pkg/buildinfo"
	"github.com/matzehuels/pydepsync/pkg/cache"
	"github.com/matzehuels/pydepsync/pkg/config"
	"github.com/matzehuels/pydepsync/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pydepsync"

	// keyPrefix scopes every cache key, so a shared Redis can be cleared
	// without touching other applications.
	keyPrefix = appName + ":"

	// sqliteFile is the database name inside the cache directory.
	sqliteFile = "cache.db"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives reports and command output; logs go to the logger.
	Out io.Writer

	// Flags shared by every command.
	configPath   string
	cacheBackend string
	redisURL     string
	verbose      bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself runs a sync.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.syncCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default: <path>/"+config.FileName+")")
	pf.StringVar(&c.cacheBackend, "cache-backend", "", "response cache backend: file, sqlite or redis")
	pf.StringVar(&c.redisURL, "redis-url", "", "Redis URL for the redis cache backend")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if c.verbose {
			c.SetLogLevel(LogDebug)
			hooks := &logHooks{logger: c.Logger}
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetHTTPHooks(hooks)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// loadSettings discovers the config file under root and merges it with o.
// The shared cache flags are applied when the user set them.
func (c *CLI) loadSettings(cmd *cobra.Command, root string, o config.Overrides) (config.Settings, error) {
	sink := &logSink{logger: loggerFromContext(cmd.Context()), warn: true}
	f, err := config.Discover(root, c.configPath, sink)
	if err != nil {
		return config.Settings{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("cache-backend") {
		o.CacheBackend = &c.cacheBackend
	}
	if flags.Changed("redis-url") {
		o.RedisURL = &c.redisURL
	}
	return config.Merge(f, o)
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache opens the configured response cache. A backend that cannot be
// opened is logged and replaced by a NullCache; the run still works, only
// slower.
func newCache(ctx context.Context, s config.CacheSettings) cache.Cache {
	if s.Disabled {
		return cache.NewNullCache()
	}
	logger := loggerFromContext(ctx)

	var (
		c   cache.Cache
		err error
	)
	switch s.Backend {
	case cache.BackendRedis:
		c, err = cache.OpenRedis(ctx, s.RedisURL)
	case cache.BackendSQLite:
		var path string
		if path, err = sqlitePath(s); err == nil {
			if err = os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				c, err = cache.OpenSQLite(path)
			}
		}
	default:
		var dir string
		if dir, err = fileCacheDir(s); err == nil {
			c, err = cache.NewFileCache(dir)
		}
	}
	if err != nil {
		logger.Warn("cache unavailable, continuing without it", "backend", s.Backend, "err", err)
		return cache.NewNullCache()
	}
	logger.Debug("cache opened", "backend", s.Backend)
	return ownedScope{Cache: cache.NewScoped(c, keyPrefix), backend: c}
}

// ownedScope is a scoped cache that also closes its backend.
type ownedScope struct {
	cache.Cache
	backend cache.Cache
}

func (o ownedScope) Close() error { return o.backend.Close() }

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/pydepsync/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// fileCacheDir returns the file backend directory.
func fileCacheDir(s config.CacheSettings) (string, error) {
	if s.Path != "" {
		return homedir.Expand(s.Path)
	}
	return cacheDir()
}

// sqlitePath returns the sqlite backend database file.
func sqlitePath(s config.CacheSettings) (string, error) {
	if s.Path != "" {
		return homedir.Expand(s.Path)
	}
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sqliteFile), nil
}
