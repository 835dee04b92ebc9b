package cli

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pydepsync/pkg/cache"
	"github.com/matzehuels/pydepsync/pkg/config"
	"github.com/matzehuels/pydepsync/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the index response cache",
		Long: `Manage the index response cache.

The backend is taken from .pydepsync.toml in the current directory, --config,
or --cache-backend.`,
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var expired bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear cached index responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings(cmd, ".", config.Overrides{})
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			switch s.Cache.Backend {
			case cache.BackendRedis:
				if expired {
					printInfo(c.Out, "Redis expires entries itself; nothing to purge")
					return nil
				}
				rc, err := cache.OpenRedis(ctx, s.Cache.RedisURL)
				if err != nil {
					return errors.Wrap(errors.ErrCodeNetwork, err, "connect to redis")
				}
				defer rc.Close()
				n, err := rc.Clear(ctx, keyPrefix)
				if err != nil {
					return errors.Wrap(errors.ErrCodeNetwork, err, "clear redis cache")
				}
				printSuccess(c.Out, "Cleared %d cached entries", n)
				printDetail(c.Out, "Redis: %s", redactURL(s.Cache.RedisURL))

			case cache.BackendSQLite:
				path, err := sqlitePath(s.Cache)
				if err != nil {
					return fmt.Errorf("get cache path: %w", err)
				}
				if _, err := os.Stat(path); os.IsNotExist(err) {
					printInfo(c.Out, "Cache is empty")
					return nil
				}
				sc, err := cache.OpenSQLite(path)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
				}
				defer sc.Close()
				var n int64
				if expired {
					n, err = sc.Purge(ctx)
				} else {
					n, err = sc.Clear(ctx)
				}
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "clear %s", path)
				}
				printSuccess(c.Out, "Cleared %d cached entries", n)
				printDetail(c.Out, "Database: %s", path)

			default:
				if expired {
					return errors.New(errors.ErrCodeUnsupported, "--expired needs the sqlite or redis backend; file entries expire on read")
				}
				dir, err := fileCacheDir(s.Cache)
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					printInfo(c.Out, "Cache is empty")
					return nil
				}
				fc, err := cache.NewFileCache(dir)
				if err != nil {
					return err
				}
				n, err := fc.Clear()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "clear %s", dir)
				}
				printSuccess(c.Out, "Cleared %d cached entries", n)
				printDetail(c.Out, "Directory: %s", dir)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&expired, "expired", false, "only remove expired entries")
	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings(cmd, ".", config.Overrides{})
			if err != nil {
				return err
			}

			var location string
			switch s.Cache.Backend {
			case cache.BackendRedis:
				location = redactURL(s.Cache.RedisURL)
			case cache.BackendSQLite:
				location, err = sqlitePath(s.Cache)
			default:
				location, err = fileCacheDir(s.Cache)
			}
			if err != nil {
				return fmt.Errorf("get cache path: %w", err)
			}

			if isTerminalWriter(c.Out) {
				renderCachePath(c.Out, s.Cache.Backend, location)
				return nil
			}
			fmt.Fprintln(c.Out, location)
			return nil
		},
	}
}

// redactURL hides the password of a Redis URL.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Redacted()
}
