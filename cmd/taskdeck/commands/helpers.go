package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/backup"
	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/manifest"
	"github.com/taskdeck/taskdeck/internal/store"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// newBackupManager builds the backup manager from the active configuration.
func newBackupManager(cmd *cobra.Command) *backup.Manager {
	c := Config()
	return backup.NewManager(
		backup.WithDir(c.Backup.Dir),
		backup.WithMaxBackups(c.Backup.MaxBackups),
		backup.WithLogger(logging.FromContext(cmd.Context())),
	)
}

// newTaskStore builds the task store, wired to back up before mutations.
func newTaskStore(cmd *cobra.Command) *store.Store {
	c := Config()
	return store.NewStore(c.Tasks.File,
		store.WithBackups(newBackupManager(cmd)),
		store.WithStoreLogger(logging.FromContext(cmd.Context())),
	)
}

// newResolver builds the manifest cache resolver from the active
// configuration. A positive cache.ttl_seconds overrides the TTL carried by
// the cached manifest itself.
func newResolver(cmd *cobra.Command) *manifest.Resolver {
	c := Config()
	logger := logging.FromContext(cmd.Context())

	gen := manifest.NewScanGenerator(c.Skills.Dirs, logger)

	opts := []manifest.ResolverOption{
		manifest.WithResolverLogger(logger),
	}
	if c.Cache.TTLSeconds > 0 {
		opts = append(opts, manifest.WithTTL(time.Duration(c.Cache.TTLSeconds)*time.Second))
	}

	return manifest.NewResolver(c.Cache.File, gen, opts...)
}
