// Package paths centralizes file system path resolution for taskdeck.
//
// All durable and cached state lives under the XDG base directories,
// resolved via github.com/adrg/xdg:
//
//	<XDG_CONFIG_HOME>/taskdeck/config.yaml       configuration
//	<XDG_DATA_HOME>/taskdeck/todo.json           task store
//	<XDG_DATA_HOME>/taskdeck/backups/            rotated backups
//	<XDG_CACHE_HOME>/taskdeck/skills-manifest.json  cached manifest
//
// Callers should thread these paths through constructors rather than
// resolving them ad hoc, so engines stay testable with temp directories.
package paths
