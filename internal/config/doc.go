// Package config provides configuration management for the taskdeck CLI.
//
// # Configuration File
//
// The default configuration file location is ~/.config/taskdeck/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	tasks:
//	  file: /custom/todo.json       # optional
//	backup:
//	  dir: /custom/backups          # optional
//	  max_backups: 10
//	cache:
//	  file: /custom/manifest.json   # optional
//	  ttl_seconds: 300              # 0 means use the manifest's own TTL
//	skills:
//	  dirs:
//	    - ~/.claude/skills
//
// Every key can also be set through the environment with the TASKDECK
// prefix, e.g. TASKDECK_BACKUP_MAX_BACKUPS=5.
//
// # Loading Configuration
//
// Use [LoadDefault] to load from the default location with graceful fallback
// to default values:
//
//	cfg, err := config.LoadDefault()
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Use [Load] when you need to load from a specific path. Loading a path
// that does not exist is an error; loading with an empty path falls back
// to defaults.
//
// # Validation
//
// All loaded configurations are validated automatically. You can also
// validate a configuration manually:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
