// Package config provides configuration management for taskdeck using Viper.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int          `mapstructure:"version" yaml:"version"`
	Tasks   TasksConfig  `mapstructure:"tasks" yaml:"tasks"`
	Backup  BackupConfig `mapstructure:"backup" yaml:"backup"`
	Cache   CacheConfig  `mapstructure:"cache" yaml:"cache"`
	Skills  SkillsConfig `mapstructure:"skills" yaml:"skills"`
}

// TasksConfig locates the durable task store.
type TasksConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// BackupConfig controls backup rotation.
type BackupConfig struct {
	Dir        string `mapstructure:"dir" yaml:"dir"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
}

// CacheConfig controls the skills manifest cache.
type CacheConfig struct {
	File       string `mapstructure:"file" yaml:"file"`
	TTLSeconds int    `mapstructure:"ttl_seconds" yaml:"ttl_seconds"`
}

// SkillsConfig lists the directories scanned for skills.
type SkillsConfig struct {
	Dirs []string `mapstructure:"dirs" yaml:"dirs"`
}

// DefaultMaxBackups is the backup retention limit applied when the
// configuration does not set one.
const DefaultMaxBackups = 10

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support: TASKDECK_BACKUP_MAX_BACKUPS etc.
	viper.SetEnvPrefix("TASKDECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("tasks.file", paths.TasksFile())
	viper.SetDefault("backup.dir", paths.BackupDir())
	viper.SetDefault("backup.max_backups", DefaultMaxBackups)
	viper.SetDefault("cache.file", paths.ManifestCachePath())
	viper.SetDefault("cache.ttl_seconds", 0)
	viper.SetDefault("skills.dirs", paths.SkillDirs())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found
// (when path is empty). Loaded configurations are validated.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise defaults apply.
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// LoadDefault loads configuration from the default locations, falling back
// to defaults when no file exists.
func LoadDefault() (*Config, error) {
	return Load("")
}

// Default returns a configuration with built-in defaults, ignoring any
// config file or environment.
func Default() *Config {
	return &Config{
		Version: 1,
		Tasks:   TasksConfig{File: paths.TasksFile()},
		Backup: BackupConfig{
			Dir:        paths.BackupDir(),
			MaxBackups: DefaultMaxBackups,
		},
		Cache:  CacheConfig{File: paths.ManifestCachePath()},
		Skills: SkillsConfig{Dirs: paths.SkillDirs()},
	}
}
