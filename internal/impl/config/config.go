package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	// ConfigFileName is looked up in the run directory, next to the tasks file.
	ConfigFileName = "tasktrack.toml"

	DefaultTaskFile  = "tasks.json"
	DefaultExportDir = "."

	envTaskFile  = "TASKTRACK_FILE"
	envExportDir = "TASKTRACK_EXPORT_DIR"
)

// Config carries the paths the tool works with. Each field is resolved with
// the same precedence: built-in default, then tasktrack.toml, then the
// environment (a .env file supplements the environment without overriding it).
type Config struct {
	TaskFile  string `toml:"task_file"`
	ExportDir string `toml:"export_dir"`
}

// Load assembles the configuration for a run rooted at dir. Relative paths
// are resolved against dir.
func Load(dir string, logger *zap.Logger) (*Config, error) {
	cfg := &Config{
		TaskFile:  DefaultTaskFile,
		ExportDir: DefaultExportDir,
	}

	tomlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(tomlPath); err == nil {
		if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		logger.Debug("no .env file found, using system environment variables")
	}

	if v := os.Getenv(envTaskFile); v != "" {
		cfg.TaskFile = v
	}
	if v := os.Getenv(envExportDir); v != "" {
		cfg.ExportDir = v
	}

	if cfg.TaskFile == "" {
		cfg.TaskFile = DefaultTaskFile
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = DefaultExportDir
	}

	if !filepath.IsAbs(cfg.TaskFile) {
		cfg.TaskFile = filepath.Join(dir, cfg.TaskFile)
	}
	if !filepath.IsAbs(cfg.ExportDir) {
		cfg.ExportDir = filepath.Join(dir, cfg.ExportDir)
	}

	return cfg, nil
}
