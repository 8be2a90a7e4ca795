// Package appconfig loads the YAML run configuration the CLI commands
// share: where to find a project file, which climate station/cache to
// use, and the logging level.
package appconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StationConfig selects how a run resolves its climate station: Path (a
// pre-resolved station JSON) is used if set, otherwise EPWPath, otherwise
// the S3-cached station named by Bucket and Key.
type StationConfig struct {
	Path    string `yaml:"path"`
	EPWPath string `yaml:"epw_path"`
	Bucket  string `yaml:"bucket"`
	Key     string `yaml:"key"`
	Region  string `yaml:"region"`
}

// RunConfig is the top-level shape of a run's YAML configuration file.
type RunConfig struct {
	ProjectPath string `yaml:"project_path"`

	Station StationConfig `yaml:"station"`

	// AutomationClassOverride, if non-empty, overrides the project file's
	// declared BACS automation class for this run.
	AutomationClassOverride string `yaml:"automation_class_override"`

	LogLevel string `yaml:"log_level"`
}

// Load reads and parses a RunConfig from path.
func Load(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("reading config file %q: %w", path, err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	if cfg.ProjectPath == "" {
		return RunConfig{}, fmt.Errorf("config file %q: project_path is required", path)
	}
	if cfg.Station.Path == "" && cfg.Station.EPWPath == "" && cfg.Station.Key == "" {
		return RunConfig{}, fmt.Errorf("config file %q: one of station.path, station.epw_path or station.key is required", path)
	}
	return cfg, nil
}
