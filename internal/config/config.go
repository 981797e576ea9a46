package config

import (
	"camelcards/internal/util"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const defaultConfigFile = "config.yaml"

// Config provides configuration for camelcards
type Config struct {
	loaded bool

	// InputPath is the hand list. If relative and InputDir is set, it is resolved against InputDir
	InputPath string `yaml:"inputPath" envconfig:"input_path"`
	InputDir  string `yaml:"inputDir" envconfig:"input_dir"`
	Mode      string `yaml:"mode" envconfig:"mode"`
	Log       struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing else is provided
func DefaultConfig() Config {
	cfg := Config{
		InputPath: "input.txt",
		Mode:      "standard",
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config.yaml is fine, but a missing file named by CAMEL_CONFIG_FILE is an error
func Load() error {
	configFile, explicit := os.LookupEnv("CAMEL_CONFIG_FILE")
	if !explicit || configFile == "" {
		configFile = defaultConfigFile
		explicit = false
	}

	cfg := DefaultConfig()
	if err := decodeFile(configFile, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if err := envconfig.Process("camel", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && err != io.EOF {
		return err
	}

	return nil
}

// ResolvedInputPath returns InputPath joined to InputDir when needed
func (c Config) ResolvedInputPath() string {
	if c.InputDir == "" || filepath.IsAbs(c.InputPath) {
		return c.InputPath
	}

	return filepath.Join(c.InputDir, c.InputPath)
}

// LogFormat returns the log format, LOG_FORMAT takes precedence
func (c Config) LogFormat() string {
	return util.Getenv("LOG_FORMAT", c.Log.Format)
}
