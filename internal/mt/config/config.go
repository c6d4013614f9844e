package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the mt CLI configuration. One canonical key per field; external
// spellings are mapped through NormalizeKey rather than coerced dynamically.
type Config struct {
	// Corpora are extra corpus files loaded on top of the embedded set.
	Corpora []string `yaml:"corpora,omitempty"`
	// Platform overrides the runtime platform identifier for --platform
	// filtering.
	Platform string `yaml:"platform,omitempty"`
	NoColor  bool   `yaml:"no_color,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

const (
	// Environment variable names for configuration overrides
	EnvCorpus   = "MT_CORPUS"
	EnvPlatform = "MT_PLATFORM"

	DefaultLogLevel = "warn"
)

// keyAliases maps accepted external spellings to canonical config keys.
var keyAliases = map[string]string{
	"corpus":   "corpora",
	"loglevel": "log_level",
	"nocolor":  "no_color",
}

// NormalizeKey maps an external key spelling (case, dash and space variants,
// plus known aliases) to its canonical form. Unknown keys normalize to
// their lowercased underscore form and are rejected by Get/Set.
func NormalizeKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.NewReplacer("-", "_", " ", "_").Replace(k)
	if canonical, ok := keyAliases[k]; ok {
		return canonical
	}
	return k
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mt"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (*Config, error) {
	cfg := &Config{
		LogLevel: DefaultLogLevel,
	}

	path, err := Path()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return applyEnv(cfg), nil
}

// Environment variables take precedence over config file
func applyEnv(cfg *Config) *Config {
	if envCorpus := os.Getenv(EnvCorpus); envCorpus != "" {
		cfg.Corpora = strings.Split(envCorpus, string(os.PathListSeparator))
	}
	if envPlatform := os.Getenv(EnvPlatform); envPlatform != "" {
		cfg.Platform = envPlatform
	}
	return cfg
}

func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Get returns the value of a canonical or aliased key, formatted for
// display. The boolean is false for unknown keys.
func (c *Config) Get(key string) (string, bool) {
	switch NormalizeKey(key) {
	case "corpora":
		return strings.Join(c.Corpora, string(os.PathListSeparator)), true
	case "platform":
		return c.Platform, true
	case "no_color":
		if c.NoColor {
			return "true", true
		}
		return "false", true
	case "log_level":
		return c.LogLevel, true
	}
	return "", false
}

// Set assigns a canonical or aliased key. The boolean is false for unknown
// keys.
func (c *Config) Set(key, value string) bool {
	switch NormalizeKey(key) {
	case "corpora":
		if value == "" {
			c.Corpora = nil
		} else {
			c.Corpora = strings.Split(value, string(os.PathListSeparator))
		}
	case "platform":
		c.Platform = value
	case "no_color":
		c.NoColor = value == "true" || value == "1"
	case "log_level":
		c.LogLevel = value
	default:
		return false
	}
	return true
}
