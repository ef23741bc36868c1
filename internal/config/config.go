// Package config loads rikimaru settings from a YAML or TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Namespace is the settings namespace; environment overrides use its upper-cased form.
const Namespace = "rikimaru"

// Feedback selects how failures without a dedicated panel reach the user.
type Feedback string

const (
	// FeedbackSilent only logs resolution and parse failures.
	FeedbackSilent Feedback = "silent"
	// FeedbackNotify also shows a generic error message.
	FeedbackNotify Feedback = "notify"
)

type (
	// Config is the full rikimaru configuration.
	Config struct {
		User     User     `yaml:"user" toml:"user"`
		Search   Search   `yaml:"search" toml:"search"`
		API      API      `yaml:"api" toml:"api"`
		HTTP     HTTP     `yaml:"http" toml:"http"`
		Log      Log      `yaml:"log" toml:"log"`
		Feedback Feedback `yaml:"feedback" toml:"feedback"`
	}

	// User holds account settings under user.github.
	User struct {
		GitHub GitHub `yaml:"github" toml:"github"`
	}

	// GitHub holds the account identifier and access token.
	GitHub struct {
		Name          string `yaml:"name" toml:"name"`
		PersonalToken string `yaml:"personal-token" toml:"personal-token"`
	}

	// Search scopes every query. Exclude and Extensions drop results by path.
	Search struct {
		Repo       string   `yaml:"repo" toml:"repo"`
		Root       string   `yaml:"root" toml:"root"`
		Exclude    []string `yaml:"exclude" toml:"exclude"`
		Extensions []string `yaml:"extensions" toml:"extensions"`
	}

	// API points at the GitHub API.
	API struct {
		BaseURL   string `yaml:"base_url" toml:"base_url"`
		UserAgent string `yaml:"user_agent" toml:"user_agent"`
	}

	// HTTP tunes the transport. An empty Timeout means none.
	HTTP struct {
		Timeout string `yaml:"timeout" toml:"timeout"`
	}

	// Log configures the operational log.
	Log struct {
		Level string `yaml:"level" toml:"level"`
		File  string `yaml:"file" toml:"file"`
	}

	// Credentials are the Basic auth pair sent on API requests.
	Credentials struct {
		Username string
		Token    string
	}
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: Search{
			Repo: "OpenGenus/cosmos",
			Root: "cosmos",
		},
		API: API{
			BaseURL:   "https://api.github.com",
			UserAgent: "request",
		},
		Log: Log{
			Level: "info",
		},
		Feedback: FeedbackSilent,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/rikimaru/config.yaml, preferring
// config.toml when only that file exists.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configDir, Namespace)
	yamlPath := filepath.Join(dir, "config.yaml")
	tomlPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(yamlPath); err != nil {
		if _, err := os.Stat(tomlPath); err == nil {
			return tomlPath
		}
	}
	return yamlPath
}

// Load reads the file at path over the defaults, then applies environment
// overrides. An empty path means DefaultPath, and a missing default file is
// not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.User.GitHub.Name = getEnv("RIKIMARU_GITHUB_NAME", cfg.User.GitHub.Name)
	cfg.User.GitHub.PersonalToken = getEnv("RIKIMARU_GITHUB_TOKEN", cfg.User.GitHub.PersonalToken)
	cfg.Search.Repo = getEnv("RIKIMARU_SEARCH_REPO", cfg.Search.Repo)
	cfg.API.BaseURL = getEnv("RIKIMARU_API_BASE_URL", cfg.API.BaseURL)
	cfg.HTTP.Timeout = getEnv("RIKIMARU_HTTP_TIMEOUT", cfg.HTTP.Timeout)
	cfg.Log.Level = getEnv("RIKIMARU_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("RIKIMARU_LOG_FILE", cfg.Log.File)
	cfg.Feedback = Feedback(getEnv("RIKIMARU_FEEDBACK", string(cfg.Feedback)))
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Feedback {
	case "":
		c.Feedback = FeedbackSilent
	case FeedbackSilent, FeedbackNotify:
	default:
		return fmt.Errorf("invalid feedback mode %q: want %q or %q", c.Feedback, FeedbackSilent, FeedbackNotify)
	}

	if strings.Count(c.Search.Repo, "/") != 1 {
		return fmt.Errorf("invalid search repo %q: want owner/name", c.Search.Repo)
	}

	// Labels carry root as their first path segment and resolution strips it.
	if c.Search.Root == "" || strings.Contains(c.Search.Root, "/") {
		return fmt.Errorf("invalid search root %q: want a single path segment", c.Search.Root)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	if _, err := c.Timeout(); err != nil {
		return err
	}
	return nil
}

// Credentials returns the account identifier and token.
func (c *Config) Credentials() Credentials {
	return Credentials{
		Username: c.User.GitHub.Name,
		Token:    c.User.GitHub.PersonalToken,
	}
}

// Timeout parses HTTP.Timeout. Zero means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.HTTP.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.HTTP.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid http timeout %q: %w", c.HTTP.Timeout, err)
	}
	return d, nil
}

// LogPath returns the configured log file or
// $XDG_STATE_HOME/rikimaru/rikimaru.log.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Namespace + ".log"
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, Namespace, Namespace+".log")
}
