package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"winzigc/pkg/formatter"
	"winzigc/pkg/log"
	"winzigc/pkg/parser"
	"winzigc/pkg/utils"
)

// Config file names looked up in the working directory, in order
var configNames = []string{".winzigc.yaml", ".winzigc.yml", ".winzigc.toml"}

// Config represents the structure of a .winzigc.yaml or .winzigc.toml file
type Config struct {
	Format     string   `yaml:"format" toml:"format"`
	Indent     string   `yaml:"indent" toml:"indent"`
	MaxDepth   int      `yaml:"max_depth" toml:"max_depth"`
	Extensions []string `yaml:"extensions" toml:"extensions"`
	Exclude    []string `yaml:"exclude" toml:"exclude"`
	Jobs       int      `yaml:"jobs" toml:"jobs"`
	LogLevel   string   `yaml:"log_level" toml:"log_level"`
	OutputDir  string   `yaml:"output_dir,omitempty" toml:"output_dir,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Format:     formatter.FormatText,
		Indent:     formatter.DefaultIndent,
		MaxDepth:   parser.DefaultMaxDepth,
		Extensions: append([]string(nil), utils.DefaultExtensions...),
		Exclude:    append([]string(nil), utils.DefaultExclude...),
		Jobs:       0,
		LogLevel:   "info",
	}
}

// LoadConfig reads path on top of the defaults. An empty path searches the
// working directory; finding nothing is not an error. Environment variables
// override file values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile(".")
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// findConfigFile returns the first config file present in dir
func findConfigFile(dir string) string {
	for _, name := range configNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func (c *Config) readFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(content), c); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return nil
	}

	if err := yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnvOrDefault("WINZIGC_LOG_LEVEL", c.LogLevel)
	c.Format = getEnvOrDefault("WINZIGC_FORMAT", c.Format)

	jobs, err := getEnvIntOrDefault("WINZIGC_JOBS", c.Jobs)
	if err != nil {
		return err
	}
	c.Jobs = jobs
	return nil
}

// Validate rejects values no command can use
func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case formatter.FormatText, formatter.FormatJSON, formatter.FormatYAML, "yml":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// newParser builds a parser from the config
func (c *Config) newParser(logger *slog.Logger) *parser.Parser {
	return parser.New(parser.Options{
		Logger:   logger,
		MaxDepth: c.MaxDepth,
	})
}

// newFormatter builds a formatter from the config
func (c *Config) newFormatter() *formatter.Formatter {
	return formatter.NewWithIndent(c.Indent)
}

// writeConfig encodes cfg as TOML or YAML depending on the file extension
func writeConfig(path string, cfg *Config) error {
	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		data = buf.Bytes()
	} else {
		encoded, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		data = encoded
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// getEnvOrDefault gets an environment variable value or returns a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault is getEnvOrDefault for integer settings
func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
	return n, nil
}
