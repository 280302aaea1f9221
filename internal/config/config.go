package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/dshills/commitguard/internal/logger"
	"github.com/dshills/commitguard/internal/rules"
)

// Config represents the commitguard configuration.
type Config struct {
	LogLevel string `json:"logLevel"`
	Format   string `json:"format"`
	NoColor  bool   `json:"noColor"`
	Rules    Rules  `json:"rules"`
}

// Rules lists sensitivity rules in addition to the built-in tables.
type Rules struct {
	SensitiveFiles    []string `json:"sensitiveFiles,omitempty" yaml:"sensitive_files"`
	SensitivePatterns []string `json:"sensitivePatterns,omitempty" yaml:"sensitive_patterns"`
	SkipDirectories   []string `json:"skipDirectories,omitempty" yaml:"skip_directories"`
}

// Formats lists the supported scan report formats.
var Formats = []string{"text", "json", "sarif"}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Format:   "text",
		Rules: Rules{
			SensitiveFiles:    append([]string(nil), rules.DefaultSensitiveFiles...),
			SensitivePatterns: append([]string(nil), rules.DefaultSensitivePatterns...),
			SkipDirectories:   append([]string(nil), rules.DefaultSkipDirectories...),
		},
	}
}

// RuleSet compiles the configured rules.
func (c Config) RuleSet() (*rules.Set, error) {
	return rules.Compile(c.Rules.SensitiveFiles, c.Rules.SensitivePatterns, c.Rules.SkipDirectories)
}

// Validate checks enumerated fields and that every pattern compiles.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if !validFormat(c.Format) {
		return fmt.Errorf("unsupported format %q (valid: %s)", c.Format, strings.Join(Formats, ", "))
	}
	if _, err := c.RuleSet(); err != nil {
		return err
	}
	return nil
}

func validFormat(f string) bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}

// ConfigDir returns the platform-appropriate config directory for commitguard.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "commitguard"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "commitguard"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "commitguard"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "commitguard"), nil
	default:
		return filepath.Join(home, ".config", "commitguard"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging:
// defaults <- user file <- project file <- env <- overrides.
// projectRoot may be empty when no repository is available. The overrides
// map comes from CLI flags (only non-zero values should be set).
func Load(projectRoot string, overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)

	if projectRoot != "" {
		projRules, err := LoadProject(projectRoot)
		if err != nil {
			return Config{}, err
		}
		mergeRules(&cfg.Rules, projRules)
	}

	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	dst.NoColor = src.NoColor || dst.NoColor
	mergeRules(&dst.Rules, src.Rules)
}

func mergeRules(dst *Rules, src Rules) {
	dst.SensitiveFiles = appendUnique(dst.SensitiveFiles, src.SensitiveFiles)
	dst.SensitivePatterns = appendUnique(dst.SensitivePatterns, src.SensitivePatterns)
	dst.SkipDirectories = appendUnique(dst.SkipDirectories, src.SkipDirectories)
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, v := range dst {
		seen[v] = true
	}
	for _, v := range src {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		dst = append(dst, v)
	}
	return dst
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("COMMITGUARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("COMMITGUARD_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("COMMITGUARD_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["noColor"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
// sensitiveFiles and skipDirectories take a comma-separated value; a
// sensitivePatterns value is one regular expression. Both append.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "logLevel":
		if _, err := logger.ParseLevel(value); err != nil {
			return err
		}
		cfg.LogLevel = value
	case "format":
		if !validFormat(value) {
			return fmt.Errorf("format must be one of %s", strings.Join(Formats, ", "))
		}
		cfg.Format = value
	case "noColor":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("noColor must be a boolean: %w", err)
		}
		cfg.NoColor = b
	case "sensitiveFiles":
		cfg.Rules.SensitiveFiles = appendUnique(cfg.Rules.SensitiveFiles, splitComma(value))
	case "sensitivePatterns":
		if _, err := rules.Compile(nil, []string{value}, nil); err != nil {
			return err
		}
		cfg.Rules.SensitivePatterns = appendUnique(cfg.Rules.SensitivePatterns, []string{value})
	case "skipDirectories":
		cfg.Rules.SkipDirectories = appendUnique(cfg.Rules.SkipDirectories, splitComma(value))
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func splitComma(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
