// Package config loads CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/haeun-lee/go-beautify/internal/fileutil"
	"github.com/haeun-lee/go-beautify/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxNameLength     = 100  // style, theme, and model names
	MaxTitleLength    = 200  // document and TOC titles
	MaxAuthorLength   = 100  // author name
	MaxKeywordsLength = 500  // comma-separated keywords
	MaxPathLength     = 2048 // directories and output paths
)

// Config holds all configuration for the CLI.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Style     StyleConfig     `yaml:"style"`
	Document  DocumentConfig  `yaml:"document"`
	TOC       TOCConfig       `yaml:"toc"`
	LLM       LLMConfig       `yaml:"llm"`
	Templates TemplatesConfig `yaml:"templates"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
	HTML       bool   `yaml:"html"`       // Write styled HTML instead of PDF
}

// StyleConfig defines styling options.
type StyleConfig struct {
	Template string `yaml:"template"` // Style template name (empty = business_report)
	Theme    string `yaml:"theme"`    // Color theme name (empty = blue)
}

// DocumentConfig defines document metadata defaults.
type DocumentConfig struct {
	Title    string `yaml:"title"`    // Empty = first level-1 heading
	Author   string `yaml:"author"`   // Empty = built-in default
	Subject  string `yaml:"subject"`  // Empty = derived from title
	Keywords string `yaml:"keywords"` // Comma-separated
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Disabled bool   `yaml:"disabled"`
	Title    string `yaml:"title"`    // Empty = "Table of Contents"
	MinDepth int    `yaml:"minDepth"` // 1-6, default 2
	MaxDepth int    `yaml:"maxDepth"` // 1-6, default 3
}

// LLMConfig defines the text structuring model.
type LLMConfig struct {
	Provider string `yaml:"provider"` // "gemini" or "anthropic"
	Model    string `yaml:"model"`    // Provider model ID (empty = provider default)
	Style    string `yaml:"style"`    // Writing style: business, academic, casual
}

// TemplatesConfig defines custom style template loading.
type TemplatesConfig struct {
	Dir string `yaml:"dir"` // Directory of <name>.css files (empty = embedded only)
}

// Validate checks field lengths and value ranges. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.template", c.Style.Template, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.theme", c.Style.Theme, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.author", c.Document.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.subject", c.Document.Subject, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.keywords", c.Document.Keywords, MaxKeywordsLength); err != nil {
		return err
	}
	if err := validateFieldLength("toc.title", c.TOC.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("llm.model", c.LLM.Model, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("templates.dir", c.Templates.Dir, MaxPathLength); err != nil {
		return err
	}

	if c.TOC.MinDepth != 0 && (c.TOC.MinDepth < 1 || c.TOC.MinDepth > 6) {
		return fmt.Errorf("toc.minDepth: must be between 1 and 6, got %d", c.TOC.MinDepth)
	}
	if c.TOC.MaxDepth != 0 && (c.TOC.MaxDepth < 1 || c.TOC.MaxDepth > 6) {
		return fmt.Errorf("toc.maxDepth: must be between 1 and 6, got %d", c.TOC.MaxDepth)
	}

	if c.LLM.Provider != "" {
		switch strings.ToLower(c.LLM.Provider) {
		case "gemini", "anthropic":
			// valid
		default:
			return fmt.Errorf("llm.provider: invalid value %q (must be gemini or anthropic)", c.LLM.Provider)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration relying on built-in
// defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml. Tries locations in
// order: current directory, ~/.config/go-beautify/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-beautify", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
