package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Source  SourceConfig      `yaml:"source"`
	LaTeX   LaTeXConfig       `yaml:"latex"`
	Wiki    WikiConfig        `yaml:"wiki"`
	Website WebsiteConfig     `yaml:"website"`
	Index   IndexConfig       `yaml:"index"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if err := c.Wiki.Validate(); err != nil {
		return err
	}
	if err := c.Website.Validate(); err != nil {
		return err
	}
	return c.Index.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// SourceConfig locates the glossary source file.
//
// Normalize rewrites the source in canonical order and layout on every
// build. Strict aborts a build when an entry body has a reference syntax
// error instead of skipping that entry.
type SourceConfig struct {
	Path      string `yaml:"path"`
	Normalize bool   `yaml:"normalize"`
	Strict    bool   `yaml:"strict"`
}

// Validate validates the source configuration.
func (c *SourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// LaTeXConfig controls LaTeX output. An empty Output prints to stdout.
type LaTeXConfig struct {
	Enabled bool   `yaml:"enabled"`
	Output  string `yaml:"output"`
}

// WikiConfig controls wiki Markdown output.
type WikiConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Validate validates the wiki configuration.
func (c *WikiConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.When(c.Enabled, validation.Required)),
	)
}

// WebsiteConfig controls HTML output. An empty Template selects the
// built-in page template.
type WebsiteConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Dir      string `yaml:"dir"`
	Template string `yaml:"template"`
}

// Validate validates the website configuration.
func (c *WebsiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.When(c.Enabled, validation.Required)),
	)
}

// IndexConfig controls the SQLite search index.
type IndexConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Validate validates the index configuration.
func (c *IndexConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.When(c.Enabled, validation.Required)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatText,
		},
		Source: SourceConfig{
			Path: "glossary.txt",
		},
		Wiki: WikiConfig{
			Dir: "wiki",
		},
		Website: WebsiteConfig{
			Dir: "site",
		},
		Index: IndexConfig{
			Path: "glossary.db",
		},
	}
}
