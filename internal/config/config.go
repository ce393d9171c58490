package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"showcase.dev/internal/catalog"
	"showcase.dev/internal/view"
)

// EnvPrefix marks environment variables that override the config file
const EnvPrefix = "SHOWCASE_"

// Config holds all application configuration
type Config struct {
	ServerAddr     string        `koanf:"server_addr"`
	CatalogPath    string        `koanf:"catalog_path"`
	PublicDir      string        `koanf:"public_dir"`
	PlaceholderURL string        `koanf:"placeholder_url"`
	CORSOrigins    []string      `koanf:"cors_origins"`
	ShutdownGrace  time.Duration `koanf:"shutdown_grace"`
	Section        Section       `koanf:"section"`
	Animation      Animation     `koanf:"animation"`
}

// Section holds the heading copy of the projects section
type Section struct {
	Title    string `koanf:"title"`
	Subtitle string `koanf:"subtitle"`
}

// Animation holds entrance animation settings
type Animation struct {
	Threshold float64       `koanf:"threshold"`
	Duration  time.Duration `koanf:"duration"`
	Stagger   time.Duration `koanf:"stagger"`
	Lift      float64       `koanf:"lift"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	m := view.DefaultMotion()
	return &Config{
		ServerAddr:     ":8080",
		PublicDir:      "public",
		PlaceholderURL: view.PlaceholderURL,
		CORSOrigins:    []string{"*"},
		ShutdownGrace:  10 * time.Second,
		Section: Section{
			Title:    "Featured Projects",
			Subtitle: "Building innovative solutions with AI and modern web technologies",
		},
		Animation: Animation{
			Threshold: m.Threshold,
			Duration:  m.Duration,
			Stagger:   m.Stagger,
			Lift:      m.Lift,
		},
	}
}

// Load reads the optional YAML file at path and overlays SHOWCASE_* variables.
// SHOWCASE_SECTION__TITLE sets section.title.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return errors.New("server_addr is required")
	}
	if c.Animation.Threshold < 0 || c.Animation.Threshold > 1 {
		return fmt.Errorf("animation.threshold %v must be within [0, 1]", c.Animation.Threshold)
	}
	if c.Animation.Duration < 0 || c.Animation.Stagger < 0 {
		return errors.New("animation durations must be non-negative")
	}
	if c.ShutdownGrace < 0 {
		return errors.New("shutdown_grace must be non-negative")
	}
	return nil
}

// Motion returns the animation parameters for the renderer
func (c *Config) Motion() view.Motion {
	m := view.DefaultMotion()
	m.Threshold = c.Animation.Threshold
	m.Duration = c.Animation.Duration
	m.Stagger = c.Animation.Stagger
	m.Lift = c.Animation.Lift
	return m
}

// Catalog loads the configured catalog file, or the built-in one
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(c.CatalogPath)
}

// PublicFS returns the directory screenshots are served from, or nil
func (c *Config) PublicFS() fs.FS {
	if c.PublicDir == "" {
		return nil
	}
	return os.DirFS(c.PublicDir)
}
