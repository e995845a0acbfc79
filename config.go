package folio

import (
	"context"
	"log/slog"

	"github.com/a-h/templ"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Blog")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	ContentDir string `mapstructure:"contentDir"` // Post files (default "_posts")
	StaticDir  string `mapstructure:"staticDir"`  // Copied verbatim into the output (default "public")
	OutputDir  string `mapstructure:"outputDir"`  // Build output (default "out")

	Addr string `mapstructure:"addr"` // Preview listen address (default ":3000")

	ProcessImages bool   `mapstructure:"processImages"` // Downscale local cover images
	CodeStyle     string `mapstructure:"codeStyle"`     // chroma style for code CSS (default "github")
	Concurrency   int    `mapstructure:"concurrency"`   // Parallel file reads and renders (default 8)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "_posts"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.CodeStyle == "" {
		c.CodeStyle = "github"
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
}

// Renderer converts a markdown body to HTML.
type Renderer interface {
	Render(ctx context.Context, body string) (string, error)
}

// ViewFuncs holds the templ components the builder calls for each page.
// The views package provides a default set.
type ViewFuncs struct {
	Home     func(latest []ProjectedPost, cfg SiteConfig) templ.Component
	Blog     func(hero *ProjectedPost, more []ProjectedPost, cfg SiteConfig) templ.Component
	Post     func(post ProjectedPost, body templ.Component, cfg SiteConfig) templ.Component
	NotFound func(cfg SiteConfig) templ.Component
}

// Option configures additional Site behavior.
type Option func(*Site)

// WithViews sets the page components.
func WithViews(v ViewFuncs) Option {
	return func(s *Site) {
		s.Views = v
	}
}

// WithSource reads posts from src instead of Config.ContentDir.
func WithSource(src Source) Option {
	return func(s *Site) {
		s.source = src
	}
}

// WithRenderer replaces the default markdown renderer.
func WithRenderer(r Renderer) Option {
	return func(s *Site) {
		s.Renderer = r
	}
}

// WithLogger sets the build logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(s *Site) {
		s.Logger = l
	}
}
