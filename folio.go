// Package folio is the static content pipeline of a personal blog and
// portfolio site. It reads markdown posts with YAML frontmatter from a
// content directory, orders and projects their metadata, renders bodies to
// HTML, and writes a complete static site.
//
// Users provide their own templ components via the ViewFuncs struct (the
// views package has a default set), and folio handles reading, ordering,
// rendering and writing.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/folio/markdown"
)

// HomeLatest is how many posts the home page shows.
const HomeLatest = 2

var (
	// listingFields are the fields listing pages, feeds and posts.json use.
	listingFields = []Field{FieldTitle, FieldDate, FieldSlug, FieldAuthor, FieldCoverImage, FieldExcerpt, FieldCategory}
	// postFields are the fields a single post page uses.
	postFields = []Field{FieldTitle, FieldDate, FieldSlug, FieldAuthor, FieldContent, FieldOGImage, FieldCoverImage, FieldExcerpt, FieldCategory}
)

// Site wires together the repository, renderer and views, and builds the
// static output.
type Site struct {
	Config   SiteConfig
	Repo     *Repository
	Renderer Renderer
	Views    ViewFuncs
	Logger   *slog.Logger

	source Source
}

// BuildReport summarizes a finished build.
type BuildReport struct {
	Posts    int
	Files    int
	Duration time.Duration
}

// New creates a Site with the given configuration.
func New(cfg SiteConfig, opts ...Option) *Site {
	cfg.setDefaults()

	s := &Site{
		Config:   cfg,
		Renderer: markdown.New(),
		Logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = DirSource(s.Config.ContentDir)
	}
	s.Repo = NewRepository(s.source, s.Config.Concurrency)
	return s
}

// Build re-reads every post and writes the whole site into
// Config.OutputDir, replacing what was there. Any parse, render or write
// error fails the build.
func (s *Site) Build(ctx context.Context) (BuildReport, error) {
	start := time.Now()
	if err := s.Views.validate(); err != nil {
		return BuildReport{}, err
	}

	listing, err := s.Repo.List(listingFields...)
	if err != nil {
		return BuildReport{}, fmt.Errorf("folio: list posts: %w", err)
	}
	paths, err := s.Repo.EnumeratePaths()
	if err != nil {
		return BuildReport{}, fmt.Errorf("folio: enumerate paths: %w", err)
	}

	if err := s.prepareOutput(); err != nil {
		return BuildReport{}, err
	}
	var files atomic.Int64
	b := &builder{site: s, files: &files}

	if err := b.copyStatic(); err != nil {
		return BuildReport{}, err
	}
	if err := b.writeStylesheet(); err != nil {
		return BuildReport{}, err
	}

	hero, more := SplitHero(listing)
	pages := []struct {
		rel string
		cmp templ.Component
	}{
		{"index.html", s.Views.Home(Latest(listing, HomeLatest), s.Config)},
		{filepath.Join("blog", "index.html"), s.Views.Blog(hero, more, s.Config)},
		{"404.html", s.Views.NotFound(s.Config)},
	}
	for _, p := range pages {
		if err := b.writeComponent(ctx, p.rel, p.cmp); err != nil {
			return BuildReport{}, err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Config.Concurrency)
	for _, p := range paths {
		g.Go(func() error {
			return b.buildPost(gctx, p.Slug)
		})
	}
	if err := g.Wait(); err != nil {
		return BuildReport{}, err
	}

	if err := b.writeFeeds(listing, paths); err != nil {
		return BuildReport{}, err
	}
	if s.Config.ProcessImages {
		if err := b.processCovers(listing); err != nil {
			return BuildReport{}, err
		}
	}

	report := BuildReport{
		Posts:    len(paths),
		Files:    int(files.Load()),
		Duration: time.Since(start),
	}
	s.Logger.Info("build complete",
		"posts", report.Posts,
		"files", report.Files,
		"output", s.Config.OutputDir,
		"duration", report.Duration.Round(time.Millisecond))
	return report, nil
}

func (v ViewFuncs) validate() error {
	switch {
	case v.Home == nil:
		return errors.New("folio: Views.Home is required")
	case v.Blog == nil:
		return errors.New("folio: Views.Blog is required")
	case v.Post == nil:
		return errors.New("folio: Views.Post is required")
	case v.NotFound == nil:
		return errors.New("folio: Views.NotFound is required")
	}
	return nil
}

// prepareOutput empties the output directory. It refuses a directory that
// contains or lies inside a build input or the working directory.
func (s *Site) prepareOutput() error {
	out, err := filepath.Abs(s.Config.OutputDir)
	if err != nil {
		return fmt.Errorf("folio: resolve output dir: %w", err)
	}
	for _, in := range []string{".", s.Config.ContentDir, s.Config.StaticDir} {
		abs, err := filepath.Abs(in)
		if err != nil {
			return fmt.Errorf("folio: resolve %q: %w", in, err)
		}
		// The output may live below the working directory, never above it.
		if within(out, abs) || (in != "." && within(abs, out)) {
			return fmt.Errorf("folio: refusing to use %q as output directory: it overlaps %q", s.Config.OutputDir, in)
		}
	}
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("folio: clean output dir: %w", err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("folio: create output dir: %w", err)
	}
	return nil
}

// within reports whether path is dir or lies below it. Both must be
// absolute and clean.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// builder carries per-build state.
type builder struct {
	site  *Site
	files *atomic.Int64
}

func (b *builder) buildPost(ctx context.Context, slug string) error {
	s := b.site
	post, err := s.Repo.GetProjected(slug, postFields...)
	if err != nil {
		return fmt.Errorf("folio: build post %q: %w", slug, err)
	}
	body, err := s.Renderer.Render(ctx, post.Content())
	if err != nil {
		return fmt.Errorf("folio: build post %q: %w", slug, err)
	}
	s.Logger.Debug("rendered post", "slug", slug, "bytes", len(body))
	return b.writeComponent(ctx, filepath.Join("posts", slug, "index.html"), s.Views.Post(post, templ.Raw(body), s.Config))
}

func (b *builder) copyStatic() error {
	dir := b.site.Config.StaticDir
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		b.site.Logger.Debug("static dir not found, skipping copy", "dir", dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("folio: stat static dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("folio: static dir %q is not a directory", dir)
	}
	if err := os.CopyFS(b.site.Config.OutputDir, os.DirFS(dir)); err != nil {
		return fmt.Errorf("folio: copy static assets: %w", err)
	}
	return nil
}
