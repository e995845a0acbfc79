package folio

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/folio/frontmatter"
)

// Author is the frontmatter "author" object.
type Author struct {
	Name    string `yaml:"name" json:"name"`
	Picture string `yaml:"picture" json:"picture"`
}

// OGImage is the frontmatter "ogImage" object.
type OGImage struct {
	URL string `yaml:"url" json:"url"`
}

// Post is one parsed post file. Known frontmatter keys are decoded into typed
// fields; Meta keeps every declared key, including ones folio does not know.
type Post struct {
	Slug       string
	Title      string
	Date       string    // as written in the frontmatter
	Published  time.Time // Date parsed as a calendar date
	Author     Author
	Category   string
	CoverImage string
	Excerpt    string
	OGImage    OGImage
	Content    string // markdown body, frontmatter removed
	Meta       frontmatter.Metadata
}

// postMeta is the typed view decoded from a post's frontmatter.
type postMeta struct {
	Title      string  `yaml:"title"`
	Date       string  `yaml:"date"`
	Author     Author  `yaml:"author"`
	Category   string  `yaml:"category"`
	CoverImage string  `yaml:"coverImage"`
	Excerpt    string  `yaml:"excerpt"`
	OGImage    OGImage `yaml:"ogImage"`
}

// Keys returns the field names present on p: slug, content and every
// declared frontmatter key, sorted.
func (p Post) Keys() []string {
	keys := []string{string(FieldSlug), string(FieldContent)}
	for k := range p.Meta {
		if k == string(FieldSlug) || k == string(FieldContent) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DisplayTitle returns the title, or one derived from the slug when the
// frontmatter declares none ("my-first-post" -> "My First Post").
func (p Post) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return TitleFromSlug(p.Slug)
}

// TitleFromSlug turns a hyphenated or underscored slug into title case.
func TitleFromSlug(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(s)
}

// StaticPath is one route the site generator must build.
type StaticPath struct {
	Slug string `json:"slug"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image
}
