package folio

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eringen/folio/frontmatter"
)

// DefaultConcurrency bounds how many post files ListAll reads at once.
const DefaultConcurrency = 8

// dateLayouts are the accepted forms of the frontmatter date, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Repository answers post queries against a Source. It keeps no state
// between calls: every query re-reads and re-parses the files it needs.
type Repository struct {
	src         Source
	concurrency int
}

// NewRepository returns a Repository over src that reads at most
// concurrency files at once (DefaultConcurrency if <= 0).
func NewRepository(src Source, concurrency int) *Repository {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Repository{src: src, concurrency: concurrency}
}

// ListIdentifiers returns every post identifier in the source. Callers that
// need an order should use OrderByDateDescending on ListAll.
func (r *Repository) ListIdentifiers() ([]string, error) {
	return r.src.Identifiers()
}

// Get reads and parses the post with the given identifier. A missing file
// returns an error matching ErrNotFound; a bad file returns *ParseError.
func (r *Repository) Get(slug string) (Post, error) {
	raw, err := r.src.Read(slug)
	if err != nil {
		return Post{}, err
	}
	return ParsePost(slug, raw)
}

// ListAll reads and parses every post. Any failure aborts the whole listing;
// there is no partial result. An empty source yields an empty slice.
func (r *Repository) ListAll() ([]Post, error) {
	ids, err := r.src.Identifiers()
	if err != nil {
		return nil, err
	}
	posts := make([]Post, len(ids))
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			p, err := r.Get(id)
			if err != nil {
				return err
			}
			posts[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return posts, nil
}

// List returns every post ordered newest first and projected to fields.
func (r *Repository) List(fields ...Field) ([]ProjectedPost, error) {
	posts, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	ordered := OrderByDateDescending(posts)
	out := make([]ProjectedPost, len(ordered))
	for i, p := range ordered {
		out[i] = Project(p, fields...)
	}
	return out, nil
}

// GetProjected returns one post projected to fields.
func (r *Repository) GetProjected(slug string, fields ...Field) (ProjectedPost, error) {
	p, err := r.Get(slug)
	if err != nil {
		return ProjectedPost{}, err
	}
	return Project(p, fields...), nil
}

// EnumeratePaths returns one StaticPath per post identifier.
func (r *Repository) EnumeratePaths() ([]StaticPath, error) {
	ids, err := r.ListIdentifiers()
	if err != nil {
		return nil, err
	}
	paths := make([]StaticPath, len(ids))
	for i, id := range ids {
		paths[i] = StaticPath{Slug: id}
	}
	return paths, nil
}

// ParsePost builds a Post from one raw file.
func ParsePost(slug string, raw []byte) (Post, error) {
	meta, body, err := frontmatter.Parse(raw)
	if err != nil {
		return Post{}, &ParseError{Slug: slug, Err: err}
	}
	var known postMeta
	if err := meta.Decode(&known); err != nil {
		return Post{}, &ParseError{Slug: slug, Err: err}
	}
	if known.Date == "" {
		return Post{}, &ParseError{Slug: slug, Err: errMissingDate}
	}
	published, err := ParseDate(known.Date)
	if err != nil {
		return Post{}, &ParseError{Slug: slug, Err: err}
	}
	return Post{
		Slug:       slug,
		Title:      known.Title,
		Date:       known.Date,
		Published:  published,
		Author:     known.Author,
		Category:   known.Category,
		CoverImage: known.CoverImage,
		Excerpt:    known.Excerpt,
		OGImage:    known.OGImage,
		Content:    body,
		Meta:       meta,
	}, nil
}

// ParseDate reads a frontmatter date: YYYY-MM-DD or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errBadDate, s)
}
