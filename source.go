package folio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// PostExt is the file extension of post files.
const PostExt = ".md"

// Source is a read-only set of raw post files keyed by identifier.
type Source interface {
	// Identifiers lists every post identifier, in no particular order.
	Identifiers() ([]string, error)
	// Read returns the raw file for slug, or an error matching ErrNotFound.
	Read(slug string) ([]byte, error)
}

// FSSource reads posts from the top level of an fs.FS. Each "<slug>.md" file
// is one post; directories and dotfiles are ignored.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource returns a Source over fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// DirSource returns a Source over the directory dir.
func DirSource(dir string) *FSSource {
	return NewFSSource(os.DirFS(dir))
}

// Identifiers implements Source.
func (s *FSSource) Identifiers() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("folio: read content dir: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, PostExt) {
			continue
		}
		if slug := strings.TrimSuffix(name, PostExt); slug != "" {
			ids = append(ids, slug)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Read implements Source.
func (s *FSSource) Read(slug string) ([]byte, error) {
	name := slug + PostExt
	if slug == "" || strings.ContainsAny(slug, `/\`) || strings.HasPrefix(slug, ".") || !fs.ValidPath(name) {
		return nil, fmt.Errorf("folio: post %q: %w", slug, ErrNotFound)
	}
	b, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("folio: post %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("folio: read post %q: %w", slug, err)
	}
	return b, nil
}
