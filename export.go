package folio

import (
	"encoding/json"
	"io"

	"github.com/eringen/folio/markdown"
)

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeFeeds writes feed.xml, sitemap.xml, posts.json and paths.json.
func (b *builder) writeFeeds(listing []ProjectedPost, paths []StaticPath) error {
	cfg := b.site.Config
	if err := b.writeFile("feed.xml", func(w io.Writer) error {
		return WriteRSS(w, cfg, listing)
	}); err != nil {
		return err
	}
	if err := b.writeFile("sitemap.xml", func(w io.Writer) error {
		return WriteSitemap(w, cfg, listing)
	}); err != nil {
		return err
	}
	if err := b.writeFile("posts.json", func(w io.Writer) error {
		return WriteJSON(w, listing)
	}); err != nil {
		return err
	}
	return b.writeFile("paths.json", func(w io.Writer) error {
		return WriteJSON(w, paths)
	})
}

// writeStylesheet writes the embedded base stylesheet followed by the
// code highlighting classes.
func (b *builder) writeStylesheet() error {
	base, err := EmbeddedAssets.ReadFile("embedded/folio.css")
	if err != nil {
		return err
	}
	code, err := markdown.Stylesheet(b.site.Config.CodeStyle)
	if err != nil {
		return err
	}
	return b.writeFile("folio.css", func(w io.Writer) error {
		if _, err := w.Write(base); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n"+code)
		return err
	})
}
