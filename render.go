package folio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
)

// writeComponent renders a templ component into rel under the output dir.
func (b *builder) writeComponent(ctx context.Context, rel string, cmp templ.Component) error {
	return b.writeFile(rel, func(w io.Writer) error {
		return cmp.Render(ctx, w)
	})
}

// writeFile creates rel under the output dir and fills it with fn.
func (b *builder) writeFile(rel string, fn func(w io.Writer) error) error {
	path := filepath.Join(b.site.Config.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("folio: create dir for %s: %w", rel, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("folio: create %s: %w", rel, err)
	}
	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		f.Close()
		return fmt.Errorf("folio: write %s: %w", rel, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("folio: write %s: %w", rel, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("folio: close %s: %w", rel, err)
	}
	b.files.Add(1)
	return nil
}
