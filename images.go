package folio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	maxCoverWidth = 1200
	jpegQuality   = 80
)

// resizeImage decodes an image from src and, if it is wider than maxWidth,
// scales it down and re-encodes it in the format given by ext. It reports
// whether the image was changed.
func resizeImage(src io.Reader, ext string, maxWidth int) ([]byte, bool, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth {
		return nil, false, nil
	}
	newH := h * maxWidth / w
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	case ".png":
		err = png.Encode(&buf, dst)
	default:
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), true, nil
}

// processCovers downscales the local cover images of posts in the output
// directory. Remote covers and missing files are skipped.
func (b *builder) processCovers(posts []ProjectedPost) error {
	cfg := b.site.Config
	seen := make(map[string]bool)
	for _, p := range posts {
		cover := p.CoverImage()
		if !strings.HasPrefix(cover, "/") {
			continue
		}
		rel := strings.TrimPrefix(path.Clean(cover), "/")
		if seen[rel] || !fs.ValidPath(rel) {
			continue
		}
		seen[rel] = true

		f, err := os.Open(filepath.Join(cfg.StaticDir, filepath.FromSlash(rel)))
		if errors.Is(err, fs.ErrNotExist) {
			b.site.Logger.Warn("cover image not found", "post", p.Slug(), "image", cover)
			continue
		}
		if err != nil {
			return fmt.Errorf("folio: open cover %s: %w", cover, err)
		}
		data, changed, err := resizeImage(f, path.Ext(rel), maxCoverWidth)
		f.Close()
		if err != nil {
			return fmt.Errorf("folio: cover %s: %w", cover, err)
		}
		if !changed {
			continue
		}
		if err := os.WriteFile(filepath.Join(cfg.OutputDir, filepath.FromSlash(rel)), data, 0o644); err != nil {
			return fmt.Errorf("folio: write cover %s: %w", cover, err)
		}
		b.site.Logger.Debug("resized cover", "image", cover, "bytes", len(data))
	}
	return nil
}
