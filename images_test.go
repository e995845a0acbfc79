package folio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func pngSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestResizeImage(t *testing.T) {
	tests := []struct {
		name        string
		w, h        int
		ext         string
		wantChanged bool
		wantW       int
		wantH       int
	}{
		{"wide png", 2000, 1000, ".png", true, 1000, 500},
		{"upper case ext", 2000, 400, ".PNG", true, 1000, 200},
		{"narrow png", 800, 600, ".png", false, 0, 0},
		{"unsupported ext", 2000, 1000, ".webp", false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, changed, err := resizeImage(bytes.NewReader(testPNG(t, tt.w, tt.h)), tt.ext, 1000)
			if err != nil {
				t.Fatalf("resizeImage failed: %v", err)
			}
			if changed != tt.wantChanged {
				t.Fatalf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if !changed {
				return
			}
			if w, h := pngSize(t, data); w != tt.wantW || h != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResizeImageRejectsGarbage(t *testing.T) {
	if _, _, err := resizeImage(bytes.NewReader([]byte("not an image")), ".png", 1000); err == nil {
		t.Errorf("expected decode error")
	}
}
