package folio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchRebuildsOnChange(t *testing.T) {
	root := t.TempDir()
	cfg := SiteConfig{
		Name:       "Test",
		ContentDir: filepath.Join(root, "_posts"),
		StaticDir:  filepath.Join(root, "public"),
		OutputDir:  filepath.Join(root, "out"),
	}
	if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(cfg.ContentDir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.md", "---\ntitle: A\ndate: 2024-01-01\n---\nA.")

	s := New(cfg, WithViews(stubViews()), WithLogger(quietLogger()))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	builds := make(chan BuildReport, 16)
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, 20*time.Millisecond, func(r BuildReport, err error) {
			if err != nil {
				return
			}
			select {
			case builds <- r:
			default:
			}
		})
	}()

	// The watcher may not be registered yet, so keep touching the file
	// until a rebuild reports the new post.
	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for seen := false; !seen; {
		select {
		case r := <-builds:
			if r.Posts == 2 {
				seen = true
			}
		case <-tick.C:
			write("b.md", "---\ntitle: B\ndate: 2024-02-01\n---\nB.")
		case <-deadline:
			t.Fatal("timed out waiting for rebuild")
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "posts", "b", "index.html")); err != nil {
		t.Errorf("rebuilt site is missing the new post: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
