package folio

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

// Preview serves an already built output directory for local viewing. It
// only serves files; content is never read per request.
type Preview struct {
	Echo *echo.Echo

	root fs.FS
}

// NewPreview returns a Preview over cfg.OutputDir.
func NewPreview(cfg SiteConfig) *Preview {
	cfg.setDefaults()
	p := &Preview{
		Echo: echo.New(),
		root: os.DirFS(cfg.OutputDir),
	}
	p.Echo.HideBanner = true
	p.setupMiddleware()
	p.Echo.StaticFS("/", p.root)
	return p
}

func (p *Preview) notFoundPage() ([]byte, error) {
	return fs.ReadFile(p.root, "404.html")
}

// Start listens on addr until ctx is canceled, then shuts down.
func (p *Preview) Start(ctx context.Context, addr string) error {
	errc := make(chan error, 1)
	go func() {
		errc <- p.Echo.Start(addr)
	}()
	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		if err := p.Echo.Shutdown(context.Background()); err != nil {
			return err
		}
		return nil
	}
}
