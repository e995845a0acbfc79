// Package markdown renders post bodies to HTML, either as a string or as a
// templ component.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultStyle is the chroma style used for code highlighting CSS.
const DefaultStyle = "github"

// RenderError reports a body that could not be converted to well-formed HTML.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "markdown: render: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer converts markdown to HTML. A Renderer is safe for concurrent use;
// goldmark keeps per-call state inside Convert.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with GFM, heading ids and chroma highlighting for
// fenced code blocks. Raw HTML in the source is omitted from the output.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithASTTransformers(util.Prioritized(linkTransformer{}, 100)),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithXHTML(),
				renderer.WithNodeRenderers(util.Prioritized(newCodeRenderer(), 200)),
			),
		),
	}
}

var defaultRenderer = sync.OnceValue(New)

// Render converts body using the shared default Renderer.
func Render(ctx context.Context, body string) (string, error) {
	return defaultRenderer().Render(ctx, body)
}

// Render converts body to HTML. The same input always yields byte-identical
// output.
func (r *Renderer) Render(ctx context.Context, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", &RenderError{Err: err}
	}
	out := buf.String()
	if err := checkWellFormed(out); err != nil {
		return "", &RenderError{Err: err}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return out, nil
}

// Component returns a templ.Component that renders body as HTML with the
// default Renderer.
func Component(body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := Render(ctx, body)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

// Stylesheet returns the CSS classes for highlighted code in the named chroma
// style. Unknown names fall back to chroma's default style.
func Stylesheet(style string) (string, error) {
	var buf bytes.Buffer
	if err := newFormatter().WriteCSS(&buf, styles.Get(style)); err != nil {
		return "", fmt.Errorf("markdown: write css: %w", err)
	}
	return buf.String(), nil
}

// linkTransformer unwraps links and drops images whose destination is not
// SafeURL, and opens external links in a new tab.
type linkTransformer struct{}

func (linkTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	var unsafeLinks, unsafeImages []ast.Node
	imageCount := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			dest := string(node.Destination)
			if SafeURL(dest) == "" {
				unsafeLinks = append(unsafeLinks, node)
				return ast.WalkContinue, nil
			}
			if isExternal(dest) {
				node.SetAttributeString("target", []byte("_blank"))
				node.SetAttributeString("rel", []byte("noopener noreferrer"))
			}
		case *ast.Image:
			if SafeURL(string(node.Destination)) == "" {
				unsafeImages = append(unsafeImages, node)
				return ast.WalkSkipChildren, nil
			}
			imageCount++
			if imageCount == 1 {
				node.SetAttributeString("loading", []byte("eager"))
			} else {
				node.SetAttributeString("loading", []byte("lazy"))
			}
			node.SetAttributeString("decoding", []byte("async"))
		}
		return ast.WalkContinue, nil
	})
	for _, n := range unsafeLinks {
		parent := n.Parent()
		for c := n.FirstChild(); c != nil; {
			next := c.NextSibling()
			parent.InsertBefore(parent, n, c)
			c = next
		}
		parent.RemoveChild(parent, n)
	}
	for _, n := range unsafeImages {
		n.Parent().RemoveChild(n.Parent(), n)
	}
}

func isExternal(dest string) bool {
	u, err := url.Parse(dest)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// SafeURL validates and sanitizes a URL for use in HTML attributes. It
// returns "" for anything other than relative paths, fragments and
// http, https, mailto or tel URLs.
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") || strings.HasPrefix(val, "./") || strings.HasPrefix(val, "../") {
		return val
	}
	parsed, err := url.Parse(val)
	if err != nil {
		return ""
	}
	if parsed.Scheme == "" {
		// Bare relative references like "other-post/" or "img.png".
		if strings.Contains(val, ":") {
			return ""
		}
		return val
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return val
	default:
		return ""
	}
}

var errUnbalanced = errors.New("unbalanced html")
