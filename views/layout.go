package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// Layout wraps body in the document shell: head metadata, the intro header
// and the footer.
func Layout(cfg folio.SiteConfig, meta folio.PageMeta, jsonLD string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		h.raw("<title>")
		h.text(meta.Title)
		h.raw("</title>")
		if meta.Description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", meta.Description)
			h.raw("/>")
		}
		if meta.URL != "" {
			h.raw(`<link rel="canonical"`)
			h.attr("href", meta.URL)
			h.raw("/>")
			h.raw(`<meta property="og:url"`)
			h.attr("content", meta.URL)
			h.raw("/>")
		}
		h.raw(`<meta property="og:title"`)
		h.attr("content", meta.Title)
		h.raw("/>")
		h.raw(`<meta property="og:type"`)
		h.attr("content", meta.OGType)
		h.raw("/>")
		if meta.Image != "" {
			h.raw(`<meta property="og:image"`)
			h.attr("content", meta.Image)
			h.raw("/>")
		}
		h.raw(`<link rel="stylesheet" href="/folio.css"/>`)
		h.raw(`<link rel="alternate" type="application/rss+xml"`)
		h.attr("title", cfg.Name)
		h.raw(` href="/feed.xml"/>`)
		if jsonLD != "" {
			// JSON-LD is produced by json.Marshal, which escapes <, > and &.
			h.raw(`<script type="application/ld+json">` + jsonLD + `</script>`)
		}
		h.raw(`</head><body><div class="container">`)
		h.child(Intro(cfg))
		h.raw("<main>")
		h.child(body)
		h.raw("</main>")
		h.raw(`<footer>`)
		h.text(cfg.Name)
		if cfg.Author != "" {
			h.text(" · " + cfg.Author)
		}
		h.raw(`</footer></div></body></html>`)
	})
}

// Intro is the site header with navigation.
func Intro(cfg folio.SiteConfig) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<header class="intro"><a href="/"><strong>`)
		h.text(cfg.Name)
		h.raw(`</strong></a><nav><a href="/">Home</a><a href="/blog/">Blog</a></nav>`)
		if cfg.Description != "" {
			h.raw(`<p class="post-meta">`)
			h.text(cfg.Description)
			h.raw("</p>")
		}
		h.raw("</header>")
	})
}
