// Package views is the default set of page components for a folio site.
package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// Default returns the default page components.
func Default() folio.ViewFuncs {
	return folio.ViewFuncs{
		Home:     Home,
		Blog:     Blog,
		Post:     Post,
		NotFound: NotFound,
	}
}

// Home shows the latest posts.
func Home(latest []folio.ProjectedPost, cfg folio.SiteConfig) templ.Component {
	meta := folio.PageMeta{
		Title:       cfg.Name + ": Home",
		Description: cfg.Description,
		URL:         folio.BuildURL(cfg.URL),
		OGType:      "website",
	}
	body := component(func(h *htmlWriter) {
		if len(latest) == 0 {
			h.raw(`<p class="empty">No posts yet.</p>`)
			return
		}
		h.child(PostPreviewGrid(latest, "Latest Posts"))
	})
	return Layout(cfg, meta, folio.WebsiteJsonLD(cfg), body)
}

// Blog shows the hero post followed by the remaining posts.
func Blog(hero *folio.ProjectedPost, more []folio.ProjectedPost, cfg folio.SiteConfig) templ.Component {
	meta := folio.PageMeta{
		Title:       cfg.Name + ": Blog",
		Description: cfg.Description,
		URL:         folio.BuildURL(cfg.URL, "blog"),
		OGType:      "website",
	}
	body := component(func(h *htmlWriter) {
		if hero == nil {
			h.raw(`<p class="empty">No posts yet.</p>`)
			return
		}
		h.child(HeroPost(*hero))
		if len(more) > 0 {
			h.child(PostPreviewGrid(more, "More Articles"))
		}
	})
	return Layout(cfg, meta, "", body)
}

// Post shows a single post with its rendered body.
func Post(post folio.ProjectedPost, content templ.Component, cfg folio.SiteConfig) templ.Component {
	title := displayTitle(post)
	meta := folio.PageMeta{
		Title:       cfg.Name + " | " + title,
		Description: post.Excerpt(),
		URL:         folio.BuildURL(cfg.URL, "posts", post.Slug()),
		OGType:      "article",
		Image:       folio.AbsoluteURL(cfg, post.OGImage().URL),
	}
	body := component(func(h *htmlWriter) {
		h.raw(`<article class="post"><h1 class="post-title">`)
		h.text(title)
		h.raw("</h1>")
		h.child(Avatar(post.Author()))
		h.child(CoverImage(title, post.CoverImage(), ""))
		h.child(PostMeta(post))
		h.raw(`<div class="post-body">`)
		h.child(content)
		h.raw("</div></article>")
	})
	return Layout(cfg, meta, folio.BlogPostingJsonLD(post, cfg), body)
}

// NotFound is the 404 page.
func NotFound(cfg folio.SiteConfig) templ.Component {
	meta := folio.PageMeta{
		Title:  cfg.Name + ": Not Found",
		OGType: "website",
	}
	body := component(func(h *htmlWriter) {
		h.raw(`<section class="not-found"><h1>404</h1><p>This page could not be found.</p><p><a href="/blog/">Browse all posts</a></p></section>`)
	})
	return Layout(cfg, meta, "", body)
}
