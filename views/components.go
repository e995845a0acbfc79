package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// Avatar shows an author's picture and name. It renders nothing for an
// author without a name.
func Avatar(a folio.Author) templ.Component {
	return component(func(h *htmlWriter) {
		if a.Name == "" {
			return
		}
		h.raw(`<div class="avatar">`)
		if a.Picture != "" {
			h.raw("<img")
			h.attr("src", a.Picture)
			h.attr("alt", a.Name)
			h.raw(` loading="lazy"/>`)
		}
		h.raw("<span>")
		h.text(a.Name)
		h.raw("</span></div>")
	})
}

// CoverImage shows a post's cover, linked to the post when slug is set.
func CoverImage(title, src, slug string) templ.Component {
	return component(func(h *htmlWriter) {
		if src == "" {
			return
		}
		if slug != "" {
			h.raw("<a")
			h.attr("href", folio.PostPath(slug))
			h.attr("aria-label", title)
			h.raw(">")
		}
		h.raw(`<img class="cover-image"`)
		h.attr("src", src)
		h.attr("alt", "Cover image for "+title)
		h.raw("/>")
		if slug != "" {
			h.raw("</a>")
		}
	})
}

// PostMeta shows the publication date and, when declared, the category.
func PostMeta(p folio.ProjectedPost) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="post-meta">`)
		if p.Date() != "" {
			h.raw("<p>Posted: <time")
			h.attr("datetime", p.Date())
			h.raw(">")
			h.text(folio.FormatDate(p.Date()))
			h.raw("</time></p>")
		}
		if p.Category() != "" {
			h.raw("<p>Category: ")
			h.text(p.Category())
			h.raw("</p>")
		}
		h.raw("</div>")
	})
}

// PostPreview is one card in a post grid.
func PostPreview(p folio.ProjectedPost) templ.Component {
	return component(func(h *htmlWriter) {
		title := displayTitle(p)
		h.raw(`<div class="post-preview">`)
		h.child(CoverImage(title, p.CoverImage(), p.Slug()))
		h.raw("<h3><a")
		h.attr("href", folio.PostPath(p.Slug()))
		h.raw(">")
		h.text(title)
		h.raw("</a></h3>")
		h.child(PostMeta(p))
		if p.Excerpt() != "" {
			h.raw("<p>")
			h.text(p.Excerpt())
			h.raw("</p>")
		}
		h.child(Avatar(p.Author()))
		h.raw("</div>")
	})
}

// PostPreviewGrid lists posts under an optional heading.
func PostPreviewGrid(posts []folio.ProjectedPost, heading string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<section>")
		if heading != "" {
			h.raw("<h2>")
			h.text(heading)
			h.raw("</h2>")
		}
		h.raw(`<div class="post-grid">`)
		for _, p := range posts {
			h.child(PostPreview(p))
		}
		h.raw("</div></section>")
	})
}

// HeroPost is the large feature block for the most recent post.
func HeroPost(p folio.ProjectedPost) templ.Component {
	return component(func(h *htmlWriter) {
		title := displayTitle(p)
		h.raw(`<section class="hero">`)
		h.child(CoverImage(title, p.CoverImage(), p.Slug()))
		h.raw("<h2><a")
		h.attr("href", folio.PostPath(p.Slug()))
		h.raw(">")
		h.text(title)
		h.raw("</a></h2>")
		h.child(PostMeta(p))
		if p.Excerpt() != "" {
			h.raw("<p>")
			h.text(p.Excerpt())
			h.raw("</p>")
		}
		h.child(Avatar(p.Author()))
		h.raw("</section>")
	})
}

func displayTitle(p folio.ProjectedPost) string {
	if p.Title() != "" {
		return p.Title()
	}
	return folio.TitleFromSlug(p.Slug())
}
