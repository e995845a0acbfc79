package folio

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"testing/fstest"
)

func listing(t *testing.T) []ProjectedPost {
	t.Helper()
	posts, err := newTestRepo(threePosts()).List(listingFields...)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	return posts
}

func TestWriteRSS(t *testing.T) {
	cfg := SiteConfig{Name: "Test", URL: "https://example.com", Description: "Notes"}
	var buf bytes.Buffer
	if err := WriteRSS(&buf, cfg, listing(t)); err != nil {
		t.Fatalf("WriteRSS failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), xml.Header) {
		t.Errorf("missing XML header")
	}

	var feed rssXML
	if err := xml.Unmarshal(buf.Bytes(), &feed); err != nil {
		t.Fatalf("feed is not valid XML: %v", err)
	}
	if feed.Version != "2.0" || feed.Channel.Title != "Test" || feed.Channel.Link != "https://example.com" {
		t.Errorf("unexpected channel: %+v", feed.Channel)
	}
	if len(feed.Channel.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(feed.Channel.Items))
	}
	first := feed.Channel.Items[0]
	if first.Title != "B" || first.Link != "https://example.com/posts/b/" || first.GUID != first.Link {
		t.Errorf("unexpected first item: %+v", first)
	}
	if first.PubDate != "Tue, 01 Jun 2021 00:00:00 +0000" {
		t.Errorf("PubDate = %q", first.PubDate)
	}
	if feed.Channel.Items[1].Category != "Go" || first.Category != "" {
		t.Errorf("categories = %q, %q", first.Category, feed.Channel.Items[1].Category)
	}
	if strings.Count(buf.String(), "<category>") != 1 {
		t.Errorf("undeclared categories should be omitted")
	}
}

func TestWriteSitemap(t *testing.T) {
	cfg := SiteConfig{URL: "https://example.com/"}
	var buf bytes.Buffer
	if err := WriteSitemap(&buf, cfg, listing(t)); err != nil {
		t.Fatalf("WriteSitemap failed: %v", err)
	}

	var set sitemapURLSet
	if err := xml.Unmarshal(buf.Bytes(), &set); err != nil {
		t.Fatalf("sitemap is not valid XML: %v", err)
	}
	want := []sitemapURL{
		{Loc: "https://example.com/"},
		{Loc: "https://example.com/blog/"},
		{Loc: "https://example.com/posts/b/", LastMod: "2021-06-01"},
		{Loc: "https://example.com/posts/a/", LastMod: "2020-01-01"},
		{Loc: "https://example.com/posts/c/", LastMod: "2019-03-15"},
	}
	if len(set.URLs) != len(want) {
		t.Fatalf("got %d urls, want %d", len(set.URLs), len(want))
	}
	for i := range want {
		if set.URLs[i] != want[i] {
			t.Errorf("url[%d] = %+v, want %+v", i, set.URLs[i], want[i])
		}
	}
}

func TestWriteSitemapEmpty(t *testing.T) {
	posts, err := newTestRepo(fstest.MapFS{}).List(listingFields...)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteSitemap(&buf, SiteConfig{URL: "https://example.com"}, posts); err != nil {
		t.Fatalf("WriteSitemap failed: %v", err)
	}
	if n := strings.Count(buf.String(), "<url>"); n != 2 {
		t.Errorf("got %d urls, want 2", n)
	}
}
