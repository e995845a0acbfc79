package frontmatter

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseSplitsMetadataAndBody(t *testing.T) {
	raw := "---\ntitle: Hello World\ndate: 2024-01-15\nauthor:\n  name: Steve\n  picture: /assets/steve.jpg\n---\n\n# Heading\n\nBody  with  spacing.\n\n"
	meta, body, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if meta["title"] != "Hello World" {
		t.Errorf("title = %v, want %q", meta["title"], "Hello World")
	}
	if meta["date"] != "2024-01-15" {
		t.Errorf("date = %#v, want string %q", meta["date"], "2024-01-15")
	}
	author, ok := meta["author"].(map[string]any)
	if !ok {
		t.Fatalf("author = %#v, want nested map", meta["author"])
	}
	if author["name"] != "Steve" || author["picture"] != "/assets/steve.jpg" {
		t.Errorf("author = %v", author)
	}
	want := "# Heading\n\nBody  with  spacing."
	if body != want {
		t.Errorf("body = %q, want %q", body, want)
	}
}

func TestParseKeepsUnknownKeys(t *testing.T) {
	raw := "---\ntitle: T\ndate: 2024-01-01\nseries: go-basics\nweight: 3\n---\nbody"
	meta, _, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if meta["series"] != "go-basics" {
		t.Errorf("series = %v, want go-basics", meta["series"])
	}
	if meta["weight"] != 3 {
		t.Errorf("weight = %#v, want 3", meta["weight"])
	}
}

func TestParseMissingBlock(t *testing.T) {
	tests := []string{
		"",
		"# Just markdown\n\nNo metadata here.",
		"title: not delimited\n",
	}
	for _, input := range tests {
		_, _, err := Parse([]byte(input))
		if !errors.Is(err, ErrMissing) {
			t.Errorf("Parse(%q) error = %v, want ErrMissing", input, err)
		}
	}
}

func TestParseKeepsTimestampsAsWritten(t *testing.T) {
	raw := "---\ndate: 2024-01-15\nupdated: 2024-02-01T08:00:00Z\nseries:\n  started: 2023-12-31\n---\nbody"
	meta, _, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if meta["date"] != "2024-01-15" {
		t.Errorf("date = %#v, want string %q", meta["date"], "2024-01-15")
	}
	if meta["updated"] != "2024-02-01T08:00:00Z" {
		t.Errorf("updated = %#v", meta["updated"])
	}
	series, ok := meta["series"].(map[string]any)
	if !ok {
		t.Fatalf("series = %#v, want map[string]any", meta["series"])
	}
	if series["started"] != "2023-12-31" {
		t.Errorf("series.started = %#v", series["started"])
	}

	out, err := Marshal(meta, "body")
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	again, _, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(Marshal) failed: %v", err)
	}
	if !reflect.DeepEqual(again, meta) {
		t.Errorf("round trip = %#v, want %#v", again, meta)
	}
}

func TestParseCRLF(t *testing.T) {
	raw := "---\r\ntitle: Windows\r\ndate: 2024-01-15\r\n---\r\n\r\nBody line.\r\n"
	meta, body, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if meta["title"] != "Windows" || meta["date"] != "2024-01-15" {
		t.Errorf("meta = %#v", meta)
	}
	if body != "Body line." {
		t.Errorf("body = %q, want %q", body, "Body line.")
	}
}

func TestParseUnclosedBlock(t *testing.T) {
	raw := "---\ntitle: Never closed\ndate: 2024-01-15\n\nBody text."
	if _, _, err := Parse([]byte(raw)); err == nil {
		t.Errorf("expected error for unclosed metadata block")
	}
}

func TestParseMalformedYAML(t *testing.T) {
	raw := "---\ntitle: [unclosed\n---\nbody"
	_, _, err := Parse([]byte(raw))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if errors.Is(err, ErrMissing) {
		t.Errorf("malformed block should not report ErrMissing: %v", err)
	}
}

func TestParseEmptyBody(t *testing.T) {
	meta, body, err := Parse([]byte("---\ntitle: Only metadata\n---\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
	if meta["title"] != "Only metadata" {
		t.Errorf("title = %v", meta["title"])
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	tests := []Metadata{
		{"title": "Hello", "date": "2023-06-01"},
		{"title": "Nested", "date": "2024-01-01", "author": map[string]any{"name": "A", "picture": "/a.png"}, "ogImage": map[string]any{"url": "/og.png"}},
		{"title": "Extra: colon", "date": "2022-12-31", "draft": true, "weight": 7, "tags": []any{"go", "web"}},
	}
	for _, meta := range tests {
		raw, err := Marshal(meta, "Some *body*.")
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", meta, err)
		}
		got, body, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(Marshal(%v)) failed: %v\n%s", meta, err, raw)
		}
		if !reflect.DeepEqual(got, meta) {
			t.Errorf("round trip = %#v, want %#v", got, meta)
		}
		if body != "Some *body*." {
			t.Errorf("body = %q", body)
		}
	}
}

func TestDecode(t *testing.T) {
	meta := Metadata{
		"title":  "Typed",
		"date":   "2024-03-02",
		"author": map[string]any{"name": "Steve"},
		"other":  "ignored",
	}
	var got struct {
		Title  string `yaml:"title"`
		Date   string `yaml:"date"`
		Author struct {
			Name string `yaml:"name"`
		} `yaml:"author"`
	}
	if err := meta.Decode(&got); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Title != "Typed" || got.Date != "2024-03-02" || got.Author.Name != "Steve" {
		t.Errorf("Decode = %+v", got)
	}
}

func TestHas(t *testing.T) {
	meta := Metadata{"category": nil, "title": "x"}
	if !meta.Has("category") {
		t.Error("declared key with null value should be present")
	}
	if meta.Has("excerpt") {
		t.Error("undeclared key should not be present")
	}
}
