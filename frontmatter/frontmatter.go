// Package frontmatter splits post files into a YAML metadata block and a
// markdown body.
//
// A post file must start with a block delimited by "---" lines:
//
//	---
//	title: Hello
//	date: 2024-01-15
//	---
//	Body text.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	fm "github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// ErrMissing is returned when a file does not start with a metadata block.
var ErrMissing = errors.New("frontmatter: missing metadata block")

// Metadata holds every key declared in a metadata block. Nested objects
// decode to map[string]any; date-like scalars stay strings.
type Metadata map[string]any

var yamlFormat = fm.NewFormat("---", "---", unmarshalYAML)

// unmarshalYAML decodes a metadata block with timestamp scalars kept as the
// strings they were written as.
func unmarshalYAML(data []byte, v any) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Kind == 0 {
		return nil
	}
	retagTimestamps(&doc)
	return doc.Decode(v)
}

func retagTimestamps(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" {
		n.Tag = "!!str"
	}
	for _, c := range n.Content {
		retagTimestamps(c)
	}
}

// Parse splits raw into its metadata and body. The body is trimmed of
// surrounding whitespace; its internal formatting is left untouched.
func Parse(raw []byte) (Metadata, string, error) {
	var meta map[string]any
	rest, err := fm.MustParse(bytes.NewReader(raw), &meta, yamlFormat)
	if err != nil {
		if errors.Is(err, fm.ErrNotFound) {
			return nil, "", ErrMissing
		}
		return nil, "", fmt.Errorf("frontmatter: malformed metadata block: %w", err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return Metadata(meta), strings.TrimSpace(string(rest)), nil
}

// Decode copies the metadata into v, which must be a pointer to a struct
// with yaml tags. Keys without a matching field are ignored.
func (m Metadata) Decode(v any) error {
	b, err := yaml.Marshal(map[string]any(m))
	if err != nil {
		return fmt.Errorf("frontmatter: encode metadata: %w", err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("frontmatter: decode metadata: %w", err)
	}
	return nil
}

// Has reports whether key was declared in the block.
func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Marshal writes meta and body back into the file format Parse reads.
func Marshal(meta Metadata, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	if len(meta) > 0 {
		b, err := yaml.Marshal(map[string]any(meta))
		if err != nil {
			return nil, fmt.Errorf("frontmatter: encode metadata: %w", err)
		}
		buf.Write(b)
	}
	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}
