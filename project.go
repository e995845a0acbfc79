package folio

import "encoding/json"

// Field names a post field that can be requested in a projection. The
// constants cover the known fields; any other value names a passthrough
// frontmatter key.
type Field string

const (
	FieldSlug       Field = "slug"
	FieldTitle      Field = "title"
	FieldDate       Field = "date"
	FieldAuthor     Field = "author"
	FieldCategory   Field = "category"
	FieldCoverImage Field = "coverImage"
	FieldExcerpt    Field = "excerpt"
	FieldOGImage    Field = "ogImage"
	FieldContent    Field = "content"
)

// ProjectedPost is a Post narrowed to a requested set of fields. Accessors
// return the zero value for fields that were not included.
type ProjectedPost struct {
	fields []Field
	values map[Field]any
}

// Project returns p restricted to fields. Requested fields that p does not
// have are left out without error. Slug and content are only included when
// asked for.
func Project(p Post, fields ...Field) ProjectedPost {
	out := ProjectedPost{values: make(map[Field]any, len(fields))}
	for _, f := range fields {
		if _, dup := out.values[f]; dup {
			continue
		}
		v, ok := p.value(f)
		if !ok {
			continue
		}
		out.fields = append(out.fields, f)
		out.values[f] = v
	}
	return out
}

// value returns the field f of p and whether p has it. Slug and content
// are always present; every other field is present iff its key was declared
// in the frontmatter.
func (p Post) value(f Field) (any, bool) {
	switch f {
	case FieldSlug:
		return p.Slug, true
	case FieldContent:
		return p.Content, true
	}
	if !p.Meta.Has(string(f)) {
		return nil, false
	}
	switch f {
	case FieldTitle:
		return p.Title, true
	case FieldDate:
		return p.Date, true
	case FieldAuthor:
		return p.Author, true
	case FieldCategory:
		return p.Category, true
	case FieldCoverImage:
		return p.CoverImage, true
	case FieldExcerpt:
		return p.Excerpt, true
	case FieldOGImage:
		return p.OGImage, true
	}
	return p.Meta[string(f)], true
}

// Fields returns the included fields in request order.
func (pp ProjectedPost) Fields() []Field {
	return append([]Field(nil), pp.fields...)
}

// Has reports whether f was included.
func (pp ProjectedPost) Has(f Field) bool {
	_, ok := pp.values[f]
	return ok
}

// Get returns the value of f and whether it was included.
func (pp ProjectedPost) Get(f Field) (any, bool) {
	v, ok := pp.values[f]
	return v, ok
}

func (pp ProjectedPost) str(f Field) string {
	s, _ := pp.values[f].(string)
	return s
}

// Slug returns the post identifier, or "" if it was not requested.
func (pp ProjectedPost) Slug() string { return pp.str(FieldSlug) }

// Title returns the declared title.
func (pp ProjectedPost) Title() string { return pp.str(FieldTitle) }

// Date returns the date as written in the frontmatter.
func (pp ProjectedPost) Date() string { return pp.str(FieldDate) }

// Category returns the declared category.
func (pp ProjectedPost) Category() string { return pp.str(FieldCategory) }

// CoverImage returns the cover image path or URL.
func (pp ProjectedPost) CoverImage() string { return pp.str(FieldCoverImage) }

// Excerpt returns the declared excerpt.
func (pp ProjectedPost) Excerpt() string { return pp.str(FieldExcerpt) }

// Content returns the markdown body.
func (pp ProjectedPost) Content() string { return pp.str(FieldContent) }

// Author returns the declared author.
func (pp ProjectedPost) Author() Author {
	a, _ := pp.values[FieldAuthor].(Author)
	return a
}

// OGImage returns the declared OpenGraph image.
func (pp ProjectedPost) OGImage() OGImage {
	o, _ := pp.values[FieldOGImage].(OGImage)
	return o
}

// MarshalJSON encodes only the included fields.
func (pp ProjectedPost) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(pp.values))
	for f, v := range pp.values {
		m[string(f)] = v
	}
	return json.Marshal(m)
}
