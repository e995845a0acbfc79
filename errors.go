package folio

import "errors"

// ErrNotFound is returned when no post file exists for an identifier.
var ErrNotFound = errors.New("folio: post not found")

// ParseError reports a post file whose frontmatter is missing or malformed,
// or whose date cannot be read as a calendar date.
type ParseError struct {
	Slug string
	Err  error
}

func (e *ParseError) Error() string {
	return "folio: parse post " + e.Slug + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errMissingDate = errors.New("missing date")
	errBadDate     = errors.New("date is not a calendar date")
)
