package folio

import "embed"

// EmbeddedAssets contains static assets shipped with folio: the base
// stylesheet written to folio.css on every build.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
