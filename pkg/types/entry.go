// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared records and stage configurations for the
// sas-tools CLI.
package types

// Entry is one extractable section of a transcript: the relative file path
// named in the section header and the verbatim fenced-block content below it.
type Entry struct {
	// Path is the relative destination path, trimmed of surrounding whitespace.
	Path string `json:"path" yaml:"path"`

	// Content is the block body exactly as captured, internal newlines included.
	Content string `json:"content,omitempty" yaml:"-"`
}
