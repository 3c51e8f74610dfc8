// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxivid recognizes arXiv links and identifier-shaped titles.
package arxivid

import "regexp"

// Format classifies an arXiv identifier.
type Format int

const (
	FormatUnknown Format = iota
	// FormatNew is the post-2007 scheme: "2101.12345", "1501.00001v2".
	FormatNew
	// FormatOld is the category scheme: "cond-mat/0123456", "hep-th/9901001v1".
	FormatOld
)

func (f Format) String() string {
	switch f {
	case FormatNew:
		return "new"
	case FormatOld:
		return "old"
	default:
		return "unknown"
	}
}

// Domain is the substring a bookmark URL must contain to be considered at all.
const Domain = "arxiv.org"

var (
	newURLPattern = regexp.MustCompile(`arxiv\.org/(?:abs|pdf)/([0-9]+\.[0-9]+(?:v[0-9]+)?)`)
	oldURLPattern = regexp.MustCompile(`arxiv\.org/(?:abs|pdf)/([a-z\-]+/[0-9]+(?:v[0-9]+)?)`)

	newTitlePattern = regexp.MustCompile(`^\d+\.\d+`)
	oldTitlePattern = regexp.MustCompile(`^[a-z\-]+/\d+`)
)

// Extract returns the identifier named by an /abs/ or /pdf/ arXiv URL,
// version suffix included. The new scheme is tried first.
func Extract(rawURL string) (string, bool) {
	id, f := Classify(rawURL)
	return id, f != FormatUnknown
}

// Classify is Extract plus the scheme that matched.
func Classify(rawURL string) (string, Format) {
	if m := newURLPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1], FormatNew
	}
	if m := oldURLPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1], FormatOld
	}
	return "", FormatUnknown
}

// LooksLikeID reports whether a bookmark title is still a bare identifier,
// i.e. it was never renamed by hand.
func LooksLikeID(title string) bool {
	return newTitlePattern.MatchString(title) || oldTitlePattern.MatchString(title)
}
