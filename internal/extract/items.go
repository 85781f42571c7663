// Package extract recovers numbered request/text pairs from free-form
// discovery documents. The numbering convention is not known in advance, so
// extraction runs a prioritized chain of patterns and takes the first one
// that yields anything.
package extract

import (
	"regexp"
	"strings"
)

// Pattern recognizes one numbering convention. Header matches the item
// label with the identifier in capture group 1; the body is the text between
// the end of one header match and the start of the next (or end of text).
type Pattern struct {
	Name   string
	Header *regexp.Regexp

	// MinBody is the minimum body length (after cleanup) for a match to
	// count. The bare-number last resort uses this to reject incidental
	// numerals at line starts that are not actual item headers.
	MinBody int
}

// DefaultPatterns returns the supported conventions in priority order. The
// FIRST pattern yielding at least one item wins; later patterns are never
// consulted, so a document matching both an early and a late shape is read
// under the early one only.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:    "form-interrogatory",
			Header:  regexp.MustCompile(`(?i)Form\s+Interrogatory\s+No\.\s*(\d+(?:\.\d+)?)`),
			MinBody: 1,
		},
		{
			Name:   "request-for-admission",
			Header: regexp.MustCompile(`(?i)REQUEST\s+FOR\s+ADMISSION\s+NO\.\s*(\d+)`),
		},
		{
			Name:   "request-for-production",
			Header: regexp.MustCompile(`(?i)REQUEST\s+FOR\s+PRODUCTION\s+(?:OF\s+DOCUMENTS\s+)?NO\.\s*(\d+)`),
		},
		{
			Name:   "interrogatory",
			Header: regexp.MustCompile(`(?i)(?:SPECIAL\s+)?INTERROGATORY\s+NO\.\s*(\d+)`),
		},
		{
			Name:    "bare-decimal",
			Header:  regexp.MustCompile(`(?m)^(\d+\.\d+)\s+`),
			MinBody: 21,
		},
	}
}

// ItemSet is an ordered mapping of item identifier to body text. Order
// follows first appearance in the document.
type ItemSet struct {
	order []string
	byID  map[string]string
}

func newItemSet() *ItemSet {
	return &ItemSet{byID: make(map[string]string)}
}

func (s *ItemSet) add(id, body string) {
	if _, ok := s.byID[id]; !ok {
		s.order = append(s.order, id)
	}
	s.byID[id] = body
}

// Len returns the number of extracted items.
func (s *ItemSet) Len() int {
	return len(s.order)
}

// IDs returns the identifiers in document order.
func (s *ItemSet) IDs() []string {
	return append([]string(nil), s.order...)
}

// Get returns the body text for an identifier via exact string match.
func (s *ItemSet) Get(id string) (string, bool) {
	body, ok := s.byID[id]
	return body, ok
}

// Extract runs the default pattern chain over the document text. An empty
// result means no supported convention matched; that is a valid terminal
// outcome reported upward, not an error.
func Extract(text string) *ItemSet {
	return ExtractWith(text, DefaultPatterns())
}

// ExtractWith runs the given pattern chain in order and returns the first
// non-empty yield. Results from different patterns are never merged.
func ExtractWith(text string, patterns []Pattern) *ItemSet {
	for _, p := range patterns {
		if items := extractOne(text, p); items.Len() > 0 {
			return items
		}
	}
	return newItemSet()
}

func extractOne(text string, p Pattern) *ItemSet {
	items := newItemSet()

	matches := p.Header.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		id := strings.TrimSpace(text[m[2]:m[3]])

		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		body := cleanBody(text[m[1]:bodyEnd])

		if len(body) < p.MinBody {
			continue
		}
		items.add(id, body)
	}

	return items
}

// cleanBody strips the label/body separator and optional quote wrapping:
// a leading colon, surrounding whitespace, and one layer of single or
// double quotes.
func cleanBody(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ":")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
