package query

import (
	"regexp"
	"strings"
)

// ParsedQuery is the flat view of a query used by the structured
// execution path: key:value directives plus the free-text remainder.
// It is independent of the boolean AST - the two passes serve different
// execution strategies and are deliberately kept separate.
type ParsedQuery struct {
	Keywords   []string // remainder terms, in input order
	Types      []string
	Statuses   []string
	Priorities []string // upper-cased on capture
	Is         string   // "open", "closed", or ""
	Raw        string
}

// HasFilters reports whether any directive was captured.
func (q ParsedQuery) HasFilters() bool {
	return len(q.Types) > 0 || len(q.Statuses) > 0 || len(q.Priorities) > 0 || q.Is != ""
}

// directivePattern matches status:/type:/priority:/is: pairs with a bare
// or quoted value. Keys are matched case-insensitively at a word
// boundary so "mistype:x" stays free text.
var directivePattern = regexp.MustCompile(`(?i)(^|\s)(status|type|priority|is):("([^"]*)"|(\S+))`)

// ParseFilters scans a query for filter directives and splits what is
// left into whitespace-delimited keywords. Matched directive fragments
// are removed from the keyword remainder even when their value is
// discarded (an "is:" value other than open/closed is ignored, not an
// error). ParseFilters never fails.
func ParseFilters(input string) ParsedQuery {
	parsed := ParsedQuery{Raw: input}

	for _, m := range directivePattern.FindAllStringSubmatch(input, -1) {
		key := strings.ToLower(m[2])
		value := m[4]
		if value == "" {
			value = m[5]
		}
		if value == "" {
			continue
		}
		switch key {
		case "type":
			parsed.Types = append(parsed.Types, value)
		case "status":
			parsed.Statuses = append(parsed.Statuses, value)
		case "priority":
			parsed.Priorities = append(parsed.Priorities, strings.ToUpper(value))
		case "is":
			switch strings.ToLower(value) {
			case "open":
				parsed.Is = "open"
			case "closed":
				parsed.Is = "closed"
			}
			// Any other value is dropped silently.
		}
	}

	remainder := directivePattern.ReplaceAllString(input, "$1")
	for _, word := range strings.Fields(remainder) {
		parsed.Keywords = append(parsed.Keywords, word)
	}
	return parsed
}
