package query

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TokenKind discriminates the token union.
type TokenKind int

const (
	TokenTerm TokenKind = iota
	TokenAnd
	TokenOr
	TokenNot
	TokenLParen
	TokenRParen
)

// Token is one lexical unit of a query string. Field, Value and Negated
// are only meaningful for TokenTerm.
type Token struct {
	Kind    TokenKind
	Field   string
	Value   string
	Negated bool
}

// Scan-position patterns, tried in priority order. All are anchored so
// the tokenizer advances strictly left to right.
var (
	fieldQuotedPattern   = regexp.MustCompile(`^([A-Za-z]+):"([^"]*)"`)
	fieldUnquotedPattern = regexp.MustCompile(`^([A-Za-z]+):([^\s()"]+)`)
	quotedPattern        = regexp.MustCompile(`^"([^"]*)"`)
	barePattern          = regexp.MustCompile(`^[^\s()]+`)
)

// Tokenize splits a raw query string into tokens. It never fails:
// fragments that match no rule become literal terms.
//
// Per scan position, in priority order: an optional leading '-' negates
// the token that follows; field:"quoted" or field:unquoted (unrecognized
// field prefixes fold back into a single bare term, not split); "quoted
// phrase"; bare word (AND/OR/NOT case-insensitively become operators);
// '(' and ')'. Quotes inside a quoted value are not supported - the
// value runs to the next quote character.
func Tokenize(input string) []Token {
	// NFC-normalize so byte-wise matching sees one spelling per rune
	// sequence.
	input = norm.NFC.String(input)

	var tokens []Token
	i := 0
	for i < len(input) {
		c := input[i]

		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			i++
			continue
		}
		if c == '(' {
			tokens = append(tokens, Token{Kind: TokenLParen})
			i++
			continue
		}
		if c == ')' {
			tokens = append(tokens, Token{Kind: TokenRParen})
			i++
			continue
		}

		negated := false
		if c == '-' && i+1 < len(input) && !isBoundary(input[i+1]) {
			negated = true
			i++
		}

		rest := input[i:]

		if m := fieldQuotedPattern.FindStringSubmatch(rest); m != nil {
			tokens = append(tokens, fieldToken(m[1], m[2], m[0], negated))
			i += len(m[0])
			continue
		}
		if m := fieldUnquotedPattern.FindStringSubmatch(rest); m != nil {
			tokens = append(tokens, fieldToken(m[1], m[2], m[0], negated))
			i += len(m[0])
			continue
		}
		if m := quotedPattern.FindStringSubmatch(rest); m != nil {
			tokens = append(tokens, Token{Kind: TokenTerm, Value: m[1], Negated: negated})
			i += len(m[0])
			continue
		}
		if m := barePattern.FindString(rest); m != "" {
			tokens = append(tokens, bareToken(m, negated))
			i += len(m)
			continue
		}

		// Unreachable with the patterns above, but keep the scan total.
		i++
	}
	return tokens
}

// fieldToken builds a term token for a field:value fragment. When the
// prefix is not a recognized field the whole fragment (prefix, colon and
// value) becomes one literal term.
func fieldToken(field, value, whole string, negated bool) Token {
	lowered := strings.ToLower(field)
	if !IsSearchField(lowered) {
		return Token{Kind: TokenTerm, Value: whole, Negated: negated}
	}
	return Token{Kind: TokenTerm, Field: lowered, Value: value, Negated: negated}
}

// bareToken classifies a bare word as an operator keyword or a term.
// A negated word is always a term: "-not" searches for the word, it
// does not start a double negation.
func bareToken(word string, negated bool) Token {
	if !negated {
		switch strings.ToUpper(word) {
		case "AND":
			return Token{Kind: TokenAnd}
		case "OR":
			return Token{Kind: TokenOr}
		case "NOT":
			return Token{Kind: TokenNot}
		}
	}
	return Token{Kind: TokenTerm, Value: word, Negated: negated}
}

func isBoundary(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '(' || c == ')'
}
