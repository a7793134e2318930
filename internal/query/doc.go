// Package query implements the structured search query language.
//
// A raw query string goes through two independent passes:
//
//   - Tokenize/Parse build a boolean AST (terms, AND/OR/NOT, parens,
//     field scoping) which MatchExpr renders as a full-text match
//     expression.
//   - ParseFilters extracts flat key:value directives (status:, type:,
//     priority:, is:) and free-text keywords for the structured
//     execution path.
//
// Both passes are total: malformed input degrades to literal terms or
// empty expressions, never an error. All functions are pure and safe
// for concurrent use.
package query
