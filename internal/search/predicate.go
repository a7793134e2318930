package search

import (
	"fmt"
	"strings"
)

// Predicate represents a filter condition for the structured execution
// path.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and
// enables exhaustive type switches in Compile.
//
// Predicate types:
//   - In: column value is one of a set
//   - Contains: any of several columns contains a substring
//   - Closed: the item's status is (or is not) a closable one
//   - And: all predicates must be true
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// In matches rows whose column equals one of Values. An empty value set
// matches nothing (IN over the empty set).
type In struct {
	Column string
	Values []any
}

func (In) predicateNode() {}

// Contains matches rows where at least one of Columns contains Needle
// as a substring. Compiles to an OR of LIKE conditions.
type Contains struct {
	Columns []string
	Needle  string
}

func (Contains) predicateNode() {}

// Closed matches rows whose status closable flag equals Want
// (is:closed => true, is:open => false).
type Closed struct {
	Want bool
}

func (Closed) predicateNode() {}

// And is a conjunction: all predicates must be true. An empty
// conjunction is vacuously true.
type And struct {
	Preds []Predicate
}

func (And) predicateNode() {}

// Compile converts a predicate to a parameterized SQL WHERE fragment.
// Values are always bound via ? placeholders, never interpolated into
// the SQL text.
func Compile(p Predicate) (string, []any, error) {
	switch pred := p.(type) {
	case nil:
		return "1 = 1", nil, nil
	case In:
		return compileIn(pred)
	case Contains:
		return compileContains(pred)
	case Closed:
		return "status_id IN (SELECT id FROM statuses WHERE is_closable = ?)", []any{pred.Want}, nil
	case And:
		return compileAnd(pred)
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compileIn(in In) (string, []any, error) {
	if in.Column == "" {
		return "", nil, fmt.Errorf("in predicate: empty column")
	}
	if len(in.Values) == 0 {
		// IN over the empty set is false.
		return "1 = 0", nil, nil
	}
	placeholders := strings.Repeat("?, ", len(in.Values))
	sql := fmt.Sprintf("%s IN (%s)", in.Column, placeholders[:len(placeholders)-2])
	return sql, in.Values, nil
}

func compileContains(c Contains) (string, []any, error) {
	if len(c.Columns) == 0 {
		return "", nil, fmt.Errorf("contains predicate: no columns")
	}
	needle := "%" + EscapeLike(c.Needle) + "%"
	var parts []string
	var params []any
	for _, col := range c.Columns {
		parts = append(parts, col+` LIKE ? ESCAPE '\'`)
		params = append(params, needle)
	}
	return "(" + strings.Join(parts, " OR ") + ")", params, nil
}

// likeEscaper backslash-escapes LIKE metacharacters. Pairs with the
// ESCAPE '\' clause on every LIKE this package emits.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutralizes % and _ in s so a LIKE needle matches them
// literally rather than as wildcards.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func compileAnd(and And) (string, []any, error) {
	if len(and.Preds) == 0 {
		return "1 = 1", nil, nil // Vacuous truth
	}
	var sqlParts []string
	var allParams []any
	for _, pred := range and.Preds {
		sql, params, err := Compile(pred)
		if err != nil {
			return "", nil, err
		}
		sqlParts = append(sqlParts, sql)
		allParams = append(allParams, params...)
	}
	return strings.Join(sqlParts, " AND "), allParams, nil
}
