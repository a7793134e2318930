package query

// Expr represents a node in the parsed query tree.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in consumers.
//
// Expr types:
//   - Term: a single search term, optionally field-scoped and negated
//   - Binary: two sub-expressions joined by AND or OR
type Expr interface {
	exprNode() // Marker method - seals interface to this package
}

// Operator is a boolean connective in a Binary expression.
type Operator string

const (
	OpAnd Operator = "AND"
	OpOr  Operator = "OR"
)

// Term is a leaf search term.
//
// Field is one of the recognized field names ("" = unscoped). Negated is
// only ever set on a Term: the grammar never negates a compound node, so
// the invariant is structural - Binary has no negation flag at all.
type Term struct {
	Field   string
	Value   string
	Negated bool
}

func (Term) exprNode() {}

// Binary joins two sub-expressions with a boolean operator.
type Binary struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (Binary) exprNode() {}

// Fields recognized for field-scoped terms (field:value). Anything else
// folds back into a literal term during tokenization.
var searchFields = map[string]bool{
	"title":       true,
	"content":     true,
	"description": true,
	"tags":        true,
	"type":        true,
}

// IsSearchField reports whether name (lowered) is a recognized
// field-scope prefix.
func IsSearchField(name string) bool {
	return searchFields[name]
}
