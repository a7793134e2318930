package query

import "strings"

// MatchExpr renders an AST as a full-text match expression: terms are
// field-qualified ("title:bug"), negated terms carry a '-' prefix, and
// binary nodes are always parenthesized so precedence survives the
// translation regardless of source nesting.
//
// Quote characters are stripped from term values; a term that is empty
// after stripping renders as "" and an empty side of a binary node is an
// algebraic identity - the other side is returned unchanged. MatchExpr
// is total and referentially transparent.
func MatchExpr(e Expr) string {
	switch node := e.(type) {
	case Term:
		return matchTerm(node)
	case Binary:
		left := MatchExpr(node.Left)
		right := MatchExpr(node.Right)
		if left == "" {
			return right
		}
		if right == "" {
			return left
		}
		return "(" + left + " " + string(node.Op) + " " + right + ")"
	default:
		return ""
	}
}

func matchTerm(t Term) string {
	value := strings.NewReplacer(`"`, "", `'`, "").Replace(t.Value)
	if value == "" {
		return ""
	}
	var b strings.Builder
	if t.Negated {
		b.WriteByte('-')
	}
	if t.Field != "" {
		b.WriteString(t.Field)
		b.WriteByte(':')
	}
	b.WriteString(value)
	return b.String()
}
