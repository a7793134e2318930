package search

import (
	"context"

	"github.com/dmehra/tracklet/internal/query"
)

// Strategy selects how a search query is executed.
type Strategy int

const (
	// StrategyLegacy runs the whole raw string as a single substring
	// scan across title/description/content. Used whenever no filter
	// directive is present, including keyword-only queries, to keep
	// free-text search maximally permissive.
	StrategyLegacy Strategy = iota
	// StrategyStructured runs a conjunctive predicate built from the
	// resolved filters plus per-keyword substring clauses.
	StrategyStructured
)

// Plan is the executable form of one search request.
type Plan struct {
	Strategy  Strategy
	Raw       string
	Predicate Predicate // set for StrategyStructured only
}

// plan runs the filter resolver and picks the execution strategy.
// Status names are resolved to ids here, one lookup per name;
// unresolvable names are dropped from the predicate, not errors.
func (e *Engine) plan(ctx context.Context, raw string) (Plan, error) {
	parsed := query.ParseFilters(raw)
	if !parsed.HasFilters() {
		e.log.DebugContext(ctx, "search plan", "strategy", "legacy", "keywords", len(parsed.Keywords))
		return Plan{Strategy: StrategyLegacy, Raw: raw}, nil
	}

	var conj And

	if len(parsed.Types) > 0 {
		conj.Preds = append(conj.Preds, In{Column: "type", Values: toAny(parsed.Types)})
	}

	if len(parsed.Statuses) > 0 {
		var ids []any
		for _, name := range parsed.Statuses {
			ref, ok, err := e.store.ResolveStatusByName(ctx, name)
			if err != nil {
				return Plan{}, err
			}
			if !ok {
				e.log.DebugContext(ctx, "dropping unresolvable status filter", "name", name)
				continue
			}
			ids = append(ids, ref.ID)
		}
		conj.Preds = append(conj.Preds, In{Column: "status_id", Values: ids})
	}

	if len(parsed.Priorities) > 0 {
		conj.Preds = append(conj.Preds, In{Column: "priority", Values: toAny(parsed.Priorities)})
	}

	if parsed.Is != "" {
		conj.Preds = append(conj.Preds, Closed{Want: parsed.Is == "closed"})
	}

	for _, keyword := range parsed.Keywords {
		conj.Preds = append(conj.Preds, Contains{
			Columns: []string{"title", "description", "content"},
			Needle:  keyword,
		})
	}

	e.log.DebugContext(ctx, "search plan", "strategy", "structured", "clauses", len(conj.Preds))
	return Plan{Strategy: StrategyStructured, Raw: raw, Predicate: conj}, nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
