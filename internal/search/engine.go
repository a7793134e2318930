// Package search plans and executes searches against the item store.
//
// The engine owns strategy selection (legacy substring scan vs
// structured predicate) and the boolean-AST match path. Parsing and
// planning are pure; the single I/O boundary is the storage call, whose
// errors are returned unchanged apart from an operation-name wrap -
// never retried.
package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmehra/tracklet/internal/item"
	"github.com/dmehra/tracklet/internal/query"
)

// Storage is the collaborator the engine executes against. Implemented
// by *store.Store.
type Storage interface {
	ResolveStatusByName(ctx context.Context, name string) (item.StatusRef, bool, error)
	RunStructuredQuery(ctx context.Context, pred Predicate, page Page) ([]item.Item, error)
	RunSubstringQuery(ctx context.Context, raw string, page Page) ([]item.Item, error)
	RunMatchQuery(ctx context.Context, matchExpr string, page Page) ([]item.Item, error)
}

// Page bounds a result set. Zero Limit means the store default.
type Page struct {
	Limit  int
	Offset int
}

// Engine executes search requests. Safe for concurrent use: all state
// is per-call.
type Engine struct {
	store Storage
	log   *slog.Logger
}

// New creates an Engine. A nil logger disables engine logging.
func New(store Storage, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{store: store, log: log}
}

// Search executes a query using the filter-directed strategy split:
// queries with no filter directives run as a legacy substring scan of
// the whole raw string, queries with any directive run as a structured
// conjunctive predicate.
func (e *Engine) Search(ctx context.Context, raw string, page Page) ([]item.Item, error) {
	plan, err := e.plan(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("plan search: %w", err)
	}

	switch plan.Strategy {
	case StrategyStructured:
		items, err := e.store.RunStructuredQuery(ctx, plan.Predicate, page)
		if err != nil {
			return nil, fmt.Errorf("structured search: %w", err)
		}
		return items, nil
	default:
		items, err := e.store.RunSubstringQuery(ctx, plan.Raw, page)
		if err != nil {
			return nil, fmt.Errorf("substring search: %w", err)
		}
		return items, nil
	}
}

// Match executes a query through the boolean grammar: tokenize, parse,
// translate to a full-text match expression, and run it against the
// full-text index. A query that translates to the empty expression
// falls back to the legacy substring scan.
func (e *Engine) Match(ctx context.Context, raw string, page Page) ([]item.Item, error) {
	expr := query.MatchExpr(query.Parse(raw))
	if expr == "" {
		e.log.DebugContext(ctx, "empty match expression, falling back to substring scan")
		items, err := e.store.RunSubstringQuery(ctx, raw, page)
		if err != nil {
			return nil, fmt.Errorf("substring search: %w", err)
		}
		return items, nil
	}

	items, err := e.store.RunMatchQuery(ctx, expr, page)
	if err != nil {
		return nil, fmt.Errorf("match search: %w", err)
	}
	return items, nil
}
