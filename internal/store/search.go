package store

import (
	"context"
	"fmt"

	"github.com/dmehra/tracklet/internal/item"
	"github.com/dmehra/tracklet/internal/search"
)

// Results are always ordered newest first with an id tiebreaker so
// repeated queries return identical orderings.
const itemOrder = " ORDER BY items.created_at DESC, items.id ASC LIMIT ? OFFSET ?"

// RunStructuredQuery executes a compiled search predicate. All
// predicate values are bound as parameters, never interpolated.
func (s *Store) RunStructuredQuery(ctx context.Context, pred search.Predicate, page search.Page) ([]item.Item, error) {
	where, params, err := search.Compile(pred)
	if err != nil {
		return nil, fmt.Errorf("compile predicate: %w", err)
	}

	limit, offset := pageBounds(page.Limit, page.Offset)
	query := `
		SELECT ` + itemColumns + `
		FROM items JOIN statuses ON statuses.id = items.status_id
		WHERE ` + where + itemOrder
	rows, err := s.db.QueryContext(ctx, query, append(params, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("structured query: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// RunSubstringQuery executes the legacy strategy: one substring
// predicate across title, description and content. An empty raw string
// matches everything; % and _ in the raw string match literally.
func (s *Store) RunSubstringQuery(ctx context.Context, raw string, page search.Page) ([]item.Item, error) {
	limit, offset := pageBounds(page.Limit, page.Offset)
	needle := "%" + search.EscapeLike(raw) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items JOIN statuses ON statuses.id = items.status_id
		WHERE (items.title LIKE ? ESCAPE '\' OR items.description LIKE ? ESCAPE '\' OR items.content LIKE ? ESCAPE '\')`+itemOrder,
		needle, needle, needle, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("substring query: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// RunMatchQuery executes a full-text match expression against the FTS
// index. The expression is bound as a parameter; the FTS engine parses it.
func (s *Store) RunMatchQuery(ctx context.Context, matchExpr string, page search.Page) ([]item.Item, error) {
	limit, offset := pageBounds(page.Limit, page.Offset)
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items
		JOIN statuses ON statuses.id = items.status_id
		JOIN items_fts ON items_fts.rowid = items.rowid
		WHERE items_fts MATCH ?`+itemOrder,
		matchExpr, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("match query: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}
