package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmehra/tracklet/internal/item"
)

// itemColumns is the SELECT list every item query shares. Status name is
// joined in so callers never need a second lookup.
const itemColumns = `items.id, items.title, items.description, items.content,
	items.type, items.priority, items.status_id, statuses.name,
	items.tags, items.created_at, items.updated_at`

// CreateItem inserts a new item. A missing ID is generated (UUIDv7);
// missing timestamps are set to now. Returns the stored item.
func (s *Store) CreateItem(ctx context.Context, it item.Item) (item.Item, error) {
	if it.ID == "" {
		it.ID = item.NewID()
	}
	now := time.Now().UTC()
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	}
	if it.UpdatedAt.IsZero() {
		it.UpdatedAt = now
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, title, description, content, type, priority, status_id, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, it.ID, it.Title, it.Description, it.Content, it.Type, it.Priority,
		it.StatusID, strings.Join(it.Tags, " "),
		it.CreatedAt.Format(time.RFC3339Nano), it.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return item.Item{}, fmt.Errorf("insert item: %w", err)
	}
	return it, nil
}

// GetItem returns one item by id. The second result is false when no
// row matches.
func (s *Store) GetItem(ctx context.Context, id string) (item.Item, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM items JOIN statuses ON statuses.id = items.status_id
		WHERE items.id = ?
	`, id)

	it, err := scanItemRow(row)
	if err == sql.ErrNoRows {
		return item.Item{}, false, nil
	}
	if err != nil {
		return item.Item{}, false, fmt.Errorf("get item: %w", err)
	}
	return it, true, nil
}

// ListItems returns items ordered newest first with a deterministic id
// tiebreaker.
func (s *Store) ListItems(ctx context.Context, limit, offset int) ([]item.Item, error) {
	limit, offset = pageBounds(limit, offset)
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items JOIN statuses ON statuses.id = items.status_id
		ORDER BY items.created_at DESC, items.id ASC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItemRow(r rowScanner) (item.Item, error) {
	var it item.Item
	var tags, createdAt, updatedAt string
	err := r.Scan(&it.ID, &it.Title, &it.Description, &it.Content,
		&it.Type, &it.Priority, &it.StatusID, &it.Status,
		&tags, &createdAt, &updatedAt)
	if err != nil {
		return item.Item{}, err
	}
	if tags != "" {
		it.Tags = strings.Fields(tags)
	}
	if it.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return item.Item{}, fmt.Errorf("parse created_at: %w", err)
	}
	if it.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return item.Item{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return it, nil
}

func collectItems(rows *sql.Rows) ([]item.Item, error) {
	var items []item.Item
	for rows.Next() {
		it, err := scanItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	// Return empty slice instead of nil
	if items == nil {
		items = []item.Item{}
	}
	return items, nil
}
