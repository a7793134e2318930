package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmehra/tracklet/internal/item"
)

// ResolveStatusByName looks up a workflow status by name,
// case-insensitively. The second result is false when no status
// matches; that is not an error.
func (s *Store) ResolveStatusByName(ctx context.Context, name string) (item.StatusRef, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, is_closable FROM statuses WHERE name = ? COLLATE NOCASE
	`, name)

	var ref item.StatusRef
	err := row.Scan(&ref.ID, &ref.Name, &ref.Closable)
	if err == sql.ErrNoRows {
		return item.StatusRef{}, false, nil
	}
	if err != nil {
		return item.StatusRef{}, false, fmt.Errorf("resolve status: %w", err)
	}
	return ref, true, nil
}

// ListStatuses returns all workflow statuses in id order.
func (s *Store) ListStatuses(ctx context.Context) ([]item.StatusRef, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, is_closable FROM statuses ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()

	var refs []item.StatusRef
	for rows.Next() {
		var ref item.StatusRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Closable); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate statuses: %w", err)
	}
	if refs == nil {
		refs = []item.StatusRef{}
	}
	return refs, nil
}

// SeedStatuses upserts the workflow statuses by name. Idempotent: an
// existing name keeps its id and gets its closable flag updated, so
// reseeding at every open is safe.
func (s *Store) SeedStatuses(ctx context.Context, refs []item.StatusRef) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed statuses: begin: %w", err)
	}
	defer tx.Rollback()

	for _, ref := range refs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO statuses (name, is_closable) VALUES (?, ?)
			ON CONFLICT(name) DO UPDATE SET is_closable = excluded.is_closable
		`, ref.Name, ref.Closable)
		if err != nil {
			return fmt.Errorf("seed status %q: %w", ref.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed statuses: commit: %w", err)
	}
	return nil
}
