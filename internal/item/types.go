// Package item defines the stored-item model shared by the store and
// the search engine.
package item

import (
	"time"

	"github.com/google/uuid"
)

// Item is one tracked item. Status carries the resolved status name;
// StatusID is the row it references.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
	StatusID    int64     `json:"status_id"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatusRef is a workflow status as the engine sees it: enough to
// resolve status:/is: directives, nothing more.
type StatusRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Closable bool   `json:"closable"`
}

// NewID returns a time-sortable UUIDv7 item id as a hyphenated string.
// UUIDv7 embeds a timestamp in the most significant bits, so ids sort
// by creation time.
//
// Panics if UUID generation fails (should never happen in practice).
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
