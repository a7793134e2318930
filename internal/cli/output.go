package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmehra/tracklet/internal/item"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Soft failure (no matches for search, item not found)
	ExitCommandError = 2 // Command error (bad flags, unreachable database)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitCommandError if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the standard JSON envelope for CLI output.
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Success writes a successful result in the configured format. For
// text format, data must implement fmt.Stringer or be a string.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(Response{Status: "ok", Data: data})
	}
	switch v := data.(type) {
	case string:
		_, err := fmt.Fprintln(f.Writer, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.Writer, v.String())
		return err
	default:
		_, err := fmt.Fprintf(f.Writer, "%v\n", v)
		return err
	}
}

// ItemList is the printable result set shared by ls and search.
type ItemList struct {
	Items []item.Item `json:"items"`
	Total int         `json:"total"`
}

// String renders the list as an aligned text table, one item per line,
// followed by a match count.
func (l ItemList) String() string {
	if len(l.Items) == 0 {
		return "no items found"
	}
	var b strings.Builder
	for _, it := range l.Items {
		fmt.Fprintf(&b, "%-8s  %-11s  %-8s  %-8s  %s\n",
			shortID(it.ID), it.Status, it.Type, it.Priority, it.Title)
	}
	fmt.Fprintf(&b, "%d item(s)", len(l.Items))
	return b.String()
}

// shortID keeps output scannable; full ids remain available via json
// format and show.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
