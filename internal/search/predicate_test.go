package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_In(t *testing.T) {
	sql, params, err := Compile(In{Column: "type", Values: []any{"bug", "task"}})
	require.NoError(t, err)
	assert.Equal(t, "type IN (?, ?)", sql)
	assert.Equal(t, []any{"bug", "task"}, params)
}

func TestCompile_InEmptyMatchesNothing(t *testing.T) {
	sql, params, err := Compile(In{Column: "status_id"})
	require.NoError(t, err)
	assert.Equal(t, "1 = 0", sql)
	assert.Empty(t, params)
}

func TestCompile_Contains(t *testing.T) {
	sql, params, err := Compile(Contains{
		Columns: []string{"title", "description", "content"},
		Needle:  "bug",
	})
	require.NoError(t, err)
	assert.Equal(t, `(title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\')`, sql)
	assert.Equal(t, []any{"%bug%", "%bug%", "%bug%"}, params)

	// The needle is never interpolated into the SQL text.
	assert.NotContains(t, sql, "bug")
}

func TestCompile_ContainsEscapesWildcards(t *testing.T) {
	_, params, err := Compile(Contains{Columns: []string{"title"}, Needle: "100%_done"})
	require.NoError(t, err)
	assert.Equal(t, []any{`%100\%\_done%`}, params)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, EscapeLike(`c:\tmp`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}

func TestCompile_Closed(t *testing.T) {
	sql, params, err := Compile(Closed{Want: true})
	require.NoError(t, err)
	assert.Equal(t, "status_id IN (SELECT id FROM statuses WHERE is_closable = ?)", sql)
	assert.Equal(t, []any{true}, params)
}

func TestCompile_And(t *testing.T) {
	sql, params, err := Compile(And{Preds: []Predicate{
		In{Column: "type", Values: []any{"bug"}},
		Contains{Columns: []string{"title"}, Needle: "login"},
	}})
	require.NoError(t, err)
	assert.Equal(t, `type IN (?) AND (title LIKE ? ESCAPE '\')`, sql)
	assert.Equal(t, []any{"bug", "%login%"}, params)
}

func TestCompile_EmptyAndIsVacuouslyTrue(t *testing.T) {
	sql, params, err := Compile(And{})
	require.NoError(t, err)
	assert.Equal(t, "1 = 1", sql)
	assert.Empty(t, params)
}

func TestCompile_NilPredicate(t *testing.T) {
	sql, params, err := Compile(nil)
	require.NoError(t, err)
	assert.Equal(t, "1 = 1", sql)
	assert.Empty(t, params)
}
