package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra/tracklet/internal/item"
)

// fakeStorage records which execution path ran and with what arguments.
type fakeStorage struct {
	statuses map[string]item.StatusRef

	structuredPred Predicate
	substringRaw   string
	matchExpr      string
	calls          []string

	err error
}

func (f *fakeStorage) ResolveStatusByName(_ context.Context, name string) (item.StatusRef, bool, error) {
	ref, ok := f.statuses[name]
	return ref, ok, nil
}

func (f *fakeStorage) RunStructuredQuery(_ context.Context, pred Predicate, _ Page) ([]item.Item, error) {
	f.calls = append(f.calls, "structured")
	f.structuredPred = pred
	return []item.Item{}, f.err
}

func (f *fakeStorage) RunSubstringQuery(_ context.Context, raw string, _ Page) ([]item.Item, error) {
	f.calls = append(f.calls, "substring")
	f.substringRaw = raw
	return []item.Item{}, f.err
}

func (f *fakeStorage) RunMatchQuery(_ context.Context, matchExpr string, _ Page) ([]item.Item, error) {
	f.calls = append(f.calls, "match")
	f.matchExpr = matchExpr
	return []item.Item{}, f.err
}

func newFake() *fakeStorage {
	return &fakeStorage{
		statuses: map[string]item.StatusRef{
			"Open":      {ID: 1, Name: "Open"},
			"Completed": {ID: 4, Name: "Completed", Closable: true},
		},
	}
}

func TestSearch_NoFiltersUsesLegacyStrategy(t *testing.T) {
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Search(context.Background(), "login bug", Page{})
	require.NoError(t, err)

	assert.Equal(t, []string{"substring"}, fake.calls)
	assert.Equal(t, "login bug", fake.substringRaw)
}

func TestSearch_EmptyQueryUsesLegacyStrategy(t *testing.T) {
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Search(context.Background(), "", Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{"substring"}, fake.calls)
}

func TestSearch_KeywordsWithoutFiltersStaysLegacy(t *testing.T) {
	// Keyword-only queries keep the permissive whole-string scan.
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Search(context.Background(), "crash on login", Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{"substring"}, fake.calls)
	assert.Equal(t, "crash on login", fake.substringRaw)
}

func TestSearch_AnyFilterUsesStructuredStrategy(t *testing.T) {
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Search(context.Background(), "status:Open type:bug", Page{})
	require.NoError(t, err)

	assert.Equal(t, []string{"structured"}, fake.calls)
	assert.Equal(t, And{Preds: []Predicate{
		In{Column: "type", Values: []any{"bug"}},
		In{Column: "status_id", Values: []any{int64(1)}},
	}}, fake.structuredPred)
}

func TestSearch_FilterPlusKeywordAddsContainsClause(t *testing.T) {
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Search(context.Background(), "status:Open bug", Page{})
	require.NoError(t, err)

	assert.Equal(t, And{Preds: []Predicate{
		In{Column: "status_id", Values: []any{int64(1)}},
		Contains{Columns: []string{"title", "description", "content"}, Needle: "bug"},
	}}, fake.structuredPred)
}

func TestSearch_UnresolvableStatusDropped(t *testing.T) {
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Search(context.Background(), "status:Open status:Bogus", Page{})
	require.NoError(t, err)

	// Bogus resolves to nothing and is silently dropped from the ids.
	assert.Equal(t, And{Preds: []Predicate{
		In{Column: "status_id", Values: []any{int64(1)}},
	}}, fake.structuredPred)
}

func TestSearch_AllStatusesUnresolvableMatchesNothing(t *testing.T) {
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Search(context.Background(), "status:Bogus", Page{})
	require.NoError(t, err)

	assert.Equal(t, And{Preds: []Predicate{
		In{Column: "status_id"},
	}}, fake.structuredPred)
}

func TestSearch_IsClosedMapsToClosableFlag(t *testing.T) {
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Search(context.Background(), "is:closed", Page{})
	require.NoError(t, err)
	assert.Equal(t, And{Preds: []Predicate{Closed{Want: true}}}, fake.structuredPred)

	fake.calls = nil
	_, err = engine.Search(context.Background(), "is:open", Page{})
	require.NoError(t, err)
	assert.Equal(t, And{Preds: []Predicate{Closed{Want: false}}}, fake.structuredPred)
}

func TestSearch_PriorityFilter(t *testing.T) {
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Search(context.Background(), "priority:high", Page{})
	require.NoError(t, err)
	assert.Equal(t, And{Preds: []Predicate{
		In{Column: "priority", Values: []any{"HIGH"}},
	}}, fake.structuredPred)
}

func TestSearch_StorageErrorWrappedWithOperation(t *testing.T) {
	fake := newFake()
	sentinel := errors.New("database is locked")
	fake.err = sentinel
	engine := New(fake, nil)

	_, err := engine.Search(context.Background(), "bug", Page{})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "substring search")

	fake.err = sentinel
	_, err = engine.Search(context.Background(), "status:Open", Page{})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "structured search")
}

func TestMatch_RunsTranslatedExpression(t *testing.T) {
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Match(context.Background(), "(bug OR fix) AND title:login", Page{})
	require.NoError(t, err)

	assert.Equal(t, []string{"match"}, fake.calls)
	assert.Equal(t, "((bug OR fix) AND title:login)", fake.matchExpr)
}

func TestMatch_EmptyExpressionFallsBackToSubstring(t *testing.T) {
	fake := newFake()
	engine := New(fake, nil)

	_, err := engine.Match(context.Background(), "", Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{"substring"}, fake.calls)
}
