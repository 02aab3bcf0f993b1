package linkstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "plaidctl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}

func TestSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	item := LinkedItem{
		ItemID:          "item-1",
		AccessToken:     "access-sandbox-1",
		InstitutionID:   "ins_109508",
		InstitutionName: "First Platypus Bank",
		Alias:           "platypus",
		Environment:     "sandbox",
		LinkedAt:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(ctx, item))

	tests := []struct {
		name string
		key  string
	}{
		{name: "by alias", key: "platypus"},
		{name: "by item id", key: "item-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, item.ItemID, got.ItemID)
			assert.Equal(t, item.AccessToken, got.AccessToken)
			assert.Equal(t, item.InstitutionName, got.InstitutionName)
			assert.Equal(t, item.Environment, got.Environment)
		})
	}
}

func TestSave_Validation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		item LinkedItem
	}{
		{name: "missing item id", item: LinkedItem{AccessToken: "a", Environment: "sandbox"}},
		{name: "missing access token", item: LinkedItem{ItemID: "i", Environment: "sandbox"}},
		{name: "missing environment", item: LinkedItem{ItemID: "i", AccessToken: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, store.Save(ctx, tt.item))
		})
	}
}

func TestSave_UpsertsByItemID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := LinkedItem{ItemID: "item-1", AccessToken: "token-old", Environment: "sandbox"}
	require.NoError(t, store.Save(ctx, first))

	// Relinking the same item rotates the access token in place.
	second := first
	second.AccessToken = "token-new"
	second.Alias = "checking"
	require.NoError(t, store.Save(ctx, second))

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "token-new", items[0].AccessToken)
	assert.Equal(t, "checking", items[0].Alias)
}

func TestList_Ordering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"item-c", "item-a", "item-b"} {
		require.NoError(t, store.Save(ctx, LinkedItem{
			ItemID:      id,
			AccessToken: "token",
			Environment: "sandbox",
			LinkedAt:    base.Add(time.Duration(i) * time.Hour),
		}))
	}

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "item-c", items[0].ItemID)
	assert.Equal(t, "item-b", items[2].ItemID)
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, LinkedItem{
		ItemID:      "item-1",
		AccessToken: "token",
		Alias:       "checking",
		Environment: "sandbox",
	}))

	require.NoError(t, store.Remove(ctx, "checking"))

	_, err := store.Get(ctx, "item-1")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Remove(ctx, "item-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
