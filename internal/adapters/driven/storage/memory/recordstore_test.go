package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidayah-labs/duafinder/internal/core/domain"
)

func TestRecordStore_SaveAndGet(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	rec := domain.Record{
		ID:       "travel-01",
		Title:    "Before a journey",
		Category: "Travel",
		Keywords: []string{"safar", "travel"},
	}
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, "travel-01")
	require.NoError(t, err)
	assert.Equal(t, "Before a journey", got.Title)
	assert.Equal(t, []string{"safar", "travel"}, got.Keywords)
}

func TestRecordStore_Save_EmptyID(t *testing.T) {
	store := NewRecordStore()

	err := store.Save(context.Background(), domain.Record{Title: "no id"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordStore_Save_Updates(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Record{ID: "r-1", Title: "first"}))
	require.NoError(t, store.Save(ctx, domain.Record{ID: "r-1", Title: "second"}))

	got, err := store.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Title)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordStore_Get_Missing(t *testing.T) {
	store := NewRecordStore()

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_Delete(t *testing.T) {
	store := NewRecordStore(domain.Record{ID: "r-1"})
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, "r-1"))

	_, err := store.Get(ctx, "r-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_Records_OrderedByID(t *testing.T) {
	store := NewRecordStore(
		domain.Record{ID: "c"},
		domain.Record{ID: "a"},
		domain.Record{ID: "b"},
	)

	records, err := store.Records(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, "c", records[2].ID)
}

func TestRecordStore_Records_Empty(t *testing.T) {
	store := NewRecordStore()

	records, err := store.Records(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}
