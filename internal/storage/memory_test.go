package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbdc-tools/wonflow/internal/common"
)

func TestMemoryStore_InsertionOrderScan(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, branch := range []string{"강남지점", "강동지점", "강북지점"} {
		_, err := store.Put(ctx, testRecord(branch))
		require.NoError(t, err)
	}

	records, err := store.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "강남지점", records[0].Branch)
	assert.Equal(t, "강북지점", records[2].Branch)
}

func TestMemoryStore_UpdatePatchesStoredFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	key, err := store.Put(ctx, testRecord("강남지점"))
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, key, map[string]any{"description": "정정"}))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "정정", got.Description)
}

func TestMemoryStore_DeleteAndNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	key, err := store.Put(ctx, testRecord("강남지점"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, key))
	assert.ErrorIs(t, store.Delete(ctx, key), common.ErrNotFound)

	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStore_FailNext(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.FailNext = true

	_, err := store.Put(ctx, testRecord("강남지점"))
	require.Error(t, err)

	var storeErr *common.StoreError
	assert.ErrorAs(t, err, &storeErr)

	// Armed for exactly one call.
	_, err = store.Put(ctx, testRecord("강남지점"))
	assert.NoError(t, err)
}
