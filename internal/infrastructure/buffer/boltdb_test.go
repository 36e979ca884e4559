package buffer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "buffer.db"), "buffer")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEnqueueAndBatch(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Enqueue(Item{
		Entity:    EntityCall,
		Operation: OperationStatusUpdate,
		CallID:    7,
		Status:    "completed",
	}))

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].CallID)
	assert.Equal(t, "completed", items[0].Status)
	assert.NotEmpty(t, items[0].ID, "enqueue assigns an id")
	assert.False(t, items[0].Timestamp.IsZero())
}

func TestPriorityOrdering(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Enqueue(Item{Entity: EntityCall, Operation: OperationStatusUpdate, CallID: 1, Status: "failed", Priority: 9}))
	require.NoError(t, store.Enqueue(Item{Entity: EntityCall, Operation: OperationStatusUpdate, CallID: 2, Status: "completed", Priority: 1}))

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].CallID, "lower priority value drains first")
}

func TestRemoveAndRequeue(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Enqueue(Item{Entity: EntityCall, Operation: OperationStatusUpdate, CallID: 3, Status: "completed"}))
	items, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, store.Remove(items[0]))
	size, err := store.Size()
	require.NoError(t, err)
	assert.Zero(t, size)

	item := items[0]
	item.Retries = 1
	require.NoError(t, store.Requeue(item))
	size, err = store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	requeued, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, requeued, 1)
	assert.Equal(t, 1, requeued[0].Retries)
}

func TestCleanup(t *testing.T) {
	store := openTestStore(t)

	old := Item{Entity: EntityCall, Operation: OperationStatusUpdate, CallID: 4, Status: "completed", Timestamp: time.Now().Add(-48 * time.Hour)}
	fresh := Item{Entity: EntityCall, Operation: OperationStatusUpdate, CallID: 5, Status: "completed"}
	require.NoError(t, store.Enqueue(old))
	require.NoError(t, store.Enqueue(fresh))

	require.NoError(t, store.Cleanup(time.Now().Add(-24*time.Hour)))

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(5), items[0].CallID)
}
