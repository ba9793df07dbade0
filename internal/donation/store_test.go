package donation

import (
	"fmt"
	"sync"
	"testing"

	apiErrors "github.com/sevasetu/sevasetu-backend/internal/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

const storePath = "donation_requests.json"

func newTestStore() (*FileStore, afero.Fs) {
	fs := afero.NewMemMapFs()
	return NewFileStore(fs, storePath), fs
}

// TestFileStoreLoadAll tests the read failure modes.
func TestFileStoreLoadAll(t *testing.T) {
	t.Run("missing file is unavailable", func(t *testing.T) {
		store, _ := newTestStore()

		_, err := store.LoadAll()

		assert.ErrorIs(t, err, apiErrors.ErrStorageUnavailable)
	})

	t.Run("unparsable content is corrupt", func(t *testing.T) {
		store, fs := newTestStore()
		assert.NoError(t, afero.WriteFile(fs, storePath, []byte("{broken"), 0o644))

		_, err := store.LoadAll()

		assert.ErrorIs(t, err, apiErrors.ErrCorruptStore)
	})
}

// TestFileStoreAppendBatch tests batch persistence and ordering.
func TestFileStoreAppendBatch(t *testing.T) {
	store, _ := newTestStore()

	first := []LineItem{
		lineItem("REQ-A", "REQ-A-1", "org1", "Shirt", 2),
		lineItem("REQ-A", "REQ-A-2", "org1", "Rice", 1),
	}
	second := []LineItem{
		lineItem("REQ-B", "REQ-B-1", "org2", "Books", 5),
	}

	assert.NoError(t, store.AppendBatch(first))
	assert.NoError(t, store.AppendBatch(second))

	records, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "REQ-A-1", records[0].DonationID)
	assert.Equal(t, "REQ-A-2", records[1].DonationID)
	assert.Equal(t, "REQ-B-1", records[2].DonationID)
}

// TestFileStoreUpdateStatus tests status rewrites and their isolation.
func TestFileStoreUpdateStatus(t *testing.T) {
	t.Run("updates every line of the request and nothing else", func(t *testing.T) {
		store, _ := newTestStore()
		assert.NoError(t, store.AppendBatch([]LineItem{
			lineItem("REQ-A", "REQ-A-1", "org1", "Shirt", 2),
			lineItem("REQ-A", "REQ-A-2", "org1", "Rice", 1),
			lineItem("REQ-B", "REQ-B-1", "org2", "Books", 5),
		}))

		updated, err := store.UpdateStatus("REQ-A", StatusCompleted)

		assert.NoError(t, err)
		assert.Equal(t, 2, updated)

		records, err := store.LoadAll()
		assert.NoError(t, err)
		for _, rec := range records {
			if rec.RequestID == "REQ-A" {
				assert.Equal(t, StatusCompleted, rec.Status)
			} else {
				assert.Equal(t, StatusPending, rec.Status)
			}
		}
	})

	t.Run("unknown request leaves the store untouched", func(t *testing.T) {
		store, fs := newTestStore()
		assert.NoError(t, store.AppendBatch([]LineItem{
			lineItem("REQ-A", "REQ-A-1", "org1", "Shirt", 2),
		}))
		before, err := afero.ReadFile(fs, storePath)
		assert.NoError(t, err)

		updated, err := store.UpdateStatus("REQ-MISSING", StatusCompleted)

		assert.ErrorIs(t, err, apiErrors.ErrRequestNotFound)
		assert.Equal(t, 0, updated)
		after, err := afero.ReadFile(fs, storePath)
		assert.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("empty store has nothing to update", func(t *testing.T) {
		store, _ := newTestStore()

		_, err := store.UpdateStatus("REQ-A", StatusCompleted)

		assert.ErrorIs(t, err, apiErrors.ErrRequestNotFound)
	})
}

// TestFileStoreConcurrentAppends tests that concurrent writers never lose a
// batch (the lost-update anomaly of naive read-then-overwrite).
func TestFileStoreConcurrentAppends(t *testing.T) {
	store, _ := newTestStore()

	const writers = 8
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			reqID := fmt.Sprintf("REQ-%03d", i)
			err := store.AppendBatch([]LineItem{
				lineItem(reqID, reqID+"-1", "org1", "Shirt", 1),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Len(t, records, writers)

	seen := make(map[string]bool)
	for _, rec := range records {
		seen[rec.RequestID] = true
	}
	assert.Len(t, seen, writers)
}
