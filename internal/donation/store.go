package donation

import (
	"encoding/json"
	"fmt"
	"sync"

	apiErrors "github.com/sevasetu/sevasetu-backend/internal/errors"
	"github.com/spf13/afero"
)

// Store is the durable record-level storage of donation line items.
// Used for dependency injection and testability.
type Store interface {
	// LoadAll returns every stored line item in storage order.
	LoadAll() ([]LineItem, error)
	// AppendBatch persists the full batch atomically; no reader ever
	// observes a partial batch.
	AppendBatch(items []LineItem) error
	// UpdateStatus rewrites status on every line item of the request and
	// reports how many were updated.
	UpdateStatus(requestID, status string) (int, error)
}

// FileStore keeps the whole collection as one JSON array on an injected
// filesystem. Write operations hold the exclusive lock across their entire
// read-modify-write so concurrent submissions and status updates serialize;
// this is what rules out the lost-update anomaly of naive read-then-overwrite.
type FileStore struct {
	fs   afero.Fs
	path string
	mu   sync.RWMutex
}

// NewFileStore creates a FileStore persisting to path on fs.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// LoadAll implements Store. A missing or unreadable file fails with
// ErrStorageUnavailable, unparsable content with ErrCorruptStore; read-only
// call sites may degrade to an empty collection on either.
func (s *FileStore) LoadAll() ([]LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

// AppendBatch implements Store. A missing file is treated as an empty
// collection so the first submission succeeds on a fresh deployment.
func (s *FileStore) AppendBatch(items []LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readForWrite()
	if err != nil {
		return err
	}
	return s.write(append(existing, items...))
}

// UpdateStatus implements Store. When no line item matches, the store is left
// untouched and the call fails with ErrRequestNotFound.
func (s *FileStore) UpdateStatus(requestID, status string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readForWrite()
	if err != nil {
		return 0, err
	}
	updated := 0
	for i := range records {
		if records[i].RequestID == requestID {
			records[i].Status = status
			updated++
		}
	}
	if updated == 0 {
		return 0, apiErrors.ErrRequestNotFound
	}
	if err := s.write(records); err != nil {
		return 0, err
	}
	return updated, nil
}

func (s *FileStore) read() ([]LineItem, error) {
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apiErrors.ErrStorageUnavailable, err)
	}
	var records []LineItem
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", apiErrors.ErrCorruptStore, err)
	}
	return records, nil
}

func (s *FileStore) readForWrite() ([]LineItem, error) {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apiErrors.ErrStorageUnavailable, err)
	}
	if !exists {
		return nil, nil
	}
	return s.read()
}

// write replaces the collection through a temp file plus rename, so a
// concurrent reader sees either the old or the new collection, never a
// partial write.
func (s *FileStore) write(records []LineItem) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", apiErrors.ErrStorageUnavailable, err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, raw, 0o644); err != nil {
		return fmt.Errorf("%w: %v", apiErrors.ErrStorageUnavailable, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", apiErrors.ErrStorageUnavailable, err)
	}
	return nil
}
