package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// Blobs is a key-value store of text documents. Get reports ok=false for a
// key that has never been set.
type Blobs interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// BlobStore keeps blobs in the kv table.
type BlobStore struct {
	db *sql.DB
}

func NewBlobStore(db *sql.DB) *BlobStore {
	return &BlobStore{db: db}
}

func (s *BlobStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get blob %q: %w", key, err)
	}
	return value, true, nil
}

func (s *BlobStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set blob %q: %w", key, err)
	}
	return nil
}

// MemoryBlobStore is a Blobs held in process memory.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string]string)}
}

func (s *MemoryBlobStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[key]
	return v, ok, nil
}

func (s *MemoryBlobStore) Set(key, value string) error {
	s.mu.Lock()
	s.blobs[key] = value
	s.mu.Unlock()
	return nil
}
