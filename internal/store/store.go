// Package store persists named collections of records. Each collection is
// serialised as one JSON array and replaced wholesale on every write.
//
// Reads fail open: a missing, unreadable or corrupt collection comes back
// empty and the problem is logged. Concurrent writers in different processes
// are not coordinated.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	Products = "products"
	Orders   = "orders"
)

// ErrNotFound is returned by a Backend for a collection that was never written.
var ErrNotFound = errors.New("collection not found")

// Backend is the durable medium under a Store.
type Backend interface {
	Load(name string) ([]byte, error)
	Save(name string, payload []byte) error
}

type Store struct {
	backend Backend
	logger  *zap.Logger
}

func New(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, logger: logger}
}

// Read returns the records of a collection. found is false when the
// collection has never been written or could not be read.
func (s *Store) Read(name string) (records []json.RawMessage, found bool) {
	payload, err := s.backend.Load(name)
	if errors.Is(err, ErrNotFound) {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("collection unavailable, reading as empty",
			zap.String("collection", name), zap.Error(err))
		return nil, false
	}

	if err := json.Unmarshal(payload, &records); err != nil {
		s.logger.Warn("collection corrupt, reading as empty",
			zap.String("collection", name), zap.Error(err))
		return nil, false
	}
	return records, true
}

// Write replaces the whole collection.
func (s *Store) Write(name string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}
	if err := s.backend.Save(name, payload); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}

// ReadAll decodes a collection into typed records. Records that do not
// decode are skipped.
func ReadAll[T any](s *Store, name string) ([]T, bool) {
	raw, found := s.Read(name)
	items := make([]T, 0, len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			s.logger.Warn("skipping undecodable record",
				zap.String("collection", name), zap.Int("index", i), zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items, found
}

// WriteAll encodes typed records and replaces the collection with them.
func WriteAll[T any](s *Store, name string, items []T) error {
	raw := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to encode %s record: %w", name, err)
		}
		raw = append(raw, b)
	}
	return s.Write(name, raw)
}
