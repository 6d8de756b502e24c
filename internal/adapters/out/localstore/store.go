package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
)

// Store is a file-backed order cache. All operations are safe for concurrent
// use; every mutation rewrites the file through a temp-file rename so a crash
// never leaves a half-written cache.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a cache over the given file path. The file is created on
// the first write; a missing file reads as an empty cache.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("local store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create local store directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Put writes or replaces the cached copy of the order. Pending marks the
// record as not yet persisted remotely.
func (s *Store) Put(o *order.Order, pending bool) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	records[o.ID().String()] = recordFromDomain(o, pending)
	return s.persist(records)
}

// Get retrieves a cached order by id. The second return reports whether the
// order was found.
func (s *Store) Get(id kernel.OrderID) (*order.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, false, err
	}

	rec, ok := records[id.String()]
	if !ok {
		return nil, false, nil
	}

	o, err := recordToDomain(rec)
	if err != nil {
		return nil, false, err
	}
	return o, true, nil
}

// All retrieves every cached order, newest first.
func (s *Store) All() ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	return s.toOrders(records, func(orderRecord) bool { return true })
}

// PendingOrders retrieves the cached orders still waiting for remote
// persistence, newest first.
func (s *Store) PendingOrders() ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	return s.toOrders(records, func(rec orderRecord) bool { return rec.Pending })
}

// MarkSynced clears the pending flag of a cached order. Unknown ids are a
// no-op so resync retries stay idempotent.
func (s *Store) MarkSynced(id kernel.OrderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	rec, ok := records[id.String()]
	if !ok || !rec.Pending {
		return nil
	}

	rec.Pending = false
	records[id.String()] = rec
	return s.persist(records)
}

// Clear removes every cached order.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(map[string]orderRecord{})
}

// load reads the cache file. Callers must hold the mutex.
func (s *Store) load() (map[string]orderRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]orderRecord{}, nil
		}
		return nil, fmt.Errorf("read local store: %w", err)
	}
	if len(data) == 0 {
		return map[string]orderRecord{}, nil
	}

	var records map[string]orderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode local store: %w", err)
	}
	if records == nil {
		records = map[string]orderRecord{}
	}
	return records, nil
}

// persist rewrites the cache file atomically. Callers must hold the mutex.
func (s *Store) persist(records map[string]orderRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write local store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace local store: %w", err)
	}
	return nil
}

func (s *Store) toOrders(records map[string]orderRecord, keep func(orderRecord) bool) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(records))
	for _, rec := range records {
		if !keep(rec) {
			continue
		}
		o, err := recordToDomain(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].PlacedAt() > orders[j].PlacedAt()
	})
	return orders, nil
}
