package datastore

import (
	"fmt"
	"sync"
)

// MemoryGovernorRefStore is an in-memory implementation of the GovernorRefStore and
// MutableGovernorRefStore interfaces.
type MemoryGovernorRefStore struct {
	mu      sync.RWMutex
	Records []GovernorRef `json:"records"`
}

// MemoryGovernorRefStore implements GovernorRefStore interface.
var _ GovernorRefStore = &MemoryGovernorRefStore{}

// MemoryGovernorRefStore implements MutableGovernorRefStore interface.
var _ MutableGovernorRefStore = &MemoryGovernorRefStore{}

// NewMemoryGovernorRefStore creates a new MemoryGovernorRefStore instance.
func NewMemoryGovernorRefStore() *MemoryGovernorRefStore {
	return &MemoryGovernorRefStore{Records: []GovernorRef{}}
}

// Get returns the GovernorRef for the provided key, or an error if no such record exists.
func (s *MemoryGovernorRefStore) Get(key GovernorRefKey) (GovernorRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(key)
	if idx == -1 {
		return GovernorRef{}, ErrGovernorRefNotFound
	}

	return s.Records[idx].Clone(), nil
}

// GetByChainSelector returns the sole governor registered for the provided
// chain. It fails with ErrGovernorRefNotFound when the chain has no governor,
// and with a disambiguation error when more than one is registered, in which
// case the caller must Get with a qualified key instead.
func (s *MemoryGovernorRefStore) GetByChainSelector(chainSelector uint64) (GovernorRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		found GovernorRef
		count int
	)
	for _, record := range s.Records {
		if record.ChainSelector == chainSelector {
			found = record
			count++
		}
	}

	switch count {
	case 0:
		return GovernorRef{}, fmt.Errorf("chain selector %d: %w", chainSelector, ErrGovernorRefNotFound)
	case 1:
		return found.Clone(), nil
	default:
		return GovernorRef{}, fmt.Errorf(
			"%d governor refs registered for chain selector %d, qualify the lookup", count, chainSelector,
		)
	}
}

// Fetch returns a copy of all GovernorRef records in the store.
func (s *MemoryGovernorRefStore) Fetch() ([]GovernorRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []GovernorRef{}
	for _, record := range s.Records {
		records = append(records, record.Clone())
	}

	return records, nil
}

// Filter returns a copy of all GovernorRef records in the store that pass all of the provided filters.
// Filters are applied in the order they are provided.
// If no filters are provided, all records are returned.
func (s *MemoryGovernorRefStore) Filter(filters ...FilterFunc[GovernorRefKey, GovernorRef]) []GovernorRef {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := append([]GovernorRef{}, s.Records...)
	for _, filter := range filters {
		records = filter(records)
	}

	return records
}

// indexOf returns the index of the record with the provided key, or -1 if no such record exists.
func (s *MemoryGovernorRefStore) indexOf(key GovernorRefKey) int {
	for i, record := range s.Records {
		if record.Key().Equals(key) {
			return i
		}
	}

	return -1
}

// Add inserts a new record into the store.
// If a record with the same key already exists, an error is returned.
func (s *MemoryGovernorRefStore) Add(record GovernorRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx != -1 {
		return ErrGovernorRefExists
	}
	s.Records = append(s.Records, record)

	return nil
}

// Upsert inserts a new record into the store if no record with the same key already exists.
// If a record with the same key already exists, it is updated.
func (s *MemoryGovernorRefStore) Upsert(record GovernorRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx == -1 {
		s.Records = append(s.Records, record)
		return nil
	}
	s.Records[idx] = record

	return nil
}

// Update edits an existing record whose fields match the primary key elements of the supplied GovernorRef, with
// the non-primary-key values of the supplied GovernorRef.
// If no such record exists, an error is returned.
func (s *MemoryGovernorRefStore) Update(record GovernorRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx == -1 {
		return ErrGovernorRefNotFound
	}
	s.Records[idx] = record

	return nil
}

// Delete deletes an existing record whose primary key elements match the supplied key, returning an error if no
// such record exists.
func (s *MemoryGovernorRefStore) Delete(key GovernorRefKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(key)
	if idx == -1 {
		return ErrGovernorRefNotFound
	}
	s.Records = append(s.Records[:idx], s.Records[idx+1:]...)

	return nil
}
