package catalog

import (
	"context"
	"fmt"
	"sync"
)

// MemStore serves a fixed product list in the order it was given.
type MemStore struct {
	mu    sync.RWMutex
	list  []Product
	index map[string]int
}

func NewMemStore(products []Product) (*MemStore, error) {
	s := &MemStore{
		list:  make([]Product, 0, len(products)),
		index: make(map[string]int, len(products)),
	}
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q: empty id", p.Name)
		}
		if _, dup := s.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		s.index[p.ID] = len(s.list)
		s.list = append(s.list, p.Clone())
	}
	return s, nil
}

// NewSeedStore returns a MemStore over the built-in demo catalog.
func NewSeedStore() *MemStore {
	s, err := NewMemStore(Seed())
	if err != nil {
		panic(err)
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.list))
	for i, p := range s.list {
		out[i] = p.Clone()
	}
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Product{}, false, nil
	}
	return s.list[i].Clone(), true, nil
}
