package order

import (
	"sort"
	"sync"
)

// Store owns the order collection, keyed by the uuid assigned at checkout.
type Store struct {
	mu     sync.RWMutex
	orders map[string]Order
}

func NewStore() *Store {
	return &Store{orders: make(map[string]Order)}
}

func (s *Store) Create(ord Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[ord.ID] = ord
}

func (s *Store) Get(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ord, ok := s.orders[id]
	return ord, ok
}

// ListForUser returns the user's orders, oldest first.
func (s *Store) ListForUser(userID int) []Order {
	s.mu.RLock()
	out := make([]Order, 0)
	for _, ord := range s.orders {
		if ord.UserID == userID {
			out = append(out, ord)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
