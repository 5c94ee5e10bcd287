package cart

import (
	"sort"
	"sync"
	"time"

	"github.com/sellhub/account-market/core/account"
)

// Store owns the cart collection. It joins entries against the account
// store on read; it never mutates accounts.
type Store struct {
	mu       sync.RWMutex
	items    map[int]Item
	nextID   int
	accounts *account.Store
}

func NewStore(accounts *account.Store) *Store {
	return &Store{
		items:    make(map[int]Item),
		nextID:   1,
		accounts: accounts,
	}
}

// ListForUser returns the user's cart joined with the account records.
// Items whose account has been deleted are silently dropped.
func (s *Store) ListForUser(userID int) []JoinedItem {
	s.mu.RLock()
	items := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.UserID == userID {
			items = append(items, it)
		}
	}
	s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	out := make([]JoinedItem, 0, len(items))
	for _, it := range items {
		a, ok := s.accounts.Get(it.AccountID)
		if !ok {
			continue
		}
		out = append(out, JoinedItem{Item: it, Account: a})
	}
	return out
}

// Add is idempotent per (user, account) pair: a second add returns the
// existing item unchanged instead of duplicating or bumping the quantity.
func (s *Store) Add(userID, accountID int) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.UserID == userID && it.AccountID == accountID {
			return it
		}
	}

	it := Item{
		ID:        s.nextID,
		UserID:    userID,
		AccountID: accountID,
		Quantity:  1,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.items[it.ID] = it
	return it
}

func (s *Store) Remove(userID, accountID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, it := range s.items {
		if it.UserID == userID && it.AccountID == accountID {
			delete(s.items, id)
			return true
		}
	}
	return false
}

// Clear drops every item for the user. An already empty cart still
// reports success.
func (s *Store) Clear(userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, it := range s.items {
		if it.UserID == userID {
			delete(s.items, id)
		}
	}
	return true
}
