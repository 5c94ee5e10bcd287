package account

import (
	"sort"
	"sync"
	"time"
)

// Store owns the account collection. A single mutex serializes writes;
// every read works on copies so callers never alias stored records.
type Store struct {
	mu       sync.RWMutex
	accounts map[int]Account
	nextID   int
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[int]Account),
		nextID:   1,
	}
}

// List returns the available accounts matching f, ordered by the requested
// sort key. Ties keep insertion (id) order. An empty result is not an error.
func (s *Store) List(f Filters) []Account {
	s.mu.RLock()
	out := make([]Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if a.Status == Available && f.match(a) {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()

	// Map iteration order is random; establish insertion order first so the
	// stable sort below has a deterministic tie-break.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if f.SortBy != "" {
		less := f.less
		if f.SortOrder == Desc {
			less = func(a, b Account) bool { return f.less(b, a) }
		}
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}

	return out
}

func (s *Store) Get(id int) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	return a, ok
}

// Create assigns the next id and the creation timestamp. The caller is
// responsible for validating na beforehand.
func (s *Store) Create(na AccountNew) Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Account{
		ID:            s.nextID,
		SellerID:      na.SellerID,
		Platform:      na.Platform,
		AccountHandle: na.AccountHandle,
		Price:         float64(na.Price),
		Description:   na.Description,
		Category:      na.Category,
		Age:           na.Age,
		Status:        na.Status,
		SellerName:    na.SellerName,
		CreatedAt:     time.Now().UTC(),
	}
	if na.Followers != nil {
		a.Followers = *na.Followers
	}
	if na.Engagement != nil {
		a.Engagement = floatp(float64(*na.Engagement))
	}
	if na.SellerRating != nil {
		a.SellerRating = floatp(float64(*na.SellerRating))
	}
	if na.Verified != nil {
		a.Verified = *na.Verified
	}
	if na.SellerReviews != nil {
		a.SellerReviews = *na.SellerReviews
	}
	if a.Status == "" {
		a.Status = Available
	}

	s.nextID++
	s.accounts[a.ID] = a
	return a
}

// Update merges the set fields of up onto the stored record. The id and
// creation timestamp are never touched, even when up carries them.
func (s *Store) Update(id int, up AccountUp) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return Account{}, false
	}

	if up.SellerID != nil {
		a.SellerID = *up.SellerID
	}
	if up.Platform != nil {
		a.Platform = *up.Platform
	}
	if up.AccountHandle != nil {
		a.AccountHandle = *up.AccountHandle
	}
	if up.Followers != nil {
		a.Followers = *up.Followers
	}
	if up.Engagement != nil {
		a.Engagement = floatp(float64(*up.Engagement))
	}
	if up.Price != nil {
		a.Price = float64(*up.Price)
	}
	if up.Description != nil {
		a.Description = *up.Description
	}
	if up.Category != nil {
		a.Category = *up.Category
	}
	if up.Verified != nil {
		a.Verified = *up.Verified
	}
	if up.Age != nil {
		a.Age = up.Age
	}
	if up.Status != nil {
		a.Status = *up.Status
	}
	if up.SellerName != nil {
		a.SellerName = *up.SellerName
	}
	if up.SellerRating != nil {
		a.SellerRating = floatp(float64(*up.SellerRating))
	}
	if up.SellerReviews != nil {
		a.SellerReviews = *up.SellerReviews
	}

	s.accounts[id] = a
	return a, true
}

// Delete removes the record permanently. Deleting an unknown id reports
// false rather than failing.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return false
	}
	delete(s.accounts, id)
	return true
}
