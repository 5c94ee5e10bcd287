package user

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrDuplicate = errors.New("username or email already taken")

var ErrWrongCredentials = errors.New("wrong username or password")

// Store owns the user collection.
type Store struct {
	mu     sync.RWMutex
	users  map[int]User
	nextID int
}

func NewStore() *Store {
	return &Store{
		users:  make(map[int]User),
		nextID: 1,
	}
}

// Create hashes the password and stores the user. Usernames and emails
// are unique.
func (s *Store) Create(nu UserNew) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hashing password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == nu.Username || u.Email == nu.Email {
			return User{}, ErrDuplicate
		}
	}

	u := User{
		ID:           s.nextID,
		Username:     nu.Username,
		Email:        nu.Email,
		PasswordHash: hash,
	}
	s.nextID++
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) Get(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) ByUsername(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

// Authenticate checks the password against the stored hash. It does not
// reveal whether the username or the password was wrong.
func (s *Store) Authenticate(username, password string) (User, error) {
	u, ok := s.ByUsername(username)
	if !ok {
		return User{}, ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrWrongCredentials
	}
	return u, nil
}
