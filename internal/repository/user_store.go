package repository

import (
	"fmt"
	"strings"
	"sync"

	"parkeo/internal/entities"
	apperrors "parkeo/internal/errors"
)

// UserStore holds the registered users. Email lookups are case-insensitive.
type UserStore struct {
	mu     sync.RWMutex
	users  []*entities.User
	nextID int
}

func NewUserStore(users []entities.User) *UserStore {
	s := &UserStore{nextID: 1}
	for i := range users {
		user := users[i]
		if user.ID >= s.nextID {
			s.nextID = user.ID + 1
		}
		s.users = append(s.users, &user)
	}
	return s
}

func (s *UserStore) GetByID(id int) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return *u, nil
		}
	}
	return entities.User{}, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
}

func (s *UserStore) GetByEmail(email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return *u, nil
		}
	}
	return entities.User{}, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
}

// Create registers a new user, refusing duplicate emails.
func (s *UserStore) Create(user entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return entities.User{}, fmt.Errorf("user %s: %w", user.Email, apperrors.ErrAlreadyExists)
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users = append(s.users, &user)
	return user, nil
}
