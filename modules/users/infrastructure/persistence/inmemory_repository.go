// Package persistence implements repository interfaces using specific storage backends.
// This is the outermost layer - it implements ports defined in the domain layer.
package persistence

import (
	"context"
	"sync"

	"github.com/mzukov/web-api/modules/users/domain"
)

// InMemoryRepository implements UserRepository using in-memory storage.
// Useful for testing and development.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	// order tracks insertion order so pages are stable without a real
	// CreatedAt index.
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		users: make(map[string]*domain.User),
	}
}

// Compile-time interface check.
var _ domain.UserRepository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id.String()]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.AssignID()
	r.store(user)
	return user, nil
}

func (r *InMemoryRepository) UpdateOrInsert(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.users[user.ID().String()]
	r.store(user)
	return user, !exists, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, exists := r.users[key]; !exists {
		return domain.ErrUserNotFound
	}
	delete(r.users, key)
	for i, existing := range r.order {
		if existing == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryRepository) GetPage(ctx context.Context, pageNumber, pageSize int) ([]*domain.User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.order)
	offset := (pageNumber - 1) * pageSize
	if offset >= total {
		return []*domain.User{}, total, nil
	}

	end := offset + pageSize
	if end > total {
		end = total
	}

	page := make([]*domain.User, 0, end-offset)
	for _, key := range r.order[offset:end] {
		page = append(page, r.users[key])
	}
	return page, total, nil
}

// store writes the user under its identifier, appending to the order
// index only on first sight. Callers hold the write lock.
func (r *InMemoryRepository) store(user *domain.User) {
	key := user.ID().String()
	if _, exists := r.users[key]; !exists {
		r.order = append(r.order, key)
	}
	r.users[key] = user
}
