// File: internal/user/repository.go
package user

import (
	"context"
	"sync"

	"taskboard_backend/internal/common"
)

// Repository defines the interface for user data operations.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByProvider(ctx context.Context, provider, providerID string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
}

// memoryRepository keeps the user table in process memory, guarded by a
// single mutex. A process restart resets it to empty. Constructed once at
// startup and handed to the service; tests build fresh instances for
// isolation.
type memoryRepository struct {
	mu     sync.RWMutex
	users  []User
	nextID int64
}

// NewMemoryRepository creates an empty in-memory user repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1}
}

// Create assigns the next sequential ID and stores the user.
func (r *memoryRepository) Create(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryRepository) FindByProvider(ctx context.Context, provider, providerID string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Provider == provider && r.users[i].ProviderID == providerID {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

// List returns every user in creation order.
func (r *memoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
