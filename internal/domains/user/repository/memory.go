package repository

import (
	"context"
	"sync"

	"blog-backend/internal/domains/user"
)

type memoryRepository struct {
	mu         sync.RWMutex
	byUsername map[string]user.User
}

func NewMemoryRepository() user.Repository {
	return &memoryRepository{byUsername: make(map[string]user.User)}
}

func (r *memoryRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[u.Username]; ok {
		return user.ErrUsernameTaken
	}
	r.byUsername[u.Username] = *u
	return nil
}

func (r *memoryRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *memoryRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUsername[username]
	return ok, nil
}
