package repository

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"news-server/models"
)

// MemoryUserRepository keeps users in a map. It backs the tests and lets the
// service run without a MongoDB instance; it enforces the same unique
// username/email constraints as the collection indexes.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return "", fmt.Errorf("duplicate key: username %q", user.Username)
		}
		if u.Email == user.Email {
			return "", fmt.Errorf("duplicate key: email %q", user.Email)
		}
	}

	user.ID = primitive.NewObjectID()
	r.users[user.ID.Hex()] = cloneUser(*user)
	return user.ID.Hex(), nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	c := cloneUser(u)
	return &c, nil
}

func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *MemoryUserRepository) find(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			c := cloneUser(u)
			return &c, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) Save(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID.Hex()] = cloneUser(*user)
	return nil
}

// cloneUser copies the favorites slice so callers never alias stored state.
func cloneUser(u models.User) models.User {
	u.FavoriteNews = append([]models.Favorite(nil), u.FavoriteNews...)
	return u
}
