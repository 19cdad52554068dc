package repository

import (
	"context"
	"errors"

	"news-server/models"
)

// ErrUserNotFound is returned when no user matches the given id, username or
// email.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the persistence surface for the User collection. Save
// replaces the whole document; there is no version token, so a concurrent
// read-modify-save on the same user can overwrite the other party's write.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}
