package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"news-server/models"
	"news-server/repository"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailDomain        = errors.New("email must end with @gmail.com")
	ErrPhoneFormat        = errors.New("phone number must be 10 digits")
)

// UserService holds the account and favorites rules on top of the user store.
type UserService struct {
	repo   repository.UserRepository
	logger *zap.SugaredLogger
}

func NewUserService(repo repository.UserRepository, logger *zap.SugaredLogger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a new account with an empty favorites list. Username and
// email are each checked for uniqueness before the insert; username wins when
// both collide.
func (s *UserService) Register(ctx context.Context, username, email, phone, password string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	_, err = s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		Phone:        phone,
		Password:     password,
		FavoriteNews: []models.Favorite{},
	}
	id, err := s.repo.Insert(ctx, &user)
	if err != nil {
		return err
	}

	s.logger.Infof("Registered user %s (%s)", username, id)
	return nil
}

// Login matches the stored password by exact equality and returns the user's
// id on success.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user.Password != password {
		return "", ErrInvalidCredentials
	}
	return user.ID.Hex(), nil
}

// ResetPassword overwrites the password of the account holding the given
// email. Knowing the email is the only required proof of identity.
func (s *UserService) ResetPassword(ctx context.Context, email, newPassword string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	user.Password = newPassword
	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}
	s.logger.Infof("Password reset for user %s", user.Username)
	return nil
}

// Profile returns the user referenced by id.
func (s *UserService) Profile(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies any subset of username/email/phone. An empty string
// means the field was not supplied. Checks run in order and the first failure
// aborts the call with nothing persisted; all staged changes land in one Save.
func (s *UserService) UpdateProfile(ctx context.Context, id, username, email, phone string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if username != "" && username != user.Username {
		_, err := s.repo.FindByUsername(ctx, username)
		if err == nil {
			return ErrUsernameTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}
		user.Username = username
	}

	if email != "" && !strings.HasSuffix(email, "@gmail.com") {
		return ErrEmailDomain
	}
	if phone != "" && !isTenDigits(phone) {
		return ErrPhoneFormat
	}

	if email != "" {
		user.Email = email
	}
	if phone != "" {
		user.Phone = phone
	}

	return s.repo.Save(ctx, user)
}

// AddFavorite appends a bookmark unless the url is already present; the
// duplicate case is a silent no-op.
func (s *UserService) AddFavorite(ctx context.Context, id, url, description string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	for _, f := range user.FavoriteNews {
		if f.URL == url {
			return nil
		}
	}

	user.FavoriteNews = append(user.FavoriteNews, models.Favorite{URL: url, Description: description})
	return s.repo.Save(ctx, user)
}

// RemoveFavorite drops every entry matching the url. Removing a url that was
// never bookmarked still succeeds.
func (s *UserService) RemoveFavorite(ctx context.Context, id, url string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	kept := user.FavoriteNews[:0]
	for _, f := range user.FavoriteNews {
		if f.URL != url {
			kept = append(kept, f)
		}
	}
	user.FavoriteNews = kept

	return s.repo.Save(ctx, user)
}

// Favorites returns the user's bookmarks in insertion order.
func (s *UserService) Favorites(ctx context.Context, id string) ([]models.Favorite, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.FavoriteNews == nil {
		return []models.Favorite{}, nil
	}
	return user.FavoriteNews, nil
}

func isTenDigits(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
