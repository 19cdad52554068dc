package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"news-server/repository"
	"news-server/services"
)

func newTestService() (*services.UserService, *repository.MemoryUserRepository) {
	repo := repository.NewMemoryUserRepository()
	return services.NewUserService(repo, zap.NewNop().Sugar()), repo
}

func registerTestUser(t *testing.T, svc *services.UserService) string {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "alice@gmail.com", "1112223333", "secret"))
	id, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	return id
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "alice@gmail.com", "1112223333", "pw1"))

	err := svc.Register(ctx, "alice", "other@gmail.com", "9998887777", "pw2")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	// The losing call must not have created a document.
	_, err = svc.Login(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "alice@gmail.com", "1112223333", "pw1"))

	err := svc.Register(ctx, "bob", "alice@gmail.com", "9998887777", "pw2")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := registerTestUser(t, svc)

	got, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	registerTestUser(t, svc)

	require.NoError(t, svc.ResetPassword(ctx, "alice@gmail.com", "fresh"))

	_, err := svc.Login(ctx, "alice", "secret")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "alice", "fresh")
	assert.NoError(t, err)

	err = svc.ResetPassword(ctx, "missing@gmail.com", "fresh")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAddFavoriteDeduplicatesByURL(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := registerTestUser(t, svc)

	require.NoError(t, svc.AddFavorite(ctx, id, "https://news.example/a", "first"))
	require.NoError(t, svc.AddFavorite(ctx, id, "https://news.example/a", "second"))

	favorites, err := svc.Favorites(ctx, id)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	// The original snapshot wins; the duplicate add is a no-op.
	assert.Equal(t, "first", favorites[0].Description)
}

func TestFavoritesPreserveInsertionOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := registerTestUser(t, svc)

	urls := []string{"https://news.example/a", "https://news.example/b", "https://news.example/c"}
	for _, u := range urls {
		require.NoError(t, svc.AddFavorite(ctx, id, u, "d"))
	}

	favorites, err := svc.Favorites(ctx, id)
	require.NoError(t, err)
	require.Len(t, favorites, 3)
	for i, u := range urls {
		assert.Equal(t, u, favorites[i].URL)
	}
}

func TestRemoveFavoriteIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := registerTestUser(t, svc)

	require.NoError(t, svc.AddFavorite(ctx, id, "https://news.example/a", "d"))

	require.NoError(t, svc.RemoveFavorite(ctx, id, "https://news.example/never-added"))
	favorites, err := svc.Favorites(ctx, id)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	require.NoError(t, svc.RemoveFavorite(ctx, id, "https://news.example/a"))
	favorites, err = svc.Favorites(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoritesUnknownUser(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Favorites(ctx, "64f000000000000000000000")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = svc.AddFavorite(ctx, "not-a-valid-id", "https://news.example/a", "d")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUpdateProfileValidationGateIsAtomic(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := registerTestUser(t, svc)

	// Email fails the suffix check, so the staged username change must not
	// be persisted either.
	err := svc.UpdateProfile(ctx, id, "alice2", "alice@hotmail.com", "")
	assert.ErrorIs(t, err, services.ErrEmailDomain)

	user, err := svc.Profile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@gmail.com", user.Email)
}

func TestUpdateProfilePhone(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := registerTestUser(t, svc)

	tests := []struct {
		name    string
		phone   string
		wantErr error
	}{
		{"ten digits", "9876543210", nil},
		{"nine digits", "987654321", services.ErrPhoneFormat},
		{"eleven digits", "98765432100", services.ErrPhoneFormat},
		{"non numeric", "98765abcde", services.ErrPhoneFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateProfile(ctx, id, "", "", tt.phone)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			user, err := svc.Profile(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.phone, user.Phone)
		})
	}
}

func TestUpdateProfileUsernameTaken(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := registerTestUser(t, svc)
	require.NoError(t, svc.Register(ctx, "bob", "bob@gmail.com", "2223334444", "pw"))

	err := svc.UpdateProfile(ctx, id, "bob", "", "")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	// Re-submitting the current username is not a conflict.
	assert.NoError(t, svc.UpdateProfile(ctx, id, "alice", "", ""))
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	err := svc.UpdateProfile(context.Background(), "64f000000000000000000000", "x", "", "")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
