package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"simpleblog/internal/models"
	"simpleblog/internal/repository"
)

type fakeUserRepo struct {
	nextID int64
	users  map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return repository.ErrUsernameTaken
	}
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func newAuthService(repo *fakeUserRepo) AuthService {
	return NewAuthService(repo, zap.NewNop())
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	user, err := svc.Register("alice", "secret1234")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret1234", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1234")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	first, err := svc.Register("alice", "secret1234")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other-password")
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "that username is already taken")

	// The first registration is unaffected.
	stored, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
}

func TestRegister_UsernameLengthBoundary(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())

	// Exactly 10 characters is allowed.
	_, err := svc.Register("abcdefghij", "secret1234")
	require.NoError(t, err)

	// 11 characters is not.
	_, err = svc.Register("abcdefghijk", "secret1234")
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "username cannot exceed 10 characters")
}

func TestRegister_AccumulatesErrors(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	_, err := svc.Register("   ", "short")

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "you must provide a username")
	assert.Contains(t, verrs, "password must be at least 7 characters")
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	registered, err := svc.Register("alice", "secret1234")
	require.NoError(t, err)

	user, err := svc.Authenticate("alice", "secret1234")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticate_WrongPasswordIsGeneric(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	_, err := svc.Register("alice", "secret1234")
	require.NoError(t, err)

	_, err = svc.Authenticate("alice", "not-the-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUserIsGeneric(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	_, err := svc.Authenticate("nobody", "whatever123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
