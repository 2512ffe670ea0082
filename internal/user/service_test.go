package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, username, email, passwordHash string, superuser bool) (User, error) {
	args := m.Called(ctx, username, email, passwordHash, superuser)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := HashPassword("clave123")
	require.NoError(t, err)

	stored := User{
		ID:       1,
		Username: "admin",
		Password: hash,
		Groups:   []string{"admin"},
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByUsername", mock.Anything, "admin").Return(stored, nil)

		token, u, err := svc.Login(context.Background(), "admin", "clave123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "admin", u.Username)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByUsername", mock.Anything, "admin").Return(stored, nil)

		_, _, err := svc.Login(context.Background(), "admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByUsername", mock.Anything, "ghost").Return(User{}, ErrNotFound)

		_, _, err := svc.Login(context.Background(), "ghost", "clave123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUser_Role(t *testing.T) {
	assert.Equal(t, "admin", User{Groups: []string{"admin", "vendedor"}}.Role())
	assert.Equal(t, "user", User{}.Role())
}
