package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing username", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo())
		_, err := svc.Register(ctx, RegisterInput{Password: "pw", Password2: "pw"})
		assertValidationError(t, err)
	})

	t.Run("password mismatch", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo())
		_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "pw1", Password2: "pw2"})
		assertValidationError(t, err)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: 1, Username: "alice"}, nil
		}
		svc := NewAuthService(userRepo)
		_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "pw", Password2: "pw"})
		assertValidationError(t, err)
	})

	t.Run("success hashes the password", func(t *testing.T) {
		t.Parallel()
		var created *models.User
		userRepo := noopUserRepo()
		userRepo.createFn = func(_ context.Context, u *models.User) error {
			u.ID = 1
			created = u
			return nil
		}
		svc := NewAuthService(userRepo)
		user, err := svc.Register(ctx, RegisterInput{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "s3cret",
			Password2: "s3cret",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "s3cret", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")))
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	withAlice := func() *userRepoStub {
		userRepo := noopUserRepo()
		userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			if username == "alice" {
				return &models.User{ID: 1, Username: "alice", Password: string(hashed)}, nil
			}
			return nil, nil
		}
		return userRepo
	}

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo())
		_, err := svc.Login(ctx, "", "")
		assertValidationError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(withAlice())
		_, err := svc.Login(ctx, "bob", "s3cret")
		assertValidationError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(withAlice())
		_, err := svc.Login(ctx, "alice", "wrong")
		assertValidationError(t, err)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(withAlice())
		user, err := svc.Login(ctx, "alice", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})
}
