package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ripple/internal/models"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	var created *models.User
	repo := &stubUserRepo{
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			return nil, nil
		},
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			return nil, nil
		},
		createFn: func(_ context.Context, user *models.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
		FullName: "Alice A",
		Bio:      "  hello there  ",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	// Stored password must be a bcrypt hash, never the plaintext.
	require.NotNil(t, created)
	assert.NotEqual(t, "password123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))

	// Optional bio is persisted, trimmed.
	assert.Equal(t, "hello there", created.Bio)
}

func TestUserService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(&stubUserRepo{})

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"bad username", RegisterInput{Username: "a!", Email: "a@example.com", Password: "password123"}},
		{"bad email", RegisterInput{Username: "alice", Email: "not-an-email", Password: "password123"}},
		{"weak password", RegisterInput{Username: "alice", Email: "a@example.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.input)

			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestUserService_Register_Conflict(t *testing.T) {
	t.Parallel()

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()

		repo := &stubUserRepo{
			getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
				return &models.User{ID: 1, Username: username}, nil
			},
		}
		svc := NewUserService(repo)

		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "alice",
			Email:    "new@example.com",
			Password: "password123",
		})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		repo := &stubUserRepo{
			getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
				return nil, nil
			},
			getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
				return &models.User{ID: 1, Email: email}, nil
			},
		}
		svc := NewUserService(repo)

		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "newalice",
			Email:    "alice@example.com",
			Password: "password123",
		})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	// The unique constraints stay as the backstop for races between the
	// pre-checks and the insert.
	t.Run("insert race", func(t *testing.T) {
		t.Parallel()

		repo := &stubUserRepo{
			getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
				return nil, nil
			},
			getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
				return nil, nil
			},
			createFn: func(_ context.Context, user *models.User) error {
				return models.NewConflictError("Username or email already exists")
			},
		}
		svc := NewUserService(repo)

		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()

	var updated *models.User
	repo := &stubUserRepo{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "alice", FullName: "Alice A", Bio: "old bio"}, nil
		},
		updateFn: func(_ context.Context, user *models.User) error {
			updated = user
			return nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{
		Bio:    "  new bio  ",
		Avatar: "https://example.com/a.png",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// Provided fields are trimmed and applied; omitted fields keep their value.
	assert.Equal(t, "new bio", user.Bio)
	assert.Equal(t, "https://example.com/a.png", user.Avatar)
	assert.Equal(t, "Alice A", user.FullName)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
	}
	svc := NewUserService(repo)

	_, err := svc.UpdateProfile(context.Background(), 99, UpdateProfileInput{Bio: "x"})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUserRepo{
		getByIdentifierFn: func(_ context.Context, identifier string) (*models.User, error) {
			if identifier == "alice" || identifier == "alice@example.com" {
				return &models.User{ID: 1, Username: "alice", Password: string(hashed)}, nil
			}
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	// Login works with username or email.
	user, err := svc.Authenticate(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	user, err = svc.Authenticate(context.Background(), "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	// Wrong password and unknown identifier both yield the same error.
	_, err = svc.Authenticate(context.Background(), "alice", "wrongpass1")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)

	_, err = svc.Authenticate(context.Background(), "ghost", "password123")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestUserService_SearchUsers_EmptyQuery(t *testing.T) {
	t.Parallel()

	svc := NewUserService(&stubUserRepo{})

	results, err := svc.SearchUsers(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestUserService_SearchUsers(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{
		searchFn: func(_ context.Context, query string, limit int) ([]models.UserSummary, error) {
			assert.Equal(t, "jo", query)
			assert.Equal(t, 10, limit)
			return []models.UserSummary{{ID: 1, Username: "john_doe"}}, nil
		},
	}
	svc := NewUserService(repo)

	results, err := svc.SearchUsers(context.Background(), "jo")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "john_doe", results[0].Username)
}
