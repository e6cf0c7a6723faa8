package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// searchLimit caps user search results.
const searchLimit = 10

// UserService handles registration, authentication and user reads.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterInput holds the data needed to register a user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Bio      string
}

// Register validates input, hashes the password and creates the user.
// Username and email collisions surface as Conflict; the unique constraints
// remain the backstop against concurrent registrations.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Username already exists")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		FullName: strings.TrimSpace(input.FullName),
		Bio:      strings.TrimSpace(input.Bio),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfileInput holds the editable profile fields. Empty fields are
// left untouched.
type UpdateProfileInput struct {
	FullName string
	Bio      string
	Avatar   string
}

// UpdateProfile updates the caller's own profile fields and persists the
// result, invalidating the cached user record.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(input.FullName); v != "" {
		user.FullName = v
	}
	if v := strings.TrimSpace(input.Bio); v != "" {
		user.Bio = v
	}
	if v := strings.TrimSpace(input.Avatar); v != "" {
		user.Avatar = v
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials for a username or email identifier.
// Unknown identifiers and wrong passwords are indistinguishable to callers.
func (s *UserService) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := s.userRepo.GetByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// GetUserByID returns a user by primary key.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// SearchUsers matches a case-insensitive substring against usernames and
// full names. An empty query returns an empty list, not an error.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]models.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.UserSummary{}, nil
	}
	return s.userRepo.Search(ctx, query, searchLimit)
}

// GetProfile returns a user's profile with aggregate counts and the
// viewer-scoped following flag. Username matching is exact and
// case-sensitive.
func (s *UserService) GetProfile(ctx context.Context, username string, viewerID uint) (*models.Profile, error) {
	return s.userRepo.GetProfile(ctx, username, viewerID)
}
