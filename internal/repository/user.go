package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	GetProfile(ctx context.Context, username string, viewerID uint) (*models.Profile, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Search(ctx context.Context, query string, limit int) ([]models.UserSummary, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByIdentifier looks a user up by username or email; login accepts either.
func (r *userRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetProfile fetches a user by exact username together with post, follower
// and following counts and the viewer-scoped is_following flag, all in a
// single SELECT. Only public columns are selected; email never leaves the
// store on this path. Profiles are never cached: the flag depends on the
// viewer and the counts must reflect current relation state.
func (r *userRepository) GetProfile(ctx context.Context, username string, viewerID uint) (*models.Profile, error) {
	defer observability.TrackQuery("profile", "users")()

	var profile models.Profile
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Select("users.id, users.username, users.full_name, users.bio, users.avatar, users.created_at, "+
			"(SELECT COUNT(*) FROM posts WHERE posts.user_id = users.id AND posts.deleted_at IS NULL) as posts_count, "+
			"(SELECT COUNT(*) FROM follows WHERE follows.following_id = users.id) as followers_count, "+
			"(SELECT COUNT(*) FROM follows WHERE follows.follower_id = users.id) as following_count, "+
			"EXISTS(SELECT 1 FROM follows WHERE follows.follower_id = ? AND follows.following_id = users.id) as is_following",
			viewerID).
		Where("users.username = ?", username).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", username)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Username or email already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Username or email already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// Search matches a case-insensitive substring against username or full name.
// An empty query returns no rows; callers short-circuit before reaching here.
func (r *userRepository) Search(ctx context.Context, query string, limit int) ([]models.UserSummary, error) {
	var users []models.UserSummary
	like := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id, username, full_name, avatar").
		Where("LOWER(username) LIKE LOWER(?) OR LOWER(full_name) LIKE LOWER(?)", like, like).
		Order("username ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
