package repository

import (
	"context"
	"errors"

	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts and likes.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int, viewerID uint) ([]models.Post, error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// postDetails selects posts together with their aggregate counts and the
// viewer-scoped liked flag. The subqueries keep counts consistent with the
// relation tables without denormalized counters to maintain.
func (r *postRepository) postDetails(ctx context.Context, viewerID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.*, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count, "+
			"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) as comments_count, "+
			"EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked",
			viewerID).
		Preload("User")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", post.UserID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	var post models.Post
	err := r.postDetails(ctx, viewerID).
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// List returns the global feed, newest first. The id tiebreak keeps paging
// stable when posts share a creation timestamp.
func (r *postRepository) List(ctx context.Context, limit, offset int, viewerID uint) ([]models.Post, error) {
	defer observability.TrackQuery("list", "posts")()

	var posts []models.Post
	err := r.postDetails(ctx, viewerID).
		Order("posts.created_at DESC, posts.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Like records a like. ON CONFLICT DO NOTHING makes the insert a no-op when
// a concurrent request already created the row, so toggles stay idempotent
// without serializing on the unique index error.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).Exec(
		"INSERT INTO likes (user_id, post_id, created_at) VALUES (?, ?, CURRENT_TIMESTAMP) "+
			"ON CONFLICT (user_id, post_id) DO NOTHING",
		userID, postID,
	).Error
	if err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("Post", postID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
