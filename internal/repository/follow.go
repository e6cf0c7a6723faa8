package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for follow relations.
type FollowRepository interface {
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Follow records a follow relation. The unique index plus ON CONFLICT DO
// NOTHING absorbs concurrent duplicate requests.
func (r *followRepository) Follow(ctx context.Context, followerID, followingID uint) error {
	err := r.db.WithContext(ctx).Exec(
		"INSERT INTO follows (follower_id, following_id, created_at) VALUES (?, ?, CURRENT_TIMESTAMP) "+
			"ON CONFLICT (follower_id, following_id) DO NOTHING",
		followerID, followingID,
	).Error
	if err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User", followingID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID uint) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
