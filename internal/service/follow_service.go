package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// FollowService handles follow relations between users.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService creates a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// ToggleFollow flips the viewer's follow on the target user and reports the
// resulting state. Self-follows are rejected before touching storage.
func (s *FollowService) ToggleFollow(ctx context.Context, viewerID, targetID uint) (bool, error) {
	if viewerID == targetID {
		return false, models.NewValidationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return false, err
	}

	following, err := s.followRepo.IsFollowing(ctx, viewerID, targetID)
	if err != nil {
		return false, err
	}

	if following {
		if err := s.followRepo.Unfollow(ctx, viewerID, targetID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.followRepo.Follow(ctx, viewerID, targetID); err != nil {
		return false, err
	}
	return true, nil
}
