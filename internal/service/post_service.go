// Package service contains the business logic of the application, sitting
// between HTTP handlers and repositories.
package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxPostLength = 5000

// PostService handles post creation, feed reads and like toggles.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePostInput holds the data needed to create a post.
type CreatePostInput struct {
	UserID   uint
	Content  string
	ImageURL string
}

// CreatePost validates and stores a new post. The image URL is stored as an
// opaque string; reachability is not checked.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, models.NewValidationError("Post content is required")
	}
	if len(content) > maxPostLength {
		return nil, models.NewValidationError("Post content must not exceed 5000 characters")
	}

	post := &models.Post{
		Content:  content,
		ImageURL: strings.TrimSpace(input.ImageURL),
		UserID:   input.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload through the detail query so the response carries the author and
	// zeroed counts in the same shape as feed rows.
	return s.postRepo.GetByID(ctx, post.ID, input.UserID)
}

// ListFeed returns the global feed for a viewer, newest posts first.
func (s *PostService) ListFeed(ctx context.Context, limit, offset int, viewerID uint) ([]models.Post, error) {
	return s.postRepo.List(ctx, limit, offset, viewerID)
}

// ToggleLike flips the viewer's like on a post and reports the resulting
// state. A like on a missing post surfaces as NotFound via the referential
// constraint; the unique index absorbs concurrent duplicate inserts.
func (s *PostService) ToggleLike(ctx context.Context, viewerID, postID uint) (bool, error) {
	liked, err := s.postRepo.IsLiked(ctx, viewerID, postID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.postRepo.Unlike(ctx, viewerID, postID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.postRepo.Like(ctx, viewerID, postID); err != nil {
		return false, err
	}
	return true, nil
}
