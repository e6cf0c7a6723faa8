package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxCommentLength = 2000

// CommentService handles comment creation and listing.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// AddCommentInput holds the data needed to create a comment.
type AddCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

// AddComment validates and stores a new comment. Post existence is not
// pre-checked; a missing post trips the referential constraint and surfaces
// as NotFound.
func (s *CommentService) AddComment(ctx context.Context, input AddCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(content) > maxCommentLength {
		return nil, models.NewValidationError("Comment content must not exceed 2000 characters")
	}

	comment := &models.Comment{
		Content: content,
		UserID:  input.UserID,
		PostID:  input.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments oldest first. A missing post yields
// an empty list rather than an error.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
