package service

import (
	"context"

	"ripple/internal/models"
)

// Hand-written repository stubs. Each method delegates to an optional func
// field so tests only wire what they exercise.

type stubPostRepo struct {
	createFn  func(ctx context.Context, post *models.Post) error
	getByIDFn func(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	listFn    func(ctx context.Context, limit, offset int, viewerID uint) ([]models.Post, error)
	isLikedFn func(ctx context.Context, userID, postID uint) (bool, error)
	likeFn    func(ctx context.Context, userID, postID uint) error
	unlikeFn  func(ctx context.Context, userID, postID uint) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}

func (s *stubPostRepo) List(ctx context.Context, limit, offset int, viewerID uint) ([]models.Post, error) {
	return s.listFn(ctx, limit, offset, viewerID)
}

func (s *stubPostRepo) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}

func (s *stubPostRepo) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}

func (s *stubPostRepo) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}

type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Comment, error)
	listByPostFn func(ctx context.Context, postID uint) ([]models.Comment, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

type stubFollowRepo struct {
	isFollowingFn func(ctx context.Context, followerID, followingID uint) (bool, error)
	followFn      func(ctx context.Context, followerID, followingID uint) error
	unfollowFn    func(ctx context.Context, followerID, followingID uint) error
}

func (s *stubFollowRepo) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}

func (s *stubFollowRepo) Follow(ctx context.Context, followerID, followingID uint) error {
	return s.followFn(ctx, followerID, followingID)
}

func (s *stubFollowRepo) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.unfollowFn(ctx, followerID, followingID)
}

type stubUserRepo struct {
	getByIDFn         func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn      func(ctx context.Context, email string) (*models.User, error)
	getByUsernameFn   func(ctx context.Context, username string) (*models.User, error)
	getByIdentifierFn func(ctx context.Context, identifier string) (*models.User, error)
	getProfileFn      func(ctx context.Context, username string, viewerID uint) (*models.Profile, error)
	createFn          func(ctx context.Context, user *models.User) error
	updateFn          func(ctx context.Context, user *models.User) error
	searchFn          func(ctx context.Context, query string, limit int) ([]models.UserSummary, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *stubUserRepo) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return s.getByIdentifierFn(ctx, identifier)
}

func (s *stubUserRepo) GetProfile(ctx context.Context, username string, viewerID uint) (*models.Profile, error) {
	return s.getProfileFn(ctx, username, viewerID)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func (s *stubUserRepo) Search(ctx context.Context, query string, limit int) ([]models.UserSummary, error) {
	return s.searchFn(ctx, query, limit)
}
