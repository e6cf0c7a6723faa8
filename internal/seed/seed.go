// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options controls how much demo data Run generates.
type Options struct {
	Users        int
	PostsPerUser int
	// MaxDays spreads post timestamps over this many days back.
	MaxDays int
}

// DefaultOptions are sized for a local demo feed.
func DefaultOptions() Options {
	return Options{Users: 10, PostsPerUser: 3, MaxDays: 30}
}

// Run populates the database with fake users, posts, likes, follows and
// comments. Every generated user shares the password "password123".
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.MaxDays <= 0 {
		opts.MaxDays = 30
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(hashed),
			FullName: gofakeit.Name(),
			Bio:      gofakeit.Sentence(10),
			Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, opts.Users*opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post := &models.Post{
				Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
				UserID:    user.ID,
				CreatedAt: randomPastTime(r, opts.MaxDays),
			}
			if r.Intn(2) == 0 {
				post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
			}
			if err := db.Create(post).Error; err != nil {
				return fmt.Errorf("creating post: %w", err)
			}
			posts = append(posts, post)
		}
	}

	// Random likes and comments. OnConflict DoNothing keeps the pair-unique
	// constraint happy when the same (user, post) comes up twice.
	for _, post := range posts {
		for _, user := range users {
			if user.ID == post.UserID || r.Intn(3) != 0 {
				continue
			}
			like := models.Like{UserID: user.ID, PostID: post.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return fmt.Errorf("creating like: %w", err)
			}
			if r.Intn(4) == 0 {
				comment := models.Comment{
					Content: gofakeit.Sentence(8),
					UserID:  user.ID,
					PostID:  post.ID,
				}
				if err := db.Create(&comment).Error; err != nil {
					return fmt.Errorf("creating comment: %w", err)
				}
			}
		}
	}

	for _, follower := range users {
		for _, target := range users {
			if follower.ID == target.ID || r.Intn(3) != 0 {
				continue
			}
			follow := models.Follow{FollowerID: follower.ID, FollowingID: target.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error; err != nil {
				return fmt.Errorf("creating follow: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users and %d posts", len(users), len(posts))
	return nil
}

func randomPastTime(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(hoursBack) * time.Hour).
		Add(-time.Duration(minsBack) * time.Minute)
}
