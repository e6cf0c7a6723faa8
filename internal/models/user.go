// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account in the Ripple application.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	FullName  string         `json:"full_name"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// UserSummary is the trimmed projection returned by user search.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

// Profile is the public projection of a user returned by profile reads,
// together with aggregate counts and the viewer-scoped following flag.
// It deliberately omits email and other private columns. The counts are not
// persisted; they are computed at query time by scalar subqueries.
type Profile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	Bio            string    `json:"bio"`
	Avatar         string    `json:"avatar"`
	CreatedAt      time.Time `json:"created_at"`
	PostsCount     int       `gorm:"->" json:"posts_count"`
	FollowersCount int       `gorm:"->" json:"followers_count"`
	FollowingCount int       `gorm:"->" json:"following_count"`
	// IsFollowing indicates whether the requesting viewer follows this user (computed)
	IsFollowing bool `gorm:"->" json:"is_following"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "users"
}
