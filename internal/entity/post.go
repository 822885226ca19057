package entity

import "time"

// SortOrder selects how listed posts are ordered.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortLikes  SortOrder = "likes"
)

type Post struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// LikeCount is derived on read, never stored.
	LikeCount int64 `json:"likeCount"`
}

type Like struct {
	ID        string    `json:"_id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	LikeCount int64 `json:"likeCount"`
	IsLiked   bool  `json:"isLiked"`
}
