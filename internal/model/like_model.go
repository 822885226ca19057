package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel rows are created and hard-deleted, never updated.
// The unique (post_id, user_id) index is the authoritative guard
// against duplicate likes from concurrent toggles.
type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_post_user;index" json:"post_id"`
	UserID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
