package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Username  string    `gorm:"type:varchar(100);not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PostWithLikeCount is the read-side row produced by the likes join.
// like_count is always computed, never read from a stored column.
type PostWithLikeCount struct {
	ID        string    `gorm:"column:id"`
	Title     string    `gorm:"column:title"`
	Content   string    `gorm:"column:content"`
	UserID    string    `gorm:"column:user_id"`
	Username  string    `gorm:"column:username"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
	LikeCount int64     `gorm:"column:like_count"`
}
