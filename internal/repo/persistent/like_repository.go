package persistent

import (
	"errors"
	"fmt"

	"keijiban/internal/entity"
	"keijiban/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeRepository interface {
	// Find returns nil when no like exists for the pair.
	Find(postID, userID string) (*entity.Like, error)
	// Create fails with entity.ErrAlreadyLiked when the (post, user)
	// pair already exists, which the unique index guarantees to catch
	// even when two toggles race past Find.
	Create(postID, userID string) (*entity.Like, error)
	Delete(id string) error
	CountByPost(postID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Find(postID, userID string) (*entity.Like, error) {
	var likeModel model.LikeModel
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&likeModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find like: %w", err)
	}
	return ToLikeEntity(&likeModel), nil
}

func (r *likeRepository) Create(postID, userID string) (*entity.Like, error) {
	likeModel := &model.LikeModel{
		ID:     uuid.New().String(),
		PostID: postID,
		UserID: userID,
	}
	if err := r.db.Create(likeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entity.ErrAlreadyLiked
		}
		return nil, fmt.Errorf("failed to create like: %w", err)
	}
	return ToLikeEntity(likeModel), nil
}

func (r *likeRepository) Delete(id string) error {
	if err := r.db.Delete(&model.LikeModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (r *likeRepository) CountByPost(postID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
