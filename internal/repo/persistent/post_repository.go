package persistent

import (
	"errors"
	"fmt"

	"keijiban/internal/entity"
	"keijiban/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	GetWithLikeCount(id string) (*entity.Post, error)
	List(sort entity.SortOrder, search string) ([]*entity.Post, error)
	Update(post *entity.Post) error
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

const likeCountSelect = "posts.*, count(likes.id) AS like_count"

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetWithLikeCount(id string) (*entity.Post, error) {
	var row model.PostWithLikeCount
	result := r.db.Model(&model.PostModel{}).
		Select(likeCountSelect).
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Where("posts.id = ?", id).
		Group("posts.id").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get post with like count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrPostNotFound
	}
	return ToAnnotatedPostEntity(&row), nil
}

func (r *postRepository) List(sort entity.SortOrder, search string) ([]*entity.Post, error) {
	query := r.db.Model(&model.PostModel{}).
		Select(likeCountSelect).
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Group("posts.id")

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("posts.title ILIKE ? OR posts.content ILIKE ?", pattern, pattern)
	}

	if sort == entity.SortLikes {
		query = query.Order("like_count DESC, posts.created_at DESC")
	} else {
		query = query.Order("posts.created_at DESC")
	}

	var rows []model.PostWithLikeCount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*entity.Post, len(rows))
	for i := range rows {
		posts[i] = ToAnnotatedPostEntity(&rows[i])
	}
	return posts, nil
}

func (r *postRepository) Update(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Save(postModel).Error; err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) Delete(id string) error {
	// Likes cascade at the schema level (likes.post_id ON DELETE CASCADE).
	if err := r.db.Delete(&model.PostModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
