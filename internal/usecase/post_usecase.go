package usecase

import (
	"fmt"

	"keijiban/internal/entity"
	"keijiban/internal/repo/persistent"
	"keijiban/pkg/logger"
)

type PostUseCase interface {
	CreatePost(title, content, userID, username string) (*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	ListPosts(sort entity.SortOrder, search string) ([]*entity.Post, error)
	UpdatePost(postID, title, content, requesterID string) (*entity.Post, error)
	DeletePost(postID, requesterID string) error
}

type postUseCase struct {
	postRepo persistent.PostRepository
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(title, content, userID, username string) (*entity.Post, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrInvalidArgument)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", entity.ErrInvalidArgument)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", entity.ErrInvalidArgument)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entity.ErrInvalidArgument)
	}

	post := &entity.Post{
		Title:    title,
		Content:  content,
		UserID:   userID,
		Username: username,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *postUseCase) GetPost(postID string) (*entity.Post, error) {
	return uc.postRepo.GetWithLikeCount(postID)
}

func (uc *postUseCase) ListPosts(sort entity.SortOrder, search string) ([]*entity.Post, error) {
	if sort != entity.SortLikes {
		sort = entity.SortNewest
	}
	return uc.postRepo.List(sort, search)
}

func (uc *postUseCase) UpdatePost(postID, title, content, requesterID string) (*entity.Post, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrInvalidArgument)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", entity.ErrInvalidArgument)
	}

	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	// Ownership is a byte-for-byte match of the presented opaque id
	// against the stored author id.
	if post.UserID != requesterID {
		return nil, entity.ErrForbidden
	}

	post.Title = title
	post.Content = content

	if err := uc.postRepo.Update(post); err != nil {
		return nil, err
	}

	return uc.postRepo.GetWithLikeCount(postID)
}

func (uc *postUseCase) DeletePost(postID, requesterID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return err
	}

	if post.UserID != requesterID {
		return entity.ErrForbidden
	}

	return uc.postRepo.Delete(postID)
}
