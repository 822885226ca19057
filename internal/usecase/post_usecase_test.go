package usecase

import (
	"testing"
	"time"

	"keijiban/internal/entity"
	"keijiban/internal/repo/persistent"
	"keijiban/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetWithLikeCount(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) List(sort entity.SortOrder, search string) ([]*entity.Post, error) {
	args := m.Called(sort, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

func TestCreatePost_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	mockRepo.On("Create", mock.AnythingOfType("*entity.Post")).Return(nil)

	post, err := uc.CreatePost("Hello", "World", "u1", "Alice")

	assert.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Content)
	assert.Equal(t, "u1", post.UserID)
	assert.Equal(t, "Alice", post.Username)
	assert.Equal(t, int64(0), post.LikeCount)
	mockRepo.AssertExpectations(t)
}

func TestCreatePost_EmptyTitle(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	post, err := uc.CreatePost("", "World", "u1", "Alice")

	assert.Nil(t, post)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreatePost_EmptyContent(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	post, err := uc.CreatePost("Hello", "", "u1", "Alice")

	assert.Nil(t, post)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreatePost_MissingIdentity(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	_, err := uc.CreatePost("Hello", "World", "", "Alice")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = uc.CreatePost("Hello", "World", "u1", "")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestUpdatePost_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	stored := &entity.Post{
		ID:      "post-1",
		Title:   "Old",
		Content: "Old content",
		UserID:  "u1",
	}
	annotated := &entity.Post{
		ID:        "post-1",
		Title:     "New",
		Content:   "New content",
		UserID:    "u1",
		LikeCount: 2,
	}

	mockRepo.On("GetByID", "post-1").Return(stored, nil)
	mockRepo.On("Update", mock.MatchedBy(func(p *entity.Post) bool {
		return p.Title == "New" && p.Content == "New content"
	})).Return(nil)
	mockRepo.On("GetWithLikeCount", "post-1").Return(annotated, nil)

	post, err := uc.UpdatePost("post-1", "New", "New content", "u1")

	assert.NoError(t, err)
	assert.Equal(t, "New", post.Title)
	assert.Equal(t, int64(2), post.LikeCount)
	mockRepo.AssertExpectations(t)
}

func TestUpdatePost_Forbidden(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	stored := &entity.Post{ID: "post-1", Title: "Old", Content: "Old", UserID: "u1"}
	mockRepo.On("GetByID", "post-1").Return(stored, nil)

	post, err := uc.UpdatePost("post-1", "New", "New content", "u2")

	assert.Nil(t, post)
	assert.ErrorIs(t, err, entity.ErrForbidden)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestUpdatePost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	mockRepo.On("GetByID", "missing").Return(nil, entity.ErrPostNotFound)

	post, err := uc.UpdatePost("missing", "New", "New content", "u1")

	assert.Nil(t, post)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestUpdatePost_EmptyFields(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	_, err := uc.UpdatePost("post-1", "", "content", "u1")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = uc.UpdatePost("post-1", "title", "", "u1")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestDeletePost_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	stored := &entity.Post{ID: "post-1", UserID: "u1"}
	mockRepo.On("GetByID", "post-1").Return(stored, nil)
	mockRepo.On("Delete", "post-1").Return(nil)

	err := uc.DeletePost("post-1", "u1")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDeletePost_Forbidden(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	stored := &entity.Post{ID: "post-1", UserID: "u1"}
	mockRepo.On("GetByID", "post-1").Return(stored, nil)

	err := uc.DeletePost("post-1", "u2")

	assert.ErrorIs(t, err, entity.ErrForbidden)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestDeletePost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	mockRepo.On("GetByID", "missing").Return(nil, entity.ErrPostNotFound)

	err := uc.DeletePost("missing", "u1")

	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestListPosts_DefaultsToNewest(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	now := time.Now()
	posts := []*entity.Post{
		{ID: "a", CreatedAt: now, LikeCount: 0},
		{ID: "b", CreatedAt: now.Add(-time.Hour), LikeCount: 3},
	}
	mockRepo.On("List", entity.SortNewest, "").Return(posts, nil)

	result, err := uc.ListPosts("bogus", "")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	mockRepo.AssertExpectations(t)
}

func TestListPosts_SortByLikesWithSearch(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	mockRepo.On("List", entity.SortLikes, "Replit").Return([]*entity.Post{}, nil)

	result, err := uc.ListPosts(entity.SortLikes, "Replit")

	assert.NoError(t, err)
	assert.Empty(t, result)
	mockRepo.AssertExpectations(t)
}
