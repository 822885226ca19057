package http

import (
	"errors"
	"net/http"

	"keijiban/internal/entity"
	"keijiban/internal/usecase"
	"keijiban/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

func (h *PostHandler) formatPostResponse(post *entity.Post) map[string]interface{} {
	return map[string]interface{}{
		"_id":       post.ID,
		"title":     post.Title,
		"content":   post.Content,
		"userId":    post.UserID,
		"username":  post.Username,
		"createdAt": post.CreatedAt,
		"updatedAt": post.UpdatedAt,
		"likeCount": post.LikeCount,
	}
}

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	UserID   string `json:"userId" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	UserID  string `json:"userId"`
}

type DeletePostRequest struct {
	UserID string `json:"userId"`
}

// ListPosts godoc
// @Summary      List posts
// @Description  Get all posts with live like counts. Supports search and sorting by recency or popularity.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        sort query string false "Sort order (newest or likes)" Enums(newest, likes)
// @Param        search query string false "Case-insensitive substring match against title or content"
// @Success      200  {array}   map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	sort := c.DefaultQuery("sort", string(entity.SortNewest))
	search := c.Query("search")

	posts, err := h.postUseCase.ListPosts(entity.SortOrder(sort), search)
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
		return
	}

	responses := make([]map[string]interface{}, len(posts))
	for i, post := range posts {
		responses[i] = h.formatPostResponse(post)
	}

	c.JSON(http.StatusOK, responses)
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a new post. All fields are required.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body CreatePostRequest true "Post data"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "すべての必須フィールドを入力してください"})
		return
	}

	post, err := h.postUseCase.CreatePost(req.Title, req.Content, req.UserID, req.Username)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "すべての必須フィールドを入力してください"})
			return
		}
		h.logger.Error("Failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の作成に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, h.formatPostResponse(post))
}

// GetPost godoc
// @Summary      Get a post
// @Description  Get a single post with its live like count.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")

	post, err := h.postUseCase.GetPost(postID)
	if err != nil {
		if errors.Is(err, entity.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "投稿が見つかりません"})
			return
		}
		h.logger.Error("Failed to get post %s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, h.formatPostResponse(post))
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Update title and content. Only the author can update their own post.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body UpdatePostRequest true "Update data"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("id")

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "タイトルと内容は必須です"})
		return
	}

	post, err := h.postUseCase.UpdatePost(postID, req.Title, req.Content, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": "タイトルと内容は必須です"})
		case errors.Is(err, entity.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "投稿が見つかりません"})
		case errors.Is(err, entity.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "投稿の編集権限がありません"})
		default:
			h.logger.Error("Failed to update post %s: %v", postID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の更新に失敗しました"})
		}
		return
	}

	c.JSON(http.StatusOK, h.formatPostResponse(post))
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post permanently. Only the author can delete their own post.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body DeletePostRequest true "Requester identity"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	var req DeletePostRequest
	// A missing body resolves to an empty requester, which fails the
	// ownership check below.
	_ = c.ShouldBindJSON(&req)

	if err := h.postUseCase.DeletePost(postID, req.UserID); err != nil {
		switch {
		case errors.Is(err, entity.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "投稿が見つかりません"})
		case errors.Is(err, entity.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "投稿の削除権限がありません"})
		default:
			h.logger.Error("Failed to delete post %s: %v", postID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の削除に失敗しました"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
