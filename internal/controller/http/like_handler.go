package http

import (
	"errors"
	"net/http"

	"keijiban/internal/entity"
	"keijiban/internal/usecase"
	"keijiban/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

type ToggleLikeRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// ToggleLike godoc
// @Summary      Toggle a like
// @Description  Like a post, or remove the like if the user already liked it. Returns the recomputed like count.
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body ToggleLikeRequest true "Liking user"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	postID := c.Param("id")

	var req ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ユーザーIDが必要です"})
		return
	}

	result, err := h.likeUseCase.ToggleLike(postID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": "ユーザーIDが必要です"})
		case errors.Is(err, entity.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "投稿が見つかりません"})
		default:
			h.logger.Error("Failed to toggle like on post %s: %v", postID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "いいねの処理に失敗しました"})
		}
		return
	}

	message := "いいねしました"
	if !result.IsLiked {
		message = "いいねを取り消しました"
	}

	c.JSON(http.StatusOK, gin.H{
		"likeCount": result.LikeCount,
		"isLiked":   result.IsLiked,
		"message":   message,
	})
}
