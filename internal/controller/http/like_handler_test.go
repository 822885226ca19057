package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"keijiban/internal/entity"
	"keijiban/internal/usecase"
	"keijiban/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLikeUseCase is a mock implementation of LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleLike(postID, userID string) (*entity.LikeResult, error) {
	args := m.Called(postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeResult), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

func TestToggleLike_Like(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/api/posts/:id/like", handler.ToggleLike)

	mockUseCase.On("ToggleLike", "post-1", "u2").Return(&entity.LikeResult{LikeCount: 1, IsLiked: true}, nil)

	body := `{"userId":"u2"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/posts/post-1/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["likeCount"])
	assert.Equal(t, true, response["isLiked"])
	assert.Equal(t, "いいねしました", response["message"])
	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_Unlike(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/api/posts/:id/like", handler.ToggleLike)

	mockUseCase.On("ToggleLike", "post-1", "u2").Return(&entity.LikeResult{LikeCount: 0, IsLiked: false}, nil)

	body := `{"userId":"u2"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/posts/post-1/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(0), response["likeCount"])
	assert.Equal(t, false, response["isLiked"])
	assert.Equal(t, "いいねを取り消しました", response["message"])
	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_MissingUserID(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/api/posts/:id/like", handler.ToggleLike)

	body := `{}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/posts/post-1/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ユーザーIDが必要です", response["error"])
	mockUseCase.AssertNotCalled(t, "ToggleLike")
}

func TestToggleLike_PostNotFound(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/api/posts/:id/like", handler.ToggleLike)

	mockUseCase.On("ToggleLike", "missing", "u2").Return(nil, entity.ErrPostNotFound)

	body := `{"userId":"u2"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/posts/missing/like", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "投稿が見つかりません", response["error"])
	mockUseCase.AssertExpectations(t)
}
