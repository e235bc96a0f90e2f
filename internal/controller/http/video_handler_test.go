package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/usecase"
	"bakra-mandi/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFeedUseCase is a mock implementation of FeedUseCase
type MockFeedUseCase struct {
	mock.Mock
}

func (m *MockFeedUseCase) ListActiveVideos() ([]*entity.Video, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

var _ usecase.FeedUseCase = (*MockFeedUseCase)(nil)

// MockEngagementUseCase is a mock implementation of EngagementUseCase
type MockEngagementUseCase struct {
	mock.Mock
}

func (m *MockEngagementUseCase) Toggle(videoID uint, deviceID string) (*entity.LikeResult, error) {
	args := m.Called(videoID, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeResult), args.Error(1)
}

func (m *MockEngagementUseCase) IsLiked(videoID uint, deviceID string) (bool, error) {
	args := m.Called(videoID, deviceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementUseCase) GetLikeCount(videoID uint) (int64, error) {
	args := m.Called(videoID)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.EngagementUseCase = (*MockEngagementUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newVideoTestHandler() (*VideoHandler, *MockFeedUseCase, *MockEngagementUseCase) {
	feed := new(MockFeedUseCase)
	engagement := new(MockEngagementUseCase)
	return NewVideoHandler(feed, engagement, logger.New()), feed, engagement
}

func TestListVideos(t *testing.T) {
	handler, feed, _ := newVideoTestHandler()
	feed.On("ListActiveVideos").Return([]*entity.Video{
		{ID: 2, Title: "Newest", LikesCount: 3},
		{ID: 1, Title: "Older", LikesCount: 7},
	}, nil)

	router := setupTestRouter()
	router.GET("/videos", handler.ListVideos)

	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var videos []entity.Video
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &videos))
	assert.Len(t, videos, 2)
	assert.Equal(t, uint(2), videos[0].ID)
	feed.AssertExpectations(t)
}

func TestListVideos_StorageError(t *testing.T) {
	handler, feed, _ := newVideoTestHandler()
	feed.On("ListActiveVideos").Return(nil, errors.New("db down"))

	router := setupTestRouter()
	router.GET("/videos", handler.ListVideos)

	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestToggleLike_Like(t *testing.T) {
	handler, _, engagement := newVideoTestHandler()
	engagement.On("Toggle", uint(7), "d1").Return(&entity.LikeResult{Liked: true, LikesCount: 5}, nil)

	router := setupTestRouter()
	router.POST("/videos/:id/like", handler.ToggleLike)

	body, _ := json.Marshal(map[string]string{"device_id": "d1"})
	req := httptest.NewRequest(http.MethodPost, "/videos/7/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["liked"])
	assert.Equal(t, float64(5), resp["likes_count"])
	engagement.AssertExpectations(t)
}

func TestToggleLike_Unlike(t *testing.T) {
	handler, _, engagement := newVideoTestHandler()
	engagement.On("Toggle", uint(7), "d1").Return(&entity.LikeResult{Liked: false, LikesCount: 4}, nil)

	router := setupTestRouter()
	router.POST("/videos/:id/like", handler.ToggleLike)

	body, _ := json.Marshal(map[string]string{"device_id": "d1"})
	req := httptest.NewRequest(http.MethodPost, "/videos/7/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["liked"])
	assert.Equal(t, "Video unliked", resp["message"])
}

func TestToggleLike_InvalidVideoID(t *testing.T) {
	handler, _, engagement := newVideoTestHandler()

	router := setupTestRouter()
	router.POST("/videos/:id/like", handler.ToggleLike)

	body, _ := json.Marshal(map[string]string{"device_id": "d1"})
	req := httptest.NewRequest(http.MethodPost, "/videos/abc/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	engagement.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything)
}

func TestToggleLike_MissingDeviceID(t *testing.T) {
	handler, _, engagement := newVideoTestHandler()

	router := setupTestRouter()
	router.POST("/videos/:id/like", handler.ToggleLike)

	req := httptest.NewRequest(http.MethodPost, "/videos/7/like", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	engagement.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything)
}

func TestToggleLike_VideoNotFound(t *testing.T) {
	handler, _, engagement := newVideoTestHandler()
	engagement.On("Toggle", uint(99), "d1").Return(nil, entity.ErrVideoNotFound)

	router := setupTestRouter()
	router.POST("/videos/:id/like", handler.ToggleLike)

	body, _ := json.Marshal(map[string]string{"device_id": "d1"})
	req := httptest.NewRequest(http.MethodPost, "/videos/99/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleLike_StorageError(t *testing.T) {
	handler, _, engagement := newVideoTestHandler()
	engagement.On("Toggle", uint(7), "d1").Return(nil, errors.New("tx aborted"))

	router := setupTestRouter()
	router.POST("/videos/:id/like", handler.ToggleLike)

	body, _ := json.Marshal(map[string]string{"device_id": "d1"})
	req := httptest.NewRequest(http.MethodPost, "/videos/7/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLikeStatus(t *testing.T) {
	handler, _, engagement := newVideoTestHandler()
	engagement.On("IsLiked", uint(7), "d1").Return(true, nil)

	router := setupTestRouter()
	router.GET("/videos/:id/like", handler.LikeStatus)

	req := httptest.NewRequest(http.MethodGet, "/videos/7/like?device_id=d1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["liked"])
}

func TestLikeStatus_MissingDeviceID(t *testing.T) {
	handler, _, engagement := newVideoTestHandler()
	engagement.On("IsLiked", uint(7), "").Return(false, entity.ErrDeviceRequired)

	router := setupTestRouter()
	router.GET("/videos/:id/like", handler.LikeStatus)

	req := httptest.NewRequest(http.MethodGet, "/videos/7/like", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLikeCount(t *testing.T) {
	handler, _, engagement := newVideoTestHandler()
	engagement.On("GetLikeCount", uint(7)).Return(int64(12), nil)

	router := setupTestRouter()
	router.GET("/videos/:id/likes", handler.GetLikeCount)

	req := httptest.NewRequest(http.MethodGet, "/videos/7/likes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(12), resp["likes_count"])
}
