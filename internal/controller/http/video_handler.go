package http

import (
	"errors"
	"net/http"
	"strconv"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/usecase"
	"bakra-mandi/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	feedUseCase       usecase.FeedUseCase
	engagementUseCase usecase.EngagementUseCase
	logger            *logger.Logger
}

func NewVideoHandler(
	feedUseCase usecase.FeedUseCase,
	engagementUseCase usecase.EngagementUseCase,
	logger *logger.Logger,
) *VideoHandler {
	return &VideoHandler{
		feedUseCase:       feedUseCase,
		engagementUseCase: engagementUseCase,
		logger:            logger,
	}
}

type toggleLikeRequest struct {
	DeviceID string `json:"device_id"`
}

func parseVideoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video ID"})
		return 0, false
	}
	return uint(id), true
}

// ListVideos godoc
// @Summary      List active videos
// @Description  All active reels for the public feed, newest first, with like counts
// @Tags         videos
// @Produce      json
// @Success      200  {array}   entity.Video
// @Failure      500  {object}  map[string]string
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.feedUseCase.ListActiveVideos()
	if err != nil {
		h.logger.Error("Failed to fetch videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}

	c.JSON(http.StatusOK, videos)
}

// ToggleLike godoc
// @Summary      Toggle a like on a video
// @Description  Likes the video for this device, or removes the like if one exists
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        id      path  int                true  "Video ID"
// @Param        request body  toggleLikeRequest  true  "Device token"
// @Success      200  {object}  entity.LikeResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos/{id}/like [post]
func (h *VideoHandler) ToggleLike(c *gin.Context) {
	videoID, ok := parseVideoID(c)
	if !ok {
		return
	}

	var req toggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DeviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device ID is required"})
		return
	}

	result, err := h.engagementUseCase.Toggle(videoID, req.DeviceID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrDeviceRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Device ID is required"})
		case errors.Is(err, entity.ErrVideoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		default:
			h.logger.Error("Failed to toggle like: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		}
		return
	}

	message := "Video liked"
	if !result.Liked {
		message = "Video unliked"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     message,
		"liked":       result.Liked,
		"likes_count": result.LikesCount,
	})
}

// LikeStatus godoc
// @Summary      Check like status
// @Description  Whether this device has liked the video. Unknown videos read as not liked.
// @Tags         videos
// @Produce      json
// @Param        id        path   int     true  "Video ID"
// @Param        device_id query  string  true  "Device token"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Router       /videos/{id}/like [get]
func (h *VideoHandler) LikeStatus(c *gin.Context) {
	videoID, ok := parseVideoID(c)
	if !ok {
		return
	}

	deviceID := c.Query("device_id")
	liked, err := h.engagementUseCase.IsLiked(videoID, deviceID)
	if err != nil {
		if errors.Is(err, entity.ErrDeviceRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Device ID is required"})
			return
		}
		h.logger.Error("Failed to check like status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check like status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// GetLikeCount godoc
// @Summary      Get like count for a video
// @Description  Current like count (cache first, fallback to the ledger)
// @Tags         videos
// @Produce      json
// @Param        id path int true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos/{id}/likes [get]
func (h *VideoHandler) GetLikeCount(c *gin.Context) {
	videoID, ok := parseVideoID(c)
	if !ok {
		return
	}

	count, err := h.engagementUseCase.GetLikeCount(videoID)
	if err != nil {
		h.logger.Error("Failed to get like count: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get like count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"video_id": videoID, "likes_count": count})
}
