package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/repo/persistent"
	"bakra-mandi/pkg/logger"
	"bakra-mandi/pkg/queue"

	"github.com/redis/go-redis/v9"
)

type EngagementUseCase interface {
	Toggle(videoID uint, deviceID string) (*entity.LikeResult, error)
	IsLiked(videoID uint, deviceID string) (bool, error)
	GetLikeCount(videoID uint) (int64, error)
}

type engagementUseCase struct {
	engagementRepo persistent.EngagementRepository
	redisClient    *redis.Client
	queueClient    *queue.Client
	logger         *logger.Logger
}

func NewEngagementUseCase(
	engagementRepo persistent.EngagementRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) EngagementUseCase {
	return &engagementUseCase{
		engagementRepo: engagementRepo,
		redisClient:    redisClient,
		queueClient:    queueClient,
		logger:         logger,
	}
}

func likesKey(videoID uint) string {
	return fmt.Sprintf("video:likes:%d", videoID)
}

// Toggle flips the like state for the given device. The ledger row and the
// counter move together inside the repository transaction; here we only handle
// validation, the rare conflict rerun, the count cache and the alert fanout.
func (uc *engagementUseCase) Toggle(videoID uint, deviceID string) (*entity.LikeResult, error) {
	if strings.TrimSpace(deviceID) == "" {
		return nil, entity.ErrDeviceRequired
	}

	liked, count, err := uc.engagementRepo.Toggle(videoID, deviceID)
	if errors.Is(err, entity.ErrLikeConflict) {
		// The same device toggled twice at once and both passed the absence
		// check. Rerun: this call now sees the winner's row and lands as an
		// unlike, so the two calls net out the same as if they had queued.
		liked, count, err = uc.engagementRepo.Toggle(videoID, deviceID)
	}
	if err != nil {
		if errors.Is(err, entity.ErrVideoNotFound) {
			return nil, err
		}
		uc.logger.Error("Failed to toggle like: %v", err)
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	ctx := context.Background()
	if setErr := uc.redisClient.Set(ctx, likesKey(videoID), count, 0).Err(); setErr != nil {
		uc.logger.Warn("Failed to refresh like count cache for video %d: %v", videoID, setErr)
	}

	if liked && uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":      "reel_like",
				"video_id":  videoID,
				"device_id": deviceID,
				"priority":  3,
			}
			if err := uc.queueClient.PublishAlert(task); err != nil {
				uc.logger.Error("Failed to publish like alert: %v", err)
			}
		}()
	}

	return &entity.LikeResult{Liked: liked, LikesCount: count}, nil
}

// IsLiked answers "not liked" for unknown videos instead of failing, same as
// the toggle-free status check the storefront always exposed.
func (uc *engagementUseCase) IsLiked(videoID uint, deviceID string) (bool, error) {
	if strings.TrimSpace(deviceID) == "" {
		return false, entity.ErrDeviceRequired
	}
	return uc.engagementRepo.IsLiked(videoID, deviceID)
}

func (uc *engagementUseCase) GetLikeCount(videoID uint) (int64, error) {
	ctx := context.Background()

	countStr, err := uc.redisClient.Get(ctx, likesKey(videoID)).Result()
	if err == nil {
		count, _ := strconv.ParseInt(countStr, 10, 64)
		return count, nil
	}

	count, err := uc.engagementRepo.CountLikes(videoID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	uc.redisClient.Set(ctx, likesKey(videoID), count, 0)
	return count, nil
}
