package usecase

import (
	"fmt"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/repo/persistent"
	"bakra-mandi/pkg/logger"
)

type FeedUseCase interface {
	ListActiveVideos() ([]*entity.Video, error)
}

type feedUseCase struct {
	videoRepo persistent.VideoRepository
	logger    *logger.Logger
}

func NewFeedUseCase(videoRepo persistent.VideoRepository, logger *logger.Logger) FeedUseCase {
	return &feedUseCase{videoRepo: videoRepo, logger: logger}
}

// ListActiveVideos returns the public reel feed, newest first. LikesCount on
// each video is the ledger-maintained counter, already equal to the row count.
func (uc *feedUseCase) ListActiveVideos() ([]*entity.Video, error) {
	videos, err := uc.videoRepo.ListActive()
	if err != nil {
		uc.logger.Error("Failed to list videos: %v", err)
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}
