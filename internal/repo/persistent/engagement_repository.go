package persistent

import (
	"errors"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngagementRepository interface {
	// Toggle flips the like state for one (video, device) pair and returns the
	// new state with the video's updated like count.
	Toggle(videoID uint, deviceID string) (bool, int, error)
	IsLiked(videoID uint, deviceID string) (bool, error)
	CountLikes(videoID uint) (int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// Toggle runs the whole flip as one transaction: a FOR UPDATE lock on the video
// row serializes every toggle for that video, then the ledger row is created or
// deleted and the counter rewritten from the live row count. Rewriting instead
// of incrementing keeps the counter equal to the row set even if an older
// deploy left it drifted, and it can never go below zero.
func (r *engagementRepository) Toggle(videoID uint, deviceID string) (bool, int, error) {
	var liked bool
	var count int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var video model.VideoModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&video, videoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrVideoNotFound
			}
			return err
		}

		var like model.VideoLikeModel
		err := tx.Where("video_id = ? AND device_id = ?", videoID, deviceID).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			like = model.VideoLikeModel{VideoID: videoID, DeviceID: deviceID}
			if err := tx.Create(&like).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return entity.ErrLikeConflict
				}
				return err
			}
			liked = true
		default:
			return err
		}

		if err := tx.Model(&model.VideoLikeModel{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&model.VideoModel{}).Where("id = ?", videoID).
			UpdateColumn("likes_count", count).Error
	})
	if err != nil {
		return false, 0, err
	}

	return liked, int(count), nil
}

// IsLiked never checks that the video exists: an unknown video reads as "not
// liked", matching the storefront's original status endpoint.
func (r *engagementRepository) IsLiked(videoID uint, deviceID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.VideoLikeModel{}).
		Where("video_id = ? AND device_id = ?", videoID, deviceID).
		Count(&count).Error
	return count > 0, err
}

func (r *engagementRepository) CountLikes(videoID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoLikeModel{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
