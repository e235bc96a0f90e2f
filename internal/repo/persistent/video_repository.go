package persistent

import (
	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/model"

	"gorm.io/gorm"
)

type VideoRepository interface {
	ListActive() ([]*entity.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) ListActive() ([]*entity.Video, error) {
	var rows []model.VideoModel
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, 0, len(rows))
	for i := range rows {
		videos = append(videos, ToVideoEntity(&rows[i]))
	}
	return videos, nil
}
