package model

import "time"

// VideoLikeModel is one ledger row: one device, one video. The unique pair
// index is what stops a double-create when two toggles race.
type VideoLikeModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VideoID   uint      `gorm:"not null;uniqueIndex:idx_video_device" json:"video_id"`
	DeviceID  string    `gorm:"not null;uniqueIndex:idx_video_device" json:"device_id"`
	CreatedAt time.Time `json:"created_at"`

	Video VideoModel `gorm:"foreignKey:VideoID" json:"-"`
}

func (VideoLikeModel) TableName() string { return "video_likes" }
