package model

import "time"

type VideoModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `gorm:"not null" json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	LikesCount   int       `gorm:"not null;default:0" json:"likes_count"`
	IsActive     bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (VideoModel) TableName() string { return "videos" }
