package model

import (
	"time"

	"github.com/lib/pq"
)

type GoatModel struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Breed        string         `gorm:"not null" json:"breed"`
	Age          string         `json:"age"`
	Weight       string         `json:"weight"`
	Price        int            `gorm:"not null" json:"price"`
	Description  string         `json:"description"`
	ImageURL     string         `json:"image_url"`
	ImageURLs    pq.StringArray `gorm:"type:text[]" json:"image_urls"`
	IsAvailable  bool           `gorm:"not null;default:true" json:"is_available"`
	Gender       string         `json:"gender"`
	Color        string         `json:"color"`
	HealthStatus string         `json:"health_status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (GoatModel) TableName() string { return "goats" }
