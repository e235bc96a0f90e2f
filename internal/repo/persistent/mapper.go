package persistent

import (
	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/model"
)

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		LikesCount:   m.LikesCount,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToGoatEntity(m *model.GoatModel) *entity.Goat {
	if m == nil {
		return nil
	}

	return &entity.Goat{
		ID:           m.ID,
		Name:         m.Name,
		Breed:        m.Breed,
		Age:          m.Age,
		Weight:       m.Weight,
		Price:        m.Price,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		ImageURLs:    append([]string(nil), m.ImageURLs...),
		IsAvailable:  m.IsAvailable,
		Gender:       m.Gender,
		Color:        m.Color,
		HealthStatus: m.HealthStatus,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToContactMessageEntity(m *model.ContactMessageModel) *entity.ContactMessage {
	if m == nil {
		return nil
	}

	return &entity.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
