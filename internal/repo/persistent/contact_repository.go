package persistent

import (
	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	CreateMessage(name, email, subject, message string) (*entity.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) CreateMessage(name, email, subject, message string) (*entity.ContactMessage, error) {
	row := model.ContactMessageModel{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return ToContactMessageEntity(&row), nil
}
