package persistent

import (
	"errors"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/model"

	"gorm.io/gorm"
)

type GoatRepository interface {
	ListGoats() ([]*entity.Goat, error)
	GetGoat(goatID uint) (*entity.Goat, error)
}

type goatRepository struct {
	db *gorm.DB
}

func NewGoatRepository(db *gorm.DB) GoatRepository {
	return &goatRepository{db: db}
}

func (r *goatRepository) ListGoats() ([]*entity.Goat, error) {
	var rows []model.GoatModel
	err := r.db.Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	goats := make([]*entity.Goat, 0, len(rows))
	for i := range rows {
		goats = append(goats, ToGoatEntity(&rows[i]))
	}
	return goats, nil
}

func (r *goatRepository) GetGoat(goatID uint) (*entity.Goat, error) {
	var row model.GoatModel
	if err := r.db.First(&row, goatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrGoatNotFound
		}
		return nil, err
	}
	return ToGoatEntity(&row), nil
}
