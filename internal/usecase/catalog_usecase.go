package usecase

import (
	"fmt"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/gallery"
	"bakra-mandi/internal/repo/persistent"
	"bakra-mandi/pkg/logger"
)

type CatalogUseCase interface {
	ListGoats() ([]*entity.Goat, error)
	// GoatImages resolves the listing's scattered image fields into one
	// deduplicated gallery. The raw listing endpoints never do this; it is a
	// display-side concern.
	GoatImages(goatID uint) ([]string, error)
	GoatDescription(goatID uint) (string, error)
}

type catalogUseCase struct {
	goatRepo persistent.GoatRepository
	logger   *logger.Logger
}

func NewCatalogUseCase(goatRepo persistent.GoatRepository, logger *logger.Logger) CatalogUseCase {
	return &catalogUseCase{goatRepo: goatRepo, logger: logger}
}

func (uc *catalogUseCase) ListGoats() ([]*entity.Goat, error) {
	goats, err := uc.goatRepo.ListGoats()
	if err != nil {
		uc.logger.Error("Failed to list goats: %v", err)
		return nil, fmt.Errorf("failed to list goats: %w", err)
	}
	return goats, nil
}

func (uc *catalogUseCase) GoatImages(goatID uint) ([]string, error) {
	goat, err := uc.goatRepo.GetGoat(goatID)
	if err != nil {
		return nil, err
	}

	return gallery.ResolveImages(gallery.Listing{
		ImageURL:    goat.ImageURL,
		ImageURLs:   goat.ImageURLs,
		Description: goat.Description,
	}), nil
}

func (uc *catalogUseCase) GoatDescription(goatID uint) (string, error) {
	goat, err := uc.goatRepo.GetGoat(goatID)
	if err != nil {
		return "", err
	}

	return gallery.ProseDescription(gallery.Listing{
		Description: goat.Description,
	}, goat.Breed, goat.Age, goat.Weight), nil
}
