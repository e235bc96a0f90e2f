package http

import (
	"errors"
	"net/http"
	"strconv"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/usecase"
	"bakra-mandi/pkg/logger"

	"github.com/gin-gonic/gin"
)

type GoatHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         *logger.Logger
}

func NewGoatHandler(catalogUseCase usecase.CatalogUseCase, logger *logger.Logger) *GoatHandler {
	return &GoatHandler{catalogUseCase: catalogUseCase, logger: logger}
}

// ListGoats godoc
// @Summary      List goats for sale
// @Description  Raw catalog records, newest first. Image fields are returned verbatim; use the images endpoint for a resolved gallery.
// @Tags         goats
// @Produce      json
// @Success      200  {array}   entity.Goat
// @Failure      500  {object}  map[string]string
// @Router       /goats [get]
func (h *GoatHandler) ListGoats(c *gin.Context) {
	goats, err := h.catalogUseCase.ListGoats()
	if err != nil {
		h.logger.Error("Failed to fetch goats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goats"})
		return
	}

	c.JSON(http.StatusOK, goats)
}

// GoatImages godoc
// @Summary      Resolved image gallery for a goat
// @Description  Collapses the listing's overlapping image fields into one deduplicated URL list, plus the prose description
// @Tags         goats
// @Produce      json
// @Param        id path int true "Goat ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /goats/{id}/images [get]
func (h *GoatHandler) GoatImages(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goat ID"})
		return
	}
	goatID := uint(id)

	images, err := h.catalogUseCase.GoatImages(goatID)
	if err != nil {
		if errors.Is(err, entity.ErrGoatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goat not found"})
			return
		}
		h.logger.Error("Failed to resolve goat images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve goat images"})
		return
	}

	description, err := h.catalogUseCase.GoatDescription(goatID)
	if err != nil {
		h.logger.Error("Failed to resolve goat description: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve goat description"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goat_id":     goatID,
		"images":      images,
		"description": description,
	})
}
