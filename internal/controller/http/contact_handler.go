package http

import (
	"errors"
	"net/http"

	"bakra-mandi/internal/usecase"
	"bakra-mandi/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
	logger         *logger.Logger
}

func NewContactHandler(contactUseCase usecase.ContactUseCase, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{contactUseCase: contactUseCase, logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitMessage godoc
// @Summary      Send a contact message
// @Description  Saves the message and alerts the seller
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body contactRequest true "Message"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	saved, err := h.contactUseCase.SubmitMessage(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrContactFieldsMissing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and message are required"})
			return
		}
		h.logger.Error("Failed to save contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact message saved successfully",
		"id":      saved.ID,
	})
}
