package http

import (
	"net/http"

	"bakra-mandi/pkg/devicetoken"
	"bakra-mandi/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	tokens *devicetoken.Service
	logger *logger.Logger
}

func NewDeviceHandler(tokens *devicetoken.Service, logger *logger.Logger) *DeviceHandler {
	return &DeviceHandler{tokens: tokens, logger: logger}
}

// MintToken godoc
// @Summary      Mint a device token
// @Description  Issues a fresh signed device token for a browser to keep in localStorage. The token is an opaque identifier, not an account.
// @Tags         devices
// @Produce      json
// @Success      201  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /device-tokens [post]
func (h *DeviceHandler) MintToken(c *gin.Context) {
	token, deviceID, err := h.tokens.Mint()
	if err != nil {
		h.logger.Error("Failed to mint device token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mint device token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":     token,
		"device_id": deviceID,
	})
}
