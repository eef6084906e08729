package handlers

import (
	"errors"
	"net/http"

	"github.com/JorgegrDev/medic-action/internal/auth"
	"github.com/JorgegrDev/medic-action/internal/dto"
	"github.com/JorgegrDev/medic-action/internal/service"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	svc *service.DeviceService
}

func NewDeviceHandler(svc *service.DeviceService) *DeviceHandler {
	return &DeviceHandler{svc: svc}
}

// Register godoc
// @Summary      Register a device push token
// @Tags         devices
// @Accept       json
// @Security     CookieAuth
// @Param        body  body  dto.RegisterDeviceRequest  true  "Push token"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /devices [post]
func (h *DeviceHandler) Register(c *gin.Context) {
	var req dto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, err := h.svc.Register(c.Request.Context(), auth.UserIDFromContext(c), req.PushToken, req.Platform)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPushToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Remove godoc
// @Summary      Unregister a device push token
// @Tags         devices
// @Accept       json
// @Security     CookieAuth
// @Param        body  body  dto.RemoveDeviceRequest  true  "Push token"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /devices [delete]
func (h *DeviceHandler) Remove(c *gin.Context) {
	var req dto.RemoveDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Remove(c.Request.Context(), auth.UserIDFromContext(c), req.PushToken); err != nil {
		if errors.Is(err, service.ErrInvalidPushToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
