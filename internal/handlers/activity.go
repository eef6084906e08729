package handlers

import (
	"net/http"

	"github.com/JorgegrDev/medic-action/internal/auth"
	dom "github.com/JorgegrDev/medic-action/internal/domain"
	"github.com/JorgegrDev/medic-action/internal/dto"
	"github.com/JorgegrDev/medic-action/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	svc *service.ActivityService
}

func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// List godoc
// @Summary      List activity-log entries
// @Tags         activities
// @Produce      json
// @Security     CookieAuth
// @Param        type  query     string  false  "filter by type, e.g. medication"
// @Success      200   {object}  dto.ListActivitiesResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	typeFilter := c.Query("type")
	if typeFilter != "" && typeFilter != dom.ActivityTypeMedication {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown activity type"})
		return
	}
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), typeFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]dto.ActivityResponse, len(list))
	for i, a := range list {
		items[i] = dto.ActivityResponse{
			ID:          a.ID,
			Type:        a.Type,
			Description: a.Description,
			RelatedID:   a.RelatedID,
			CreatedAt:   a.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, dto.ListActivitiesResponse{Items: items})
}
