package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JorgegrDev/medic-action/internal/auth"
	dom "github.com/JorgegrDev/medic-action/internal/domain"
	"github.com/JorgegrDev/medic-action/internal/dto"
	"github.com/JorgegrDev/medic-action/internal/service"

	"github.com/gin-gonic/gin"
)

type MedicationHandler struct {
	svc *service.MedicationService
}

func NewMedicationHandler(svc *service.MedicationService) *MedicationHandler {
	return &MedicationHandler{svc: svc}
}

// Create godoc
// @Summary      Create a medication with its daily reminder
// @Tags         medications
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateMedicationRequest  true  "Medication body"
// @Success      201   {object}  dto.MedicationResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /medications [post]
func (h *MedicationHandler) Create(c *gin.Context) {
	var req dto.CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), service.MedicationInput{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
		StartDate:    req.StartDate.Ptr(),
		EndDate:      req.EndDate.Ptr(),
		ReminderTime: req.ReminderTime.Ptr(),
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, medicationToResponse(m))
}

// List godoc
// @Summary      List medications
// @Tags         medications
// @Produce      json
// @Security     CookieAuth
// @Param        filter  query     string  false  "active (default), expired or all"
// @Success      200     {object}  dto.ListMedicationsResponse
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /medications [get]
func (h *MedicationHandler) List(c *gin.Context) {
	filter, ok := dom.ParseMedicationFilter(c.Query("filter"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter must be active, expired or all"})
		return
	}
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListMedicationsResponse{Items: medicationsToResponses(list)})
}

// GetByID godoc
// @Summary      Get a medication by ID
// @Tags         medications
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Medication ID"
// @Success      200  {object}  dto.MedicationResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /medications/{id} [get]
func (h *MedicationHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	m, err := h.svc.GetByID(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, medicationToResponse(m))
}

// Update godoc
// @Summary      Replace a medication and reschedule its reminder
// @Tags         medications
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Medication ID"
// @Param        body  body      dto.UpdateMedicationRequest  true  "Replacement fields"
// @Success      200   {object}  dto.MedicationResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /medications/{id} [put]
func (h *MedicationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id, service.MedicationInput{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
		StartDate:    req.StartDate.Ptr(),
		EndDate:      req.EndDate.Ptr(),
		ReminderTime: req.ReminderTime.Ptr(),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrOperationInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, medicationToResponse(m))
}

// Delete godoc
// @Summary      Delete a medication and cancel its reminder
// @Tags         medications
// @Security     CookieAuth
// @Param        id   path  int  true  "Medication ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /medications/{id} [delete]
func (h *MedicationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case errors.Is(err, service.ErrOperationInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func medicationToResponse(m dom.Medication) dto.MedicationResponse {
	return dto.MedicationResponse{
		ID:           m.ID,
		Name:         m.Name,
		Dosage:       m.Dosage,
		Instructions: m.Instructions,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		ReminderTime: m.ReminderTime,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func medicationsToResponses(list []dom.Medication) []dto.MedicationResponse {
	out := make([]dto.MedicationResponse, len(list))
	for i := range list {
		out[i] = medicationToResponse(list[i])
	}
	return out
}
