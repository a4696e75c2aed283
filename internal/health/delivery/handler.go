package delivery

import (
	"net/http"

	"mocni-backend/internal/health/usecase"

	"github.com/gin-gonic/gin"
)

// MedicationHandler handles medication-related HTTP requests
type MedicationHandler struct {
	medicationUsecase usecase.MedicationUsecase
}

// NewMedicationHandler creates a new MedicationHandler
func NewMedicationHandler(medicationUsecase usecase.MedicationUsecase) *MedicationHandler {
	return &MedicationHandler{
		medicationUsecase: medicationUsecase,
	}
}

// CreateMedicationRequest represents the request body for creating a medication
type CreateMedicationRequest struct {
	Name   string   `json:"name" binding:"required"`
	Dosage string   `json:"dosage"`
	Time   string   `json:"time" binding:"required"`
	Days   []string `json:"days"`
}

// GetMedications returns all medications for the authenticated user
// GET /api/medications
func (h *MedicationHandler) GetMedications(c *gin.Context) {
	userID := c.GetString("userID")

	meds, err := h.medicationUsecase.GetUserMedications(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"medications": meds})
}

// GetMedicationByID returns a specific medication
// GET /api/medications/:id
func (h *MedicationHandler) GetMedicationByID(c *gin.Context) {
	userID := c.GetString("userID")
	medID := c.Param("id")

	med, err := h.medicationUsecase.GetMedicationByID(userID, medID)
	if err != nil {
		if err.Error() == "medication not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
			return
		}
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, med)
}

// CreateMedication creates a new medication entry
// POST /api/medications
func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := h.medicationUsecase.CreateMedication(userID, req.Name, req.Dosage, req.Time, req.Days)
	if err != nil {
		if err.Error() == "time must be in HH:MM 24-hour format" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, med)
}

// UpdateMedication updates an existing medication
// PUT /api/medications/:id
func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	userID := c.GetString("userID")
	medID := c.Param("id")

	var updates usecase.MedicationUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := h.medicationUsecase.UpdateMedication(userID, medID, updates)
	if err != nil {
		switch err.Error() {
		case "medication not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		case "unauthorized":
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		case "time must be in HH:MM 24-hour format":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, med)
}

// DeleteMedication deletes a medication
// DELETE /api/medications/:id
func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	userID := c.GetString("userID")
	medID := c.Param("id")

	if err := h.medicationUsecase.DeleteMedication(userID, medID); err != nil {
		if err.Error() == "medication not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
			return
		}
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "medication deleted"})
}
