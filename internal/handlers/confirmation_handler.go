package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lucasraugi/presentes-api/internal/domain/confirmation"
	"github.com/lucasraugi/presentes-api/internal/domain/ledger"
	"github.com/lucasraugi/presentes-api/internal/response"
	"github.com/lucasraugi/presentes-api/internal/validation"
)

type ConfirmationHandler struct {
	confirmations ledger.ConfirmationRepository
}

func NewConfirmationHandler(confirmations ledger.ConfirmationRepository) *ConfirmationHandler {
	return &ConfirmationHandler{
		confirmations: confirmations,
	}
}

type CreateConfirmationRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateConfirmation handles POST /api/confirmations
func (h *ConfirmationHandler) CreateConfirmation(c *gin.Context) {
	var req CreateConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	conf := confirmation.New(strings.TrimSpace(req.Name))
	if err := conf.Validate(); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	if err := h.confirmations.Create(conf); err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Attendance confirmed", conf)
}

// GetAllConfirmations handles GET /api/confirmations
func (h *ConfirmationHandler) GetAllConfirmations(c *gin.Context) {
	confirmations, err := h.confirmations.GetAll()
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"confirmations": confirmations,
		"count":         len(confirmations),
	})
}

// DeleteConfirmation handles DELETE /api/confirmations/:id
func (h *ConfirmationHandler) DeleteConfirmation(c *gin.Context) {
	id, err := validation.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	if err := h.confirmations.Delete(id); err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Confirmation deleted", nil)
}
