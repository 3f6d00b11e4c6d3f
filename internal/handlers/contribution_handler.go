package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lucasraugi/presentes-api/internal/domain/ledger"
	"github.com/lucasraugi/presentes-api/internal/export"
	"github.com/lucasraugi/presentes-api/internal/logger"
	"github.com/lucasraugi/presentes-api/internal/pix"
	"github.com/lucasraugi/presentes-api/internal/qr"
	"github.com/lucasraugi/presentes-api/internal/response"
	"github.com/lucasraugi/presentes-api/internal/validation"
)

type ContributionHandler struct {
	ledger    *ledger.Service
	encoder   *pix.Encoder
	validator validation.ContributionValidation
}

func NewContributionHandler(ledgerService *ledger.Service, encoder *pix.Encoder) *ContributionHandler {
	return &ContributionHandler{
		ledger:  ledgerService,
		encoder: encoder,
	}
}

type CreateContributionRequest struct {
	GuestName string `json:"guest_name"`
	Shares    int    `json:"shares" binding:"required"`
}

// CreateContribution handles POST /api/gifts/:id/contributions
//
// On success the response carries the recorded contribution together with
// the PIX payload and its QR code; a rejected claim produces neither.
func (h *ContributionHandler) CreateContribution(c *gin.Context) {
	giftID, err := validation.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	var req CreateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.validator.ValidateShares(req.Shares); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if err := h.validator.ValidateGuestName(req.GuestName); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	contrib, err := h.ledger.RecordContribution(giftID, req.GuestName, req.Shares)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	payload, err := h.encoder.Build(contrib.Amount)
	if err != nil {
		logger.Payments().Error("failed to build payment payload", "contribution_id", contrib.ID, "error", err)
		response.InternalServerError(c, "Failed to build payment payload")
		return
	}

	qrImage, err := qr.PNGBase64(payload, qr.DefaultSize)
	if err != nil {
		logger.Payments().Error("failed to render QR code", "contribution_id", contrib.ID, "error", err)
		response.InternalServerError(c, "Failed to render QR code")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Contribution recorded", gin.H{
		"contribution":  contrib,
		"pix_payload":   payload,
		"qr_png_base64": qrImage,
	})
}

// GetAllContributions handles GET /api/contributions
func (h *ContributionHandler) GetAllContributions(c *gin.Context) {
	contributions, err := h.ledger.ListContributions()
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"contributions": contributions,
		"count":         len(contributions),
	})
}

type UpdateContributionRequest struct {
	GuestName *string          `json:"guest_name"`
	Shares    *int             `json:"shares"`
	Amount    *decimal.Decimal `json:"amount"`
}

// UpdateContribution handles PATCH /api/contributions/:id
func (h *ContributionHandler) UpdateContribution(c *gin.Context) {
	id, err := validation.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	var req UpdateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.GuestName == nil && req.Shares == nil && req.Amount == nil {
		response.BadRequestError(c, "Nothing to update")
		return
	}

	contrib, err := h.ledger.EditContribution(id, ledger.EditContributionRequest{
		GuestName: req.GuestName,
		Shares:    req.Shares,
		Amount:    req.Amount,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Contribution updated", contrib)
}

// DeleteContribution handles DELETE /api/contributions/:id
func (h *ContributionHandler) DeleteContribution(c *gin.Context) {
	id, err := validation.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	if err := h.ledger.DeleteContribution(id); err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Contribution deleted and shares restored", nil)
}

// ExportContributions handles GET /api/contributions/export
func (h *ContributionHandler) ExportContributions(c *gin.Context) {
	contributions, err := h.ledger.ListContributions()
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=contribuicoes.csv`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if err := export.Contributions(c.Writer, contributions); err != nil {
		logger.Handler("contribution").Error("failed to write CSV export", "error", err)
	}
}
