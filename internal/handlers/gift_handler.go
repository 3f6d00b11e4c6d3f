package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lucasraugi/presentes-api/internal/domain/ledger"
	"github.com/lucasraugi/presentes-api/internal/images"
	"github.com/lucasraugi/presentes-api/internal/response"
	"github.com/lucasraugi/presentes-api/internal/validation"
)

type GiftHandler struct {
	ledger       *ledger.Service
	images       images.Store
	maxImageSize int64
	validator    validation.GiftValidation
}

func NewGiftHandler(ledgerService *ledger.Service, imageStore images.Store, maxImageSize int64) *GiftHandler {
	return &GiftHandler{
		ledger:       ledgerService,
		images:       imageStore,
		maxImageSize: maxImageSize,
		validator:    validation.GiftValidation{},
	}
}

type CreateGiftRequest struct {
	Name        string          `json:"name" binding:"required"`
	TotalAmount decimal.Decimal `json:"total_amount" binding:"required"`
	ShareAmount decimal.Decimal `json:"share_amount" binding:"required"`
	ImageURL    string          `json:"image_url"`
}

// CreateGift handles POST /api/gifts
func (h *GiftHandler) CreateGift(c *gin.Context) {
	var req CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.validator.ValidateGiftName(req.Name); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if err := h.validator.ValidateAmounts(req.TotalAmount, req.ShareAmount); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	g, err := h.ledger.CreateGift(ledger.CreateGiftRequest{
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
		ShareAmount: req.ShareAmount,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Gift registered", g)
}

// GetAllGifts handles GET /api/gifts
func (h *GiftHandler) GetAllGifts(c *gin.Context) {
	gifts, err := h.ledger.ListGifts()
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"gifts": gifts,
		"count": len(gifts),
	})
}

// GetGift handles GET /api/gifts/:id
func (h *GiftHandler) GetGift(c *gin.Context) {
	id, err := validation.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	g, err := h.ledger.GetGift(id)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", g)
}

// DeleteGift handles DELETE /api/gifts/:id
func (h *GiftHandler) DeleteGift(c *gin.Context) {
	id, err := validation.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	if err := h.ledger.DeleteGift(id); err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Gift deleted", nil)
}

// allowedImageTypes lists the content types accepted for gift images.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadImage handles POST /api/gifts/:id/image
func (h *GiftHandler) UploadImage(c *gin.Context) {
	id, err := validation.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	if _, err := h.ledger.GetGift(id); err != nil {
		respondLedgerError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.BadRequestError(c, "No image provided")
		return
	}
	defer file.Close()

	if header.Size > h.maxImageSize {
		response.BadRequestError(c, fmt.Sprintf("Image exceeds the %d byte limit", h.maxImageSize))
		return
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		response.BadRequestError(c, "Unsupported image type: "+contentType)
		return
	}

	// The stored name comes from the gift id and the allowed content type;
	// the client filename is never used.
	name := id.String() + ext

	url, err := h.images.Save(c.Request.Context(), name, contentType, header.Size, file)
	if err != nil {
		response.InternalServerError(c, "Failed to store image")
		return
	}

	if err := h.ledger.SetGiftImage(id, url); err != nil {
		respondLedgerError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Image uploaded", gin.H{
		"image_url": url,
	})
}
