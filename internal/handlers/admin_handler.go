package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasraugi/presentes-api/internal/auth"
	"github.com/lucasraugi/presentes-api/internal/response"
)

type AdminHandler struct {
	auth *auth.Manager
}

func NewAdminHandler(authManager *auth.Manager) *AdminHandler {
	return &AdminHandler{
		auth: authManager,
	}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload")
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.UnauthorizedError(c, "Incorrect password")
			return
		}
		response.InternalServerError(c, "Failed to create session")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Logged in", gin.H{
		"token":      token,
		"expires_in": int(h.auth.SessionTTL().Seconds()),
	})
}
