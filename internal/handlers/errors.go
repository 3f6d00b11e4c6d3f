package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lucasraugi/presentes-api/internal/domain/ledger"
	"github.com/lucasraugi/presentes-api/internal/response"
)

// respondLedgerError maps the ledger error taxonomy onto HTTP statuses.
func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		response.BadRequestError(c, err.Error())
	case errors.Is(err, ledger.ErrInsufficientQuota):
		response.ConflictError(c, "Not enough remaining shares for this gift")
	case errors.Is(err, ledger.ErrNotFound):
		response.NotFoundError(c, "Record not found")
	case errors.Is(err, ledger.ErrHasContributions):
		response.ConflictError(c, "This gift already received contributions and cannot be deleted")
	case errors.Is(err, ledger.ErrStorageUnavailable):
		response.ServiceUnavailableError(c, "Storage is temporarily unavailable, try again in a few seconds")
	default:
		response.InternalServerError(c, "Unexpected error")
	}
}
