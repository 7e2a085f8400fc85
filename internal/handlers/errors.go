package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps the body of the import endpoints.
const maxUploadBytes = 10 << 20

// respondWithError maps a service error to its HTTP status and writes it.
// Client-side failures are logged as warnings, everything else as errors.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidNumeric):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrNoConversionPath), errors.Is(err, apperrors.ErrUnboundedPathSearch):
		status = http.StatusUnprocessableEntity
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		status = http.StatusRequestEntityTooLarge
	}

	if status == http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
		return
	}

	logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}
