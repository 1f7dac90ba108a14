package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
	"github.com/mediaforge/mediaforge/pkg/plan"
	"github.com/mediaforge/mediaforge/pkg/services"
	"github.com/mediaforge/mediaforge/pkg/usage"
)

// mapServiceError maps service-layer errors to an HTTP status and JSON body.
func mapServiceError(err error) (int, gin.H) {
	var planErr *plan.ValidationError
	if errors.As(err, &planErr) {
		return http.StatusBadRequest, gin.H{"error": planErr.Error()}
	}
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, gin.H{"error": validErr.Error()}
	}
	var quotaErr *usage.QuotaError
	if errors.As(err, &quotaErr) {
		return http.StatusTooManyRequests, gin.H{
			"code":    "RATE_LIMIT_EXCEEDED",
			"message": quotaErr.Error(),
		}
	}
	if errors.Is(err, services.ErrUnauthorized) {
		return http.StatusUnauthorized, gin.H{"error": "invalid API key"}
	}
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, orchestrator.ErrNotFound) {
		return http.StatusNotFound, gin.H{"error": "resource not found"}
	}
	if errors.Is(err, orchestrator.ErrNotCancellable) {
		return http.StatusConflict, gin.H{"error": "execution is not in a cancellable state"}
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, gin.H{"error": "resource already exists"}
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, gin.H{"error": "internal server error"}
}
