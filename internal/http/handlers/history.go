package handlers

import (
	"net/http"
	"strconv"

	"flightfare/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// GET /api/predictions
func (h *Handler) ListPredictions(c *gin.Context) {
	if h.History == nil {
		respondError(c, http.StatusServiceUnavailable, "history_disabled", "prediction history is not configured", nil)
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			RespondDomainError(c, domain.ValidationError{Field: "limit", Msg: "must be a positive integer"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	recs, err := h.History.ListRecent(c.Request.Context(), limit)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "failed to load history", Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      recs,
		"pagination": domain.Pagination{Limit: limit, Total: len(recs)},
	})
}
