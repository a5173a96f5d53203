package handlers

import (
	"net/http"

	"flightfare/internal/features"
	"flightfare/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/options lists every selectable form value.
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"airlines":     features.Airlines(),
		"sources":      features.Sources(),
		"destinations": features.Destinations(),
		"stops":        features.StopLabels(),
		"minDate":      utils.FormatDate(h.now()),
	})
}
