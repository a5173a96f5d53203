package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	resp := gin.H{
		"status":  "ok",
		"message": "fare predictor running",
		"history": h.History != nil,
	}
	if h.Model != nil {
		resp["model"] = gin.H{"kind": h.Model.Kind(), "version": h.Model.Version()}
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/model
func (h *Handler) ModelInfo(c *gin.Context) {
	if h.Model == nil {
		respondError(c, http.StatusServiceUnavailable, "model_unavailable", "model is not loaded", nil)
		return
	}
	names := h.Model.FeatureNames()
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"kind":         h.Model.Kind(),
		"version":      h.Model.Version(),
		"numFeatures":  h.Model.NumFeatures(),
		"numTrees":     h.Model.NumTrees(),
		"featureNames": names,
	})
}
