package handlers

import (
	"time"

	intconfig "flightfare/internal/config"
	"flightfare/internal/http/middleware"
	"flightfare/internal/model"
	"flightfare/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler holds the resources shared by all routes. Model is loaded once at
// startup and never mutated; History is nil when no database is configured.
type Handler struct {
	Env     intconfig.Env
	Model   *model.Model
	History services.PredictionStore
	Now     func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) predictor(c *gin.Context) services.PredictorService {
	svc := services.PredictorService{
		TrainingYear: h.Env.TrainingYear,
		History:      h.History,
		Now:          h.now,
		RequestID:    middleware.GetRequestID(c),
	}
	if h.Model != nil {
		svc.Model = h.Model
	}
	return svc
}
