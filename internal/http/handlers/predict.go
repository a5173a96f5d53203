package handlers

import (
	"net/http"

	"flightfare/internal/http/middleware"
	"flightfare/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/predict
func (h *Handler) Predict(c *gin.Context) {
	var in services.PredictInput
	if !BindJSONOrError(c, &in) {
		return
	}

	svc := h.predictor(c)
	req, err := svc.ParseRequest(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	res, err := svc.Predict(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/predict/quote returns the prediction as an inline PDF.
func (h *Handler) PredictQuote(c *gin.Context) {
	var in services.PredictInput
	if !BindJSONOrError(c, &in) {
		return
	}

	svc := h.predictor(c)
	req, err := svc.ParseRequest(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	res, err := svc.Predict(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := services.QuoteService{RequestID: middleware.GetRequestID(c), Now: h.now}
	pdfBytes, filename, err := docs.GenerateQuote(req, res)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "quote_failed", "failed to render quote", nil)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
