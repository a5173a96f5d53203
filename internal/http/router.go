package api

import (
	"log"
	stdhttp "net/http"

	h "flightfare/internal/http/handlers"
	"flightfare/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(handler *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(handler.Env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/options", handler.Options)
		api.GET("/model", handler.ModelInfo)

		predict := api.Group("/predict")
		predict.POST("", handler.Predict)
		predict.POST("/quote", handler.PredictQuote)

		auth := api.Group("/auth")
		auth.POST("/login", handler.Login)

		protected := api.Group("", middleware.RequireAuth(handler.Env.JWTSecret), middleware.RequireRoles("admin"))
		protected.GET("/predictions", handler.ListPredictions)
	}

	return r
}
