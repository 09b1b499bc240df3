package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the health probes and the three interview endpoints.
// limit, when non-nil, guards the endpoints that call the model.
func RegisterRoutes(r gin.IRouter, h *Handler, limit gin.HandlerFunc) {
	r.GET("/", h.Health)

	api := r.Group("/api")
	{
		api.GET("", h.Health)
		api.GET("/test", h.Test)
	}

	model := api.Group("")
	if limit != nil {
		model.Use(limit)
	}
	{
		model.POST("/generate-questions", h.GenerateQuestions)
		model.POST("/check-answer", h.CheckAnswer)
		model.POST("/assess-readiness", h.AssessReadiness)
	}
}
