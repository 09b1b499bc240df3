package handler

import (
	"time"

	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
)

// Health is the liveness probe served at / and /api
func (h *Handler) Health(c *gin.Context) {
	response.OK(c, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.Env,
	})
}

// Test reports whether the backend is running and a model key is configured
func (h *Handler) Test(c *gin.Context) {
	response.OK(c, gin.H{
		"message":         "Backend is running!",
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"environment":     h.Env,
		"modelKeyPresent": h.Service.Configured(),
		"provider":        h.Provider,
		"model":           h.Model,
	})
}
