package main

import (
	"fmt"
	"net/http"

	"github.com/abhishek622/interviewPrep/internal/handler"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
)

func (app *application) routes() (http.Handler, error) {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(app.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(app.Logger))
	r.Use(cors(app.Config.GetCORSOrigins()))

	var limit gin.HandlerFunc
	if app.Limiter != nil {
		limit = rateLimit(app.Limiter, app.Logger)
	}
	handler.RegisterRoutes(r, app.Handler, limit)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "")
	})

	return r, nil
}
