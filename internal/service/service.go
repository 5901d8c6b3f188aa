// Package service exposes the library over HTTP.
package service

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-micro.dev/v4/logger"
)

// Settings carries the collaborators the HTTP surface needs.
type Settings struct {
	Library Library
	Art     ArtStore
}

// Service handles the /api routes.
type Service struct {
	library Library
	art     ArtStore
}

func New(settings Settings) *Service {
	return &Service{
		library: settings.Library,
		art:     settings.Art,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Service) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), accessLog())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/health", s.Health)

	lib := api.Group("/library")
	lib.GET("/status", s.Status)
	lib.GET("/art/:id", s.Art)
	lib.GET("/songs", s.Songs)
	lib.GET("/songs/:id", s.Song)

	return r
}

// accessLog tags every request with an ID and logs its outcome.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		logger.Debugf("%s %s %s -> %d (%s)",
			requestID, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
