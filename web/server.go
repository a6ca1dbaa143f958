// ABOUTME: HTTP router assembly with embedded dashboard templates
// ABOUTME: Mounts the REST API under /api and serves the HTML shells
package web

import (
	"database/sql"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bmi-dev/bmi-platform/handlers"
)

//go:embed templates/*
var templatesFS embed.FS

// NewRouter builds the gin engine serving both the API and the
// dashboard pages.
func NewRouter(database *sql.DB, logger zerolog.Logger) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.SetHTMLTemplate(tmpl)

	handlers.New(database).Register(router.Group("/api"))

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{"Title": "Dashboard"})
	})
	router.GET("/crm", func(c *gin.Context) {
		c.HTML(http.StatusOK, "crm.html", gin.H{"Title": "CRM"})
	})
	router.GET("/hrms", func(c *gin.Context) {
		c.HTML(http.StatusOK, "hrms.html", gin.H{"Title": "HRMS"})
	})

	return router, nil
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
