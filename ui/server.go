package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"screentime/app"
	"screentime/internal/errors"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// Server is the dashboard web server.
type Server struct {
	router    *gin.Engine
	dashboard *app.DashboardService
	templates *template.Template
}

// NewServer creates the server, parses the embedded templates and wires
// the routes.
func NewServer(dashboard *app.DashboardService) (*Server, error) {
	funcMap := template.FuncMap{
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"hrs": func(v float64) string { return fmt.Sprintf("%.2f hrs", v) },
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.Default(),
		dashboard: dashboard,
		templates: templates,
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// setupMiddleware serves static assets from the embedded filesystem.
func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		log.Printf("[Server] failed to create static filesystem: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

// setupRoutes configures the application routes.
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/report", s.handleReport)
	s.router.GET("/export", s.handleExport)

	s.router.GET("/api/dashboard", s.handleDashboard)
	s.router.GET("/api/filters", s.handleFilterOptions)
}

// Start starts the web server.
func (s *Server) Start(addr string) error {
	log.Printf("[Server] starting screen-time dashboard on http://%s", addr)
	return s.router.Run(addr)
}

// renderTemplate writes an HTML template response.
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		log.Printf("[Server] template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// statusForError maps application error codes to HTTP statuses. Dataset
// problems are 503: the process stays up, but no dashboard is rendered
// until the file is fixed.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeDataNotFound, errors.CodeSchemaInvalid:
		return http.StatusServiceUnavailable
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
