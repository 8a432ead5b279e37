package ui

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"screentime/app"
	"screentime/domain/filter"
	"screentime/internal/errors"
)

// filterFromQuery builds the active filter from query parameters. Absent
// parameters fall back to the dataset defaults (full age range, All).
func (s *Server) filterFromQuery(c *gin.Context) (filter.Filter, error) {
	f, err := s.dashboard.DefaultFilter(c.Request.Context())
	if err != nil {
		return filter.Filter{}, err
	}

	if v := c.Query("age_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter.Filter{}, errors.InvalidInput(fmt.Sprintf("age_min must be an integer, got %q", v))
		}
		f.AgeMin = n
	}
	if v := c.Query("age_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter.Filter{}, errors.InvalidInput(fmt.Sprintf("age_max must be an integer, got %q", v))
		}
		f.AgeMax = n
	}
	if v := c.Query("gender"); v != "" {
		f.Gender = v
	}
	if v := c.Query("city_type"); v != "" {
		f.CityType = v
	}
	if v := c.Query("device_type"); v != "" {
		f.DeviceType = v
	}

	return f.Normalize(), nil
}

// handleIndex renders the dashboard page with filter controls populated
// from the observed dataset domains.
func (s *Server) handleIndex(c *gin.Context) {
	options, err := s.dashboard.Options(c.Request.Context())
	if err != nil {
		log.Printf("[Server] dataset unavailable: %v", err)
		c.Status(statusForError(err))
		s.renderTemplate(c, "error.html", gin.H{
			"Message": err.Error(),
		})
		return
	}

	defaultFilter, err := s.dashboard.DefaultFilter(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	s.renderTemplate(c, "index.html", gin.H{
		"Options": options,
		"Filter":  defaultFilter,
	})
}

// handleDashboard returns the full dashboard view for the requested
// filter as JSON.
func (s *Server) handleDashboard(c *gin.Context) {
	f, err := s.filterFromQuery(c)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	view, err := s.dashboard.View(c.Request.Context(), f)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// handleFilterOptions returns the observed filter domains.
func (s *Server) handleFilterOptions(c *gin.Context) {
	options, err := s.dashboard.Options(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, options)
}

// handleReport renders the insight report for the requested filter.
func (s *Server) handleReport(c *gin.Context) {
	f, err := s.filterFromQuery(c)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	view, err := s.dashboard.View(c.Request.Context(), f)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	s.renderTemplate(c, "report.html", gin.H{
		"Report": template.HTML(app.RenderReportHTML(view)),
	})
}

// handleExport streams the filtered view as a downloadable file.
func (s *Server) handleExport(c *gin.Context) {
	f, err := s.filterFromQuery(c)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	export, err := s.dashboard.ExportView(c.Request.Context(), f, c.DefaultQuery("format", "csv"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
