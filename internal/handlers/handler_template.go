package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// templateHandler handles HTTP requests related to issuance templates.
type templateHandler struct {
	templateService portssvc.TemplateSvcFacade
}

// newTemplateHandler creates a new templateHandler.
func newTemplateHandler(ts portssvc.TemplateSvcFacade) *templateHandler {
	return &templateHandler{templateService: ts}
}

// registerTemplateRoutes registers routes related to templates.
func registerTemplateRoutes(rg *gin.RouterGroup, templateService portssvc.TemplateSvcFacade) {
	h := newTemplateHandler(templateService)

	templates := rg.Group("/templates")
	{
		templates.POST("", h.createTemplate)
		templates.GET("", h.listTemplates)
		templates.GET("/:id", h.getTemplateByID)
		templates.PUT("/:id", h.updateTemplate)
		templates.DELETE("/:id", h.deleteTemplate)
	}
}

// createTemplate godoc
// @Summary Create a new template
// @Description Adds a reusable issuance preset for a party
// @Tags templates
// @Accept json
// @Produce json
// @Param template body dto.CreateTemplateRequest true "Template details"
// @Success 201 {object} dto.TemplateResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Referenced party not found"
// @Security BearerAuth
// @Router /templates [post]
func (h *templateHandler) createTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Referenced party not found"})
		} else {
			logger.Error("Failed to create template in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTemplateResponse(template))
}

// listTemplates godoc
// @Summary List all templates
// @Description Retrieves all issuance templates sorted by name
// @Tags templates
// @Produce json
// @Success 200 {array} dto.TemplateResponse
// @Failure 500 {object} ErrorResponse "Failed to list templates"
// @Security BearerAuth
// @Router /templates [get]
func (h *templateHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	templates, err := h.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list templates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list templates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTemplateResponse(templates))
}

// getTemplateByID godoc
// @Summary Get a template by ID
// @Description Retrieves details for a specific template
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} dto.TemplateResponse
// @Failure 404 {object} ErrorResponse "Template not found"
// @Security BearerAuth
// @Router /templates/{id} [get]
func (h *templateHandler) getTemplateByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")

	template, err := h.templateService.GetTemplateByID(c.Request.Context(), templateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			logger.Error("Failed to get template from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve template"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateResponse(template))
}

// updateTemplate godoc
// @Summary Update a template
// @Description Replaces all fields of an existing template
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param template body dto.UpdateTemplateRequest true "Template details"
// @Success 200 {object} dto.TemplateResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Security BearerAuth
// @Router /templates/{id} [put]
func (h *templateHandler) updateTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), templateID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template or referenced party not found"})
		} else {
			logger.Error("Failed to update template in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateResponse(template))
}

// deleteTemplate godoc
// @Summary Delete a template
// @Description Removes an issuance template
// @Tags templates
// @Param id path string true "Template ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Security BearerAuth
// @Router /templates/{id} [delete]
func (h *templateHandler) deleteTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), templateID, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			logger.Error("Failed to delete template in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
