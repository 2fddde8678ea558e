package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"xestetik/internal/common"
	"xestetik/internal/middleware"
	"xestetik/internal/models"
	"xestetik/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const contactAnchor = "#kontakt"

// LeadHandlers handles the contact form
type LeadHandlers struct {
	leadService services.LeadService
}

func NewLeadHandlers(leadService services.LeadService) *LeadHandlers {
	return &LeadHandlers{leadService: leadService}
}

// Submit stores a valid form and sends the visitor back to the contact
// section of the page they came from, with a flash either way.
func (h *LeadHandlers) Submit(c echo.Context) error {
	var sub models.LeadSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form")
	}
	back := common.LocalPath(c.Request().Referer(), "/")
	sub.SourcePath = back

	_, err := h.leadService.Submit(c.Request().Context(), &sub)
	var verr *services.LeadValidationError
	switch {
	case errors.As(err, &verr):
		h.flash(c, middleware.FlashError, verr.Message)
	case err != nil:
		return fmt.Errorf("failed to save lead: %w", err)
	default:
		h.flash(c, middleware.FlashSuccess, services.LeadSavedMessage)
	}
	return c.Redirect(http.StatusSeeOther, back+contactAnchor)
}

func (h *LeadHandlers) flash(c echo.Context, category, message string) {
	if err := middleware.AddFlash(c, category, message); err != nil {
		zap.L().Warn("flash not stored", zap.Error(err))
	}
}
