package handlers

import (
	"errors"
	"net/http"

	"xestetik/internal/repositories"

	"github.com/labstack/echo/v4"
)

type PolicyHandlers struct {
	pages       *Pages
	contentRepo repositories.ContentRepository
}

func NewPolicyHandlers(pages *Pages, contentRepo repositories.ContentRepository) *PolicyHandlers {
	return &PolicyHandlers{pages: pages, contentRepo: contentRepo}
}

func (h *PolicyHandlers) GetPolicy(c echo.Context) error {
	policy, err := h.contentRepo.Policy(c.Param("slug"))
	if errors.Is(err, repositories.ErrPolicyNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Policy not found")
	}
	if err != nil {
		return err
	}
	return h.pages.Render(c, "policy.html", h.pages.Title(policy.Title), policy)
}
