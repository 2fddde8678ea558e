package handlers

import (
	"io/fs"

	"xestetik/internal/config"
	"xestetik/internal/middleware"
	"xestetik/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Pages    *Pages
	Site     *SiteHandlers
	Products *ProductHandlers
	Leads    *LeadHandlers
	Policies *PolicyHandlers
	Health   *HealthHandlers
}

var categoryRoutes = map[string]string{
	models.CategoryLasers:      "/lasery",
	models.CategoryHiTech:      "/urzadzenia-hi-tech",
	models.CategoryAccessories: "/akcesoria",
}

// NewRouter builds the echo instance with middleware, renderer and routes
func NewRouter(cfg *config.AppConfig, h *Handlers, templates fs.FS, logger *zap.Logger) (*echo.Echo, error) {
	renderer, err := NewTemplateRenderer(templates)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = NewErrorHandler(h.Pages).Handle

	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.RequestContext())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Sessions(cfg.Server.SecretKey))

	e.Static("/static", cfg.Server.StaticDir)

	e.GET("/health", h.Health.HealthCheck)
	e.GET("/health/ready", h.Health.ReadinessCheck)

	e.GET("/", h.Site.Home)
	e.GET("/o-nas", h.Site.About)
	e.GET("/opinie", h.Site.Reviews)
	e.GET("/media-spolecznosciowe", h.Site.Social)
	e.GET("/filmy", h.Site.Videos)

	for _, category := range models.Categories {
		e.GET(categoryRoutes[category], h.Products.ListCategory(category))
	}
	e.GET("/produkt/:slug", h.Products.GetProduct)
	e.GET("/katalog", h.Products.DownloadCatalog)

	e.POST("/lead", h.Leads.Submit)
	e.GET("/polityki/:slug", h.Policies.GetPolicy)

	return e, nil
}
