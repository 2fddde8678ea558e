package handlers

import (
	"xestetik/internal/config"
	"xestetik/internal/models"
	"xestetik/internal/repositories"
	"xestetik/internal/services"

	"github.com/labstack/echo/v4"
)

const homeReviewCount = 6

// SiteHandlers serves the editorial pages
type SiteHandlers struct {
	pages       *Pages
	viewService services.ViewService
	contentRepo repositories.ContentRepository
	media       services.MediaService
	qr          services.QRService
	cfg         *config.AppConfig
}

func NewSiteHandlers(pages *Pages, viewService services.ViewService, contentRepo repositories.ContentRepository, media services.MediaService, qr services.QRService, cfg *config.AppConfig) *SiteHandlers {
	return &SiteHandlers{
		pages:       pages,
		viewService: viewService,
		contentRepo: contentRepo,
		media:       media,
		qr:          qr,
		cfg:         cfg,
	}
}

type homeContent struct {
	HeroVideo string
	Sections  []*models.CategoryPage
	Reviews   []models.Review
}

func (h *SiteHandlers) Home(c echo.Context) error {
	content := homeContent{HeroVideo: h.media.HeroVideo()}
	for _, category := range models.Categories {
		content.Sections = append(content.Sections, h.viewService.HomeSection(category))
	}
	content.Reviews = h.contentRepo.Reviews()
	if len(content.Reviews) > homeReviewCount {
		content.Reviews = content.Reviews[:homeReviewCount]
	}
	return h.pages.Render(c, "index.html", h.pages.Title(""), content)
}

func (h *SiteHandlers) About(c echo.Context) error {
	return h.pages.Render(c, "about.html", h.pages.Title("O nas"), struct{ AboutText string }{h.cfg.Site.AboutText})
}

func (h *SiteHandlers) Reviews(c echo.Context) error {
	return h.pages.Render(c, "reviews.html", h.pages.Title("Opinie"), struct{ Reviews []models.Review }{h.contentRepo.Reviews()})
}

func (h *SiteHandlers) Social(c echo.Context) error {
	social := h.cfg.Social
	links := []models.SocialLink{
		{Label: "Instagram", Handle: social.InstagramHandle, URL: social.InstagramURL, QR: h.qr.URL(instagramQR)},
		{Label: "Facebook", Handle: social.FacebookHandle, URL: social.FacebookURL, QR: h.qr.URL(facebookQR)},
	}
	if social.TiktokURL != "" {
		links = append(links, models.SocialLink{Label: "TikTok", Handle: social.TiktokHandle, URL: social.TiktokURL})
	}
	return h.pages.Render(c, "social.html", h.pages.Title("Media społecznościowe"), struct{ Links []models.SocialLink }{links})
}

func (h *SiteHandlers) Videos(c echo.Context) error {
	media := h.media.List(c.Request().Context())
	return h.pages.Render(c, "videos.html", h.pages.Title("Filmy"), struct{ Media []models.MediaItem }{media})
}
