package handlers

import (
	"net/http"
	"time"

	"xestetik/internal/config"
	"xestetik/internal/middleware"

	"github.com/labstack/echo/v4"
)

// SiteData is available to every template as .Site
type SiteData struct {
	Name            string
	Brand           string
	ContactEmail    string
	ContactPhone    string
	ContactNote     string
	InstagramURL    string
	InstagramHandle string
	FacebookURL     string
	FacebookHandle  string
	TiktokURL       string
	TiktokHandle    string
	StaticVersion   string
	CurrentYear     int
}

// Page wraps the page specific Content with the layout data
type Page struct {
	Site    SiteData
	Flashes []middleware.Flash
	Title   string
	Content interface{}
}

// Pages renders full HTML pages with the global template data
type Pages struct {
	site SiteData
	now  func() time.Time
}

func NewPages(cfg *config.AppConfig) *Pages {
	return &Pages{
		site: SiteData{
			Name:            cfg.Site.Name,
			Brand:           cfg.Site.Brand,
			ContactEmail:    cfg.Site.ContactEmail,
			ContactPhone:    cfg.Site.ContactPhone,
			ContactNote:     cfg.Site.ContactNote,
			InstagramURL:    cfg.Social.InstagramURL,
			InstagramHandle: cfg.Social.InstagramHandle,
			FacebookURL:     cfg.Social.FacebookURL,
			FacebookHandle:  cfg.Social.FacebookHandle,
			TiktokURL:       cfg.Social.TiktokURL,
			TiktokHandle:    cfg.Social.TiktokHandle,
			StaticVersion:   cfg.Server.StaticVersion,
		},
		now: time.Now,
	}
}

func (p *Pages) SiteName() string {
	return p.site.Name
}

// Title appends the site name to a page heading
func (p *Pages) Title(heading string) string {
	if heading == "" {
		return p.site.Name
	}
	return heading + " | " + p.site.Name
}

func (p *Pages) Render(c echo.Context, name, title string, content interface{}) error {
	return p.RenderStatus(c, http.StatusOK, name, title, content)
}

func (p *Pages) RenderStatus(c echo.Context, status int, name, title string, content interface{}) error {
	site := p.site
	site.CurrentYear = p.now().UTC().Year()
	return c.Render(status, name, &Page{
		Site:    site,
		Flashes: middleware.Flashes(c),
		Title:   title,
		Content: content,
	})
}
