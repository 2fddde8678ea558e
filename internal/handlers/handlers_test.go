package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"xestetik/internal/config"
	"xestetik/internal/content"
	"xestetik/internal/models"
	"xestetik/internal/repositories"
	"xestetik/internal/services"
	"xestetik/internal/web"
	"xestetik/pkg/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type RouterTestSuite struct {
	suite.Suite
	e        *echo.Echo
	db       *sql.DB
	static   string
	leadRepo repositories.LeadRepository
	catalog  services.CatalogService
}

func (suite *RouterTestSuite) SetupTest() {
	t := suite.T()
	ctx := context.Background()

	cfg := config.Default()
	cfg.Server.StaticDir = t.TempDir()
	cfg.Server.StaticVersion = "test"
	cfg.Server.SecretKey = "test-secret"
	suite.static = cfg.Server.StaticDir

	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	suite.db = db
	suite.leadRepo = repositories.NewLeadRepo(db)

	productRepo, err := repositories.NewCatalogRepository(content.Catalog)
	require.NoError(t, err)
	contentRepo, err := repositories.NewContentRepository(content.Reviews, content.Policies)
	require.NoError(t, err)

	assets := services.NewAssetService(cfg.Server.StaticDir, "/static")
	suite.catalog = services.NewCatalogService(productRepo)
	views := services.NewViewService(suite.catalog, assets)
	media := services.NewMediaService(assets, services.NewStaticRemoteMedia("https://cdn.example.com", []string{"intro.mp4"}), "")
	qr := services.NewQRService(assets, QRTargets(cfg.Social))
	pdf := services.NewCatalogPDFService(suite.catalog, assets, cfg.Site.CatalogPDF, cfg.Site.Brand)

	pages := NewPages(cfg)
	h := &Handlers{
		Pages:    pages,
		Site:     NewSiteHandlers(pages, views, contentRepo, media, qr, cfg),
		Products: NewProductHandlers(pages, suite.catalog, views, pdf),
		Leads:    NewLeadHandlers(services.NewLeadService(suite.leadRepo)),
		Policies: NewPolicyHandlers(pages, contentRepo),
		Health:   NewHealthHandlers(suite.catalog, suite.leadRepo),
	}
	suite.e, err = NewRouter(cfg, h, web.Templates, zap.NewNop())
	require.NoError(t, err)
}

func (suite *RouterTestSuite) TearDownTest() {
	suite.db.Close()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (suite *RouterTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *RouterTestSuite) get(target string) *httptest.ResponseRecorder {
	return suite.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (suite *RouterTestSuite) postLead(form url.Values, referer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/lead", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	return suite.do(req)
}

func (suite *RouterTestSuite) leadCount() int64 {
	n, err := suite.leadRepo.Count(context.Background())
	require.NoError(suite.T(), err)
	return n
}

func validLeadForm() url.Values {
	return url.Values{
		"name":    {"Anna Kowalska"},
		"email":   {"anna@example.com"},
		"phone":   {"600 000 000"},
		"message": {"Proszę o ofertę."},
		"consent": {"on"},
	}
}

func (suite *RouterTestSuite) TestHealth() {
	rec := suite.get("/health")

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"status":"ok","products":18}`, rec.Body.String())
}

func (suite *RouterTestSuite) TestReadiness() {
	rec := suite.get("/health/ready")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	suite.db.Close()
	rec = suite.get("/health/ready")
	assert.Equal(suite.T(), http.StatusServiceUnavailable, rec.Code)
}

func (suite *RouterTestSuite) TestHome_RendersSectionsAndReviews() {
	touch(suite.T(), suite.static, "video/hero.mp4")

	rec := suite.get("/")

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(suite.T(), body, `src="/static/video/hero.mp4"`)
	for _, meta := range suite.catalog.Categories() {
		assert.Contains(suite.T(), body, meta.Description)
	}
	assert.Equal(suite.T(), homeReviewCount, strings.Count(body, "<figure class=\"rounded-3xl border bg-white p-5\">"))
	assert.Contains(suite.T(), body, `id="kontakt"`)
	assert.NotContains(suite.T(), body, "/static/js/")
}

func (suite *RouterTestSuite) TestCategoryListing_SortedByName() {
	rec := suite.get("/lasery")

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	body := rec.Body.String()
	last := -1
	for _, p := range suite.catalog.ListCategory(models.CategoryLasers) {
		idx := strings.Index(body, `href="/produkt/`+p.Slug+`"`)
		require.NotEqual(suite.T(), -1, idx, p.Slug)
		assert.Greater(suite.T(), idx, last, p.Slug)
		last = idx
	}
	assert.NotContains(suite.T(), body, `href="/produkt/x-boss"`)
}

func (suite *RouterTestSuite) TestCategoryListing_TrailingSlash() {
	rec := suite.get("/akcesoria/")

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), `href="/produkt/biopen-q2"`)
}

func (suite *RouterTestSuite) TestProductDetail() {
	touch(suite.T(), suite.static, "img/catalog/x-levage/page-01.png")
	p, err := suite.catalog.GetBySlug("x-levage")
	require.NoError(suite.T(), err)

	rec := suite.get("/produkt/x-levage")

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(suite.T(), body, p.Name)
	for _, bullet := range p.Bullets {
		assert.Contains(suite.T(), body, bullet)
	}
	assert.Contains(suite.T(), body, `href="/lasery"`)
	assert.Contains(suite.T(), body, `src="/static/img/catalog/x-levage/page-01.png"`)
}

func (suite *RouterTestSuite) TestProductDetail_UnknownSlug() {
	rec := suite.get("/produkt/nie-ma-takiego")

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Contains(suite.T(), rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(suite.T(), rec.Body.String(), "Nie znaleziono strony")
}

func (suite *RouterTestSuite) TestUnknownRoute() {
	rec := suite.get("/cennik")

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Nie znaleziono strony")
}

func (suite *RouterTestSuite) TestPolicy() {
	rec := suite.get("/polityki/privacy")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Polityka prywatności")

	rec = suite.get("/polityki/brak")
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *RouterTestSuite) TestAboutReviewsSocialVideos() {
	rec := suite.get("/o-nas")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	rec = suite.get("/opinie")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), 12, strings.Count(rec.Body.String(), "<figure class=\"rounded-3xl border bg-white p-5\">"))

	rec = suite.get("/media-spolecznosciowe")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), `src="/static/img/qr/instagram.png"`)

	touch(suite.T(), suite.static, "video/Szkolenie.mp4")
	rec = suite.get("/filmy")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	body := rec.Body.String()
	local := strings.Index(body, "/static/video/Szkolenie.mp4")
	remote := strings.Index(body, "https://cdn.example.com/intro.mp4")
	require.NotEqual(suite.T(), -1, local)
	assert.Greater(suite.T(), remote, local)
}

func (suite *RouterTestSuite) TestStaticFiles() {
	touch(suite.T(), suite.static, "css/site.css")

	rec := suite.get("/static/css/site.css")

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *RouterTestSuite) TestCatalog_GeneratedWhenMissing() {
	rec := suite.get("/katalog")

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(suite.T(), rec.Header().Get(echo.HeaderContentDisposition), priceListFileName)
	assert.True(suite.T(), strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func (suite *RouterTestSuite) TestCatalog_ServesDeployedFile() {
	p := filepath.Join(suite.static, "pdf", "katalog.pdf")
	require.NoError(suite.T(), os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(suite.T(), os.WriteFile(p, []byte("%PDF-1.7 designed"), 0o644))

	rec := suite.get("/katalog")

	require.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Header().Get(echo.HeaderContentDisposition), "katalog.pdf")
	assert.Equal(suite.T(), "%PDF-1.7 designed", rec.Body.String())
}

func (suite *RouterTestSuite) TestLead_RejectedWritesNothing() {
	form := validLeadForm()
	form.Set("message", "   ")

	rec := suite.postLead(form, "http://localhost:5000/produkt/x-levage")

	assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
	assert.Equal(suite.T(), "/produkt/x-levage#kontakt", rec.Header().Get(echo.HeaderLocation))
	assert.Zero(suite.T(), suite.leadCount())

	// The error flash shows on the page the visitor lands on.
	req := httptest.NewRequest(http.MethodGet, "/produkt/x-levage", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	page := suite.do(req)
	assert.Contains(suite.T(), page.Body.String(), services.LeadMissingFieldsMessage)
}

func (suite *RouterTestSuite) TestLead_MissingConsent() {
	form := validLeadForm()
	form.Del("consent")

	rec := suite.postLead(form, "")

	assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
	assert.Equal(suite.T(), "/#kontakt", rec.Header().Get(echo.HeaderLocation))
	assert.Zero(suite.T(), suite.leadCount())
}

func (suite *RouterTestSuite) TestLead_ValidStoresExactlyOneRow() {
	rec := suite.postLead(validLeadForm(), "http://localhost:5000/lasery?x=1")

	assert.Equal(suite.T(), http.StatusSeeOther, rec.Code)
	assert.Equal(suite.T(), "/lasery#kontakt", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(suite.T(), int64(1), suite.leadCount())

	leads, err := suite.leadRepo.List(context.Background(), 10, 0)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), leads, 1)
	assert.Equal(suite.T(), "/lasery", leads[0].SourcePath)
	assert.False(suite.T(), leads[0].CreatedAt.IsZero())

	req := httptest.NewRequest(http.MethodGet, "/lasery", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	page := suite.do(req)
	assert.Contains(suite.T(), page.Body.String(), "Dziękujemy!")
}

func (suite *RouterTestSuite) TestLead_ForeignRefererKeepsPathOnly() {
	rec := suite.postLead(validLeadForm(), "https://evil.example.com")

	assert.Equal(suite.T(), "/#kontakt", rec.Header().Get(echo.HeaderLocation))
}

func (suite *RouterTestSuite) TestLead_StoreFailureIsServerError() {
	suite.db.Close()

	rec := suite.postLead(validLeadForm(), "")

	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Coś poszło nie tak")
}

// touch creates empty files below root, making parent directories as needed.
func touch(t *testing.T, root string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
}
