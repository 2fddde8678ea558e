package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"xestetik/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const priceListFileName = "cennik.pdf"

// ProductHandlers handles the catalog pages
type ProductHandlers struct {
	pages          *Pages
	catalogService services.CatalogService
	viewService    services.ViewService
	catalogPDF     services.CatalogPDFService
}

// NewProductHandlers creates a new product handlers instance
func NewProductHandlers(pages *Pages, catalogService services.CatalogService, viewService services.ViewService, catalogPDF services.CatalogPDFService) *ProductHandlers {
	return &ProductHandlers{
		pages:          pages,
		catalogService: catalogService,
		viewService:    viewService,
		catalogPDF:     catalogPDF,
	}
}

// ListCategory returns the listing handler of one category
func (h *ProductHandlers) ListCategory(category string) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := h.viewService.CategoryPage(category, h.pages.SiteName())
		return h.pages.Render(c, "products_list.html", page.Title, page)
	}
}

func (h *ProductHandlers) GetProduct(c echo.Context) error {
	product, err := h.catalogService.GetBySlug(c.Param("slug"))
	if errors.Is(err, services.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return err
	}

	view := h.viewService.ToDetailView(product)
	return h.pages.Render(c, "product_detail.html", h.pages.Title(view.Name), view)
}

// DownloadCatalog sends the designed catalog when it is deployed, otherwise
// a price list generated from the registry.
func (h *ProductHandlers) DownloadCatalog(c echo.Context) error {
	if p, ok := h.catalogPDF.StaticFile(); ok {
		return c.Attachment(p, h.catalogPDF.FileName())
	}

	zap.L().Debug("catalog pdf not deployed, generating price list", zap.String("file", h.catalogPDF.FileName()))
	var buf bytes.Buffer
	if err := h.catalogPDF.WritePriceList(&buf); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", priceListFileName))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
