package services

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"xestetik/internal/common"

	"github.com/jung-kurt/gofpdf"
)

// CatalogPDFService provides the downloadable catalog: the designed PDF when
// it is present in the static directory, otherwise a generated price list.
type CatalogPDFService interface {
	FileName() string
	// StaticFile returns the on-disk catalog path if the file exists.
	StaticFile() (string, bool)
	// WritePriceList renders a price list of the whole catalog.
	WritePriceList(w io.Writer) error
}

type catalogPDFService struct {
	catalog  CatalogService
	assets   AssetService
	fileName string
	brand    string
}

func NewCatalogPDFService(catalog CatalogService, assets AssetService, fileName, brand string) CatalogPDFService {
	return &catalogPDFService{catalog: catalog, assets: assets, fileName: fileName, brand: brand}
}

func (s *catalogPDFService) FileName() string {
	return s.fileName
}

func (s *catalogPDFService) StaticFile() (string, bool) {
	if !common.IsSafeIdentifier(s.fileName) {
		return "", false
	}
	p := s.assets.Path(path.Join(PDFDir, s.fileName))
	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return p, true
}

func (s *catalogPDFService) WritePriceList(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts only cover a single code page; cp1250 carries Polish letters.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	text := func(s string) string { return tr(pdfSafe(s)) }

	marginX := 20.0
	marginY := 20.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.Cell(0, 10, text(s.brand+" - cennik urządzeń"))
	pdf.Ln(14)

	colWidths := []float64{100, 35, 35}
	for _, meta := range s.catalog.Categories() {
		products := s.catalog.ListCategory(meta.Key)
		if len(products) == 0 {
			continue
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, text(meta.Label))
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(240, 240, 240)
		for i, header := range []string{"Urządzenie", "Cena", "Wynajem / mies."} {
			pdf.CellFormat(colWidths[i], 8, text(header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 10)
		for _, p := range products {
			pdf.CellFormat(colWidths[0], 8, text(p.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(colWidths[1], 8, text(orDash(p.Price)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(colWidths[2], 8, text(orDash(p.Rental)), "1", 0, "R", false, 0, "")
			pdf.Ln(8)
		}
		pdf.Ln(6)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render price list: %w", err)
	}
	return nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// Characters outside cp1250 that the catalog copy uses.
var pdfReplacer = strings.NewReplacer(
	"\u2011", "-", "\u2010", "-", "\u2013", "-", "\u2014", "-",
	"\u2122", "(TM)", "\u2082", "2", "\u00a0", " ",
)

func pdfSafe(s string) string {
	return pdfReplacer.Replace(s)
}
