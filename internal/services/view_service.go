package services

import "xestetik/internal/models"

// ViewService projects catalog records into template-ready views. It never
// mutates the product it is given.
type ViewService interface {
	ToView(p *models.Product) *models.ProductView
	ToViews(products []*models.Product) []*models.ProductView
	ToDetailView(p *models.Product) *models.ProductView
	CategoryPage(category, siteName string) *models.CategoryPage
	// HomeSection is the category block of the home page, in curated order.
	HomeSection(category string) *models.CategoryPage
}

type viewService struct {
	catalog CatalogService
	assets  AssetService
}

func NewViewService(catalog CatalogService, assets AssetService) ViewService {
	return &viewService{catalog: catalog, assets: assets}
}

func (s *viewService) ToView(p *models.Product) *models.ProductView {
	meta := s.catalog.CategoryMeta(p.Category)

	thumb, hasPhoto := s.assets.ResolvePhoto(p.PhotoBase)
	if !hasPhoto {
		thumb = s.assets.ThumbFallback(p.Slug)
	}

	return &models.ProductView{
		Slug:          p.Slug,
		Name:          p.Name,
		Category:      p.Category,
		CategoryLabel: meta.Label,
		Tag:           p.Tag,
		Short:         p.Short,
		Bullets:       p.Bullets,
		Price:         p.Price,
		Rental:        p.Rental,
		Badge:         p.Badge,
		Thumb:         thumb,
		PhotoBase:     p.PhotoBase,
		HasPhoto:      hasPhoto,
	}
}

func (s *viewService) ToViews(products []*models.Product) []*models.ProductView {
	views := make([]*models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, s.ToView(p))
	}
	return views
}

// ToDetailView adds the product page fields. The hero is the custom photo
// when one resolved, else the first catalog page image, else the thumbnail
// fallback.
func (s *viewService) ToDetailView(p *models.Product) *models.ProductView {
	view := s.ToView(p)

	if meta := s.catalog.CategoryMeta(p.Category); meta.Path != "" {
		view.BackLabel = meta.Label
		view.BackURL = meta.Path
	} else {
		view.BackLabel = "Lista"
		view.BackURL = "/"
	}

	view.Gallery = s.assets.ListGallery(p.Slug)
	switch {
	case view.HasPhoto:
		view.Hero = view.Thumb
	case len(view.Gallery) > 0:
		view.Hero = view.Gallery[0]
	default:
		view.Hero = view.Thumb
	}

	view.Effects = []string{}
	if p.Effects != "" {
		view.Effects = s.assets.ListEffects(p.Effects)
	}
	if link, ok := s.assets.ResolveVideo(p.VideoBase); ok {
		view.Video = link
	}
	view.TechURL = p.TechURL
	return view
}

func (s *viewService) CategoryPage(category, siteName string) *models.CategoryPage {
	page := s.categoryPage(category, s.catalog.ListCategory(category))
	page.Title = page.Meta.Label + " | " + siteName
	return page
}

func (s *viewService) HomeSection(category string) *models.CategoryPage {
	return s.categoryPage(category, s.catalog.HomeSection(category))
}

func (s *viewService) categoryPage(category string, products []*models.Product) *models.CategoryPage {
	meta := s.catalog.CategoryMeta(category)
	return &models.CategoryPage{
		Meta:        meta,
		Products:    s.ToViews(products),
		GridClasses: orDefault(meta.GridClasses, models.DefaultGridClasses),
		ImgClass:    orDefault(meta.ImgClass, models.DefaultImgClass),
		SectionPx:   orDefault(meta.SectionPx, models.DefaultSectionPx),
		CardRound:   orDefault(meta.CardRound, models.DefaultCardRound),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
