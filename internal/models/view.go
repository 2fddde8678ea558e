package models

// ProductView is the template-ready projection of a Product. It is built per
// request and never stored.
type ProductView struct {
	Slug          string
	Name          string
	Category      string
	CategoryLabel string
	Tag           string
	Short         string
	Bullets       []string
	Price         string
	Rental        string
	Badge         string
	Thumb         string
	PhotoBase     string
	HasPhoto      bool // Thumb comes from photos/ rather than the slug fallback

	// Detail page only
	BackLabel string
	BackURL   string
	Hero      string
	Gallery   []string
	Effects   []string
	Video     string
	TechURL   string
}

// CategoryPage is the data for a category listing page.
type CategoryPage struct {
	Meta        CategoryMeta
	Title       string
	Products    []*ProductView
	GridClasses string
	ImgClass    string
	SectionPx   string
	CardRound   string
}

// MediaItem is one entry of the video showcase.
type MediaItem struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"` // "local" or "remote"
}

const (
	MediaSourceLocal  = "local"
	MediaSourceRemote = "remote"
)
