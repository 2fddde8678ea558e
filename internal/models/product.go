package models

// Product categories. The set is closed; the registry rejects anything else.
const (
	CategoryLasers      = "lasers"
	CategoryHiTech      = "hi-tech"
	CategoryAccessories = "accessories"
)

// Categories lists the product categories in navigation order.
var Categories = []string{CategoryLasers, CategoryHiTech, CategoryAccessories}

// Product is a catalog entry. Products are loaded once at startup and never mutated.
type Product struct {
	Slug      string   `json:"slug" yaml:"slug"`
	Name      string   `json:"name" yaml:"name"`
	Category  string   `json:"category" yaml:"category"`
	Tag       string   `json:"tag" yaml:"tag"`
	Short     string   `json:"short" yaml:"short"`
	Bullets   []string `json:"bullets" yaml:"bullets"`
	Price     string   `json:"price,omitempty" yaml:"price"`
	Rental    string   `json:"rental,omitempty" yaml:"rental"`
	Badge     string   `json:"badge,omitempty" yaml:"badge"`
	Pages     []int    `json:"pages,omitempty" yaml:"pages"`       // Catalog reference pages, informational only
	PhotoBase string   `json:"photo_base,omitempty" yaml:"photo"`  // Base name of the custom photo in photos/
	VideoBase string   `json:"video_base,omitempty" yaml:"video"`  // Base name of the clip in video/
	Effects   string   `json:"effects,omitempty" yaml:"effects"`   // Folder under img/effects/ with before/after images
	TechURL   string   `json:"tech_url,omitempty" yaml:"tech_url"` // External technology page
}

// CategoryMeta carries the display metadata of a category.
type CategoryMeta struct {
	Key         string   `json:"key" yaml:"key"`
	Label       string   `json:"label" yaml:"label"`
	Path        string   `json:"path" yaml:"path"`
	Description string   `json:"description" yaml:"description"`
	HomeRank    []string `json:"home_rank,omitempty" yaml:"home_rank"` // Curated homepage order, by slug
	GridClasses string   `json:"grid_classes,omitempty" yaml:"grid_classes"`
	ImgClass    string   `json:"img_class,omitempty" yaml:"img_class"`
	SectionPx   string   `json:"section_px,omitempty" yaml:"section_px"`
	CardRound   string   `json:"card_round,omitempty" yaml:"card_round"`
}

// Presentation defaults used when a category does not override them.
const (
	DefaultGridClasses = "grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-4"
	DefaultImgClass    = "h-56"
	DefaultSectionPx   = "px-4"
	DefaultCardRound   = "rounded-3xl"
)
