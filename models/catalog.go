package models

// Reserved category ids. Both always exist for every venue, cannot be
// deleted, and are excluded when iterating the venue's own catalog.
const (
	CategoryAll     = "all"
	CategoryPopular = "popular"
)

type CategoryInfo struct {
	ID      string `json:"id"`       // slug, unique within venue
	Label   string `json:"label"`    // display label
	LabelBs string `json:"label_bs"` // secondary-language label
	Icon    string `json:"icon"`     // emoji
	Color   string `json:"color"`    // gradient token
}

type Addon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type VariationOption struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	LabelBs         string  `json:"label_bs"`
	PriceAdjustment float64 `json:"price_adjustment"` // signed, added to base price
}

// Variation is a single-select option group. When Required is true a
// selection must be made before the item can be priced into an order.
type Variation struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	NameBs   string            `json:"name_bs"`
	Required bool              `json:"required"`
	Options  []VariationOption `json:"options"`
}

type ProductItem struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	NameBs        string      `json:"name_bs"`
	Description   string      `json:"description"`
	DescriptionBs string      `json:"description_bs"`
	Price         float64     `json:"price"`
	Image         string      `json:"image"`
	CategoryID    string      `json:"category_id"` // references CategoryInfo.ID
	Popular       bool        `json:"popular"`
	SortOrder     int         `json:"sort_order"`
	Addons        []Addon     `json:"addons"`
	Variations    []Variation `json:"variations"`
}
