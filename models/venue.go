package models

import "time"

// VenueType selects the starter catalog seeded at venue creation
type VenueType string

const (
	VenueRestaurant VenueType = "restaurant"
	VenueCafe       VenueType = "cafe"
	VenueBar        VenueType = "bar"
)

// VenueStatus represents all publication states of a venue's storefront
type VenueStatus string

const (
	StatusDraft     VenueStatus = "DRAFT"
	StatusLive      VenueStatus = "LIVE"
	StatusSuspended VenueStatus = "SUSPENDED"
	StatusArchived  VenueStatus = "ARCHIVED"
)

// RestaurantInfo holds the venue's public identity. Every text field has a
// secondary-language sibling using the _bs suffix convention.
type RestaurantInfo struct {
	Name        string `json:"name"`
	NameBs      string `json:"name_bs"`
	Tagline     string `json:"tagline"`
	TaglineBs   string `json:"tagline_bs"`
	Image       string `json:"image"`
	Logo        string `json:"logo"`
	Address     string `json:"address"`
	AddressBs   string `json:"address_bs"`
	OpenHours   string `json:"open_hours"`
	OpenHoursBs string `json:"open_hours_bs"`
	Wifi        string `json:"wifi"`
	Phone       string `json:"phone"`
}

// Venue is the full per-tenant bundle: identity, catalog, and the three
// configuration records plus saved per-theme customizations. Nested records
// are stored as JSON columns so the whole bundle lives in one row.
type Venue struct {
	ID                  uint                          `json:"id" gorm:"primaryKey"`
	OwnerID             uint                          `json:"owner_id" gorm:"uniqueIndex;not null"`
	Owner               User                          `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	VenueType           VenueType                     `json:"venue_type" gorm:"not null;default:'restaurant'"`
	Status              VenueStatus                   `json:"status" gorm:"not null;default:'DRAFT'"`
	Restaurant          RestaurantInfo                `json:"restaurant" gorm:"serializer:json"`
	Categories          []CategoryInfo                `json:"categories" gorm:"serializer:json"`
	Products            []ProductItem                 `json:"products" gorm:"serializer:json"`
	PageContent         PageContent                   `json:"page_content" gorm:"serializer:json"`
	ComponentStyles     ComponentStyles               `json:"component_styles" gorm:"serializer:json"`
	LayoutConfig        LayoutConfig                  `json:"layout_config" gorm:"serializer:json"`
	ThemeCustomizations map[string]ThemeCustomization `json:"theme_customizations" gorm:"serializer:json"`
	CreatedAt           time.Time                     `json:"created_at"`
	UpdatedAt           time.Time                     `json:"updated_at"`
}
