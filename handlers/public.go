package handlers

import (
	"net/http"

	"github.com/AfanKulaglic/saraya-menu-api/catalog"
	"github.com/AfanKulaglic/saraya-menu-api/config"
	"github.com/AfanKulaglic/saraya-menu-api/models"
	"github.com/AfanKulaglic/saraya-menu-api/theme"

	"github.com/gin-gonic/gin"
)

// ── Public Storefront ────────────────────────────────────────────────────────

// loadLiveVenue fetches a venue by id if its storefront is published
func loadLiveVenue(c *gin.Context) (*models.Venue, bool) {
	var venue models.Venue
	if err := config.DB.First(&venue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return nil, false
	}
	if venue.Status != models.StatusLive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue is not published"})
		return nil, false
	}
	venue.Categories = catalog.EnsureReserved(venue.Categories)
	return &venue, true
}

// ListVenues returns all published venues (public directory)
func ListVenues(c *gin.Context) {
	var venues []models.Venue
	query := config.DB.Where("status = ?", models.StatusLive)
	if venueType := c.Query("type"); venueType != "" {
		query = query.Where("venue_type = ?", venueType)
	}
	query.Find(&venues)

	// Directory listing only exposes the public identity
	listing := make([]gin.H, 0, len(venues))
	for _, v := range venues {
		listing = append(listing, gin.H{
			"id":         v.ID,
			"venue_type": v.VenueType,
			"restaurant": v.Restaurant,
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(listing), "venues": listing})
}

// GetVenueMenu returns the grouped catalog for a published venue
func GetVenueMenu(c *gin.Context) {
	venue, ok := loadLiveVenue(c)
	if !ok {
		return
	}
	products := venue.Products
	if search := c.Query("search"); search != "" {
		products = catalog.SearchProducts(products, search)
	}
	c.JSON(http.StatusOK, gin.H{
		"venue":      venue.Restaurant,
		"categories": venue.Categories,
		"groups":     catalog.GroupByCategory(venue.Categories, products),
	})
}

// GetVenueConfig returns the resolved effective configuration and render
// plan the storefront consumes
func GetVenueConfig(c *gin.Context) {
	venue, ok := loadLiveVenue(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"active_theme": venue.LayoutConfig.ActiveTheme,
		"config": models.EffectiveConfig{
			ComponentStyles: venue.ComponentStyles,
			LayoutConfig:    venue.LayoutConfig,
			PageContent:     venue.PageContent,
		},
		"render_plan": theme.ResolveSections(venue.LayoutConfig.Sections, theme.SectionRegistry),
	})
}

type QuoteRequest struct {
	ProductID        string            `json:"product_id" binding:"required"`
	Quantity         int               `json:"quantity" binding:"required,min=1"`
	VariationChoices map[string]string `json:"variation_choices"`
	AddonIDs         []string          `json:"addon_ids"`
}

// QuoteSelection prices a product with a concrete set of choices. Required
// variations without a selection are rejected server-side, not just in the
// storefront UI.
func QuoteSelection(c *gin.Context) {
	venue, ok := loadLiveVenue(c)
	if !ok {
		return
	}
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, found := catalog.FindProduct(venue.Products, req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	unitPrice, err := catalog.PriceSelection(item, req.VariationChoices, req.AddonIDs)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"product":    item.Name,
		"unit_price": unitPrice,
		"quantity":   req.Quantity,
		"total":      unitPrice * float64(req.Quantity),
	})
}
