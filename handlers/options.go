package handlers

import (
	"net/http"

	"github.com/AfanKulaglic/saraya-menu-api/catalog"
	"github.com/AfanKulaglic/saraya-menu-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ── Addons, Variations, Variation Options ────────────────────────────────────

// loadMyProduct resolves the :productId of the owner's venue, or writes a 404
func loadMyProduct(c *gin.Context) (*models.Venue, models.ProductItem, bool) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return nil, models.ProductItem{}, false
	}
	item, found := catalog.FindProduct(venue.Products, c.Param("productId"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return nil, models.ProductItem{}, false
	}
	return venue, item, true
}

type AddonRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
}

// SetAddon adds or replaces an addon on a product
func SetAddon(c *gin.Context) {
	venue, item, ok := loadMyProduct(c)
	if !ok {
		return
	}
	var req AddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	item = catalog.SetAddon(item, models.Addon{ID: req.ID, Name: req.Name, Price: req.Price})
	venue.Products = catalog.UpsertProduct(venue.Products, item)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Addon saved", "product": item})
}

// DeleteAddon removes an addon from a product
func DeleteAddon(c *gin.Context) {
	venue, item, ok := loadMyProduct(c)
	if !ok {
		return
	}
	item, removed := catalog.RemoveAddon(item, c.Param("addonId"))
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Addon not found"})
		return
	}
	venue.Products = catalog.UpsertProduct(venue.Products, item)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Addon removed", "product": item})
}

type VariationRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	NameBs   string `json:"name_bs"`
	Required bool   `json:"required"`
}

// SetVariation adds or replaces a variation group on a product
func SetVariation(c *gin.Context) {
	venue, item, ok := loadMyProduct(c)
	if !ok {
		return
	}
	var req VariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	variation := models.Variation{ID: req.ID, Name: req.Name, NameBs: req.NameBs, Required: req.Required}
	if variation.ID == "" {
		variation.ID = uuid.New().String()
		variation.Options = []models.VariationOption{}
	} else if existing, found := findVariation(item, variation.ID); found {
		// Keep the option list when renaming or toggling required
		variation.Options = existing.Options
	} else {
		variation.Options = []models.VariationOption{}
	}
	item = catalog.SetVariation(item, variation)
	venue.Products = catalog.UpsertProduct(venue.Products, item)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Variation saved", "product": item})
}

// DeleteVariation removes a variation group from a product
func DeleteVariation(c *gin.Context) {
	venue, item, ok := loadMyProduct(c)
	if !ok {
		return
	}
	item, removed := catalog.RemoveVariation(item, c.Param("variationId"))
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Variation not found"})
		return
	}
	venue.Products = catalog.UpsertProduct(venue.Products, item)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Variation removed", "product": item})
}

type VariationOptionRequest struct {
	ID              string  `json:"id"`
	Label           string  `json:"label" binding:"required"`
	LabelBs         string  `json:"label_bs"`
	PriceAdjustment float64 `json:"price_adjustment"`
}

// SetVariationOption adds or replaces an option inside a variation group
func SetVariationOption(c *gin.Context) {
	venue, item, ok := loadMyProduct(c)
	if !ok {
		return
	}
	var req VariationOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	opt := models.VariationOption{ID: req.ID, Label: req.Label, LabelBs: req.LabelBs, PriceAdjustment: req.PriceAdjustment}
	item, found := catalog.SetVariationOption(item, c.Param("variationId"), opt)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Variation not found"})
		return
	}
	venue.Products = catalog.UpsertProduct(venue.Products, item)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Option saved", "product": item})
}

// DeleteVariationOption removes an option from a variation group
func DeleteVariationOption(c *gin.Context) {
	venue, item, ok := loadMyProduct(c)
	if !ok {
		return
	}
	item, removed := catalog.RemoveVariationOption(item, c.Param("variationId"), c.Param("optionId"))
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Option not found"})
		return
	}
	venue.Products = catalog.UpsertProduct(venue.Products, item)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Option removed", "product": item})
}

func findVariation(p models.ProductItem, id string) (models.Variation, bool) {
	for _, v := range p.Variations {
		if v.ID == id {
			return v, true
		}
	}
	return models.Variation{}, false
}
