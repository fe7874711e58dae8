package handlers

import (
	"net/http"

	"github.com/AfanKulaglic/saraya-menu-api/catalog"
	"github.com/AfanKulaglic/saraya-menu-api/config"
	"github.com/AfanKulaglic/saraya-menu-api/middleware"
	"github.com/AfanKulaglic/saraya-menu-api/models"
	"github.com/AfanKulaglic/saraya-menu-api/statemachine"
	"github.com/AfanKulaglic/saraya-menu-api/theme"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ── Venue Management ─────────────────────────────────────────────────────────

type CreateVenueRequest struct {
	Name      string           `json:"name" binding:"required"`
	VenueType models.VenueType `json:"venue_type"`
	Tagline   string           `json:"tagline"`
	Address   string           `json:"address"`
	Phone     string           `json:"phone"`
}

// loadMyVenue fetches the venue owned by the logged-in user, or writes a 404
func loadMyVenue(c *gin.Context) (*models.Venue, bool) {
	ownerID := middleware.GetUserID(c)
	var venue models.Venue
	if err := config.DB.Where("owner_id = ?", ownerID).First(&venue).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No venue found for your account"})
		return nil, false
	}
	venue.Categories = catalog.EnsureReserved(venue.Categories)
	return &venue, true
}

// saveVenue persists the full bundle, or writes a 500
func saveVenue(c *gin.Context, venue *models.Venue) bool {
	if err := config.DB.Omit("Owner").Save(venue).Error; err != nil {
		config.Log.Error("failed to save venue", zap.Uint("venue_id", venue.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save venue"})
		return false
	}
	return true
}

// CreateVenue lets an owner create their venue, seeded for its venue type
func CreateVenue(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Venue
	if result := config.DB.Where("owner_id = ?", ownerID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a venue"})
		return
	}

	venueType := req.VenueType
	if venueType == "" {
		venueType = models.VenueRestaurant
	}

	defaults := theme.DefaultConfig()
	venue := models.Venue{
		OwnerID:   ownerID,
		VenueType: venueType,
		Status:    models.StatusDraft,
		Restaurant: models.RestaurantInfo{
			Name:    req.Name,
			Tagline: req.Tagline,
			Address: req.Address,
			Phone:   req.Phone,
		},
		Categories:          catalog.SeedCategories(venueType),
		Products:            []models.ProductItem{},
		PageContent:         defaults.Content,
		ComponentStyles:     defaults.Styles,
		LayoutConfig:        defaults.Layout,
		ThemeCustomizations: map[string]models.ThemeCustomization{},
	}
	if err := config.DB.Omit("Owner").Create(&venue).Error; err != nil {
		config.Log.Error("failed to create venue", zap.Uint("owner_id", ownerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create venue"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Venue created", "venue": venue})
}

// GetMyVenue fetches the venue owned by the logged-in user
func GetMyVenue(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"venue": venue})
}

// UpdateRestaurantInfo updates the venue's public identity fields
func UpdateRestaurantInfo(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow known fields
	for key, value := range req {
		switch key {
		case "name":
			venue.Restaurant.Name = value
		case "name_bs":
			venue.Restaurant.NameBs = value
		case "tagline":
			venue.Restaurant.Tagline = value
		case "tagline_bs":
			venue.Restaurant.TaglineBs = value
		case "image":
			venue.Restaurant.Image = value
		case "logo":
			venue.Restaurant.Logo = value
		case "address":
			venue.Restaurant.Address = value
		case "address_bs":
			venue.Restaurant.AddressBs = value
		case "open_hours":
			venue.Restaurant.OpenHours = value
		case "open_hours_bs":
			venue.Restaurant.OpenHoursBs = value
		case "wifi":
			venue.Restaurant.Wifi = value
		case "phone":
			venue.Restaurant.Phone = value
		}
	}
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue updated", "restaurant": venue.Restaurant})
}

// DeleteVenue destroys the venue bundle, nested records included
func DeleteVenue(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(venue).Error; err != nil {
		config.Log.Error("failed to delete venue", zap.Uint("venue_id", venue.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete venue"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue deleted"})
}

// ── Publication Lifecycle ────────────────────────────────────────────────────

type SetStatusRequest struct {
	Status models.VenueStatus `json:"status" binding:"required"`
}

// SetVenueStatus moves the venue through the publication lifecycle
func SetVenueStatus(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(venue.Status, req.Status, "owner"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot change venue status",
			"reason":        err.Error(),
			"current_state": venue.Status,
		})
		return
	}

	prevStatus := venue.Status
	venue.Status = req.Status
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Venue status updated",
		"previous_status": prevStatus,
		"new_status":      venue.Status,
	})
}

// GetLifecycleInfo returns the full publication state machine for docs
func GetLifecycleInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{string(models.StatusArchived)},
		"description":     "Venue Publication Lifecycle State Machine",
	})
}
