package handlers

import (
	"net/http"

	"github.com/AfanKulaglic/saraya-menu-api/config"
	"github.com/AfanKulaglic/saraya-menu-api/models"
	"github.com/AfanKulaglic/saraya-menu-api/statemachine"
	"github.com/AfanKulaglic/saraya-menu-api/theme"

	"github.com/gin-gonic/gin"
)

// AdminGetAllUsers returns all users (admin only)
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminGetAllVenues returns all venues in any publication state (admin only)
func AdminGetAllVenues(c *gin.Context) {
	var venues []models.Venue
	query := config.DB.Preload("Owner")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if venueType := c.Query("type"); venueType != "" {
		query = query.Where("venue_type = ?", venueType)
	}
	query.Find(&venues)

	// Admin dashboard: aggregate by status
	summary := map[string]int{}
	for _, v := range venues {
		summary[string(v.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"status_summary": summary,
		"count":          len(venues),
		"venues":         venues,
	})
}

// AdminSetVenueStatus moves any venue through the lifecycle as the admin
// actor (suspend/restore)
func AdminSetVenueStatus(c *gin.Context) {
	var req struct {
		Status models.VenueStatus `json:"status" binding:"required"`
		Reason string             `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var venue models.Venue
	if err := config.DB.First(&venue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}
	if err := statemachine.CanTransition(venue.Status, req.Status, "admin"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot change venue status",
			"reason":        err.Error(),
			"current_state": venue.Status,
		})
		return
	}
	prevStatus := venue.Status
	config.DB.Model(&venue).Update("status", req.Status)
	c.JSON(http.StatusOK, gin.H{
		"message":         "Venue status updated by admin",
		"venue_id":        venue.ID,
		"previous_status": prevStatus,
		"new_status":      req.Status,
		"reason":          req.Reason,
	})
}

// AdminLintVenue runs the config diagnostic pass over any venue
func AdminLintVenue(c *gin.Context) {
	var venue models.Venue
	if err := config.DB.First(&venue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}
	diags := theme.Lint(&venue, theme.Presets())
	c.JSON(http.StatusOK, gin.H{"venue_id": venue.ID, "count": len(diags), "diagnostics": diags})
}
