package handlers

import (
	"net/http"

	"github.com/AfanKulaglic/saraya-menu-api/models"
	"github.com/AfanKulaglic/saraya-menu-api/theme"

	"github.com/gin-gonic/gin"
)

// ── Theming & Layout ─────────────────────────────────────────────────────────

// GetThemes returns the built-in preset catalog with preview metadata
func GetThemes(c *gin.Context) {
	presets := theme.Presets()
	c.JSON(http.StatusOK, gin.H{"count": len(presets), "themes": presets})
}

// GetThemeConfig returns the venue's current effective configuration plus
// the resolved render plan
func GetThemeConfig(c *gin.Context) {
	venue, ok := loadMyVenue(c)
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

// UpdatePageContent shallow-merges submitted text fields over the current
// page content
func UpdatePageContent(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req models.PageContent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	venue.PageContent = theme.ApplyOverride(venue.PageContent, req)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page content updated", "page_content": venue.PageContent})
}

// UpdateComponentStyles shallow-merges submitted style fields over the
// current component styles
func UpdateComponentStyles(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req models.ComponentStyles
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	venue.ComponentStyles = theme.ApplyOverride(venue.ComponentStyles, req)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Component styles updated", "component_styles": venue.ComponentStyles})
}

// UpdateLayout applies a partial layout patch. The active theme cannot be
// changed here; that goes through SwitchTheme so the snapshot step always
// happens.
func UpdateLayout(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req models.LayoutPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activeTheme := venue.LayoutConfig.ActiveTheme
	venue.LayoutConfig = theme.ApplyLayoutPatch(venue.LayoutConfig, req)
	venue.LayoutConfig.ActiveTheme = activeTheme
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Layout updated", "layout_config": venue.LayoutConfig})
}

type SwitchThemeRequest struct {
	ThemeID string `json:"theme_id" binding:"required"`
}

// SwitchTheme changes the active theme: the current state is snapshotted
// under the outgoing theme, then the new theme resolves against any edits
// previously saved for it
func SwitchTheme(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req SwitchThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	eff := theme.SwitchTheme(venue, req.ThemeID, theme.Presets(), theme.DefaultConfig())
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Theme switched",
		"active_theme": venue.LayoutConfig.ActiveTheme,
		"config":       eff,
	})
}

// SaveThemeCustomization snapshots the current state under the active theme
// without switching
func SaveThemeCustomization(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	activeTheme := venue.LayoutConfig.ActiveTheme
	if activeTheme == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active theme to save under"})
		return
	}
	venue.ThemeCustomizations = theme.SaveCustomization(venue.ThemeCustomizations, activeTheme, theme.SnapshotCurrent(venue))
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customization saved", "theme_id": activeTheme})
}

// ── Section Operations ───────────────────────────────────────────────────────

// ToggleSection flips a section's visibility
func ToggleSection(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	sectionID := c.Param("sectionId")
	found := false
	for i, s := range venue.LayoutConfig.Sections {
		if s.ID == sectionID {
			venue.LayoutConfig.Sections[i].Visible = !s.Visible
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section toggled", "sections": venue.LayoutConfig.Sections})
}

type SectionVariantRequest struct {
	Variant string `json:"variant" binding:"required"`
}

// SetSectionVariant sets the render variant of one section
func SetSectionVariant(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req SectionVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sectionID := c.Param("sectionId")
	found := false
	for i, s := range venue.LayoutConfig.Sections {
		if s.ID == sectionID {
			venue.LayoutConfig.Sections[i].Variant = req.Variant
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section variant updated", "sections": venue.LayoutConfig.Sections})
}

type MoveSectionRequest struct {
	Index     int    `json:"index" binding:"min=0"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// MoveSection swaps a section with its neighbor. Boundary moves are no-ops.
func MoveSection(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req MoveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Direction == "up" {
		venue.LayoutConfig.Sections = theme.MoveSectionUp(venue.LayoutConfig.Sections, req.Index)
	} else {
		venue.LayoutConfig.Sections = theme.MoveSectionDown(venue.LayoutConfig.Sections, req.Index)
	}
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section moved", "sections": venue.LayoutConfig.Sections})
}

// LintVenueConfig runs the diagnostic pass over the owner's venue
func LintVenueConfig(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	diags := theme.Lint(venue, theme.Presets())
	c.JSON(http.StatusOK, gin.H{"count": len(diags), "diagnostics": diags})
}
