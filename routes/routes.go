package routes

import (
	"github.com/AfanKulaglic/saraya-menu-api/handlers"
	"github.com/AfanKulaglic/saraya-menu-api/middleware"
	"github.com/AfanKulaglic/saraya-menu-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Storefront (no auth needed)
		public.GET("/venues", handlers.ListVenues)
		public.GET("/venues/:id/menu", handlers.GetVenueMenu)
		public.GET("/venues/:id/config", handlers.GetVenueConfig)
		public.POST("/venues/:id/quote", handlers.QuoteSelection)

		// Theme preset catalog
		public.GET("/themes", handlers.GetThemes)

		// Lifecycle info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetLifecycleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Venue owner routes ─────────────────────────────────────────
	owner := r.Group("/api/venue")
	owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleOwner))
	{
		// Venue management
		owner.POST("/", handlers.CreateVenue)
		owner.GET("/", handlers.GetMyVenue)
		owner.PUT("/info", handlers.UpdateRestaurantInfo)
		owner.PUT("/status", handlers.SetVenueStatus)
		owner.DELETE("/", handlers.DeleteVenue)

		// Category management
		owner.POST("/categories", handlers.AddCategory)
		owner.PUT("/categories/:categoryId", handlers.UpdateCategory)
		owner.DELETE("/categories/:categoryId", handlers.DeleteCategory)
		owner.PUT("/reorder/categories", handlers.ReorderCategories)

		// Product management
		owner.POST("/products", handlers.AddProduct)
		owner.PUT("/reorder/products", handlers.ReorderProducts)
		owner.PUT("/products/:productId", handlers.UpdateProduct)
		owner.DELETE("/products/:productId", handlers.DeleteProduct)

		// Nested addon / variation / option management
		owner.PUT("/products/:productId/addons", handlers.SetAddon)
		owner.DELETE("/products/:productId/addons/:addonId", handlers.DeleteAddon)
		owner.PUT("/products/:productId/variations", handlers.SetVariation)
		owner.DELETE("/products/:productId/variations/:variationId", handlers.DeleteVariation)
		owner.PUT("/products/:productId/variations/:variationId/options", handlers.SetVariationOption)
		owner.DELETE("/products/:productId/variations/:variationId/options/:optionId", handlers.DeleteVariationOption)

		// Theming
		owner.GET("/theme", handlers.GetThemeConfig)
		owner.PUT("/theme", handlers.SwitchTheme)
		owner.PUT("/theme/save", handlers.SaveThemeCustomization)
		owner.PUT("/content", handlers.UpdatePageContent)
		owner.PUT("/styles", handlers.UpdateComponentStyles)
		owner.PUT("/layout", handlers.UpdateLayout)
		owner.PUT("/sections/:sectionId/toggle", handlers.ToggleSection)
		owner.PUT("/sections/:sectionId/variant", handlers.SetSectionVariant)
		owner.PUT("/layout/sections/move", handlers.MoveSection)
		owner.GET("/lint", handlers.LintVenueConfig)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/venues", handlers.AdminGetAllVenues)
		admin.PUT("/venues/:id/status", handlers.AdminSetVenueStatus)
		admin.GET("/venues/:id/lint", handlers.AdminLintVenue)
	}
}
