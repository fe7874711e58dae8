package handlers

import (
	"net/http"

	"github.com/AfanKulaglic/saraya-menu-api/catalog"
	"github.com/AfanKulaglic/saraya-menu-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ── Category Management ──────────────────────────────────────────────────────

type CategoryRequest struct {
	ID      string `json:"id" binding:"required"`
	Label   string `json:"label" binding:"required"`
	LabelBs string `json:"label_bs"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
}

// AddCategory adds or replaces a category in the venue's catalog
func AddCategory(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if catalog.IsReserved(req.ID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'" + req.ID + "' is a system category and cannot be redefined"})
		return
	}
	venue.Categories = catalog.UpsertCategory(venue.Categories, models.CategoryInfo{
		ID:      req.ID,
		Label:   req.Label,
		LabelBs: req.LabelBs,
		Icon:    req.Icon,
		Color:   req.Color,
	})
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category saved", "categories": venue.Categories})
}

// UpdateCategory patches a single category's fields
func UpdateCategory(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	categoryID := c.Param("categoryId")
	if catalog.IsReserved(categoryID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "System categories cannot be edited"})
		return
	}
	cat, found := catalog.FindCategory(venue.Categories, categoryID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for key, value := range req {
		switch key {
		case "label":
			cat.Label = value
		case "label_bs":
			cat.LabelBs = value
		case "icon":
			cat.Icon = value
		case "color":
			cat.Color = value
		}
	}
	venue.Categories = catalog.UpsertCategory(venue.Categories, cat)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": cat})
}

// DeleteCategory removes a category. Its products are intentionally kept;
// they hold their category id and drop out of grouped views until reassigned.
func DeleteCategory(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	categoryID := c.Param("categoryId")
	if catalog.IsReserved(categoryID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'" + categoryID + "' is a system category and cannot be deleted"})
		return
	}
	categories, removed := catalog.RemoveCategory(venue.Categories, categoryID)
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	venue.Categories = categories
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted", "categories": venue.Categories})
}

type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required,min=1"`
}

// ReorderCategories replaces the category order with the submitted id list
func ReorderCategories(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	venue.Categories = catalog.ReorderCategories(venue.Categories, req.OrderedIDs)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categories reordered", "categories": venue.Categories})
}

// ── Product Management ───────────────────────────────────────────────────────

type ProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	NameBs        string  `json:"name_bs"`
	Description   string  `json:"description"`
	DescriptionBs string  `json:"description_bs"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Image         string  `json:"image"`
	CategoryID    string  `json:"category_id" binding:"required"`
	Popular       bool    `json:"popular"`
}

// AddProduct adds a new product to the venue's catalog
func AddProduct(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, found := catalog.FindCategory(venue.Categories, req.CategoryID); !found || catalog.IsReserved(req.CategoryID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category '" + req.CategoryID + "'"})
		return
	}

	item := models.ProductItem{
		ID:            uuid.New().String(),
		Name:          req.Name,
		NameBs:        req.NameBs,
		Description:   req.Description,
		DescriptionBs: req.DescriptionBs,
		Price:         req.Price,
		Image:         req.Image,
		CategoryID:    req.CategoryID,
		Popular:       req.Popular,
		SortOrder:     len(venue.Products),
		Addons:        []models.Addon{},
		Variations:    []models.Variation{},
	}
	venue.Products = catalog.UpsertProduct(venue.Products, item)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added", "product": item})
}

// UpdateProduct patches a product's top-level fields
func UpdateProduct(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	item, found := catalog.FindProduct(venue.Products, c.Param("productId"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for key, value := range req {
		switch key {
		case "name":
			if s, ok := value.(string); ok {
				item.Name = s
			}
		case "name_bs":
			if s, ok := value.(string); ok {
				item.NameBs = s
			}
		case "description":
			if s, ok := value.(string); ok {
				item.Description = s
			}
		case "description_bs":
			if s, ok := value.(string); ok {
				item.DescriptionBs = s
			}
		case "price":
			if f, ok := value.(float64); ok && f > 0 {
				item.Price = f
			}
		case "image":
			if s, ok := value.(string); ok {
				item.Image = s
			}
		case "category_id":
			if s, ok := value.(string); ok {
				if _, found := catalog.FindCategory(venue.Categories, s); !found || catalog.IsReserved(s) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category '" + s + "'"})
					return
				}
				item.CategoryID = s
			}
		case "popular":
			if b, ok := value.(bool); ok {
				item.Popular = b
			}
		}
	}
	venue.Products = catalog.UpsertProduct(venue.Products, item)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": item})
}

// DeleteProduct removes a product from the catalog
func DeleteProduct(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	products, removed := catalog.RemoveProduct(venue.Products, c.Param("productId"))
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	venue.Products = products
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

type ReorderProductsRequest struct {
	CategoryID string   `json:"category_id" binding:"required"`
	OrderedIDs []string `json:"ordered_ids" binding:"required,min=1"`
}

// ReorderProducts resequences products within one category, leaving other
// categories' orders untouched
func ReorderProducts(c *gin.Context) {
	venue, ok := loadMyVenue(c)
	if !ok {
		return
	}
	var req ReorderProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	venue.Products = catalog.ReorderProducts(venue.Products, req.CategoryID, req.OrderedIDs)
	if !saveVenue(c, venue) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Products reordered"})
}
