package handlers

import (
	"net/http"

	"mojamalca-api/config"
	"mojamalca-api/middleware"
	"mojamalca-api/models"

	"github.com/gin-gonic/gin"
)

// ── Menu Categories (admin library) ─────────────────────────────────────────

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func ListMenuCategories(c *gin.Context) {
	adminID := middleware.GetSubjectID(c)
	var categories []models.MenuCategory
	config.DB.Where("admin_id = ?", adminID).Order("name asc").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

func CreateMenuCategory(c *gin.Context) {
	adminID := middleware.GetSubjectID(c)
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.MenuCategory{AdminID: adminID, Name: req.Name}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	hub.Broadcast(newEvent("menuCategories", "created", category.ID, category))
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

func DeleteMenuCategory(c *gin.Context) {
	adminID := middleware.GetSubjectID(c)
	var category models.MenuCategory
	if err := config.DB.Where("id = ? AND admin_id = ?", c.Param("id"), adminID).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	config.DB.Delete(&category)
	hub.Broadcast(newEvent("menuCategories", "deleted", category.ID, nil))
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// ── Menu Base (admin library) ───────────────────────────────────────────────

type CreateMenuBaseItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func ListMenuBaseItems(c *gin.Context) {
	adminID := middleware.GetSubjectID(c)
	var items []models.MenuBaseItem
	query := config.DB.Where("admin_id = ?", adminID)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query.Order("name asc").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

func CreateMenuBaseItem(c *gin.Context) {
	adminID := middleware.GetSubjectID(c)
	var req CreateMenuBaseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuBaseItem{
		AdminID:     adminID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	hub.Broadcast(newEvent("menuBase", "created", item.ID, item))
	c.JSON(http.StatusCreated, gin.H{"message": "Item created", "item": item})
}

func DeleteMenuBaseItem(c *gin.Context) {
	adminID := middleware.GetSubjectID(c)
	var item models.MenuBaseItem
	if err := config.DB.Where("id = ? AND admin_id = ?", c.Param("id"), adminID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	config.DB.Delete(&item)
	hub.Broadcast(newEvent("menuBase", "deleted", item.ID, nil))
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

// ── Delivery Menu (public storefront, admin managed) ────────────────────────

type CreateDeliveryItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
}

func CreateDeliveryItem(c *gin.Context) {
	var req CreateDeliveryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.DeliveryMenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	hub.Broadcast(newEvent("deliveryMenu", "created", item.ID, item))
	c.JSON(http.StatusCreated, gin.H{"message": "Item created", "item": item})
}

func DeleteDeliveryItem(c *gin.Context) {
	var item models.DeliveryMenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	config.DB.Delete(&item)
	hub.Broadcast(newEvent("deliveryMenu", "deleted", item.ID, nil))
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
