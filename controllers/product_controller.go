package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acme-gaming/acme-store-api/config"
	"github.com/acme-gaming/acme-store-api/models"
)

// ListProducts handles GET /api/v1/products - lists the catalog, optionally
// filtered by category
func ListProducts(c *gin.Context) {
	db := config.GetDB()

	query := db.Model(&models.Product{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

// GetProduct handles GET /api/v1/products/:id - fetches a single product by slug
func GetProduct(c *gin.Context) {
	db := config.GetDB()

	var product models.Product
	if err := db.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}
