package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acme-gaming/acme-store-api/config"
	"github.com/acme-gaming/acme-store-api/models"
	"github.com/acme-gaming/acme-store-api/services"
	"github.com/acme-gaming/acme-store-api/utils"
)

// UploadPaymentProof handles POST /api/v1/orders/:orderNumber/payment-proof -
// accepts a proof-of-payment screenshot for bank and GCash orders and stores
// it in S3 against the order
func UploadPaymentProof(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.Where("order_number = ?", c.Param("orderNumber")).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	// COD settles on delivery; there is nothing to prove in advance
	if order.PaymentMethod == models.PaymentMethodCOD {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cash-on-delivery orders do not require proof of payment",
		})
		return
	}

	fileHeader, err := c.FormFile("proof")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Proof image is required",
		})
		return
	}

	if err := utils.ValidateImageFile(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	s3Service := services.GetS3Service()
	if s3Service == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to upload proof of payment",
		})
		return
	}

	s3Key, err := s3Service.UploadPaymentProof(order.OrderNumber, fileHeader)
	if err != nil {
		log.Printf("Payment proof upload error for order %s: %v", order.OrderNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to upload proof of payment",
		})
		return
	}

	if err := db.Model(&order).Update("payment_proof_s3_key", s3Key).Error; err != nil {
		log.Printf("Failed to record payment proof for order %s: %v", order.OrderNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to upload proof of payment",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"orderNumber": order.OrderNumber,
	})
}
