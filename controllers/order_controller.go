package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acme-gaming/acme-store-api/config"
	"github.com/acme-gaming/acme-store-api/models"
	"github.com/acme-gaming/acme-store-api/services"
)

// CreateOrderRequest represents the checkout request body
type CreateOrderRequest struct {
	CustomerInfo    models.Document      `json:"customerInfo"`
	ShippingAddress models.Document      `json:"shippingAddress"`
	Items           []models.OrderItem   `json:"items"`
	PaymentMethod   models.PaymentMethod `json:"paymentMethod"`
	Subtotal        float64              `json:"subtotal"`
	Shipping        float64              `json:"shipping"`
	Total           float64              `json:"total"`
}

// UpdateOrderStatusRequest represents the admin status-update request body
type UpdateOrderStatusRequest struct {
	OrderStatus models.OrderStatus `json:"orderStatus"`
}

// CreateOrder handles POST /api/v1/orders - the checkout intake pipeline:
// validate presence, resolve initial statuses, assign an order number,
// persist, then attach method-specific payment instructions to the response.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	// Presence gate. Nil means the field was absent from the request; an
	// empty items array passes, matching the storefront's contract. This
	// must run before any persistence call.
	if req.CustomerInfo == nil || req.ShippingAddress == nil || req.Items == nil || req.PaymentMethod == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	paymentService := services.NewPaymentService(config.GetConfig())

	// COD orders are confirmed immediately; all other methods await proof
	// of payment
	paymentStatus, orderStatus := paymentService.ResolveInitialStatuses(req.PaymentMethod)

	order := models.Order{
		OrderNumber:     paymentService.GenerateOrderNumber(),
		CustomerInfo:    req.CustomerInfo,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   paymentStatus,
		OrderStatus:     orderStatus,
		Subtotal:        req.Subtotal,
		Shipping:        req.Shipping,
		Total:           req.Total,
	}

	db := config.GetDB()
	if err := db.Create(&order).Error; err != nil {
		log.Printf("Order creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create order",
		})
		return
	}

	// Best effort: the order is already persisted, so a publish failure is
	// logged and the customer still gets their confirmation
	if err := services.GetOrderEvents().PublishOrderCreated(c.Request.Context(), &order); err != nil {
		log.Printf("Failed to publish order created event for %s: %v", order.OrderNumber, err)
	}

	response := gin.H{
		"success": true,
		"order": gin.H{
			"id":            order.ID,
			"orderNumber":   order.OrderNumber,
			"total":         order.Total,
			"paymentMethod": order.PaymentMethod,
		},
	}

	// Unrecognized payment methods get no instructions block at all
	if instructions := paymentService.Instructions(order.PaymentMethod, order.Total, order.OrderNumber); instructions != nil {
		response["paymentInstructions"] = instructions
	}

	c.JSON(http.StatusCreated, response)
}

// ListOrders handles GET /api/v1/orders - lists orders for the admin
// back-office with optional status filtering and pagination
func ListOrders(c *gin.Context) {
	db := config.GetDB()

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	query := db.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		if !models.OrderStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid order status",
			})
			return
		}
		query = query.Where("order_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list orders",
		})
		return
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list orders",
		})
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GetOrder handles GET /api/v1/orders/:id - fetches a single order for the
// admin back-office, with a presigned payment-proof URL when one exists
func GetOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	if order.PaymentProofS3Key != nil {
		if s3Service := services.GetS3Service(); s3Service != nil {
			url, err := s3Service.GetPresignedURL(*order.PaymentProofS3Key)
			if err != nil {
				log.Printf("Failed to presign payment proof for order %s: %v", order.OrderNumber, err)
			} else if url != "" {
				order.PaymentProofURL = &url
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - the admin
// back-office mutation of an order's fulfilment status
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.OrderStatus.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order status",
		})
		return
	}

	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	if err := db.Model(&order).Update("order_status", req.OrderStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update order status",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}
