package main

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/acme-gaming/acme-store-api/config"
	"github.com/acme-gaming/acme-store-api/controllers"
	"github.com/acme-gaming/acme-store-api/middleware"
	"github.com/acme-gaming/acme-store-api/models"
	"github.com/acme-gaming/acme-store-api/services"
)

func main() {
	log.Println("Starting ACME Gaming Store API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Seed the product catalog
	if err := models.SeedProducts(db); err != nil {
		log.Fatalf("Failed to seed product catalog: %v", err)
	}

	// S3 is only needed for payment-proof uploads; the store runs without it
	if cfg.AWSS3Bucket != "" {
		if _, err := services.InitS3Service(); err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
	} else {
		log.Println("AWS_S3_BUCKET not set, payment proof uploads disabled")
	}

	// Order events are best effort and disabled without a broker
	publisher, err := services.InitOrderEvents(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize order events: %v", err)
	}
	defer publisher.Close()

	router := setupRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

var (
	metricsOnce   sync.Once
	serverMetrics *middleware.ServerMetrics
)

// setupRouter builds the API router with middleware and all routes
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.Default())

	// Collectors register globally; guard against double registration when
	// the router is rebuilt in tests
	metricsOnce.Do(func() {
		serverMetrics = middleware.NewServerMetrics("api")
	})
	router.Use(serverMetrics.Instrument())
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Storefront
		v1.GET("/products", controllers.ListProducts)
		v1.GET("/products/:id", controllers.GetProduct)
		v1.POST("/orders", controllers.CreateOrder)
		v1.POST("/orders/:orderNumber/payment-proof", controllers.UploadPaymentProof)
		v1.POST("/auth/register", controllers.Register)

		// Admin back-office
		admin := v1.Group("/admin")
		admin.Use(middleware.EnsureValidToken(cfg), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/orders", controllers.ListOrders)
			admin.GET("/orders/:id", controllers.GetOrder)
			admin.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ACME Gaming Store API is running",
	})
}
