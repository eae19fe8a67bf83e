package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/acme-gaming/acme-store-api/config"
	"github.com/acme-gaming/acme-store-api/controllers"
	"github.com/acme-gaming/acme-store-api/middleware"
	"github.com/acme-gaming/acme-store-api/models"
	"github.com/acme-gaming/acme-store-api/services"
	"github.com/acme-gaming/acme-store-api/tests/testutil"
)

// OrderIntegrationTestSuite defines the test suite for order integration tests
type OrderIntegrationTestSuite struct {
	suite.Suite
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

// SetupSuite runs once before all tests
func (suite *OrderIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	os.Setenv("GO_ENV", "test")
	os.Setenv("AUTH0_DOMAIN", "test.auth0.com")
	os.Setenv("AUTH0_AUDIENCE", "https://api.test.com")
	os.Setenv("PORT", "8080")

	cfg, err := config.Load()
	suite.NoError(err)
	suite.cfg = cfg
	config.SetConfig(cfg)
}

// SetupTest runs before each test with a fresh database
func (suite *OrderIntegrationTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.NoError(err)
	suite.db = db

	err = db.AutoMigrate(&models.User{}, &models.Order{}, &models.Product{})
	suite.NoError(err)
	config.SetDB(db)

	mockS3 := services.NewMockS3Service()
	mockS3.SetAsMockForTesting()

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	{
		v1.POST("/orders", controllers.CreateOrder)
		v1.POST("/orders/:orderNumber/payment-proof", controllers.UploadPaymentProof)

		admin := v1.Group("/admin")
		admin.Use(testutil.MockAuthMiddleware("auth0|integration-admin", models.RoleAdmin), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/orders", controllers.ListOrders)
			admin.GET("/orders/:id", controllers.GetOrder)
			admin.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
		}
	}
}

func (suite *OrderIntegrationTestSuite) createOrder(method string) map[string]interface{} {
	body := map[string]interface{}{
		"customerInfo":    map[string]interface{}{"name": "Maria Santos", "email": "maria@example.com"},
		"shippingAddress": map[string]interface{}{"street": "45 Bonifacio St", "city": "Quezon City"},
		"items": []map[string]interface{}{
			{"name": "Secretlab Titan Evo", "quantity": 1, "price": 28999},
		},
		"paymentMethod": method,
		"subtotal":      28999,
		"shipping":      500,
		"total":         29499,
	}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusCreated, w.Code)

	var response map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *OrderIntegrationTestSuite) TestCheckoutPersistsBeforeResponding() {
	response := suite.createOrder("gcash")

	orderNumber := response["order"].(map[string]interface{})["orderNumber"].(string)

	var stored models.Order
	err := suite.db.Where("order_number = ?", orderNumber).First(&stored).Error
	suite.NoError(err)
	suite.Equal(models.PaymentStatusPending, stored.PaymentStatus)
	suite.Equal(models.OrderStatusProcessing, stored.OrderStatus)
	suite.Equal(29499.0, stored.Total)
}

func (suite *OrderIntegrationTestSuite) TestMissingFieldsAreRejectedWithoutPersisting() {
	payload, _ := json.Marshal(map[string]interface{}{
		"customerInfo": map[string]interface{}{"name": "Maria Santos"},
		"items":        []map[string]interface{}{},
		"total":        100.0,
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Missing required fields", response["error"])

	var count int64
	suite.db.Model(&models.Order{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *OrderIntegrationTestSuite) TestAdminListsAndFiltersOrders() {
	suite.createOrder("bank")
	suite.createOrder("cod")
	suite.createOrder("gcash")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/admin/orders?status=confirmed", nil)
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))

	data := response["data"].([]interface{})
	suite.Len(data, 1, "Only the cod order is confirmed at creation")
	suite.Equal("cod", data[0].(map[string]interface{})["paymentMethod"])

	pagination := response["pagination"].(map[string]interface{})
	suite.Equal(float64(1), pagination["total"])
}

func (suite *OrderIntegrationTestSuite) TestAdminUpdatesOrderStatus() {
	response := suite.createOrder("bank")
	orderID := int(response["order"].(map[string]interface{})["id"].(float64))

	payload, _ := json.Marshal(map[string]interface{}{"orderStatus": "shipped"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, fmt.Sprintf("/api/v1/admin/orders/%d/status", orderID), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)

	var stored models.Order
	suite.NoError(suite.db.First(&stored, orderID).Error)
	suite.Equal(models.OrderStatusShipped, stored.OrderStatus)
}

func (suite *OrderIntegrationTestSuite) TestAdminRejectsInvalidStatusUpdate() {
	response := suite.createOrder("bank")
	orderID := int(response["order"].(map[string]interface{})["id"].(float64))

	payload, _ := json.Marshal(map[string]interface{}{"orderStatus": "teleported"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, fmt.Sprintf("/api/v1/admin/orders/%d/status", orderID), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusBadRequest, w.Code)

	var stored models.Order
	suite.NoError(suite.db.First(&stored, orderID).Error)
	suite.Equal(models.OrderStatusProcessing, stored.OrderStatus)
}

// TestOrderIntegrationTestSuite runs the test suite
func TestOrderIntegrationTestSuite(t *testing.T) {
	testutil.MustSetTestEnvironment(t)
	suite.Run(t, new(OrderIntegrationTestSuite))
}
